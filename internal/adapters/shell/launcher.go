// Package shell provides the subprocess launcher for BuildTools.
package shell

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"

	"go.trai.ch/btl/internal/core/domain"
	"go.trai.ch/btl/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// Launcher implements ports.Launcher using os/exec.
type Launcher struct {
	logger ports.Logger
	stderr io.Writer
}

// Option configures a Launcher.
type Option func(*Launcher)

// WithStderr sets where the child's standard error is written. Nil discards it.
func WithStderr(w io.Writer) Option {
	return func(l *Launcher) {
		l.stderr = w
	}
}

// NewLauncher creates a new Launcher.
// By default the child's standard error is inherited from this process.
func NewLauncher(logger ports.Logger, opts ...Option) *Launcher {
	l := &Launcher{
		logger: logger,
		stderr: os.Stderr,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Start spawns the task's command in dir with standard output captured.
// The returned Process must be waited on.
func (l *Launcher) Start(task *domain.Task, dir string) (*Process, error) {
	inv := task.Invocation(dir)

	cmd := exec.Command(inv.Name, inv.Args...) //nolint:gosec // java and jar come from the user's profile
	cmd.Dir = inv.Dir
	cmd.Stderr = l.stderr

	// A plain os.Pipe instead of StdoutPipe: Wait must be able to run while the
	// relay is still reading, and StdoutPipe forbids that.
	r, w, err := os.Pipe()
	if err != nil {
		return nil, spawnError(err, inv)
	}
	cmd.Stdout = w

	if err := cmd.Start(); err != nil {
		_ = r.Close()
		_ = w.Close()
		return nil, spawnError(err, inv)
	}

	// The child owns its copy of the write end now. Ours must go so the reader sees EOF.
	_ = w.Close()

	return newProcess(cmd, r), nil
}

// Launch starts the task and relays its output to sink while awaiting its exit.
// If ctx carries a telemetry vertex, lines are also written to the vertex.
func (l *Launcher) Launch(
	ctx context.Context,
	task *domain.Task,
	dir string,
	sink ports.LineSink,
) (domain.ExitStatus, error) {
	proc, err := l.Start(task, dir)
	if err != nil {
		return domain.ExitStatus{Code: -1}, err
	}

	if v, ok := ports.VertexFromContext(ctx); ok {
		v.Log(domain.LogLevelInfo, fmt.Sprintf("started %s (pid %d)", task.Java(), proc.Pid()))
		sink = teeSink{sink: sink, w: v.Stdout()}
	}

	var (
		g      errgroup.Group
		status domain.ExitStatus
	)

	// Relay
	g.Go(func() error {
		for line := range proc.Lines() {
			sink.WriteLine(line)
		}
		return nil
	})

	// Exit
	g.Go(func() error {
		var waitErr error
		status, waitErr = proc.Wait()
		return waitErr
	})

	if err := g.Wait(); err != nil {
		return status, err
	}

	l.logger.Info(fmt.Sprintf("buildtools exited with status: %d", status.Code))
	return status, nil
}

func spawnError(err error, inv domain.Invocation) error {
	cause := zerr.Wrap(err, "could not start "+inv.Name)
	cause = zerr.With(cause, "dir", inv.Dir)
	cause = zerr.With(cause, "command", inv.String())
	return errors.Join(domain.ErrSpawnFailed, cause)
}

type teeSink struct {
	sink ports.LineSink
	w    io.Writer
}

func (t teeSink) WriteLine(line string) {
	t.sink.WriteLine(line)
	_, _ = io.WriteString(t.w, line+"\n")
}
