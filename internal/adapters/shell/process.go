package shell

import (
	"bufio"
	"errors"
	"io"
	"iter"
	"os"
	"os/exec"
	"strings"
	"sync"

	"go.trai.ch/btl/internal/core/domain"
	"go.trai.ch/zerr"
)

const (
	initialLineBuffer = 64 * 1024
	maxLineLength     = 1024 * 1024
)

// Process is a running BuildTools child.
type Process struct {
	cmd       *exec.Cmd
	stdout    *os.File
	drainOnce sync.Once
}

func newProcess(cmd *exec.Cmd, stdout *os.File) *Process {
	return &Process{cmd: cmd, stdout: stdout}
}

// Pid returns the operating system process id.
func (p *Process) Pid() int {
	return p.cmd.Process.Pid
}

// Lines returns the child's standard output as a sequence of lines, without their
// "\n" or "\r\n" terminators. Invalid UTF-8 is replaced with U+FFFD.
//
// The sequence ends at EOF or at the first read error, including a line longer than
// 1 MiB. Whenever it ends early, the remaining output is discarded so the child never
// blocks on a full pipe. Output is consumed as it is read: ranging a second time
// yields nothing.
func (p *Process) Lines() iter.Seq[string] {
	return func(yield func(string) bool) {
		defer p.drain()

		scanner := bufio.NewScanner(p.stdout)
		scanner.Buffer(make([]byte, 0, initialLineBuffer), maxLineLength)
		for scanner.Scan() {
			if !yield(toLine(scanner.Bytes())) {
				return
			}
		}
	}
}

// Wait blocks until the child exits. A non-zero exit code is returned as a status;
// the error is reserved for failures to wait at all.
func (p *Process) Wait() (domain.ExitStatus, error) {
	err := p.cmd.Wait()
	if err == nil {
		return domain.ExitStatus{Code: 0}, nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		// ExitCode is -1 when the child was killed by a signal.
		return domain.ExitStatus{Code: exitErr.ExitCode()}, nil
	}
	return domain.ExitStatus{Code: -1}, zerr.Wrap(err, "waiting on child failed")
}

func (p *Process) drain() {
	p.drainOnce.Do(func() {
		_, _ = io.Copy(io.Discard, p.stdout)
		_ = p.stdout.Close()
	})
}

func toLine(b []byte) string {
	return strings.ToValidUTF8(string(b), "�")
}
