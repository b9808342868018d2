// Package ports defines the core interfaces for the application.
package ports

import (
	"context"

	"go.trai.ch/btl/internal/core/domain"
)

// LineSink receives relayed output lines, one call per line, in the order the child wrote them.
// WriteLine may block; the relay then stops draining the child's output until it returns.
type LineSink interface {
	WriteLine(line string)
}

// LineSinkFunc adapts a function to a LineSink.
type LineSinkFunc func(line string)

// WriteLine implements LineSink.
func (f LineSinkFunc) WriteLine(line string) { f(line) }

// Launcher defines the interface for running BuildTools as a subprocess.
//
//go:generate mockgen -source=launcher.go -destination=mocks/mock_launcher.go -package=mocks
type Launcher interface {
	// Launch spawns the task in dir and relays its standard output to sink until the
	// output ends, then returns the exit status.
	//
	// A non-zero exit is reported through the status, not as an error. An error is
	// returned only when the process cannot be started.
	Launch(ctx context.Context, task *domain.Task, dir string, sink LineSink) (domain.ExitStatus, error)
}
