package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"go.trai.ch/btl/internal/core/domain"
)

// Renderer runs the Bubble Tea program and feeds it launch events.
// It implements ports.LineSink.
type Renderer struct {
	program *tea.Program
	errCh   chan error
}

// NewRenderer creates a renderer for model.
func NewRenderer(model *Model, opts ...tea.ProgramOption) *Renderer {
	return &Renderer{
		program: tea.NewProgram(model, opts...),
		errCh:   make(chan error, 1),
	}
}

// Start runs the program in a background goroutine.
func (r *Renderer) Start() {
	go func() {
		_, err := r.program.Run()
		r.errCh <- err
	}()
}

// WriteLine forwards a relayed line. It blocks while the program is busy and
// returns immediately once the program has exited.
func (r *Renderer) WriteLine(line string) {
	r.program.Send(MsgLine{Text: line})
}

// Finish reports the end of the launch.
func (r *Renderer) Finish(status domain.ExitStatus, err error) {
	r.program.Send(MsgExited{Status: status, Err: err})
}

// Stop asks the program to quit.
func (r *Renderer) Stop() {
	r.program.Quit()
}

// Wait blocks until the program has terminated.
func (r *Renderer) Wait() error {
	return <-r.errCh
}
