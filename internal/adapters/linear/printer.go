// Package linear prints a launch as plain lines for pipes and CI logs.
package linear

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/muesli/termenv"
	"go.trai.ch/btl/internal/core/domain"
	"go.trai.ch/btl/internal/ui/output"
	"go.trai.ch/btl/internal/ui/style"
)

// Printer implements ports.LineSink by writing each line to stdout.
// Start and end banners go to stderr so stdout stays the exact BuildTools output.
type Printer struct {
	mu     sync.Mutex
	stdout io.Writer
	stderr *termenv.Output
}

// NewPrinter creates a Printer. Nil writers mean os.Stdout and os.Stderr.
func NewPrinter(stdout, stderr io.Writer) *Printer {
	if stdout == nil {
		stdout = os.Stdout
	}
	return &Printer{
		stdout: stdout,
		stderr: output.New(stderr),
	}
}

// Begin announces the invocation.
func (p *Printer) Begin(command string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	_, _ = fmt.Fprintf(p.stderr, "%s %s\n", p.stderr.String(style.Arrow).Faint(), command)
}

// WriteLine prints one relayed line.
func (p *Printer) WriteLine(line string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	_, _ = io.WriteString(p.stdout, line+"\n")
}

// End reports how the launch finished.
func (p *Printer) End(status domain.ExitStatus, elapsed time.Duration) {
	p.mu.Lock()
	defer p.mu.Unlock()

	elapsed = elapsed.Round(time.Millisecond)
	if status.Success() {
		symbol := p.stderr.String(style.Check).Foreground(termenv.RGBColor(string(style.Green)))
		_, _ = fmt.Fprintf(p.stderr, "%s BuildTools finished in %v\n", symbol, elapsed)
		return
	}
	symbol := p.stderr.String(style.Cross).Foreground(termenv.RGBColor(string(style.Red)))
	_, _ = fmt.Fprintf(p.stderr, "%s BuildTools failed after %v (%s)\n", symbol, elapsed, status)
}
