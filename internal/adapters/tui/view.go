package tui

import (
	"go.trai.ch/btl/internal/ui/style"
)

// View renders the header, the output pane and the status line.
func (m *Model) View() string {
	if !m.ready {
		return "Initializing..."
	}
	return m.header() + "\n" + m.Viewport.View() + "\n" + m.footer()
}

func (m *Model) header() string {
	return titleStyle.Render("BUILDTOOLS") + commandStyle.Render(m.Command)
}

func (m *Model) footer() string {
	switch {
	case !m.Done:
		return m.spinner.View() + " running " + hintStyle.Render("(q quit view, f follow)")
	case m.Err != nil:
		return failureStyle.Render(style.Cross + " " + m.Err.Error())
	case m.Status.Success():
		return successStyle.Render(style.Check + " " + m.Status.String())
	default:
		return failureStyle.Render(style.Cross + " " + m.Status.String())
	}
}
