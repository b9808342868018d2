// Package tui shows a running BuildTools launch in the terminal.
package tui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"go.trai.ch/btl/internal/core/domain"
)

const (
	// DefaultMaxLines bounds the scrollback kept in memory.
	DefaultMaxLines = 10000

	// headerHeight and footerHeight are the rows outside the viewport.
	headerHeight = 1
	footerHeight = 1

	// refreshInterval is how often buffered lines are drawn into the viewport.
	refreshInterval = 50 * time.Millisecond
)

// Model is the Bubble Tea model of one launch.
type Model struct {
	Command    string
	Lines      []string
	MaxLines   int
	Viewport   viewport.Model
	AutoScroll bool

	// KeepOpen leaves the view up after the launch ends until the user quits.
	KeepOpen bool

	Done   bool
	Status domain.ExitStatus
	Err    error

	spinner spinner.Model
	ready   bool
	dirty   bool
}

// NewModel creates a model for the invocation rendered as command.
func NewModel(command string) Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = runningStyle

	return Model{
		Command:    command,
		MaxLines:   DefaultMaxLines,
		Viewport:   viewport.New(0, 0),
		AutoScroll: true,
		spinner:    s,
	}
}

// Init starts the spinner and the redraw ticker.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, refreshTick())
}

func refreshTick() tea.Cmd {
	return tea.Tick(refreshInterval, func(time.Time) tea.Msg {
		return MsgRefresh{}
	})
}

// Update handles incoming messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.Viewport.Width = msg.Width
		m.Viewport.Height = max(msg.Height-headerHeight-footerHeight, 1)
		m.ready = true
		m.dirty = true
		m.flush()

	case spinner.TickMsg:
		if m.Done {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case MsgLine:
		m.Lines = append(m.Lines, msg.Text)
		m.dirty = true

	case MsgRefresh:
		m.flush()
		if m.Done {
			return m, nil
		}
		return m, refreshTick()

	case MsgExited:
		m.flush()
		m.Done = true
		m.Status = msg.Status
		m.Err = msg.Err
		if !m.KeepOpen {
			return m, tea.Quit
		}
	}

	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	if key == "ctrl+c" || key == "q" {
		return m, tea.Quit
	}

	m.flush()
	if key == "f" {
		m.AutoScroll = true
		m.Viewport.GotoBottom()
		return m, nil
	}

	// Any manual scroll stops following new output.
	var cmd tea.Cmd
	m.Viewport, cmd = m.Viewport.Update(msg)
	if !m.Viewport.AtBottom() {
		m.AutoScroll = false
	}
	return m, cmd
}

// flush trims the scrollback and redraws the viewport when lines arrived
// since the last redraw. Until the first window size it only trims.
func (m *Model) flush() {
	if !m.dirty {
		return
	}
	if limit := m.MaxLines; limit > 0 && len(m.Lines) > limit {
		m.Lines = append(m.Lines[:0], m.Lines[len(m.Lines)-limit:]...)
	}
	if !m.ready {
		return
	}
	m.Viewport.SetContent(strings.Join(m.Lines, "\n"))
	if m.AutoScroll {
		m.Viewport.GotoBottom()
	}
	m.dirty = false
}
