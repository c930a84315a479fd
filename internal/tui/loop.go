package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// FrameRate is how often pending input is handed to the frame function.
const FrameRate = 60

// FrameFunc receives the viewer state and the input events gathered since
// the previous frame, in arrival order.
type FrameFunc func(m *Model, events []tea.Msg) tea.Cmd

type frameMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(time.Second/FrameRate, func(t time.Time) tea.Msg { return frameMsg(t) })
}

// WithFrameFunc replaces the per-frame event handler.
func (m Model) WithFrameFunc(f FrameFunc) Model {
	m.frame = f
	return m
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case frameMsg:
		events := m.pending
		m.pending = nil
		var cmd tea.Cmd
		if len(events) > 0 {
			cmd = m.frame(&m, events)
		}
		return m, tea.Batch(cmd, tick())
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		m.pending = append(m.pending, msg)
		return m, nil
	case tea.MouseMsg, tea.WindowSizeMsg:
		m.pending = append(m.pending, msg)
		return m, nil
	}
	// widget housekeeping such as cursor blinks is not input; deliver it now
	return m, m.updateWidgets(msg)
}

func handleEvents(m *Model, events []tea.Msg) tea.Cmd {
	var cmds []tea.Cmd
	for _, ev := range events {
		cmds = append(cmds, m.handle(ev))
		if m.quitting {
			return tea.Quit
		}
	}
	return tea.Batch(cmds...)
}

func (m *Model) updateWidgets(msg tea.Msg) tea.Cmd {
	var cmds []tea.Cmd
	var cmd tea.Cmd
	if m.pasteMode {
		m.ta, cmd = m.ta.Update(msg)
		cmds = append(cmds, cmd)
	}
	if m.showSidebar {
		m.l, cmd = m.l.Update(msg)
		cmds = append(cmds, cmd)
	}
	return tea.Batch(cmds...)
}
