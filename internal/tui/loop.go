package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"drillmap/internal/boundary"
)

// timerMsg runs a scheduled closure on the Update loop.
type timerMsg struct{ fn func() }

// frameMsg advances the camera animation tagged seq.
type frameMsg struct{ seq int }

// loadedMsg carries the dataset load result.
type loadedMsg struct {
	ds  *boundary.Dataset
	err error
}

// eventLoop turns scheduler calls into tea commands. Commands queued while
// handling a message are returned by Update through drain.
type eventLoop struct {
	pending []tea.Cmd
}

func (l *eventLoop) After(d time.Duration, fn func()) {
	l.pending = append(l.pending, tea.Tick(d, func(time.Time) tea.Msg {
		return timerMsg{fn: fn}
	}))
}

func (l *eventLoop) frame(seq int) {
	l.pending = append(l.pending, tea.Tick(frameInterval, func(time.Time) tea.Msg {
		return frameMsg{seq: seq}
	}))
}

func (l *eventLoop) drain() tea.Cmd {
	cmds := l.pending
	l.pending = nil
	return tea.Batch(cmds...)
}
