// Package ui provides the terminal user interface for VocabMaster.
package ui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vocablab/vocabmaster/internal/engine"
	"github.com/vocablab/vocabmaster/internal/model"
	"github.com/vocablab/vocabmaster/internal/notify"
)

// AdvanceMsg fires when the answer-feedback delay elapses. The key pins the
// message to the question it was scheduled for; the session drops it if the
// quiz was reset or restarted in the meantime.
type AdvanceMsg struct {
	Key engine.AdvanceKey
}

// ClearStatusMsg clears a transient status bar message.
type ClearStatusMsg struct {
	ID int
}

// NotifiedMsg reports that a notification dispatch finished.
type NotifiedMsg struct{}

// ScheduleAdvance returns a command that delivers AdvanceMsg after the
// feedback delay.
func ScheduleAdvance(key engine.AdvanceKey, delay time.Duration) tea.Cmd {
	return tea.Tick(delay, func(time.Time) tea.Msg {
		return AdvanceMsg{Key: key}
	})
}

// ClearStatusAfter returns a command that clears the status message with the
// given ID after d. Stale IDs are ignored so a newer message is not wiped.
func ClearStatusAfter(d time.Duration, id int) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return ClearStatusMsg{ID: id}
	})
}

// DispatchNotification sends a quiz-result notification in the background.
func DispatchNotification(d *notify.Dispatcher, cfg model.NotificationConfig, event notify.Event) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		d.Dispatch(ctx, cfg, event)
		return NotifiedMsg{}
	}
}
