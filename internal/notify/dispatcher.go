// Package notify delivers quiz-result notifications to configured channels.
package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/gen2brain/beeep"

	"github.com/vocablab/vocabmaster/internal/engine"
	"github.com/vocablab/vocabmaster/internal/model"
)

// EventType represents a notification event type.
type EventType string

// EventQuizCompleted marks a finished quiz run.
const EventQuizCompleted EventType = "quiz_completed"

// Event describes a notification event.
type Event struct {
	Type      EventType
	Title     string
	Message   string
	Timestamp time.Time
}

// QuizCompleted builds the event for a finished quiz.
func QuizCompleted(res engine.QuizResult) Event {
	return Event{
		Type:      EventQuizCompleted,
		Title:     res.Rank,
		Message:   fmt.Sprintf("You scored %d/%d (%d%%)", res.Correct, res.Total, res.Percentage),
		Timestamp: time.Now(),
	}
}

// Dispatcher sends notifications to configured channels.
type Dispatcher struct {
	client *http.Client
}

// NewDispatcher creates a Dispatcher with sensible defaults.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		client: &http.Client{
			Timeout: 5 * time.Second,
		},
	}
}

// Dispatch sends a notification event using the given config. Delivery is
// best-effort; failures are swallowed so a broken webhook never disturbs
// the session.
func (d *Dispatcher) Dispatch(ctx context.Context, cfg model.NotificationConfig, event Event) {
	title := strings.TrimSpace(event.Title)
	if title == "" {
		title = "VocabMaster"
	}
	message := strings.TrimSpace(event.Message)
	if message == "" {
		message = string(event.Type)
	}
	if len(message) > 800 {
		message = message[:800] + "..."
	}

	if cfg.Desktop {
		_ = beeep.Notify(title, message, "")
	}

	if cfg.WebhookURL != "" {
		payload := map[string]any{
			"event":     event.Type,
			"title":     title,
			"message":   message,
			"timestamp": event.Timestamp.Unix(),
		}
		body, err := json.Marshal(payload)
		if err != nil {
			return
		}
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, cfg.WebhookURL, bytes.NewReader(body))
		if err != nil {
			return
		}
		req.Header.Set("Content-Type", "application/json")
		resp, err := d.client.Do(req)
		if err != nil {
			return
		}
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}
}
