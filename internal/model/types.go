// Package model defines core data structures for VocabMaster.
package model

// Theme represents the color theme preference.
type Theme string

const (
	// ThemeDark uses the dark palette.
	ThemeDark Theme = "dark"
	// ThemeLight uses the light palette.
	ThemeLight Theme = "light"
)

// QuestionType represents the kind of question a quiz asks.
type QuestionType string

const (
	// QuestionChoice shows four candidate answers, one correct.
	QuestionChoice QuestionType = "choice"
	// QuestionScramble asks to reassemble the front text from shuffled words.
	QuestionScramble QuestionType = "scramble"
)

// QuizOrder represents how a quiz deck is ordered.
type QuizOrder string

const (
	// OrderRandom shuffles the deck before the first question.
	OrderRandom QuizOrder = "random"
	// OrderSequential keeps the card store order.
	OrderSequential QuizOrder = "sequential"
)

// NotificationConfig holds notification settings.
type NotificationConfig struct {
	// Desktop enables desktop notifications via system APIs.
	Desktop bool `json:"desktop"`
	// WebhookURL is the optional URL to send webhook notifications.
	WebhookURL string `json:"webhook_url,omitempty"`
}
