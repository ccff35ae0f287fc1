// Package store provides data persistence for VocabMaster.
package store

import "errors"

// Persistence keys. The card collection and theme preference are the only
// persisted values; each is read once at startup and written on mutation.
const (
	// KeyCards holds the full JSON-serialized card collection.
	KeyCards = "flashcards-data"
	// KeyTheme holds the theme preference ("dark" or "light").
	KeyTheme = "theme"
)

var (
	// ErrNotFound is returned when an entity or key is not found.
	ErrNotFound = errors.New("not found")
	// ErrValidation is returned when a mutation is rejected before applying.
	ErrValidation = errors.New("validation failed")
	// ErrCorruptData is returned when persisted data fails load-time validation.
	ErrCorruptData = errors.New("corrupt persisted data")
)

// KV is the key-value storage contract the engine persists through.
type KV interface {
	// Get returns the value for key, or ErrNotFound.
	Get(key string) ([]byte, error)
	// Set writes the value for key.
	Set(key string, value []byte) error
}
