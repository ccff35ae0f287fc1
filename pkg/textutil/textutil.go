// Package textutil provides text helpers shared by the engine and UI.
package textutil

import "strings"

// NormalizeSpace collapses all runs of whitespace to single spaces and trims
// leading/trailing whitespace. Case is preserved.
func NormalizeSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// Words splits s on whitespace into its word tokens.
func Words(s string) []string {
	return strings.Fields(s)
}

// DisplayText returns s, or a placeholder when s is empty after trimming.
// Keeps blank card faces renderable without touching stored data.
func DisplayText(s string) string {
	if strings.TrimSpace(s) == "" {
		return "(No Text)"
	}
	return s
}
