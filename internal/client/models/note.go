// Package models defines the data models persisted by crystalpad.
package models

import (
	"strings"
	"time"
)

// Note is the single persisted entity.
type Note struct {
	// ID is assigned by the store on first insert; 0 means never persisted.
	ID int64

	Title   string
	Content string

	// Timestamp is the last modification time in epoch milliseconds.
	Timestamp int64
}

// IsBlank reports whether both title and content are empty or whitespace.
func (n Note) IsBlank() bool {
	return strings.TrimSpace(n.Title) == "" && strings.TrimSpace(n.Content) == ""
}

// Persisted reports whether the note has been assigned an id by the store.
func (n Note) Persisted() bool {
	return n.ID > 0
}

// ModifiedAt converts Timestamp to local time.
func (n Note) ModifiedAt() time.Time {
	return time.UnixMilli(n.Timestamp)
}
