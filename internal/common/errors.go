// Package common defines sentinel errors shared by the storage, service and
// editor layers of crystalpad. Callers should use errors.Is to match them.
package common

import "errors"

var (
	// Repository-level errors.
	ErrNotFound = errors.New("not found")

	// Preference-specific errors.
	ErrUnknownPreference = errors.New("unknown preference")

	// Service lifecycle errors.
	ErrClosed = errors.New("service closed")
)
