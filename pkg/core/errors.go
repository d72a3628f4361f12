package core

import "errors"

// Common errors.
var (
	// ErrNotFound is returned when an appointment id does not exist in the
	// document. Callers wanting the lenient legacy behavior may ignore it;
	// the document is guaranteed untouched on a miss.
	ErrNotFound = errors.New("appointment not found")

	// ErrCorruptState is returned when the persisted document cannot be
	// decoded and the store is configured to fail fast.
	ErrCorruptState = errors.New("corrupt state document")

	// ErrPersistence wraps storage write failures. The in-memory mutation is
	// discarded; the action did not take effect.
	ErrPersistence = errors.New("failed to persist state")
)
