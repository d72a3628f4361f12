package core

import "context"

// Store defines the contract for persisting the Document. The whole
// document is the unit of load and save: save always overwrites the prior
// contents (last-writer-wins at document granularity).
type Store interface {
	// Load reads the persisted document. Missing storage yields the seed
	// document; documents from older schema versions are backfilled in
	// memory.
	Load(ctx context.Context) (Document, error)

	// Save serializes the full document and overwrites prior contents.
	Save(ctx context.Context, doc Document) error

	// Initialize ensures the underlying storage is ready (e.g. create the
	// state directory).
	Initialize(ctx context.Context) error
}

// ChangeEvent signals that the persisted document changed outside this
// process (another window or tool wrote the state file).
type ChangeEvent struct {
	Path      string
	Timestamp int64 // Unix timestamp
}

// Watchable is implemented by stores that can observe external changes.
type Watchable interface {
	// Watch emits an event whenever the persisted document is replaced.
	// The channel is closed when ctx is cancelled.
	Watch(ctx context.Context) (<-chan ChangeEvent, error)
}
