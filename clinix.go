package clinix

import (
	"log/slog"
	"time"

	"github.com/clinixhq/clinix/internal/platform"
	"github.com/clinixhq/clinix/pkg/core"
)

// --- Configuration ---

// Option defines a functional option for configuring Clinix.
type Option = platform.Option

// WithStore allows injecting a custom storage adapter.
func WithStore(store core.Store) Option {
	return platform.WithStore(store)
}

// WithLogger sets the logger for the service and store.
func WithLogger(logger *slog.Logger) Option {
	return platform.WithLogger(logger)
}

// WithStateFilename overrides the well-known state file name.
func WithStateFilename(name string) Option {
	return platform.WithStateFilename(name)
}

// WithResetOnCorrupt makes the store fall back to the seed document when the
// state file cannot be decoded, instead of failing fast.
func WithResetOnCorrupt(reset bool) Option {
	return platform.WithResetOnCorrupt(reset)
}

// WithClock injects the time source (useful for testing).
func WithClock(clock func() time.Time) Option {
	return platform.WithClock(clock)
}

// --- Factory ---

// New creates a Clinix Service rooted at the given state directory.
func New(dir string, opts ...Option) (*core.Service, error) {
	return platform.New(dir, opts...)
}
