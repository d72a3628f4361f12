// Package platform wires the storage adapter and the domain service.
package platform

import (
	"log/slog"
	"time"

	"github.com/clinixhq/clinix/pkg/core"
)

// options holds the internal configuration for the Clinix service.
type options struct {
	store          core.Store
	logger         *slog.Logger
	filename       string
	resetOnCorrupt bool
	clock          func() time.Time
}

// Option defines a functional option for configuring Clinix.
type Option func(*options)

// defaultOptions returns the default configuration.
func defaultOptions() *options {
	return &options{}
}

// WithStore allows injecting a custom storage adapter (e.g. an in-memory
// mock). If provided, the default file-backed store is skipped.
func WithStore(store core.Store) Option {
	return func(o *options) {
		o.store = store
	}
}

// WithLogger sets the logger for the service and store.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithStateFilename overrides the well-known state file name.
func WithStateFilename(name string) Option {
	return func(o *options) {
		o.filename = name
	}
}

// WithResetOnCorrupt makes the store fall back to the seed document when the
// state file cannot be decoded, instead of failing fast.
func WithResetOnCorrupt(reset bool) Option {
	return func(o *options) {
		o.resetOnCorrupt = reset
	}
}

// WithClock injects the time source. Useful for tests.
func WithClock(clock func() time.Time) Option {
	return func(o *options) {
		o.clock = clock
	}
}
