// Package fs implements core.Store on top of a single JSON file: the whole
// document is loaded and saved as one unit, the local-disk analogue of a
// browser storage key.
package fs

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/clinixhq/clinix/pkg/core"
)

// DefaultFilename is the well-known name of the state document.
const DefaultFilename = "clinix_db.json"

// Config holds the configuration for the file-backed store.
type Config struct {
	Dir      string // state directory
	Filename string // defaults to DefaultFilename

	// ResetOnCorrupt makes Load fall back to the seed document when the
	// state file cannot be decoded. Default is to fail fast with
	// core.ErrCorruptState.
	ResetOnCorrupt bool

	Logger *slog.Logger
}

// Store is the file-backed implementation of core.Store.
type Store struct {
	config Config
}

// NewStore creates a new file-backed store.
func NewStore(config Config) *Store {
	if config.Filename == "" {
		config.Filename = DefaultFilename
	}
	return &Store{config: config}
}

// Path returns the location of the state document.
func (s *Store) Path() string {
	return filepath.Join(s.config.Dir, s.config.Filename)
}

// Initialize ensures the state directory exists.
func (s *Store) Initialize(ctx context.Context) error {
	if err := os.MkdirAll(s.config.Dir, 0755); err != nil {
		return fmt.Errorf("failed to create state directory: %w", err)
	}
	return nil
}

// Load reads the persisted document. A missing file yields the seed
// document. Documents written by older schema versions are backfilled in
// memory only; the repaired shape reaches disk on the next Save.
func (s *Store) Load(ctx context.Context) (core.Document, error) {
	data, err := os.ReadFile(s.Path())
	if errors.Is(err, fs.ErrNotExist) {
		return core.Seed(), nil
	}
	if err != nil {
		return core.Document{}, fmt.Errorf("failed to read state file: %w", err)
	}

	var doc core.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		if s.config.ResetOnCorrupt {
			if s.config.Logger != nil {
				s.config.Logger.Warn("state file is corrupt, resetting to seed",
					"path", s.Path(), "error", err)
			}
			return core.Seed(), nil
		}
		return core.Document{}, fmt.Errorf("%w: %s: %v", core.ErrCorruptState, s.Path(), err)
	}

	doc.Backfill()
	return doc, nil
}

// Save serializes the full document and overwrites the prior contents
// atomically. There are no partial writes: on failure the old contents
// remain intact and the error wraps core.ErrPersistence.
func (s *Store) Save(ctx context.Context, doc core.Document) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize document: %w", err)
	}

	if err := writeFileAtomic(s.Path(), data, 0644); err != nil {
		return fmt.Errorf("%w: %v", core.ErrPersistence, err)
	}

	if s.config.Logger != nil {
		s.config.Logger.Debug("state saved", "path", s.Path(),
			"appointments", len(doc.Appointments), "notifications", len(doc.Notifications))
	}
	return nil
}
