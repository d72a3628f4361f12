package fs

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/aretw0/lifecycle"
	"github.com/fsnotify/fsnotify"

	"github.com/clinixhq/clinix/pkg/core"
)

// Watch emits a ChangeEvent whenever the state file is written by another
// process. The watcher observes the state directory rather than the file
// itself, since atomic saves replace the file node via rename.
func (s *Store) Watch(ctx context.Context) (<-chan core.ChangeEvent, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}
	if err := watcher.Add(s.config.Dir); err != nil {
		_ = watcher.Close()
		return nil, fmt.Errorf("failed to watch state directory: %w", err)
	}

	events := make(chan core.ChangeEvent, 16)

	lifecycle.Go(ctx, func(ctx context.Context) error {
		defer watcher.Close()
		defer close(events)

		for {
			select {
			case <-ctx.Done():
				return nil

			case event, ok := <-watcher.Events:
				if !ok {
					return nil
				}
				if filepath.Base(event.Name) != s.config.Filename {
					continue
				}
				if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
					continue
				}
				select {
				case events <- core.ChangeEvent{Path: s.Path(), Timestamp: time.Now().Unix()}:
				case <-ctx.Done():
					return nil
				}

			case werr, ok := <-watcher.Errors:
				if !ok {
					return nil
				}
				if s.config.Logger != nil {
					s.config.Logger.Error("fsnotify error", "error", werr)
				}
			}
		}
	}, lifecycle.WithErrorHandler(func(err error) {
		if s.config.Logger != nil {
			s.config.Logger.Error("watcher stopped", "error", err)
		}
	}))

	return events, nil
}
