package platform

import (
	"context"

	"github.com/clinixhq/clinix/pkg/adapters/fs"
	"github.com/clinixhq/clinix/pkg/core"
)

// New wires a Service over the given state directory.
func New(dir string, opts ...Option) (*core.Service, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	store := o.store
	if store == nil {
		store = fs.NewStore(fs.Config{
			Dir:            dir,
			Filename:       o.filename,
			ResetOnCorrupt: o.resetOnCorrupt,
			Logger:         o.logger,
		})
	}

	if err := store.Initialize(context.Background()); err != nil {
		return nil, err
	}

	var svcOpts []core.ServiceOption
	if o.logger != nil {
		svcOpts = append(svcOpts, core.WithLogger(o.logger))
	}
	if o.clock != nil {
		svcOpts = append(svcOpts, core.WithClock(o.clock))
	}

	return core.NewService(store, svcOpts...), nil
}
