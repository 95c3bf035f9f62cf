package runtime

import (
	"context"
	"errors"
	"time"

	cfgpkg "github.com/alkapone312/shared-checklist/internal/config"
	"github.com/alkapone312/shared-checklist/internal/eventlog"
	pebblestore "github.com/alkapone312/shared-checklist/internal/storage/pebble"
)

// Options for building the Runtime.
type Options struct {
	DataDir       string
	Fsync         pebblestore.FsyncMode
	FsyncInterval time.Duration
	Config        cfgpkg.Config
}

// Runtime wires storage and config for a single-node instance.
type Runtime struct {
	db     *pebblestore.DB
	log    *eventlog.Log
	config cfgpkg.Config
}

// Open initializes the underlying storage and the shared event log.
func Open(opts Options) (*Runtime, error) {
	db, err := pebblestore.Open(pebblestore.Options{DataDir: opts.DataDir, Fsync: opts.Fsync, FsyncInterval: opts.FsyncInterval})
	if err != nil {
		return nil, err
	}
	l, err := eventlog.OpenLog(db)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	return &Runtime{db: db, log: l, config: opts.Config}, nil
}

// Close closes underlying resources.
func (r *Runtime) Close() error {
	if r.db == nil {
		return nil
	}
	return r.db.Close()
}

// CheckHealth performs a simple health check.
func (r *Runtime) CheckHealth(ctx context.Context) error {
	if r.db == nil {
		return errors.New("db not open")
	}
	it, err := r.db.NewIter(nil)
	if err != nil {
		return err
	}
	return it.Close()
}

// DB exposes the underlying store (internal use only).
func (r *Runtime) DB() *pebblestore.DB { return r.db }

// Log returns the shared event log.
func (r *Runtime) Log() *eventlog.Log { return r.log }

// Config returns the runtime configuration.
func (r *Runtime) Config() cfgpkg.Config { return r.config }
