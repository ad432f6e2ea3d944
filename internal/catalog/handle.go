package catalog

import (
	"context"
	"sync"
	"sync/atomic"
)

// Handle guards the process-wide catalog instance. The first Get loads
// the catalog exactly once; every later call returns the same immutable
// snapshot without synchronization beyond the initial Once. Whether the
// load succeeded or degraded is visible through Catalog.Mode, not an
// implicit nil check.
type Handle struct {
	once   sync.Once
	cat    *Catalog
	loaded atomic.Bool
}

// Get returns the shared catalog, loading it via l on the first call.
func (h *Handle) Get(ctx context.Context, l *Loader) *Catalog {
	h.once.Do(func() {
		h.cat = l.Load(ctx)
		h.loaded.Store(true)
	})
	return h.cat
}

// Loaded reports whether the catalog has been initialized yet.
func (h *Handle) Loaded() bool {
	return h.loaded.Load()
}
