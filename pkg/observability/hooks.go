// Package observability provides hooks for metrics, tracing, and logging.
//
// Consumers register hooks at startup to receive events about prune runs and
// catalog file operations. Libraries call the registered hooks; the defaults
// do nothing, so nothing here depends on a particular backend.
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetPruneHooks(&myPruneHooks{})
//	    observability.SetCatalogHooks(&myCatalogHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Prune().OnFileStart(ctx, name)
//	// ... prune the file ...
//	observability.Prune().OnFileComplete(ctx, name, status, extras, duration, err)
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Prune Hooks
// =============================================================================

// PruneHooks receives events from a batch prune run.
type PruneHooks interface {
	// Run events
	OnRunStart(ctx context.Context, dir, reference string, dryRun bool)
	OnRunComplete(ctx context.Context, filesChanged, keysRemoved int, duration time.Duration, err error)

	// Per-file events
	OnFileStart(ctx context.Context, name string)
	OnFileComplete(ctx context.Context, name, status string, extras int, duration time.Duration, err error)
}

// =============================================================================
// Catalog Hooks
// =============================================================================

// CatalogHooks receives events from catalog file operations.
type CatalogHooks interface {
	// OnLoad records a catalog read. keys is the number of key paths loaded.
	OnLoad(ctx context.Context, path string, keys int, duration time.Duration, err error)

	// OnSave records a catalog write.
	OnSave(ctx context.Context, path string, duration time.Duration, err error)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopPruneHooks is a no-op implementation of PruneHooks.
type NoopPruneHooks struct{}

func (NoopPruneHooks) OnRunStart(context.Context, string, string, bool)               {}
func (NoopPruneHooks) OnRunComplete(context.Context, int, int, time.Duration, error) {}
func (NoopPruneHooks) OnFileStart(context.Context, string)                           {}
func (NoopPruneHooks) OnFileComplete(context.Context, string, string, int, time.Duration, error) {
}

// NoopCatalogHooks is a no-op implementation of CatalogHooks.
type NoopCatalogHooks struct{}

func (NoopCatalogHooks) OnLoad(context.Context, string, int, time.Duration, error) {}
func (NoopCatalogHooks) OnSave(context.Context, string, time.Duration, error)      {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	pruneHooks   PruneHooks   = NoopPruneHooks{}
	catalogHooks CatalogHooks = NoopCatalogHooks{}
	hooksMu      sync.RWMutex
)

// SetPruneHooks registers custom prune hooks.
// This should be called once at application startup before any run starts.
func SetPruneHooks(h PruneHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		pruneHooks = h
	}
}

// SetCatalogHooks registers custom catalog hooks.
// This should be called once at application startup before any file is read.
func SetCatalogHooks(h CatalogHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		catalogHooks = h
	}
}

// Prune returns the registered prune hooks.
func Prune() PruneHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return pruneHooks
}

// Catalog returns the registered catalog hooks.
func Catalog() CatalogHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return catalogHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	pruneHooks = NoopPruneHooks{}
	catalogHooks = NoopCatalogHooks{}
}
