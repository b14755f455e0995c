// Package observability provides hooks for instrumenting the texture build.
//
// This package enables optional instrumentation without adding hard
// dependencies on specific observability backends. Consumers register hooks
// at startup to receive events about node execution, result reuse, and sink
// writes.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define hook interfaces for different event categories
//   - Provide no-op default implementations
//   - Allow registration of custom implementations at startup
//
// This approach avoids import cycles (hooks are registered by main, not by
// libraries) and keeps the build engine free of observability framework
// dependencies.
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetBuildHooks(&myBuildHooks{})
//	    // ... run build
//	}
//
// The scheduler calls hooks as it executes:
//
//	observability.Build().OnNodeStart(ctx, display)
//	// ... run node ...
//	observability.Build().OnNodeComplete(ctx, display, duration, err)
package observability

import (
	"context"
	"sync"
	"time"
)

// BuildHooks receives events from graph execution.
type BuildHooks interface {
	// OnNodeStart records that a node body began executing.
	OnNodeStart(ctx context.Context, display string)

	// OnNodeComplete records that a node body finished, successfully or not.
	OnNodeComplete(ctx context.Context, display string, duration time.Duration, err error)

	// OnSinkWritten records that a sink realized its destinations on disk.
	OnSinkWritten(ctx context.Context, destinations []string)
}

// CacheHooks receives events from the per-run result cache.
type CacheHooks interface {
	// OnResultReused records that a consumer was served an
	// already-rendered result instead of triggering a computation.
	OnResultReused(ctx context.Context, display string)

	// OnResultComputed records that a demanded result required a fresh
	// computation.
	OnResultComputed(ctx context.Context, display string)
}

// NoopBuildHooks is a no-op implementation of BuildHooks.
type NoopBuildHooks struct{}

func (NoopBuildHooks) OnNodeStart(context.Context, string)                          {}
func (NoopBuildHooks) OnNodeComplete(context.Context, string, time.Duration, error) {}
func (NoopBuildHooks) OnSinkWritten(context.Context, []string)                      {}

// NoopCacheHooks is a no-op implementation of CacheHooks.
type NoopCacheHooks struct{}

func (NoopCacheHooks) OnResultReused(context.Context, string)   {}
func (NoopCacheHooks) OnResultComputed(context.Context, string) {}

var (
	buildHooks BuildHooks = NoopBuildHooks{}
	cacheHooks CacheHooks = NoopCacheHooks{}
	hooksMu    sync.RWMutex
)

// SetBuildHooks registers custom build hooks.
// This should be called once at application startup before any build runs.
func SetBuildHooks(h BuildHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		buildHooks = h
	}
}

// SetCacheHooks registers custom cache hooks.
// This should be called once at application startup before any build runs.
func SetCacheHooks(h CacheHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		cacheHooks = h
	}
}

// Build returns the registered build hooks.
func Build() BuildHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return buildHooks
}

// Cache returns the registered cache hooks.
func Cache() CacheHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return cacheHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	buildHooks = NoopBuildHooks{}
	cacheHooks = NoopCacheHooks{}
}
