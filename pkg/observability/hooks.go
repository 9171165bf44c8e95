// Package observability provides hooks for metrics, tracing, and logging.
//
// This package enables optional instrumentation without adding hard
// dependencies on specific observability backends. Consumers can register
// hooks at startup to receive events about generator runs and dataset plan
// execution.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define hook interfaces for different event categories
//   - Provide no-op default implementations
//   - Allow registration of custom implementations at startup
//
// This approach avoids import cycles (hooks are registered by main, not by
// libraries) and keeps the generator library free of observability framework
// dependencies.
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetGeneratorHooks(&myGeneratorHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Generator().OnGenerateStart(ctx, "random", path)
//	// ... generate ...
//	observability.Generator().OnGenerateComplete(ctx, "random", path, edges, duration, err)
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Generator Hooks
// =============================================================================

// GeneratorHooks receives events from individual topology generator runs.
type GeneratorHooks interface {
	// OnGenerateStart records the start of one generator run.
	OnGenerateStart(ctx context.Context, topology, path string)

	// OnGenerateComplete records the end of one generator run. edges is the
	// number of edges actually written; err is nil on success.
	OnGenerateComplete(ctx context.Context, topology, path string, edges int64, duration time.Duration, err error)
}

// =============================================================================
// Plan Hooks
// =============================================================================

// PlanHooks receives events from dataset plan execution.
type PlanHooks interface {
	// OnEntryStart records the start of one plan entry.
	OnEntryStart(ctx context.Context, runID, name string)

	// OnEntryComplete records the end of one plan entry.
	OnEntryComplete(ctx context.Context, runID, name string, edges int64, duration time.Duration, err error)

	// OnPlanComplete records the end of the whole plan run.
	OnPlanComplete(ctx context.Context, runID string, entries, failed int, duration time.Duration)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopGeneratorHooks is a no-op implementation of GeneratorHooks.
type NoopGeneratorHooks struct{}

func (NoopGeneratorHooks) OnGenerateStart(context.Context, string, string) {}
func (NoopGeneratorHooks) OnGenerateComplete(context.Context, string, string, int64, time.Duration, error) {
}

// NoopPlanHooks is a no-op implementation of PlanHooks.
type NoopPlanHooks struct{}

func (NoopPlanHooks) OnEntryStart(context.Context, string, string) {}
func (NoopPlanHooks) OnEntryComplete(context.Context, string, string, int64, time.Duration, error) {
}
func (NoopPlanHooks) OnPlanComplete(context.Context, string, int, int, time.Duration) {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	generatorHooks GeneratorHooks = NoopGeneratorHooks{}
	planHooks      PlanHooks      = NoopPlanHooks{}
	hooksMu        sync.RWMutex
)

// SetGeneratorHooks registers custom generator hooks.
// This should be called once at application startup before any generation.
func SetGeneratorHooks(h GeneratorHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		generatorHooks = h
	}
}

// SetPlanHooks registers custom plan hooks.
// This should be called once at application startup before any plan run.
func SetPlanHooks(h PlanHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		planHooks = h
	}
}

// Generator returns the registered generator hooks.
func Generator() GeneratorHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return generatorHooks
}

// Plan returns the registered plan hooks.
func Plan() PlanHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return planHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	generatorHooks = NoopGeneratorHooks{}
	planHooks = NoopPlanHooks{}
}
