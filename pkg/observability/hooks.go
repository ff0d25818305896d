// Package observability provides hooks for instrumenting box rendering and
// style registry changes.
//
// The library itself never logs. Consumers that want visibility register hook
// implementations at startup; until then every call goes to a no-op.
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetRenderHooks(&myRenderHooks{})
//	    observability.SetRegistryHooks(&myRegistryHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Render().OnRender(lines, width, duration, err)
package observability

import (
	"sync"
	"time"
)

// =============================================================================
// Hook Interfaces
// =============================================================================

// RenderHooks receives events from box rendering.
type RenderHooks interface {
	// OnRender records a completed render with the number of output lines,
	// the content width, and the time taken.
	OnRender(lines, width int, duration time.Duration, err error)
}

// RegistryHooks receives events from style registry mutation.
type RegistryHooks interface {
	// OnStyleRegistered records a style being added or replaced.
	OnStyleRegistered(name string, isDefault bool)

	// OnDefaultsChanged records the names of default options that were overwritten.
	OnDefaultsChanged(keys []string)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopRenderHooks is a no-op implementation of RenderHooks.
type NoopRenderHooks struct{}

func (NoopRenderHooks) OnRender(int, int, time.Duration, error) {}

// NoopRegistryHooks is a no-op implementation of RegistryHooks.
type NoopRegistryHooks struct{}

func (NoopRegistryHooks) OnStyleRegistered(string, bool) {}
func (NoopRegistryHooks) OnDefaultsChanged([]string)     {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	renderHooks   RenderHooks   = NoopRenderHooks{}
	registryHooks RegistryHooks = NoopRegistryHooks{}
	hooksMu       sync.RWMutex
)

// SetRenderHooks registers custom render hooks.
// This should be called once at application startup before any rendering.
func SetRenderHooks(h RenderHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		renderHooks = h
	}
}

// SetRegistryHooks registers custom registry hooks.
func SetRegistryHooks(h RegistryHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		registryHooks = h
	}
}

// Render returns the registered render hooks.
func Render() RenderHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return renderHooks
}

// Registry returns the registered registry hooks.
func Registry() RegistryHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return registryHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	renderHooks = NoopRenderHooks{}
	registryHooks = NoopRegistryHooks{}
}
