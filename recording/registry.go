package recording

import (
	"fmt"
	"sort"
	"sync"

	"github.com/gogpu/renderstate"
)

// BackendFactory creates a fresh backend for one playback.
type BackendFactory func() renderstate.Backend

var (
	registryMu sync.RWMutex
	backends   = make(map[string]BackendFactory)
)

func init() {
	Register("recording", func() renderstate.Backend {
		return NewRecorder(0, 0)
	})
}

// Register makes a backend available under name. Backend packages call
// it from init, so importing the package for side effects is enough:
//
//	import _ "github.com/gogpu/renderstate/recording/backends/stencil"
//
// Register panics if factory is nil or name is taken, so conflicting
// registrations fail at program start.
func Register(name string, factory BackendFactory) {
	registryMu.Lock()
	defer registryMu.Unlock()

	if factory == nil {
		panic("recording: Register factory is nil")
	}
	if _, dup := backends[name]; dup {
		panic("recording: Register called twice for " + name)
	}
	backends[name] = factory
}

// Unregister removes name from the registry. Missing names are ignored.
func Unregister(name string) {
	registryMu.Lock()
	defer registryMu.Unlock()
	delete(backends, name)
}

// NewBackend returns a new instance of the backend registered as name.
// The error for an unknown name hints at a missing side-effect import.
func NewBackend(name string) (renderstate.Backend, error) {
	registryMu.RLock()
	factory, ok := backends[name]
	registryMu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("recording: unknown backend %q (forgotten import?)", name)
	}
	return factory(), nil
}

// MustBackend is like NewBackend but panics on an unknown name.
func MustBackend(name string) renderstate.Backend {
	b, err := NewBackend(name)
	if err != nil {
		panic(err)
	}
	return b
}

// Backends returns the registered names in alphabetical order.
func Backends() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	names := make([]string, 0, len(backends))
	for name := range backends {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// IsRegistered reports whether a backend is registered as name.
func IsRegistered(name string) bool {
	registryMu.RLock()
	defer registryMu.RUnlock()
	_, ok := backends[name]
	return ok
}

// Count returns the number of registered backends.
func Count() int {
	registryMu.RLock()
	defer registryMu.RUnlock()
	return len(backends)
}
