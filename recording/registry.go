package recording

import (
	"fmt"
	"sort"
	"sync"
)

// BackendFactory returns a fresh playback target.
type BackendFactory func() Backend

var (
	factoriesMu sync.RWMutex
	factories   = make(map[string]BackendFactory)
)

// Register makes a playback target available under name. Backend packages
// call it from init, so importing them for side effects is enough:
//
//	func init() {
//	    recording.Register("raster", func() recording.Backend {
//	        return NewBackend()
//	    })
//	}
//
// Register panics if factory is nil or the name is already taken.
func Register(name string, factory BackendFactory) {
	factoriesMu.Lock()
	defer factoriesMu.Unlock()

	if factory == nil {
		panic("recording: Register factory is nil")
	}
	if _, dup := factories[name]; dup {
		panic("recording: Register called twice for " + name)
	}
	factories[name] = factory
}

// NewBackend returns a new backend of the named kind.
//
//	import _ "github.com/gogpu/annotate/recording/backends/raster"
//
//	backend, err := recording.NewBackend("raster")
func NewBackend(name string) (Backend, error) {
	factoriesMu.RLock()
	factory, ok := factories[name]
	factoriesMu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("recording: unknown backend %q (forgotten import?)", name)
	}
	return factory(), nil
}

// Backends lists the registered names, sorted.
func Backends() []string {
	factoriesMu.RLock()
	defer factoriesMu.RUnlock()

	names := make([]string, 0, len(factories))
	for name := range factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// IsRegistered reports whether name can be passed to NewBackend.
func IsRegistered(name string) bool {
	factoriesMu.RLock()
	defer factoriesMu.RUnlock()
	_, ok := factories[name]
	return ok
}
