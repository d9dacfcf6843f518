// Package registry provides a global registry for view factories.
// Views register themselves in init() functions, allowing the CLI to
// discover and instantiate starting views without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/krotovic/stardrift/internal/phi"
)

// Factory builds a view over the shared context. Construction loads the
// view's assets, so it can fail.
type Factory func(p *phi.Phi) (phi.View, error)

// ViewInfo contains metadata about a registered view.
type ViewInfo struct {
	ID    string
	Title string
}

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a view factory to the registry.
// Typically called from a view package's init() function.
// Panics if a view with the same ID is already registered.
func Register(id, title string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: view %q already registered", id))
	}

	factories[id] = f
	titles[id] = title
}

// List returns information about all registered views, sorted by ID.
func List() []ViewInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]ViewInfo, 0, len(factories))
	for id := range factories {
		result = append(result, ViewInfo{
			ID:    id,
			Title: titles[id],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates the view registered under id.
// Returns an error if the ID is unknown or the view fails to build.
func Create(id string, p *phi.Phi) (phi.View, error) {
	mu.RLock()
	f, ok := factories[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown view %q", id)
	}

	return f(p)
}

// Exists checks if a view with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
