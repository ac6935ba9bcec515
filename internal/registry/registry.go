// Package registry provides a global registry of board layouts.
// The embedded classic layout registers itself; layouts loaded from disk are
// added at startup, so the CLI and SSH server can offer them by id.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/ringboard/internal/config"
)

// LayoutInfo contains metadata about a registered layout.
type LayoutInfo struct {
	ID    string
	Title string
}

// Factory returns a fresh copy of a layout.
type Factory func() config.Layout

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

func init() {
	Register(config.DefaultLayoutID, config.DefaultLayout)
}

// Register adds a layout factory to the registry.
// Panics if a layout with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: layout %q already registered", id))
	}

	factories[id] = f
	titles[id] = f().Title
}

// RegisterLayout registers an already-loaded layout under its own id.
// Unlike Register it returns an error on duplicates, since file layouts are
// user input.
func RegisterLayout(l config.Layout) error {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[l.ID]; exists {
		return fmt.Errorf("registry: layout %q already registered", l.ID)
	}
	l = l.Clone()
	factories[l.ID] = func() config.Layout { return l.Clone() }
	titles[l.ID] = l.Title
	return nil
}

// List returns information about all registered layouts, sorted by ID.
func List() []LayoutInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]LayoutInfo, 0, len(factories))
	for id := range factories {
		result = append(result, LayoutInfo{
			ID:    id,
			Title: titles[id],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create returns the layout registered under id.
func Create(id string) (config.Layout, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return config.Layout{}, fmt.Errorf("registry: unknown layout %q", id)
	}

	return f(), nil
}

// Exists checks if a layout with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
