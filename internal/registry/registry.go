// Package registry provides a global registry of named board presets.
// Presets register themselves in init() functions, allowing the platform
// to discover and instantiate boards without hardcoded dependencies.
package registry

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

// ErrUnknownPreset is returned by Lookup for an unregistered ID.
var ErrUnknownPreset = errors.New("registry: unknown preset")

// Preset describes a named board configuration.
type Preset struct {
	// ID is a unique identifier used for CLI commands (e.g., "classic").
	ID string

	// Title is a human-readable name for menus (e.g., "Classic 20x15").
	Title string

	// Width and Height are the board dimensions in cells.
	Width  int
	Height int
}

var (
	presets = make(map[string]Preset)
	mu      sync.RWMutex
)

// Register adds a preset to the registry.
// Typically called from an init() function.
// Panics if a preset with the same ID is already registered or the board is empty.
func Register(p Preset) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := presets[p.ID]; exists {
		panic(fmt.Sprintf("registry: preset %q already registered", p.ID))
	}
	if p.Width <= 0 || p.Height <= 0 {
		panic(fmt.Sprintf("registry: preset %q has invalid board %dx%d", p.ID, p.Width, p.Height))
	}

	presets[p.ID] = p
}

// List returns all registered presets, sorted by board area and then ID.
func List() []Preset {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]Preset, 0, len(presets))
	for _, p := range presets {
		result = append(result, p)
	}

	sort.Slice(result, func(i, j int) bool {
		ai, aj := result[i].Width*result[i].Height, result[j].Width*result[j].Height
		if ai != aj {
			return ai < aj
		}
		return result[i].ID < result[j].ID
	})

	return result
}

// Lookup returns the preset registered under id.
func Lookup(id string) (Preset, error) {
	mu.RLock()
	defer mu.RUnlock()

	p, ok := presets[id]
	if !ok {
		return Preset{}, fmt.Errorf("%w %q", ErrUnknownPreset, id)
	}
	return p, nil
}

// Exists checks if a preset with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := presets[id]
	return ok
}
