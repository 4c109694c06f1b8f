package snake

import "github.com/vovakirdan/gridsnake/internal/registry"

func init() {
	registry.Register(registry.Preset{ID: "classic", Title: "Classic (20x15)", Width: 20, Height: 15})
	registry.Register(registry.Preset{ID: "small", Title: "Small (10x8)", Width: 10, Height: 8})
	registry.Register(registry.Preset{ID: "large", Title: "Large (40x20)", Width: 40, Height: 20})
}

// NewFromPreset creates a game on the preset's board.
func NewFromPreset(p registry.Preset, opts ...Option) (*GameState, error) {
	return New(p.Width, p.Height, opts...)
}
