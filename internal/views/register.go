package views

import (
	"github.com/krotovic/stardrift/internal/phi"
	"github.com/krotovic/stardrift/internal/registry"
)

// Register the views with the registry.
func init() {
	registry.Register("menu", "Main menu", func(p *phi.Phi) (phi.View, error) {
		return NewMainMenuView(p)
	})
	registry.Register("game", "Gameplay", func(p *phi.Phi) (phi.View, error) {
		return NewShipView(p)
	})
}
