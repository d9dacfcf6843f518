package views

import (
	"fmt"

	"github.com/krotovic/stardrift/internal/geom"
	"github.com/krotovic/stardrift/internal/phi"
)

// Background is one horizontally tiling, auto-scrolling parallax layer.
// Copies share the underlying sprite texture; only the scroll position is
// per-copy state.
type Background struct {
	// Logical scroll position in sprite pixels. Depends solely on time and
	// the sprite's native width, never on the window size.
	pos float64

	// Scroll velocity in pixels per second.
	vel float64

	sprite phi.Sprite
}

// Render advances the scroll position by elapsed seconds and tiles the layer
// across the window, scaled to fill the full window height.
func (b *Background) Render(r phi.Renderer, elapsed float64) {
	w, h := b.sprite.Size()

	b.pos += b.vel * elapsed
	if b.pos > w {
		b.pos -= w
	}

	winW, winH := r.OutputSize()
	scale := winH / h

	// Tile copies left to right, starting at the negative scroll offset,
	// until the strip covers the window width.
	left := -b.pos * scale
	for left < winW {
		b.sprite.Render(r, geom.NewRect(left, 0, w*scale, winH))
		left += w * scale
	}
}

// Backgrounds bundles the three parallax layers. The bundle is passed from
// view to view by value so scroll positions survive transitions; the front
// layer is drawn above entities for foreground occlusion.
type Backgrounds struct {
	Back   Background
	Middle Background
	Front  Background
}

// NewBackgrounds loads the three layers, slowest first.
func NewBackgrounds(p *phi.Phi) (Backgrounds, error) {
	layers := []struct {
		name string
		vel  float64
	}{
		{cfg.Assets.BackgroundBack, 20.0},
		{cfg.Assets.BackgroundMiddle, 40.0},
		{cfg.Assets.BackgroundFront, 80.0},
	}

	var sprites [3]phi.Sprite
	for i, layer := range layers {
		sprite, err := phi.LoadSprite(p.Renderer, cfg.Assets.Path(layer.name))
		if err != nil {
			return Backgrounds{}, fmt.Errorf("failed to load background layer: %w", err)
		}
		sprites[i] = sprite
	}

	return Backgrounds{
		Back:   Background{vel: layers[0].vel, sprite: sprites[0]},
		Middle: Background{vel: layers[1].vel, sprite: sprites[1]},
		Front:  Background{vel: layers[2].vel, sprite: sprites[2]},
	}, nil
}
