package phi

import (
	"fmt"
	"image/color"
)

type fontKey struct {
	path string
	size int
}

// Phi bundles the state shared across frames: the rendering surface, the
// live input snapshot, and a lazily populated font cache. One Phi is created
// at startup and passed by reference into every view call.
type Phi struct {
	Events   *Events
	Renderer Renderer

	// Loaded fonts keyed by (path, size). Populated on first use, never
	// evicted; the label set of a running game is small and static.
	fonts map[fontKey]Font
}

// New creates the shared context over the given platform surface.
func New(r Renderer, source EventSource) *Phi {
	return &Phi{
		Events:   NewEvents(source),
		Renderer: r,
		fonts:    make(map[fontKey]Font),
	}
}

// OutputSize returns the current logical render-surface dimensions.
func (p *Phi) OutputSize() (w, h float64) {
	return p.Renderer.OutputSize()
}

// TextSprite rasterizes text with the font at the given path and point size
// and wraps the result in a sprite. Only the font resource is cached (keyed
// by path and size); the text is re-rendered on every call, so color and
// content are free to vary. A failed font load caches nothing.
func (p *Phi) TextSprite(text, fontPath string, size int, c color.RGBA) (Sprite, error) {
	key := fontKey{path: fontPath, size: size}

	font, ok := p.fonts[key]
	if !ok {
		loaded, err := p.Renderer.LoadFont(fontPath, size)
		if err != nil {
			return Sprite{}, fmt.Errorf("failed to load font %s (%dpt): %w", fontPath, size, err)
		}
		p.fonts[key] = loaded
		font = loaded
	}

	tex, err := p.Renderer.RenderText(font, text, c)
	if err != nil {
		return Sprite{}, fmt.Errorf("failed to render text %q: %w", text, err)
	}
	return NewSprite(tex), nil
}
