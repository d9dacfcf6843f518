// Package phi implements the runtime core of the arcade engine: the shared
// context passed into every view call, the input snapshot, sprites, the view
// contract, and the fixed-step game loop.
//
// The package talks to windowing, graphics and input only through the
// Renderer, EventSource and Clock interfaces so that game logic stays pure
// and testable. The go-sdl2 implementations live in internal/platform/sdl.
package phi

import (
	"image/color"
	"time"

	"github.com/krotovic/stardrift/internal/geom"
)

// Texture is an opaque handle to a loaded image resource. Textures are
// shared: many sprites may alias sub-regions of one texture, and the handle
// stays alive as long as any sprite references it.
type Texture interface {
	// Size returns the texture dimensions in logical pixels.
	Size() (w, h float64)
}

// Font is an opaque handle to a font face loaded at a fixed point size.
type Font interface{}

// Renderer is the drawing half of the platform surface. All calls draw into
// the current frame buffer; nothing is visible until Present.
type Renderer interface {
	// OutputSize returns the current logical render-surface dimensions.
	OutputSize() (w, h float64)

	// Clear fills the frame buffer with the given color.
	Clear(c color.RGBA)

	// FillRect draws a filled rectangle in the given color.
	FillRect(r geom.Rect, c color.RGBA)

	// Copy blits the src sub-region of a texture, scaled to dst.
	Copy(t Texture, src, dst geom.Rect)

	// Present displays the completed frame.
	Present()

	// LoadTexture decodes an image file into a texture.
	LoadTexture(path string) (Texture, error)

	// LoadFont loads a font file at the given point size.
	LoadFont(path string, size int) (Font, error)

	// RenderText rasterizes text with a loaded font into a new texture.
	RenderText(f Font, text string, c color.RGBA) (Texture, error)
}

// EventSource is the input half of the platform surface: a non-blocking
// drain of pending platform events.
type EventSource interface {
	// PollEvent returns the next pending event, or nil once the queue is
	// drained for this tick. It never blocks.
	PollEvent() Event
}

// Clock abstracts wall-clock time so the loop's frame pacing is testable.
type Clock interface {
	Now() time.Time
	Sleep(d time.Duration)
}

// RealClock is the Clock used outside of tests.
type RealClock struct{}

func (RealClock) Now() time.Time        { return time.Now() }
func (RealClock) Sleep(d time.Duration) { time.Sleep(d) }
