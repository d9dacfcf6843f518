// Package sdl hosts the desktop rendering and input backend. It owns the
// window, the hardware renderer and the event queue, and exposes them
// through the engine interfaces so the rest of the code never imports SDL.
package sdl

import (
	"fmt"
	"image/color"

	"github.com/veandco/go-sdl2/img"
	sdl2 "github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"

	"github.com/krotovic/stardrift/internal/geom"
	"github.com/krotovic/stardrift/internal/phi"
)

// Options selects the initial window shape.
type Options struct {
	Title  string
	Width  int
	Height int
}

// Platform bundles the SDL window with its renderer and event queue.
// It must be created and used on the main OS thread.
type Platform struct {
	window   *sdl2.Window
	renderer *sdl2.Renderer
}

// New initializes the SDL video subsystem and opens a resizable window
// with an accelerated, vsynced renderer.
func New(opts Options) (*Platform, error) {
	if err := sdl2.Init(sdl2.INIT_VIDEO | sdl2.INIT_TIMER); err != nil {
		return nil, fmt.Errorf("init sdl: %w", err)
	}
	if err := img.Init(img.INIT_PNG); err != nil {
		sdl2.Quit()
		return nil, fmt.Errorf("init sdl_image: %w", err)
	}
	if err := ttf.Init(); err != nil {
		img.Quit()
		sdl2.Quit()
		return nil, fmt.Errorf("init sdl_ttf: %w", err)
	}

	window, err := sdl2.CreateWindow(opts.Title,
		sdl2.WINDOWPOS_CENTERED, sdl2.WINDOWPOS_CENTERED,
		int32(opts.Width), int32(opts.Height),
		sdl2.WINDOW_RESIZABLE)
	if err != nil {
		ttf.Quit()
		img.Quit()
		sdl2.Quit()
		return nil, fmt.Errorf("create window: %w", err)
	}

	renderer, err := sdl2.CreateRenderer(window, -1,
		sdl2.RENDERER_ACCELERATED|sdl2.RENDERER_PRESENTVSYNC)
	if err != nil {
		window.Destroy()
		ttf.Quit()
		img.Quit()
		sdl2.Quit()
		return nil, fmt.Errorf("create renderer: %w", err)
	}

	return &Platform{window: window, renderer: renderer}, nil
}

// Renderer returns the drawing half of the platform.
func (p *Platform) Renderer() phi.Renderer { return &renderer{r: p.renderer} }

// Events returns the input half of the platform.
func (p *Platform) Events() phi.EventSource { return eventSource{} }

// Destroy tears the window down and shuts SDL off. The platform must not
// be used afterwards.
func (p *Platform) Destroy() {
	p.renderer.Destroy()
	p.window.Destroy()
	ttf.Quit()
	img.Quit()
	sdl2.Quit()
}

type texture struct {
	tex *sdl2.Texture
	w   float64
	h   float64
}

func (t *texture) Size() (float64, float64) { return t.w, t.h }

type font struct {
	f *ttf.Font
}

type renderer struct {
	r *sdl2.Renderer
}

func (r *renderer) OutputSize() (float64, float64) {
	w, h, err := r.r.GetOutputSize()
	if err != nil {
		return 0, 0
	}
	return float64(w), float64(h)
}

func (r *renderer) Clear(c color.RGBA) {
	r.r.SetDrawColor(c.R, c.G, c.B, c.A)
	r.r.Clear()
}

func (r *renderer) FillRect(rect geom.Rect, c color.RGBA) {
	r.r.SetDrawColor(c.R, c.G, c.B, c.A)
	r.r.FillRect(sdlRect(rect))
}

func (r *renderer) Copy(tex phi.Texture, src, dst geom.Rect) {
	t, ok := tex.(*texture)
	if !ok {
		return
	}
	r.r.Copy(t.tex, sdlRect(src), sdlRect(dst))
}

func (r *renderer) Present() { r.r.Present() }

func (r *renderer) LoadTexture(path string) (phi.Texture, error) {
	tex, err := img.LoadTexture(r.r, path)
	if err != nil {
		return nil, fmt.Errorf("load texture %q: %w", path, err)
	}
	return wrapTexture(tex)
}

func (r *renderer) LoadFont(path string, size int) (phi.Font, error) {
	f, err := ttf.OpenFont(path, size)
	if err != nil {
		return nil, fmt.Errorf("open font %q: %w", path, err)
	}
	return &font{f: f}, nil
}

func (r *renderer) RenderText(f phi.Font, text string, c color.RGBA) (phi.Texture, error) {
	ft, ok := f.(*font)
	if !ok {
		return nil, fmt.Errorf("render text: font is not an sdl font")
	}
	surface, err := ft.f.RenderUTF8Blended(text, sdl2.Color{R: c.R, G: c.G, B: c.B, A: c.A})
	if err != nil {
		return nil, fmt.Errorf("render text %q: %w", text, err)
	}
	defer surface.Free()

	tex, err := r.r.CreateTextureFromSurface(surface)
	if err != nil {
		return nil, fmt.Errorf("render text %q: %w", text, err)
	}
	return wrapTexture(tex)
}

func wrapTexture(tex *sdl2.Texture) (*texture, error) {
	_, _, w, h, err := tex.Query()
	if err != nil {
		tex.Destroy()
		return nil, fmt.Errorf("query texture: %w", err)
	}
	return &texture{tex: tex, w: float64(w), h: float64(h)}, nil
}

func sdlRect(r geom.Rect) *sdl2.Rect {
	return &sdl2.Rect{X: int32(r.X), Y: int32(r.Y), W: int32(r.W), H: int32(r.H)}
}
