// Package phitest provides scripted in-memory implementations of the phi
// platform interfaces (Renderer, EventSource, Clock) for tests. Nothing in
// this package touches SDL or a real clock.
package phitest

import (
	"fmt"
	"image/color"
	"time"

	"github.com/krotovic/stardrift/internal/geom"
	"github.com/krotovic/stardrift/internal/phi"
)

// Texture is a fake texture with fixed dimensions.
type Texture struct {
	W, H float64
	Path string
}

func (t *Texture) Size() (float64, float64) {
	return t.W, t.H
}

// Font is a fake font handle.
type Font struct {
	Path string
	Pt   int
}

// CopyOp records one blit performed against the fake renderer.
type CopyOp struct {
	Tex      phi.Texture
	Src, Dst geom.Rect
}

// FillOp records one filled rectangle.
type FillOp struct {
	Rect  geom.Rect
	Color color.RGBA
}

// Renderer is an in-memory phi.Renderer that records every draw call and
// serves textures from a path-keyed table.
type Renderer struct {
	W, H float64

	// Textures served by LoadTexture. Paths not present fail to load.
	Textures map[string]*Texture

	// FontErr, when set, makes every LoadFont call fail.
	FontErr error

	FontLoads []Font
	Copies    []CopyOp
	Fills     []FillOp
	Clears    int
	Presents  int
}

// NewRenderer creates a fake renderer with the given output size.
func NewRenderer(w, h float64) *Renderer {
	return &Renderer{
		W:        w,
		H:        h,
		Textures: make(map[string]*Texture),
	}
}

// AddTexture registers a texture to be served for path.
func (r *Renderer) AddTexture(path string, w, h float64) *Texture {
	tex := &Texture{W: w, H: h, Path: path}
	r.Textures[path] = tex
	return tex
}

func (r *Renderer) OutputSize() (float64, float64) {
	return r.W, r.H
}

func (r *Renderer) Clear(color.RGBA) {
	r.Clears++
}

func (r *Renderer) FillRect(rect geom.Rect, c color.RGBA) {
	r.Fills = append(r.Fills, FillOp{Rect: rect, Color: c})
}

func (r *Renderer) Copy(t phi.Texture, src, dst geom.Rect) {
	r.Copies = append(r.Copies, CopyOp{Tex: t, Src: src, Dst: dst})
}

func (r *Renderer) Present() {
	r.Presents++
}

func (r *Renderer) LoadTexture(path string) (phi.Texture, error) {
	tex, ok := r.Textures[path]
	if !ok {
		return nil, fmt.Errorf("no texture registered for %s", path)
	}
	return tex, nil
}

func (r *Renderer) LoadFont(path string, size int) (phi.Font, error) {
	if r.FontErr != nil {
		return nil, r.FontErr
	}
	font := Font{Path: path, Pt: size}
	r.FontLoads = append(r.FontLoads, font)
	return font, nil
}

func (r *Renderer) RenderText(f phi.Font, text string, _ color.RGBA) (phi.Texture, error) {
	font, ok := f.(Font)
	if !ok {
		return nil, fmt.Errorf("foreign font handle %T", f)
	}
	// Rough glyph metrics are enough for layout assertions.
	w := float64(len(text) * font.Pt / 2)
	return &Texture{W: w, H: float64(font.Pt)}, nil
}

// Source is a scripted phi.EventSource: tests push events, Pump drains them.
type Source struct {
	queue []phi.Event
}

// Push appends events to the pending queue.
func (s *Source) Push(events ...phi.Event) {
	s.queue = append(s.queue, events...)
}

func (s *Source) PollEvent() phi.Event {
	if len(s.queue) == 0 {
		return nil
	}
	ev := s.queue[0]
	s.queue = s.queue[1:]
	return ev
}

// Clock is a manual phi.Clock. Sleep advances the current time by the slept
// duration, so a loop waiting for its tick interval makes progress.
type Clock struct {
	Current time.Time
	Slept   []time.Duration
}

func (c *Clock) Now() time.Time {
	return c.Current
}

func (c *Clock) Sleep(d time.Duration) {
	c.Slept = append(c.Slept, d)
	c.Current = c.Current.Add(d)
}

// Advance moves the clock forward without recording a sleep.
func (c *Clock) Advance(d time.Duration) {
	c.Current = c.Current.Add(d)
}

// NewContext builds a phi context over fresh fakes, returning the fakes for
// scripting and inspection.
func NewContext(w, h float64) (*phi.Phi, *Renderer, *Source) {
	renderer := NewRenderer(w, h)
	source := &Source{}
	return phi.New(renderer, source), renderer, source
}
