package phi

import (
	"fmt"

	"github.com/krotovic/stardrift/internal/geom"
)

// Sprite is an immutable view over a source sub-rectangle of a shared
// texture. Copying a Sprite is cheap; the texture handle is aliased, not
// duplicated.
type Sprite struct {
	tex Texture
	src geom.Rect
}

// NewSprite wraps an entire texture in a sprite.
func NewSprite(tex Texture) Sprite {
	w, h := tex.Size()
	return Sprite{
		tex: tex,
		src: geom.NewRect(0, 0, w, h),
	}
}

// LoadSprite decodes an image file into a sprite covering the whole texture.
func LoadSprite(r Renderer, path string) (Sprite, error) {
	tex, err := r.LoadTexture(path)
	if err != nil {
		return Sprite{}, fmt.Errorf("failed to load sprite %s: %w", path, err)
	}
	return NewSprite(tex), nil
}

// Size returns the sprite's source dimensions.
func (s Sprite) Size() (w, h float64) {
	return s.src.W, s.src.H
}

// Region derives a sub-sprite sharing the same texture. The rectangle is
// interpreted in the sprite's own coordinate space. It reports false when
// the requested region is not fully contained in the sprite's source
// rectangle; this is the sole guard against out-of-bounds sampling.
func (s Sprite) Region(rect geom.Rect) (Sprite, bool) {
	src := geom.Rect{
		X: rect.X + s.src.X,
		Y: rect.Y + s.src.Y,
		W: rect.W,
		H: rect.H,
	}
	if !s.src.Contains(src) {
		return Sprite{}, false
	}
	return Sprite{tex: s.tex, src: src}, true
}

// Render blits the sprite's source region scaled to dest.
func (s Sprite) Render(r Renderer, dest geom.Rect) {
	r.Copy(s.tex, s.src, dest)
}

// AnimatedSprite cycles through an ordered sequence of frames based on
// accumulated elapsed time. The frame slice is shared, not copied.
type AnimatedSprite struct {
	frames []Sprite

	// Time to get from one frame to the next, in seconds.
	frameDelay float64

	// Total time the sprite has been alive, in seconds, from which the
	// current frame is derived.
	currentTime float64
}

// NewAnimatedSprite creates an animation with the given per-frame delay,
// starting at time zero.
func NewAnimatedSprite(frames []Sprite, frameDelay float64) *AnimatedSprite {
	return &AnimatedSprite{
		frames:     frames,
		frameDelay: frameDelay,
	}
}

// NewAnimatedSpriteFPS creates an animation advancing fps frames per second.
// Panics if fps is zero; that is a programmer error.
func NewAnimatedSpriteFPS(frames []Sprite, fps float64) *AnimatedSprite {
	if fps == 0 {
		panic("phi: animation fps of 0 is invalid")
	}
	return NewAnimatedSprite(frames, 1/fps)
}

// FrameCount returns the number of frames in the animation.
func (a *AnimatedSprite) FrameCount() int {
	return len(a.frames)
}

// SetFrameDelay sets the time between frames, in seconds. A negative value
// plays the animation backwards.
func (a *AnimatedSprite) SetFrameDelay(frameDelay float64) {
	a.frameDelay = frameDelay
}

// SetFPS sets the number of frames the animation goes through every second.
// Panics if fps is zero.
func (a *AnimatedSprite) SetFPS(fps float64) {
	if fps == 0 {
		panic("phi: animation fps of 0 is invalid")
	}
	a.SetFrameDelay(1 / fps)
}

// AddTime advances the animation's elapsed time by dt seconds. dt may be
// negative; when the elapsed time would drop below zero the animation wraps
// to its last frame instead.
func (a *AnimatedSprite) AddTime(dt float64) {
	a.currentTime += dt

	if a.currentTime < 0 {
		a.currentTime = float64(len(a.frames)-1) * a.frameDelay
	}
}

// Render draws the current frame scaled to dest.
func (a *AnimatedSprite) Render(r Renderer, dest geom.Rect) {
	current := int(a.currentTime/a.frameDelay) % len(a.frames)
	a.frames[current].Render(r, dest)
}
