package views

import (
	"image/color"
	"math"

	"github.com/krotovic/stardrift/internal/geom"
	"github.com/krotovic/stardrift/internal/phi"
)

// Bullet dimensions in pixels.
const (
	bulletW = 8.0
	bulletH = 4.0
)

var (
	straightColor  = color.RGBA{R: 230, G: 230, B: 30, A: 255}
	sineColor      = color.RGBA{R: 30, G: 230, B: 30, A: 255}
	divergentColor = color.RGBA{R: 230, G: 30, B: 30, A: 255}
)

// Bullet is implemented by each projectile motion law. Update consumes the
// bullet and either returns its advanced state or reports false once it has
// left the visible area; the caller prunes dead bullets by rebuilding the
// active list each tick.
type Bullet interface {
	Update(p *phi.Phi, dt float64) (Bullet, bool)
	Render(p *phi.Phi)
	Rect() geom.Rect
}

// straightBullet translates at a constant horizontal speed.
type straightBullet struct {
	rect  geom.Rect
	speed float64
}

func (b *straightBullet) Update(p *phi.Phi, dt float64) (Bullet, bool) {
	w, _ := p.OutputSize()
	b.rect.X += b.speed * dt

	// Dead once the bullet has left the screen on the right.
	if b.rect.X > w {
		return nil, false
	}
	return b, true
}

func (b *straightBullet) Render(p *phi.Phi) {
	p.Renderer.FillRect(b.rect, straightColor)
}

func (b *straightBullet) Rect() geom.Rect {
	return b.rect
}

// sineBullet advances linearly on x while its vertical offset from a fixed
// origin follows amplitude * sin(angularVel * t). The bounding box is not
// stored, it is computed from the elapsed time.
type sineBullet struct {
	posX       float64
	originY    float64
	amplitude  float64
	angularVel float64
	speed      float64
	totalTime  float64
}

func (b *sineBullet) Update(p *phi.Phi, dt float64) (Bullet, bool) {
	b.totalTime += dt
	b.posX += b.speed * dt

	w, _ := p.OutputSize()
	if b.Rect().X > w {
		return nil, false
	}
	return b, true
}

func (b *sineBullet) Render(p *phi.Phi) {
	p.Renderer.FillRect(b.Rect(), sineColor)
}

func (b *sineBullet) Rect() geom.Rect {
	dy := b.amplitude * math.Sin(b.angularVel*b.totalTime)
	return geom.NewRect(b.posX, b.originY+dy, bulletW, bulletH)
}

// divergentBullet advances linearly on x while its vertical offset follows
// a * ((t/b)^3 - (t/b)^2). Unlike the other laws it dies when it exits any
// of the four screen edges.
type divergentBullet struct {
	posX      float64
	originY   float64
	a         float64 // influences the curve height
	b         float64 // influences the curve width
	speed     float64
	totalTime float64
}

func (b *divergentBullet) Update(p *phi.Phi, dt float64) (Bullet, bool) {
	b.totalTime += dt
	b.posX += b.speed * dt

	w, h := p.OutputSize()
	rect := b.Rect()
	if rect.X > w || rect.X < 0 || rect.Y > h || rect.Y < 0 {
		return nil, false
	}
	return b, true
}

func (b *divergentBullet) Render(p *phi.Phi) {
	p.Renderer.FillRect(b.Rect(), divergentColor)
}

func (b *divergentBullet) Rect() geom.Rect {
	t := b.totalTime / b.b
	dy := b.a * (math.Pow(t, 3) - math.Pow(t, 2))
	return geom.NewRect(b.posX, b.originY+dy, bulletW, bulletH)
}

// updateBullets advances every bullet and collects the survivors in their
// original relative order.
func updateBullets(p *phi.Phi, bullets []Bullet, dt float64) []Bullet {
	next := make([]Bullet, 0, len(bullets))
	for _, b := range bullets {
		if updated, alive := b.Update(p, dt); alive {
			next = append(next, updated)
		}
	}
	return next
}
