package views

import (
	"fmt"
	"math/rand"

	"github.com/krotovic/stardrift/internal/geom"
	"github.com/krotovic/stardrift/internal/phi"
)

// Asteroid sprite sheet layout: a 21x7 grid of 96px cells with the last
// four cells missing.
const (
	asteroidsWide  = 21
	asteroidsHigh  = 7
	asteroidsTotal = asteroidsWide*asteroidsHigh - 4

	// AsteroidSide is the asteroid's square side length in pixels.
	AsteroidSide = 96.0
)

// Asteroid is an animated obstacle travelling right to left. On exiting the
// left edge it respawns at the right edge with a new randomized vertical
// position, velocity and animation rate; the cycle never ends.
type Asteroid struct {
	sprite *phi.AnimatedSprite
	rect   geom.Rect
	vel    float64
	rng    *rand.Rand
}

// newAsteroid loads the asteroid animation and spawns the entity at the
// right edge.
func newAsteroid(p *phi.Phi, rng *rand.Rand) (*Asteroid, error) {
	sprite, err := asteroidSprite(p, 1.0)
	if err != nil {
		return nil, err
	}

	a := &Asteroid{
		sprite: sprite,
		rect:   geom.NewRect(0, 0, AsteroidSide, AsteroidSide),
		rng:    rng,
	}
	a.reset(p)
	return a, nil
}

// asteroidSprite slices the asteroid sheet into its animation frames.
func asteroidSprite(p *phi.Phi, fps float64) (*phi.AnimatedSprite, error) {
	sheet, err := phi.LoadSprite(p.Renderer, cfg.Assets.Path(cfg.Assets.AsteroidSheet))
	if err != nil {
		return nil, err
	}

	frames := make([]phi.Sprite, 0, asteroidsTotal)
	for y := 0; y < asteroidsHigh; y++ {
		for x := 0; x < asteroidsWide; x++ {
			// Omit the missing cells at the end of the sheet.
			if asteroidsWide*y+x >= asteroidsTotal {
				break
			}

			cell := geom.NewRect(AsteroidSide*float64(x), AsteroidSide*float64(y), AsteroidSide, AsteroidSide)
			frame, ok := sheet.Region(cell)
			if !ok {
				return nil, fmt.Errorf("asteroid sheet too small for cell (%d, %d)", x, y)
			}
			frames = append(frames, frame)
		}
	}

	return phi.NewAnimatedSpriteFPS(frames, fps), nil
}

// reset respawns the asteroid at the right edge with fresh random
// parameters: animation rate in [10, 30), y anywhere the asteroid fits,
// velocity in [50, 150).
func (a *Asteroid) reset(p *phi.Phi) {
	w, h := p.OutputSize()

	a.sprite.SetFPS(a.rng.Float64()*20 + 10)

	a.rect = geom.NewRect(
		w,
		a.rng.Float64()*(h-AsteroidSide),
		AsteroidSide,
		AsteroidSide,
	)

	a.vel = a.rng.Float64()*100 + 50
}

// Update advances the asteroid and its animation, respawning once it has
// fully left the screen on the left.
func (a *Asteroid) Update(p *phi.Phi, dt float64) {
	a.rect.X -= dt * a.vel
	a.sprite.AddTime(dt)

	if a.rect.X < -AsteroidSide {
		a.reset(p)
	}
}

// Render draws the current animation frame at the asteroid's position.
func (a *Asteroid) Render(p *phi.Phi) {
	a.sprite.Render(p.Renderer, a.rect)
}

// Rect returns the asteroid's bounding box.
func (a *Asteroid) Rect() geom.Rect {
	return a.rect
}
