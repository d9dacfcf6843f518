package views

import (
	"image/color"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/krotovic/stardrift/internal/geom"
	"github.com/krotovic/stardrift/internal/phi"
)

var (
	clearColor = color.RGBA{A: 255}
	debugColor = color.RGBA{R: 200, G: 200, B: 50, A: 255}
)

// ShipView is the gameplay view: the player ship, its bullets, the asteroid
// and the parallax backdrop.
type ShipView struct {
	phi.BaseView

	player      *Ship
	bullets     []Bullet
	asteroid    *Asteroid
	backgrounds Backgrounds
	rng         *rand.Rand
}

// NewShipView starts gameplay with a fresh background bundle.
func NewShipView(p *phi.Phi) (*ShipView, error) {
	bg, err := NewBackgrounds(p)
	if err != nil {
		return nil, err
	}
	return NewShipViewWithBackgrounds(p, bg)
}

// NewShipViewWithBackgrounds starts gameplay reusing an existing background
// bundle, so scroll positions carry over from the previous view.
func NewShipViewWithBackgrounds(p *phi.Phi, backgrounds Backgrounds) (*ShipView, error) {
	player, err := newShip(p)
	if err != nil {
		return nil, err
	}

	rng := rand.New(rand.NewSource(resolveSeed()))

	asteroid, err := newAsteroid(p, rng)
	if err != nil {
		return nil, err
	}

	return &ShipView{
		player:      player,
		asteroid:    asteroid,
		backgrounds: backgrounds,
		rng:         rng,
	}, nil
}

// Render advances the simulation by elapsed seconds and draws the frame.
func (v *ShipView) Render(p *phi.Phi, elapsed float64) phi.ViewAction {
	if p.Events.Now.Quit {
		return phi.Quit()
	}
	if p.Events.Now.Pressed(phi.KeyEscape) {
		menu, err := NewMainMenuViewWithBackgrounds(p, v.backgrounds)
		if err != nil {
			log.Error("failed to build main menu", "err", err)
			return phi.Quit()
		}
		return phi.ChangeView(menu)
	}

	// Switch the player's cannons.
	if p.Events.Now.Pressed(phi.Key1) {
		v.player.cannon = CannonStraight
	}
	if p.Events.Now.Pressed(phi.Key2) {
		v.player.cannon = CannonSine
	}
	if p.Events.Now.Pressed(phi.Key3) {
		v.player.cannon = CannonDivergent
	}

	// Move the player's ship, clamped into the movement region.
	dx, dy := moveDelta(p.Events, cfg.Player.Speed, elapsed)

	w, h := p.OutputSize()
	movableRegion := geom.NewRect(0, 0, w*cfg.Player.MoveRegion, h)

	v.player.rect.X += dx
	v.player.rect.Y += dy
	if moved, ok := v.player.rect.MoveInside(movableRegion); ok {
		v.player.rect = moved
	}

	v.player.current = frameFor(dx, dy)

	v.bullets = updateBullets(p, v.bullets, elapsed)
	v.asteroid.Update(p, elapsed)

	// Fire after the bullets are updated so new bullets appear at the tips
	// of the cannons.
	if p.Events.Now.Pressed(phi.KeySpace) {
		v.bullets = append(v.bullets, v.player.spawnBullets(cfg.Bullets.Speed)...)
	}

	p.Renderer.Clear(clearColor)

	v.backgrounds.Back.Render(p.Renderer, elapsed)
	v.backgrounds.Middle.Render(p.Renderer, elapsed)

	if cfg.Player.DebugBox {
		p.Renderer.FillRect(v.player.rect, debugColor)
	}

	v.player.sprites[v.player.current].Render(p.Renderer, v.player.rect)

	for _, b := range v.bullets {
		b.Render(p)
	}

	v.asteroid.Render(p)

	v.backgrounds.Front.Render(p.Renderer, elapsed)

	return phi.Continue()
}
