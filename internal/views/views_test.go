package views

import (
	"testing"

	"github.com/krotovic/stardrift/internal/config"
	"github.com/krotovic/stardrift/internal/phi"
	"github.com/krotovic/stardrift/internal/phi/phitest"
)

// newTestContext builds a phi context over fakes with every game asset
// registered, configured with defaults and a fixed seed.
func newTestContext(t *testing.T, w, h float64) (*phi.Phi, *phitest.Renderer, *phitest.Source) {
	t.Helper()

	Configure(config.Default(), 1)

	p, renderer, source := phitest.NewContext(w, h)
	renderer.AddTexture(cfg.Assets.Path(cfg.Assets.ShipSheet), shipW*3, shipH*3)
	renderer.AddTexture(cfg.Assets.Path(cfg.Assets.AsteroidSheet), AsteroidSide*asteroidsWide, AsteroidSide*asteroidsHigh)
	renderer.AddTexture(cfg.Assets.Path(cfg.Assets.BackgroundBack), 1024, 480)
	renderer.AddTexture(cfg.Assets.Path(cfg.Assets.BackgroundMiddle), 1024, 480)
	renderer.AddTexture(cfg.Assets.Path(cfg.Assets.BackgroundFront), 1024, 480)
	return p, renderer, source
}

// pump feeds events into the context and performs one input poll, the way
// the loop would at the start of an accepted frame.
func pump(p *phi.Phi, source *phitest.Source, events ...phi.Event) {
	source.Push(events...)
	p.Events.Pump()
}
