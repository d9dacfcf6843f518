package views

import (
	"math/rand"
	"testing"
)

func TestAsteroidSpawnsAtRightEdge(t *testing.T) {
	p, _, _ := newTestContext(t, 800, 600)

	a, err := newAsteroid(p, rand.New(rand.NewSource(7)))
	if err != nil {
		t.Fatal(err)
	}

	if a.rect.X != 800 {
		t.Errorf("spawn x = %g, expected the screen width", a.rect.X)
	}
	if a.rect.W != AsteroidSide || a.rect.H != AsteroidSide {
		t.Errorf("size = %gx%g, expected %gx%g", a.rect.W, a.rect.H, AsteroidSide, AsteroidSide)
	}
	if a.sprite.FrameCount() != asteroidsTotal {
		t.Errorf("frames = %d, expected %d", a.sprite.FrameCount(), asteroidsTotal)
	}
}

func TestAsteroidTravelsLeft(t *testing.T) {
	p, _, _ := newTestContext(t, 800, 600)

	a, err := newAsteroid(p, rand.New(rand.NewSource(7)))
	if err != nil {
		t.Fatal(err)
	}

	before := a.rect.X
	a.Update(p, 0.1)

	if a.rect.X >= before {
		t.Errorf("x went from %g to %g, expected leftward travel", before, a.rect.X)
	}
	if moved := before - a.rect.X; moved < 50*0.1 || moved >= 150*0.1 {
		t.Errorf("moved %g px in 0.1s, expected velocity in [50, 150)", moved*10)
	}
}

// Once the asteroid has fully crossed the left edge, the next update
// respawns it at the right edge with newly randomized parameters.
func TestAsteroidRespawn(t *testing.T) {
	p, _, _ := newTestContext(t, 800, 600)

	a, err := newAsteroid(p, rand.New(rand.NewSource(7)))
	if err != nil {
		t.Fatal(err)
	}

	a.rect.X = -AsteroidSide - 1
	a.Update(p, 0.001)

	if a.rect.X != 800 {
		t.Errorf("respawn x = %g, expected the screen width", a.rect.X)
	}
	if a.rect.Y < 0 || a.rect.Y > 600-AsteroidSide {
		t.Errorf("respawn y = %g, expected within [0, %g]", a.rect.Y, 600-AsteroidSide)
	}
	if a.vel < 50 || a.vel >= 150 {
		t.Errorf("respawn velocity = %g, expected within [50, 150)", a.vel)
	}
}

// The respawn cycle is unbounded and deterministic under a fixed seed.
func TestAsteroidRespawnDeterminism(t *testing.T) {
	run := func() []float64 {
		p, _, _ := newTestContext(t, 800, 600)
		a, err := newAsteroid(p, rand.New(rand.NewSource(99)))
		if err != nil {
			t.Fatal(err)
		}

		var ys []float64
		for len(ys) < 3 {
			before := a.rect.X
			a.Update(p, 0.5)
			if a.rect.X > before { // respawned
				ys = append(ys, a.rect.Y)
			}
		}
		return ys
	}

	first, second := run(), run()
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("respawn %d: y %g vs %g, expected identical runs", i, first[i], second[i])
		}
	}
}
