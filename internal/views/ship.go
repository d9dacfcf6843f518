package views

import (
	"fmt"
	"math"

	"github.com/krotovic/stardrift/internal/geom"
	"github.com/krotovic/stardrift/internal/phi"
)

// Ship sprite sheet cell dimensions in pixels.
const (
	shipW = 43.0
	shipH = 39.0
)

// Cannon mount offsets relative to the ship's rectangle.
const (
	cannonOffsetX = 30.0
	cannonTopY    = 6.0
	cannonBottomY = shipH - 10.0
)

// Tuning for the non-straight cannons.
const (
	sineAmplitude       = 10.0
	sineAngularVelocity = 15.0
	divergentA          = 100.0
	divergentB          = 1.2
)

// shipFrame indexes the 3x3 directional sprite sheet: rows by vertical
// motion (up, mid, down), columns by horizontal motion (normal, fast, slow).
type shipFrame int

const (
	shipUpNorm shipFrame = iota
	shipUpFast
	shipUpSlow
	shipMidNorm
	shipMidFast
	shipMidSlow
	shipDownNorm
	shipDownFast
	shipDownSlow
)

// Cannon selects the motion law of fired bullets.
type Cannon int

const (
	CannonStraight Cannon = iota
	CannonSine
	CannonDivergent
)

// Ship is the player entity.
type Ship struct {
	rect    geom.Rect
	sprites []phi.Sprite // the nine directional frames, indexed by shipFrame
	current shipFrame
	cannon  Cannon
}

// newShip loads the ship sheet and slices it into its nine frames.
func newShip(p *phi.Phi) (*Ship, error) {
	sheet, err := phi.LoadSprite(p.Renderer, cfg.Assets.Path(cfg.Assets.ShipSheet))
	if err != nil {
		return nil, err
	}

	sprites := make([]phi.Sprite, 0, 9)
	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			cell := geom.NewRect(shipW*float64(x), shipH*float64(y), shipW, shipH)
			frame, ok := sheet.Region(cell)
			if !ok {
				return nil, fmt.Errorf("ship sheet too small for cell (%d, %d)", x, y)
			}
			sprites = append(sprites, frame)
		}
	}

	return &Ship{
		rect:    geom.NewRect(64, 64, shipW, shipH),
		sprites: sprites,
		current: shipMidNorm,
		cannon:  CannonStraight,
	}, nil
}

// spawnBullets creates one bullet at the tip of each cannon mount. The
// divergent cannon mirrors the sign of its height parameter between mounts
// to produce a symmetric spread.
func (s *Ship) spawnBullets(speed float64) []Bullet {
	cannonsX := s.rect.X + cannonOffsetX
	cannon1Y := s.rect.Y + cannonTopY
	cannon2Y := s.rect.Y + cannonBottomY

	switch s.cannon {
	case CannonStraight:
		return []Bullet{
			&straightBullet{rect: geom.NewRect(cannonsX, cannon1Y, bulletW, bulletH), speed: speed},
			&straightBullet{rect: geom.NewRect(cannonsX, cannon2Y, bulletW, bulletH), speed: speed},
		}
	case CannonSine:
		return []Bullet{
			&sineBullet{posX: cannonsX, originY: cannon1Y, amplitude: sineAmplitude, angularVel: sineAngularVelocity, speed: speed},
			&sineBullet{posX: cannonsX, originY: cannon2Y, amplitude: sineAmplitude, angularVel: sineAngularVelocity, speed: speed},
		}
	case CannonDivergent:
		return []Bullet{
			&divergentBullet{posX: cannonsX, originY: cannon1Y, a: -divergentA, b: divergentB, speed: speed},
			&divergentBullet{posX: cannonsX, originY: cannon2Y, a: divergentA, b: divergentB, speed: speed},
		}
	default:
		panic(fmt.Sprintf("views: unknown cannon %d", s.cannon))
	}
}

// moveDelta converts the held directional keys into this frame's movement.
// Opposed keys cancel; diagonal movement is normalized so diagonal speed
// equals axial speed.
func moveDelta(e *phi.Events, speed, elapsed float64) (dx, dy float64) {
	left := e.Held(phi.KeyLeft)
	right := e.Held(phi.KeyRight)
	up := e.Held(phi.KeyUp)
	down := e.Held(phi.KeyDown)

	diagonal := (up != down) && (left != right)

	moved := speed * elapsed
	if diagonal {
		moved *= 1 / math.Sqrt2
	}

	switch {
	case left && !right:
		dx = -moved
	case right && !left:
		dx = moved
	}

	switch {
	case up && !down:
		dy = -moved
	case down && !up:
		dy = moved
	}

	return dx, dy
}

// frameFor selects the sheet frame from the sign of this frame's movement.
// The nine cases are exhaustive for any (dx, dy).
func frameFor(dx, dy float64) shipFrame {
	switch {
	case dx == 0 && dy < 0:
		return shipUpNorm
	case dx > 0 && dy < 0:
		return shipUpFast
	case dx < 0 && dy < 0:
		return shipUpSlow
	case dx == 0 && dy == 0:
		return shipMidNorm
	case dx > 0 && dy == 0:
		return shipMidFast
	case dx < 0 && dy == 0:
		return shipMidSlow
	case dx == 0 && dy > 0:
		return shipDownNorm
	case dx > 0 && dy > 0:
		return shipDownFast
	case dx < 0 && dy > 0:
		return shipDownSlow
	default:
		panic("views: unreachable ship frame")
	}
}
