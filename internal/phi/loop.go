package phi

import (
	"time"

	"github.com/charmbracelet/log"
)

// DefaultTickRate is the loop's target frame rate when none is configured.
const DefaultTickRate = 60

// Run drives the fixed-step game loop over the given initial view until a
// view returns Quit.
//
// Each iteration measures the time elapsed since the previous accepted
// frame. If less than one tick interval has passed, the loop sleeps off the
// remainder and restarts the iteration without polling input or advancing
// any state. Once a full interval has elapsed the frame is accepted: input
// is pumped, the active view renders with the elapsed wall-clock seconds,
// and its directive is applied.
func Run(p *Phi, clock Clock, tickRate int, view View) {
	if tickRate <= 0 {
		tickRate = DefaultTickRate
	}
	interval := time.Second / time.Duration(tickRate)

	current := view
	current.Resume(p)

	before := clock.Now()
	lastSecond := before
	fps := 0

	for {
		now := clock.Now()
		dt := now.Sub(before)

		// Wait a bit if the frame has come too fast.
		if dt < interval {
			clock.Sleep(interval - dt)
			continue
		}

		before = now
		fps++

		if now.Sub(lastSecond) > time.Second {
			log.Debug("frame rate", "fps", fps)
			lastSecond = now
			fps = 0
		}

		p.Events.Pump()

		action := current.Render(p, dt.Seconds())
		switch action.kind {
		case actionContinue:
			p.Renderer.Present()

		case actionQuit:
			current.Pause(p)
			return

		case actionChange:
			// The incoming view has not rendered this tick, so the
			// outgoing view's frame buffer is dropped, not presented.
			current.Pause(p)
			current = action.next
			current.Resume(p)
		}
	}
}
