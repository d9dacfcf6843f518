package phi_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/krotovic/stardrift/internal/phi"
	"github.com/krotovic/stardrift/internal/phi/phitest"
)

// stubView records its lifecycle calls and replays a scripted sequence of
// directives.
type stubView struct {
	name    string
	log     *[]string
	script  []phi.ViewAction
	calls   int
	elapsed []float64
}

func (v *stubView) Resume(*phi.Phi) {
	*v.log = append(*v.log, v.name+".resume")
}

func (v *stubView) Pause(*phi.Phi) {
	*v.log = append(*v.log, v.name+".pause")
}

func (v *stubView) Render(p *phi.Phi, elapsed float64) phi.ViewAction {
	*v.log = append(*v.log, fmt.Sprintf("%s.render#%d", v.name, v.calls+1))
	action := v.script[v.calls]
	v.calls++
	v.elapsed = append(v.elapsed, elapsed)
	return action
}

func TestLoopQuitPausesActiveView(t *testing.T) {
	p, renderer, _ := phitest.NewContext(800, 600)
	clock := &phitest.Clock{Current: time.Unix(0, 0)}

	var log []string
	view := &stubView{
		name:   "a",
		log:    &log,
		script: []phi.ViewAction{phi.Continue(), phi.Quit()},
	}

	phi.Run(p, clock, 60, view)

	want := []string{"a.resume", "a.render#1", "a.render#2", "a.pause"}
	if fmt.Sprint(log) != fmt.Sprint(want) {
		t.Errorf("call order = %v, expected %v", log, want)
	}

	// Only the Continue frame was presented; the Quit frame was not.
	if renderer.Presents != 1 {
		t.Errorf("presents = %d, expected 1", renderer.Presents)
	}
}

// A ChangeView directive from view A to view B must invoke A.pause, then
// B.resume, before B's first render, and must not present A's last frame.
func TestLoopChangeViewTransitionOrder(t *testing.T) {
	p, renderer, _ := phitest.NewContext(800, 600)
	clock := &phitest.Clock{Current: time.Unix(0, 0)}

	var log []string
	b := &stubView{
		name:   "b",
		log:    &log,
		script: []phi.ViewAction{phi.Continue(), phi.Quit()},
	}
	a := &stubView{
		name:   "a",
		log:    &log,
		script: []phi.ViewAction{phi.Continue(), phi.ChangeView(b)},
	}

	phi.Run(p, clock, 60, a)

	want := []string{
		"a.resume",
		"a.render#1",
		"a.render#2",
		"a.pause",
		"b.resume",
		"b.render#1",
		"b.render#2",
		"b.pause",
	}
	if fmt.Sprint(log) != fmt.Sprint(want) {
		t.Errorf("call order = %v, expected %v", log, want)
	}

	// Presented frames: a#1 and b#1. The frame that produced ChangeView is
	// dropped, as is the Quit frame.
	if renderer.Presents != 2 {
		t.Errorf("presents = %d, expected 2", renderer.Presents)
	}
}

func TestLoopPacingAndElapsed(t *testing.T) {
	p, _, _ := phitest.NewContext(800, 600)
	clock := &phitest.Clock{Current: time.Unix(0, 0)}

	var log []string
	view := &stubView{
		name:   "a",
		log:    &log,
		script: []phi.ViewAction{phi.Continue(), phi.Continue(), phi.Quit()},
	}

	phi.Run(p, clock, 60, view)

	interval := time.Second / 60

	// Every accepted frame is preceded by sleeping off the remainder of the
	// tick interval; no sleep may overshoot it.
	if len(clock.Slept) == 0 {
		t.Fatal("loop never slept")
	}
	for i, d := range clock.Slept {
		if d <= 0 || d > interval {
			t.Errorf("sleep %d = %v, expected within (0, %v]", i, d, interval)
		}
	}

	// The view receives the measured wall-clock elapsed, in seconds.
	for i, e := range view.elapsed {
		if e < interval.Seconds() {
			t.Errorf("frame %d elapsed = %v, expected at least %v", i, e, interval.Seconds())
		}
	}
}

// Input is pumped once per accepted frame: an edge pushed before the loop
// starts is visible in exactly the first render, never again.
func TestLoopPumpsInputOncePerFrame(t *testing.T) {
	p, _, source := phitest.NewContext(800, 600)
	clock := &phitest.Clock{Current: time.Unix(0, 0)}

	source.Push(phi.KeyDownEvent{Key: phi.KeySpace})

	edges := make([]bool, 0, 3)
	view := &viewFunc{fn: func(p *phi.Phi, _ float64) phi.ViewAction {
		edges = append(edges, p.Events.Now.Pressed(phi.KeySpace))
		if len(edges) == 3 {
			return phi.Quit()
		}
		return phi.Continue()
	}}

	phi.Run(p, clock, 60, view)

	want := []bool{true, false, false}
	if fmt.Sprint(edges) != fmt.Sprint(want) {
		t.Errorf("press edges per frame = %v, expected %v", edges, want)
	}
}

// viewFunc adapts a function to the View interface with no-op lifecycle.
type viewFunc struct {
	phi.BaseView
	fn func(*phi.Phi, float64) phi.ViewAction
}

func (v *viewFunc) Render(p *phi.Phi, elapsed float64) phi.ViewAction {
	return v.fn(p, elapsed)
}
