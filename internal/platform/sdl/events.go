package sdl

import (
	sdl2 "github.com/veandco/go-sdl2/sdl"

	"github.com/krotovic/stardrift/internal/phi"
)

type eventSource struct{}

// PollEvent drains the SDL queue until it finds an event the engine cares
// about, then translates it. It returns nil once the queue is empty.
func (eventSource) PollEvent() phi.Event {
	for {
		ev := sdl2.PollEvent()
		if ev == nil {
			return nil
		}
		if translated := translate(ev); translated != nil {
			return translated
		}
	}
}

func translate(ev sdl2.Event) phi.Event {
	switch e := ev.(type) {
	case *sdl2.QuitEvent:
		return phi.QuitEvent{}
	case *sdl2.WindowEvent:
		if e.Event == sdl2.WINDOWEVENT_RESIZED {
			return phi.ResizeEvent{W: float64(e.Data1), H: float64(e.Data2)}
		}
	case *sdl2.KeyboardEvent:
		key, ok := keyFor(e.Keysym.Sym)
		if !ok {
			return nil
		}
		if e.Type == sdl2.KEYDOWN {
			return phi.KeyDownEvent{Key: key}
		}
		return phi.KeyUpEvent{Key: key}
	}
	return nil
}

func keyFor(sym sdl2.Keycode) (phi.Key, bool) {
	switch sym {
	case sdl2.K_ESCAPE:
		return phi.KeyEscape, true
	case sdl2.K_UP:
		return phi.KeyUp, true
	case sdl2.K_DOWN:
		return phi.KeyDown, true
	case sdl2.K_LEFT:
		return phi.KeyLeft, true
	case sdl2.K_RIGHT:
		return phi.KeyRight, true
	case sdl2.K_SPACE:
		return phi.KeySpace, true
	case sdl2.K_1:
		return phi.Key1, true
	case sdl2.K_2:
		return phi.Key2, true
	case sdl2.K_3:
		return phi.Key3, true
	}
	return 0, false
}
