package phi

// Key identifies a tracked keyboard key. The engine only tracks the keys the
// game binds; anything else coming from the platform is ignored.
type Key int

const (
	KeyEscape Key = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeySpace
	Key1
	Key2
	Key3
)

// String returns a human-readable name for the key.
func (k Key) String() string {
	switch k {
	case KeyEscape:
		return "Escape"
	case KeyUp:
		return "Up"
	case KeyDown:
		return "Down"
	case KeyLeft:
		return "Left"
	case KeyRight:
		return "Right"
	case KeySpace:
		return "Space"
	case Key1:
		return "1"
	case Key2:
		return "2"
	case Key3:
		return "3"
	default:
		return "Unknown"
	}
}

// Event is a raw platform input event. The concrete types below are the only
// ones the platform layer produces.
type Event interface{}

// KeyDownEvent reports a key press. The platform may repeat it while the key
// is held; Events collapses repeats into a single press edge.
type KeyDownEvent struct{ Key Key }

// KeyUpEvent reports a key release. Never repeated by the platform, which
// makes it the reliable edge.
type KeyUpEvent struct{ Key Key }

// ResizeEvent reports a new logical output size for the window.
type ResizeEvent struct{ W, H float64 }

// QuitEvent reports an application-quit signal (window close, SIGINT, ...).
type QuitEvent struct{}

// Edge records a key state transition observed during the current frame.
type Edge int

const (
	EdgeNone     Edge = iota // no transition this frame
	EdgePressed              // went from released to held this frame
	EdgeReleased             // went from held to released this frame
)

// Immediate is the per-frame edge snapshot: the transitions and frame-scoped
// signals observed during the latest Pump. It is fully replaced, never
// merged, at the start of every poll.
type Immediate struct {
	edges map[Key]Edge

	// Quit is set when the platform requested application exit this frame.
	Quit bool

	// Resize holds the newest output size received this frame, or nil when
	// no resize arrived. When several resizes land in one tick, the latest
	// wins.
	Resize *ResizeEvent
}

func newImmediate() Immediate {
	return Immediate{edges: make(map[Key]Edge)}
}

// Edge returns the transition recorded for the key this frame.
func (im Immediate) Edge(k Key) Edge {
	return im.edges[k]
}

// Pressed reports whether the key was pressed this frame.
func (im Immediate) Pressed(k Key) bool {
	return im.edges[k] == EdgePressed
}

// Released reports whether the key was released this frame.
func (im Immediate) Released(k Key) bool {
	return im.edges[k] == EdgeReleased
}

// Events tracks keyboard state across frames. It keeps two layers: the
// persistent held-state per key, flipped only on actual press and release
// edges, and the per-frame Now snapshot of this frame's transitions.
// Holding a key therefore produces exactly one press edge, any number of
// non-edge frames, and exactly one release edge.
type Events struct {
	source EventSource

	// Now is the edge snapshot for the current frame.
	Now Immediate

	held map[Key]bool
}

// NewEvents creates an event tracker draining the given source.
func NewEvents(source EventSource) *Events {
	return &Events{
		source: source,
		Now:    newImmediate(),
		held:   make(map[Key]bool),
	}
}

// Held reports whether the key is currently down, independent of this
// frame's edges.
func (e *Events) Held(k Key) bool {
	return e.held[k]
}

// Pump performs one synchronous, non-blocking drain of all pending platform
// events. It resets the edge snapshot first, then folds each raw event into
// the snapshot and the held-state table. Unrecognized events are ignored.
func (e *Events) Pump() {
	e.Now = newImmediate()

	for {
		ev := e.source.PollEvent()
		if ev == nil {
			return
		}

		switch ev := ev.(type) {
		case KeyDownEvent:
			// Key repeat while already held produces no edge.
			if !e.held[ev.Key] {
				e.Now.edges[ev.Key] = EdgePressed
			}
			e.held[ev.Key] = true

		case KeyUpEvent:
			e.Now.edges[ev.Key] = EdgeReleased
			e.held[ev.Key] = false

		case ResizeEvent:
			resize := ev
			e.Now.Resize = &resize

		case QuitEvent:
			e.Now.Quit = true
		}
	}
}
