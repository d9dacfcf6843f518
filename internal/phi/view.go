package phi

// View is a polymorphic unit of game state (menu, gameplay, ...). The loop
// owns exactly one view at a time; ownership moves with ChangeView and is
// never shared.
type View interface {
	// Resume is called when the view becomes the active, rendered view.
	Resume(p *Phi)

	// Pause is called when the view stops being the active view.
	Pause(p *Phi)

	// Render is the sole per-frame entry point: it must both advance the
	// view's simulation by elapsed seconds and draw the resulting frame,
	// then report what the loop should do next.
	Render(p *Phi, elapsed float64) ViewAction
}

// BaseView provides no-op Resume and Pause so views only override the
// lifecycle hooks they care about.
type BaseView struct{}

func (BaseView) Resume(*Phi) {}
func (BaseView) Pause(*Phi)  {}

type actionKind int

const (
	actionContinue actionKind = iota
	actionQuit
	actionChange
)

// ViewAction is the directive a view returns to the loop each frame.
type ViewAction struct {
	kind actionKind
	next View
}

// Continue keeps the current view active and presents the drawn frame.
func Continue() ViewAction {
	return ViewAction{kind: actionContinue}
}

// Quit pauses the current view and terminates the loop.
func Quit() ViewAction {
	return ViewAction{kind: actionQuit}
}

// ChangeView hands loop ownership to next: the outgoing view is paused and
// released, next is resumed, and the just-drawn frame is not presented.
func ChangeView(next View) ViewAction {
	return ViewAction{kind: actionChange, next: next}
}

// Next returns the view a ChangeView directive hands ownership to, or nil
// for the other directives.
func (a ViewAction) Next() View {
	return a.next
}
