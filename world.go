package morpheas

// WorldConfig carries the explicit construction-time collaborators of a
// World. There are no package-level defaults: hosts that want a shared
// texture directory set TexturePath here, per tree.
type WorldConfig struct {
	// Renderer receives all draw primitives. A nil renderer turns Draw into
	// a no-op (useful in tests that only exercise dispatch).
	Renderer Renderer

	// Provider loads and releases texture images. A nil provider makes
	// LoadTexture fail with ErrDetached.
	Provider ImageProvider

	// TexturePath is the base path used for morphs whose own TexturePath is
	// empty.
	TexturePath string

	// AutoHide suppresses drawing whenever the pointer is outside the
	// current viewport or the viewport is not focused for input.
	AutoHide bool
}

// World is the distinguished root of a morph tree. It owns the coordinate
// origin, the pointer position in both the viewport-relative and host-window
// frames, the current draw viewport, and the per-dispatch event-consumption
// state. The host drives it with one BeginFrame + Draw call per render pass
// and one OnEvent call per pointer event.
//
// A World never has a parent; its world position is the origin and its
// effective scale is 1.
type World struct {
	Morph

	renderer    Renderer
	provider    ImageProvider
	texturePath string
	autoHide    bool
	debug       bool

	frame           Frame
	windowRect      Rect
	pointer         Vec2 // relative to the host's input window region
	pointerAbsolute Vec2 // relative to the host window
	pointerInside   bool
	event           Event
	consumed        bool
}

// NewWorld creates an empty world with the given collaborators.
func NewWorld(cfg WorldConfig) *World {
	w := &World{
		renderer:    cfg.Renderer,
		provider:    cfg.Provider,
		texturePath: cfg.TexturePath,
		autoHide:    cfg.AutoHide,
	}
	w.Morph = Morph{Name: "world", Type: MorphPlain}
	morphDefaults(&w.Morph)
	w.Morph.world = w
	return w
}

// BeginFrame stores the viewport for the coming render pass, recomputes
// whether the pointer is inside it, and — when the pointer has left the
// viewport — cancels every active drag in the tree, so no morph stays
// mid-drag once its viewport loses pointer focus.
func (w *World) BeginFrame(frame Frame) {
	w.frame = frame
	w.pointerInside = frame.Viewport.ContainsStrict(w.pointerAbsolute.X, w.pointerAbsolute.Y)
	if !w.pointerInside {
		w.CancelDrag()
	}
}

// Draw renders all children against the viewport supplied to BeginFrame.
// With auto-hide enabled, drawing is suppressed unless the pointer is inside
// the viewport and the viewport is the one focused for input.
func (w *World) Draw(ctx Context) {
	if w.autoHide && !(w.pointerInside && w.frame.Focused) {
		return
	}
	for _, c := range w.children {
		c.Draw(ctx)
	}
	if w.debug {
		w.debugLogFrame()
	}
}

// OnEvent ingests a raw pointer event together with the geometry of the host
// window region currently handling input. It derives the pointer position in
// both coordinate frames, stores the event, resets the consumption flag, and
// dispatches to all children (descendants first, first consumer wins).
//
// After the call the host checks Consumed: a false result means no morph
// handled the event and the host should pass it through to the surrounding
// application.
func (w *World) OnEvent(ev Event, window Rect, ctx Context) {
	w.windowRect = window
	w.pointer = Vec2{ev.X, ev.Y}
	w.pointerAbsolute = Vec2{ev.X + window.X, ev.Y + window.Y}
	w.event = ev
	w.consumed = false

	for _, c := range w.children {
		c.OnEvent(ev, ctx)
	}
}

// Pointer returns the pointer position relative to the host's input window
// region.
func (w *World) Pointer() Vec2 { return w.pointer }

// PointerAbsolute returns the pointer position in host window coordinates.
func (w *World) PointerAbsolute() Vec2 { return w.pointerAbsolute }

// PointerInside reports whether the pointer was inside the viewport at the
// last BeginFrame.
func (w *World) PointerInside() bool { return w.pointerInside }

// Viewport returns the draw viewport supplied to the last BeginFrame.
func (w *World) Viewport() Rect { return w.frame.Viewport }

// WindowRect returns the input window region supplied to the last OnEvent.
func (w *World) WindowRect() Rect { return w.windowRect }

// LastEvent returns the event supplied to the last OnEvent.
func (w *World) LastEvent() Event { return w.event }

// Consumed reports whether some morph consumed the last dispatched event.
func (w *World) Consumed() bool { return w.consumed }

// SetAutoHide enables or disables the auto-hide draw policy.
func (w *World) SetAutoHide(enabled bool) { w.autoHide = enabled }

// AutoHide reports whether the auto-hide draw policy is enabled.
func (w *World) AutoHide() bool { return w.autoHide }

// SetDebugMode enables or disables debug mode: deleted-morph checks panic,
// tree depth and child count warnings are printed, and per-frame draw stats
// are logged to stderr.
func (w *World) SetDebugMode(enabled bool) { w.debug = enabled }
