package morpheas

// Color represents an RGBA color with components conceptually in [0, 1].
// Components are not clamped; hosts that need clamping do it at the backend.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is the default morph color (opaque white, no tint).
var ColorWhite = Color{1, 1, 1, 1}

// Vec2 is a 2D vector used for positions, offsets, and sizes throughout
// the API.
type Vec2 struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle. Host window coordinates as supplied by
// the embedding application; morpheas never assumes a Y direction beyond
// what the host's pointer events use.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// ContainsStrict reports whether (x, y) lies strictly inside the rectangle.
// Points exactly on an edge are outside. Pointer hit tests use this form.
func (r Rect) ContainsStrict(x, y float64) bool {
	return x > r.X && x < r.X+r.Width &&
		y > r.Y && y < r.Y+r.Height
}

// Shape selects the hit-test and flat-fill geometry of a morph.
type Shape uint8

const (
	ShapeRectangle Shape = iota // axis-aligned rectangle (default)
	ShapeCircle                 // circle with diameter = scaled width
)

// MorphType distinguishes draw behavior for a Morph. A single flat struct is
// used for all morph kinds; the type selects the render branch.
type MorphType uint8

const (
	MorphPlain  MorphType = iota // textured quad/fan or flat fill
	MorphText                    // renders a string via Renderer.DrawText
	MorphButton                  // plain visuals plus default click/hover behavior
)

// EventType identifies the kind of a pointer event delivered by the host.
type EventType uint8

const (
	EventNone       EventType = iota // zero value; never dispatched
	EventLeftMouse                   // left button press or release
	EventRightMouse                  // right button press or release
	EventMouseMove                   // pointer motion, no button change
)

// EventValue distinguishes press from release for button events.
type EventValue uint8

const (
	EventPress EventValue = iota
	EventRelease
)

// Event is a raw pointer event as supplied by the embedding host.
// X and Y are relative to the host window region that receives input
// (the same region whose geometry is passed to World.OnEvent).
type Event struct {
	Type  EventType
	Value EventValue // meaningful for button events only
	X, Y  float64
}

// Frame describes the drawable viewport for one render pass.
// Focused reports whether the host currently treats this viewport as the
// one eligible to receive input; the auto-hide policy depends on it.
type Frame struct {
	Viewport Rect
	Focused  bool
}

// Context is the opaque per-frame object the host passes through draw and
// event calls. Morpheas forwards it to every morph unmodified and never
// inspects it.
type Context = any
