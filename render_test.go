package morpheas

import (
	"fmt"
	"testing"
)

// --- Test doubles ---

// drawCall records one renderer invocation for order and argument checks.
type drawCall struct {
	op     string // "quad", "fan", "poly", "text"
	points []Vec2
	color  Color
	text   string
}

// recordRenderer captures draw primitives instead of rasterizing them.
type recordRenderer struct {
	calls []drawCall
}

func (r *recordRenderer) DrawTexturedQuad(points [4]Vec2, uv [4]Vec2, tint Color, handle ImageHandle) {
	r.calls = append(r.calls, drawCall{op: "quad", points: points[:], color: tint})
}

func (r *recordRenderer) DrawTexturedFan(points []Vec2, uv []Vec2, tint Color, handle ImageHandle) {
	r.calls = append(r.calls, drawCall{op: "fan", points: points, color: tint})
}

func (r *recordRenderer) DrawFilledPolygon(points []Vec2, fill Color) {
	r.calls = append(r.calls, drawCall{op: "poly", points: points, color: fill})
}

func (r *recordRenderer) DrawText(text string, pos Vec2, size, dpi float64, fill Color) {
	r.calls = append(r.calls, drawCall{op: "text", points: []Vec2{pos}, color: fill, text: text})
}

func (r *recordRenderer) reset() { r.calls = nil }

// stubHandle is a fixed-size image handle.
type stubHandle struct {
	w, h int
}

func (h *stubHandle) Size() (int, int) { return h.w, h.h }

// stubProvider hands out stubHandles and records load/release traffic.
type stubProvider struct {
	size     int
	loads    []string
	releases []ImageHandle
	failNext bool
}

func (p *stubProvider) Load(path string) (ImageHandle, error) {
	if p.failNext {
		p.failNext = false
		return nil, fmt.Errorf("no such file: %s", path)
	}
	p.loads = append(p.loads, path)
	s := p.size
	if s == 0 {
		s = 64
	}
	return &stubHandle{w: s, h: s}, nil
}

func (p *stubProvider) Release(handle ImageHandle) {
	p.releases = append(p.releases, handle)
}

// newTestWorld wires a recorder renderer and a stub provider, then begins a
// frame with the given viewport so geometry and hit tests are live.
func newTestWorld(viewport Rect) (*World, *recordRenderer, *stubProvider) {
	r := &recordRenderer{}
	p := &stubProvider{}
	w := NewWorld(WorldConfig{Renderer: r, Provider: p})
	w.BeginFrame(Frame{Viewport: viewport, Focused: true})
	return w, r, p
}

// --- Painter's algorithm ---

func TestDrawOrderParentBeforeChildren(t *testing.T) {
	w, r, _ := newTestWorld(Rect{Width: 200, Height: 200})
	parent := NewMorph("parent", 100, 100)
	first := NewMorph("first", 10, 10)
	second := NewMorph("second", 10, 10)
	parent.AddMorph(first)
	parent.AddMorph(second)
	w.AddMorph(parent)

	parent.Color = Color{R: 1, A: 1}
	first.Color = Color{G: 1, A: 1}
	second.Color = Color{B: 1, A: 1}

	w.Draw(nil)

	if len(r.calls) != 3 {
		t.Fatalf("calls = %d, want 3", len(r.calls))
	}
	want := []Color{{R: 1, A: 1}, {G: 1, A: 1}, {B: 1, A: 1}}
	for i, c := range want {
		if r.calls[i].color != c {
			t.Errorf("call %d color = %v, want %v", i, r.calls[i].color, c)
		}
	}
}

func TestDrawSkipsHiddenSubtree(t *testing.T) {
	w, r, _ := newTestWorld(Rect{Width: 200, Height: 200})
	parent := NewMorph("parent", 100, 100)
	child := NewMorph("child", 10, 10)
	parent.AddMorph(child)
	visible := NewMorph("visible", 10, 10)
	w.AddMorph(parent)
	w.AddMorph(visible)

	parent.SetHidden(true)
	w.Draw(nil)

	if len(r.calls) != 1 {
		t.Fatalf("calls = %d, want 1 (only the visible sibling)", len(r.calls))
	}
	if parent.DrawCount() != 0 || child.DrawCount() != 0 {
		t.Error("hidden subtree should not be drawn")
	}
	if visible.DrawCount() != 1 {
		t.Errorf("visible DrawCount = %d, want 1", visible.DrawCount())
	}
}

// --- Shape primitives ---

func TestDrawRectangleSharpCorners(t *testing.T) {
	w, r, _ := newTestWorld(Rect{Width: 200, Height: 200})
	m := NewMorph("rect", 50, 30)
	m.SetPosition(Vec2{X: 10, Y: 20})
	w.AddMorph(m)

	w.Draw(nil)

	if len(r.calls) != 1 || r.calls[0].op != "poly" {
		t.Fatalf("calls = %+v, want one poly", r.calls)
	}
	// No rounded corners: exactly the four rectangle corners.
	pts := r.calls[0].points
	want := []Vec2{{10, 20}, {10, 50}, {60, 50}, {60, 20}}
	if len(pts) != len(want) {
		t.Fatalf("outline points = %d, want %d", len(pts), len(want))
	}
	for i := range want {
		if pts[i] != want[i] {
			t.Errorf("point %d = %v, want %v", i, pts[i], want[i])
		}
	}
}

func TestDrawRoundedRectangle(t *testing.T) {
	w, r, _ := newTestWorld(Rect{Width: 200, Height: 200})
	m := NewMorph("rounded", 50, 30)
	m.Rounded = AllCorners
	w.AddMorph(m)

	w.Draw(nil)

	if len(r.calls) != 1 {
		t.Fatalf("calls = %d, want 1", len(r.calls))
	}
	// Four arcs of roundCornerSteps points each.
	if got, want := len(r.calls[0].points), 4*roundCornerSteps; got != want {
		t.Errorf("outline points = %d, want %d", got, want)
	}
}

func TestDrawCircleFan(t *testing.T) {
	w, r, _ := newTestWorld(Rect{Width: 200, Height: 200})
	m := NewMorph("dot", 40, 40)
	m.Shape = ShapeCircle
	m.SetPosition(Vec2{X: 10, Y: 10})
	w.AddMorph(m)

	w.Draw(nil)

	if len(r.calls) != 1 || r.calls[0].op != "poly" {
		t.Fatalf("calls = %+v, want one poly", r.calls)
	}
	pts := r.calls[0].points
	// Center plus 361 perimeter points (first perimeter point repeated to
	// close the fan).
	if len(pts) != circleSegments+2 {
		t.Fatalf("fan points = %d, want %d", len(pts), circleSegments+2)
	}
	if pts[0] != (Vec2{30, 30}) {
		t.Errorf("fan center = %v, want (30, 30)", pts[0])
	}
	if pts[1] != (Vec2{50, 30}) {
		t.Errorf("first perimeter point = %v, want (50, 30)", pts[1])
	}
}

func TestDrawTextMorph(t *testing.T) {
	w, r, _ := newTestWorld(Rect{Width: 200, Height: 200})
	m := NewTextMorph("label", "hello")
	m.SetPosition(Vec2{X: 5, Y: 7})
	w.AddMorph(m)

	w.Draw(nil)

	if len(r.calls) != 1 || r.calls[0].op != "text" {
		t.Fatalf("calls = %+v, want one text", r.calls)
	}
	if r.calls[0].text != "hello" {
		t.Errorf("text = %q, want %q", r.calls[0].text, "hello")
	}
	if r.calls[0].points[0] != (Vec2{5, 7}) {
		t.Errorf("text pos = %v, want (5, 7)", r.calls[0].points[0])
	}
}

func TestDrawTexturedQuadAndFan(t *testing.T) {
	w, r, _ := newTestWorld(Rect{Width: 200, Height: 200})
	rect := NewMorph("tex", 64, 64)
	circle := NewMorph("texdot", 64, 64)
	circle.Shape = ShapeCircle
	w.AddMorph(rect)
	w.AddMorph(circle)

	if err := rect.LoadTexture("a.png", 1); err != nil {
		t.Fatalf("LoadTexture: %v", err)
	}
	if err := circle.LoadTexture("b.png", 1); err != nil {
		t.Fatalf("LoadTexture: %v", err)
	}
	r.reset()

	w.Draw(nil)

	if len(r.calls) != 2 {
		t.Fatalf("calls = %d, want 2", len(r.calls))
	}
	if r.calls[0].op != "quad" {
		t.Errorf("rect op = %q, want quad", r.calls[0].op)
	}
	if r.calls[1].op != "fan" {
		t.Errorf("circle op = %q, want fan", r.calls[1].op)
	}
}

// --- Frame geometry ---

func TestDrawUsesViewportOrigin(t *testing.T) {
	w, r, _ := newTestWorld(Rect{X: 100, Y: 50, Width: 200, Height: 200})
	m := NewMorph("rect", 10, 10)
	m.SetPosition(Vec2{X: 5, Y: 5})
	w.AddMorph(m)

	w.Draw(nil)

	if len(r.calls) != 1 {
		t.Fatalf("calls = %d, want 1", len(r.calls))
	}
	if r.calls[0].points[0] != (Vec2{105, 55}) {
		t.Errorf("first point = %v, want (105, 55)", r.calls[0].points[0])
	}
}

func TestDrawScaledGeometry(t *testing.T) {
	w, r, _ := newTestWorld(Rect{Width: 400, Height: 400})
	parent := NewMorph("parent", 100, 100)
	parent.Scale = 2
	child := NewMorph("child", 20, 10)
	child.Scale = 0.5
	child.SetPosition(Vec2{X: 10, Y: 10})
	parent.AddMorph(child)
	w.AddMorph(parent)

	w.Draw(nil)

	if len(r.calls) != 2 {
		t.Fatalf("calls = %d, want 2", len(r.calls))
	}
	// Child effective scale is 0.5 * 2 = 1, so the 20x10 box spans
	// (10, 10)-(30, 20) in untranslated coordinates.
	pts := r.calls[1].points
	want := []Vec2{{10, 10}, {10, 20}, {30, 20}, {30, 10}}
	for i := range want {
		if pts[i] != want[i] {
			t.Errorf("child point %d = %v, want %v", i, pts[i], want[i])
		}
	}
}

func TestDrawCountIncrements(t *testing.T) {
	w, _, _ := newTestWorld(Rect{Width: 100, Height: 100})
	m := NewMorph("m", 10, 10)
	w.AddMorph(m)

	for i := 0; i < 3; i++ {
		w.Draw(nil)
	}
	if m.DrawCount() != 3 {
		t.Errorf("DrawCount = %d, want 3", m.DrawCount())
	}
}
