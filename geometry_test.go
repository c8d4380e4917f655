package morpheas

import (
	"math"
	"testing"
)

func TestDistance(t *testing.T) {
	if got := Distance(Vec2{0, 0}, Vec2{3, 4}); got != 5 {
		t.Errorf("Distance = %v, want 5", got)
	}
	if got := Distance(Vec2{2, 2}, Vec2{2, 2}); got != 0 {
		t.Errorf("Distance of equal points = %v, want 0", got)
	}
}

func TestRectContains(t *testing.T) {
	r := Rect{X: 10, Y: 10, Width: 50, Height: 30}
	if !r.Contains(10, 10) {
		t.Error("Contains should include the edge")
	}
	if !r.Contains(60, 40) {
		t.Error("Contains should include the far edge")
	}
	if r.Contains(60.1, 40) {
		t.Error("Contains should exclude points past the far edge")
	}
}

func TestRectContainsStrict(t *testing.T) {
	r := Rect{X: 10, Y: 10, Width: 50, Height: 30}
	if r.ContainsStrict(10, 10) {
		t.Error("ContainsStrict should exclude the edge")
	}
	if !r.ContainsStrict(11, 11) {
		t.Error("ContainsStrict should include the interior")
	}
}

// --- Rounded rectangle outline ---

func TestRoundedRectOutlineSharp(t *testing.T) {
	pts := RoundedRectOutline(0, 0, 10, 20, 3, 5, Corners{})
	want := []Vec2{{0, 0}, {0, 20}, {10, 20}, {10, 0}}
	if len(pts) != 4 {
		t.Fatalf("points = %d, want 4", len(pts))
	}
	for i := range want {
		if pts[i] != want[i] {
			t.Errorf("point %d = %v, want %v", i, pts[i], want[i])
		}
	}
}

func TestRoundedRectOutlineAllCorners(t *testing.T) {
	steps := 5
	pts := RoundedRectOutline(0, 0, 100, 100, 10, steps, AllCorners)
	if len(pts) != 4*steps {
		t.Fatalf("points = %d, want %d", len(pts), 4*steps)
	}
	// All outline points stay within the rectangle, with a little slack for
	// the coarse 1.57 arc constants.
	for i, p := range pts {
		if p.X < -1 || p.X > 101 || p.Y < -1 || p.Y > 101 {
			t.Errorf("point %d = %v escapes the rectangle", i, p)
		}
	}
}

func TestRoundedRectOutlineMixedCorners(t *testing.T) {
	steps := 4
	pts := RoundedRectOutline(0, 0, 50, 50, 5, steps, Corners{true, false, true, false})
	// Two arcs and two sharp corners.
	if want := 2*steps + 2; len(pts) != want {
		t.Errorf("points = %d, want %d", len(pts), want)
	}
}

// --- Circle fans ---

func TestCircleFanGeometry(t *testing.T) {
	pts := CircleFan(10, 20, 5)
	if len(pts) != circleSegments+2 {
		t.Fatalf("points = %d, want %d", len(pts), circleSegments+2)
	}
	if pts[0] != (Vec2{10, 20}) {
		t.Errorf("center = %v, want (10, 20)", pts[0])
	}
	// Every perimeter point sits on the circle.
	for i, p := range pts[1:] {
		if d := Distance(p, pts[0]); math.Abs(d-5) > 1e-9 {
			t.Fatalf("perimeter point %d at distance %v, want 5", i, d)
		}
	}
	// The fan closes: first and last perimeter points coincide.
	first, last := pts[1], pts[len(pts)-1]
	if math.Abs(first.X-last.X) > 1e-9 || math.Abs(first.Y-last.Y) > 1e-9 {
		t.Errorf("fan does not close: first %v, last %v", first, last)
	}
}

func TestCircleFanUVMatchesFan(t *testing.T) {
	uv := CircleFanUV()
	if len(uv) != circleSegments+2 {
		t.Fatalf("uv points = %d, want %d", len(uv), circleSegments+2)
	}
	if uv[0] != (Vec2{0.5, 0.5}) {
		t.Errorf("uv center = %v, want (0.5, 0.5)", uv[0])
	}
	for i, p := range uv {
		if p.X < 0 || p.X > 1 || p.Y < 0 || p.Y > 1 {
			t.Errorf("uv point %d = %v outside the unit square", i, p)
		}
	}
}

// --- Drag collision primitive ---

func TestOriginWithin(t *testing.T) {
	cases := []struct {
		name           string
		ax, ay, aw, ah float64
		bx, by         float64
		want           bool
	}{
		{"inside", 0, 0, 20, 20, 10, 10, true},
		{"on min edge", 0, 0, 20, 20, 0, 0, true},
		{"on max edge", 0, 0, 20, 20, 20, 20, true},
		{"right of box", 0, 0, 20, 20, 21, 10, false},
		{"above box", 0, 0, 20, 20, 10, -1, false},
		{"overlap without origin", 30, 0, 20, 20, 25, 0, false},
	}
	for _, c := range cases {
		if got := originWithin(c.ax, c.ay, c.aw, c.ah, c.bx, c.by); got != c.want {
			t.Errorf("%s: originWithin = %v, want %v", c.name, got, c.want)
		}
	}
}

func TestClamp(t *testing.T) {
	if got := clamp(5, 0, 10); got != 5 {
		t.Errorf("clamp(5, 0, 10) = %v, want 5", got)
	}
	if got := clamp(-1, 0, 10); got != 0 {
		t.Errorf("clamp(-1, 0, 10) = %v, want 0", got)
	}
	if got := clamp(11, 0, 10); got != 10 {
		t.Errorf("clamp(11, 0, 10) = %v, want 10", got)
	}
	// Inverted range: the low bound wins.
	if got := clamp(5, 10, 0); got != 10 {
		t.Errorf("clamp(5, 10, 0) = %v, want 10", got)
	}
}
