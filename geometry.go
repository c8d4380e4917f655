package morpheas

import "math"

// circleSegments is the fixed resolution of circle approximations: one point
// per degree. Not adaptive.
const circleSegments = 360

// Distance returns the Euclidean distance between two points.
func Distance(a, b Vec2) float64 {
	dx := b.X - a.X
	dy := b.Y - a.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// Corners selects which corners of a rounded rectangle are rounded, in the
// order: min-x/min-y, min-x/max-y, max-x/max-y, max-x/min-y.
type Corners [4]bool

// AllCorners rounds every corner.
var AllCorners = Corners{true, true, true, true}

// arcPoints generates numSegments points along an arc centered at (cx, cy)
// with radius r, starting at startAngle and sweeping arcAngle radians.
// Uses the incremental tangential/radial stepping method so only one sin/cos
// pair is evaluated per arc.
func arcPoints(cx, cy, r, startAngle, arcAngle float64, numSegments int) []Vec2 {
	theta := arcAngle / float64(numSegments-1)
	tangential := math.Tan(theta)
	radial := math.Cos(theta)

	x := r * math.Cos(startAngle)
	y := r * math.Sin(startAngle)
	pts := make([]Vec2, 0, numSegments)
	for i := 0; i < numSegments; i++ {
		pts = append(pts, Vec2{x + cx, y + cy})
		tx := -y
		ty := x
		x += tx * tangential
		y += ty * tangential
		x *= radial
		y *= radial
	}
	return pts
}

// RoundedRectOutline returns the outline of the rectangle spanning
// (x1, y1)-(x2, y2) with the selected corners replaced by arcs of the given
// radius, each approximated with steps points. Unselected corners stay sharp.
// The outline winds from the min-x/min-y corner through min-x/max-y,
// max-x/max-y, and max-x/min-y.
func RoundedRectOutline(x1, y1, x2, y2, radius float64, steps int, corners Corners) []Vec2 {
	var verts []Vec2

	if corners[0] {
		verts = append(verts, arcPoints(x1+radius, y1+radius, radius, 4.71, -1.57, steps)...)
	} else {
		verts = append(verts, Vec2{x1, y1})
	}
	if corners[1] {
		verts = append(verts, arcPoints(x1+radius, y2-radius, radius, 3.14, -1.57, steps)...)
	} else {
		verts = append(verts, Vec2{x1, y2})
	}
	if corners[2] {
		verts = append(verts, arcPoints(x2-radius, y2-radius, radius, 1.57, -1.57, steps)...)
	} else {
		verts = append(verts, Vec2{x2, y2})
	}
	if corners[3] {
		verts = append(verts, arcPoints(x2-radius, y1+radius, radius, 0.0, -1.57, steps)...)
	} else {
		verts = append(verts, Vec2{x2, y1})
	}
	return verts
}

// CircleFan returns the vertices of a triangle-fan circle approximation:
// the center followed by circleSegments+1 perimeter points at 1 degree steps
// (the first perimeter point is repeated to close the fan).
func CircleFan(cx, cy, r float64) []Vec2 {
	pts := make([]Vec2, 0, circleSegments+2)
	pts = append(pts, Vec2{cx, cy})
	for i := 0; i <= circleSegments; i++ {
		a := float64(i) * math.Pi / 180
		pts = append(pts, Vec2{cx + r*math.Cos(a), cy + r*math.Sin(a)})
	}
	return pts
}

// CircleFanUV returns texture coordinates matching CircleFan via a
// unit-circle parameterization: the fan center maps to (0.5, 0.5) and
// perimeter points map onto the unit circle inscribed in the texture.
func CircleFanUV() []Vec2 {
	uv := make([]Vec2, 0, circleSegments+2)
	uv = append(uv, Vec2{0.5, 0.5})
	for i := 0; i <= circleSegments; i++ {
		a := float64(i) * math.Pi / 180
		uv = append(uv, Vec2{0.5 + math.Cos(a)/2, 0.5 + math.Sin(a)/2})
	}
	return uv
}

// originWithin reports whether the min corner of box b lies within box a,
// edges inclusive. Drag collision avoidance uses this asymmetric test: a
// candidate box collides with a sibling when it has moved over the sibling's
// origin.
func originWithin(ax, ay, aw, ah, bx, by float64) bool {
	return bx >= ax && bx <= ax+aw &&
		by >= ay && by <= ay+ah
}
