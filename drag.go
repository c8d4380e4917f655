package morpheas

// dragState tracks a morph's drag-and-drop state machine: Idle (zero value)
// or Dragging. The anchor is the pointer position, in host window
// coordinates, recorded at drag start and at each committed move; candidate
// positions are computed from the pointer delta since the anchor.
type dragState struct {
	active bool
	anchor Vec2
}

// reset returns the state machine to Idle.
func (d *dragState) reset() {
	d.active = false
	d.anchor = Vec2{}
}

// IsDragging reports whether this morph is mid-drag.
func (m *Morph) IsDragging() bool { return m.drag.active }

// startDrag enters the Dragging state, anchoring at the current pointer
// position. Default behavior of a left click on a drag-enabled morph.
func (m *Morph) startDrag() {
	w := m.World()
	if w == nil {
		return
	}
	m.drag.active = true
	m.drag.anchor = w.pointerAbsolute
}

// CancelDrag forcibly returns this morph and all descendants to the Idle
// drag state. The World calls this for the whole tree when the pointer
// leaves the viewport, so nothing stays mid-drag without pointer focus.
func (m *Morph) CancelDrag() {
	m.drag.reset()
	for _, c := range m.children {
		c.CancelDrag()
	}
}

// dragStep advances an active drag for one pointer-move event: it computes
// the candidate position from the pointer delta since the anchor, clamps it
// to the host viewport, and commits it unless the candidate box has moved
// over a sibling. A blocked move keeps the drag active but leaves position
// and anchor untouched, so the next move re-evaluates from the same anchor.
func (m *Morph) dragStep() {
	w := m.World()
	if w == nil {
		return
	}
	p := w.pointerAbsolute
	cand := Vec2{
		X: m.X + p.X - m.drag.anchor.X,
		Y: m.Y + p.Y - m.drag.anchor.Y,
	}
	cand = m.clampToViewport(cand)

	sw, sh := m.ScaledSize()
	if m.parent != nil {
		for _, s := range m.parent.children {
			if s == m || s.hidden {
				continue
			}
			if originWithin(cand.X, cand.Y, sw, sh, s.X, s.Y) {
				return
			}
		}
	}

	m.X = cand.X
	m.Y = cand.Y
	m.growOwnBounds()
	m.drag.anchor = p
}

// clampToViewport clamps a candidate local position so the morph's scaled
// box stays inside the world's current draw viewport. A zero viewport (no
// frame seen yet) leaves the candidate untouched.
func (m *Morph) clampToViewport(cand Vec2) Vec2 {
	w := m.World()
	vp := w.frame.Viewport
	if vp.Width == 0 && vp.Height == 0 {
		return cand
	}
	sw, sh := m.ScaledSize()

	// Work in absolute coordinates, then translate back to the parent frame.
	var ox, oy float64
	if m.parent != nil {
		ox, oy = m.parent.AbsolutePosition()
	}
	ax := clamp(ox+cand.X, vp.X, vp.X+vp.Width-sw)
	ay := clamp(oy+cand.Y, vp.Y, vp.Y+vp.Height-sh)
	return Vec2{ax - ox, ay - oy}
}

// clamp bounds v to [lo, hi]. If the range is inverted (the morph is larger
// than the viewport) the low bound wins.
func clamp(v, lo, hi float64) float64 {
	if hi < lo {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
