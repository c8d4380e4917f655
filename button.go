package morpheas

// NewButtonMorph creates a morph wired for interaction: it handles events,
// button clicks, and hover, with the hover-glow appearance enabled. Bind
// OnLeftClick (and friends) for application behavior; the glow makes the
// button semi-transparent while the pointer is outside it and opaque while
// inside.
func NewButtonMorph(name string, width, height float64) *Morph {
	m := &Morph{Name: name, Type: MorphButton, width: width, height: height}
	morphDefaults(m)
	m.HandlesEvents = true
	m.HandlesMouseDown = true
	m.HandlesMouseOver = true
	m.HoverGlow = true
	m.OnMouseIn = func(b *Morph) {
		if b.HoverGlow {
			b.Color.A = 1
		}
	}
	m.OnMouseOut = func(b *Morph) {
		if b.HoverGlow {
			b.Color = Color{1, 1, 1, 0.5}
		}
	}
	return m
}
