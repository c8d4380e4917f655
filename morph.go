package morpheas

// --- ID counter ---

// morphIDCounter is a plain counter (no atomic — morpheas is single-threaded).
var morphIDCounter uint32

func nextMorphID() uint32 {
	morphIDCounter++
	return morphIDCounter
}

// roundCornerSteps is the number of arc points per rounded corner.
const roundCornerSteps = 10

// --- Morph ---

// Morph is the fundamental widget tree element. A single flat struct is used
// for all morph kinds to avoid interface dispatch on the hot path; Type
// selects the render branch and constructors set the behavioral defaults.
//
// Derived geometry (world position, absolute position, effective scale,
// scaled size) is exposed through methods only and recomputed on demand, so
// it can never be assigned stale values.
type Morph struct {
	// Identity
	ID   uint32
	Name string
	Type MorphType

	// Hierarchy
	parent   *Morph
	children []*Morph
	world    *World

	// Geometry. X and Y are the local position relative to the parent's
	// content origin; width and height are unscaled and kept non-negative
	// by SetWidth/SetHeight.
	X, Y          float64
	width, height float64
	Scale         float64

	// Appearance
	Color         Color
	Shape         Shape
	Rounded       Corners // corners to round when drawing an untextured rectangle
	RoundStrength float64 // corner radius for Rounded corners

	// Texture table: logical name -> loaded entry; at most one active.
	textures      map[string]*textureEntry
	activeTexture string

	// TexturePath is the base path prepended to texture names on load.
	// Empty means "use the world's texture path". There is no package-level
	// default.
	TexturePath string

	// Text fields (MorphText)
	Text     string
	TextSize float64
	TextDPI  float64

	// Button fields (MorphButton)
	HoverGlow bool

	// Event handling flags. Disabled events are ignored by this morph but
	// still reach its children.
	HandlesEvents    bool
	HandlesMouseDown bool
	HandlesMouseOver bool
	HandlesDrag      bool

	// Per-morph callbacks (nil by default). A nil slot falls back to the
	// documented default behavior for that event.
	OnLeftClick          func(*Morph)
	OnLeftClickReleased  func(*Morph)
	OnRightClick         func(*Morph)
	OnRightClickReleased func(*Morph)
	OnMouseIn            func(*Morph)
	OnMouseOut           func(*Morph)

	// Internal
	hidden    bool
	bounds    [4]float64 // minX, minY, maxX, maxY; grows, never shrinks
	drag      dragState
	drawCount int
	deleted   bool
}

// morphDefaults sets the common default field values shared by all
// constructors, then seeds the bounding box from the current geometry.
func morphDefaults(m *Morph) {
	m.ID = nextMorphID()
	m.Scale = 1
	m.Color = ColorWhite
	m.RoundStrength = 10
	m.bounds = [4]float64{m.X, m.Y, m.X + m.width, m.Y + m.height}
}

// NewMorph creates a plain morph with the given unscaled size. It is created
// detached: it becomes live once attached to a parent reachable from a World.
func NewMorph(name string, width, height float64) *Morph {
	m := &Morph{Name: name, Type: MorphPlain, width: width, height: height}
	morphDefaults(m)
	return m
}

// --- Geometry accessors ---

// Width returns the unscaled width.
func (m *Morph) Width() float64 { return m.width }

// Height returns the unscaled height.
func (m *Morph) Height() float64 { return m.height }

// SetWidth sets the unscaled width. Negative values are rejected with
// ErrInvalidGeometry and leave the morph unchanged.
func (m *Morph) SetWidth(v float64) error {
	if v < 0 {
		return ErrInvalidGeometry
	}
	m.width = v
	m.growOwnBounds()
	return nil
}

// SetHeight sets the unscaled height. Negative values are rejected with
// ErrInvalidGeometry and leave the morph unchanged.
func (m *Morph) SetHeight(v float64) error {
	if v < 0 {
		return ErrInvalidGeometry
	}
	m.height = v
	m.growOwnBounds()
	return nil
}

// Position returns the local position relative to the parent's content
// origin.
func (m *Morph) Position() Vec2 { return Vec2{m.X, m.Y} }

// SetPosition sets the local position. Positions have no sign restriction.
func (m *Morph) SetPosition(p Vec2) {
	m.X = p.X
	m.Y = p.Y
	m.growOwnBounds()
}

// growOwnBounds expands the bounding box to cover the morph's current own
// box. The box never shrinks.
func (m *Morph) growOwnBounds() {
	m.expandBounds([4]float64{m.X, m.Y, m.X + m.width, m.Y + m.height})
}

func (m *Morph) expandBounds(b [4]float64) {
	if m.bounds[0] > b[0] {
		m.bounds[0] = b[0]
	}
	if m.bounds[1] > b[1] {
		m.bounds[1] = b[1]
	}
	if m.bounds[2] < b[2] {
		m.bounds[2] = b[2]
	}
	if m.bounds[3] < b[3] {
		m.bounds[3] = b[3]
	}
}

// Bounds returns the bounding box as minX, minY, maxX, maxY in the parent's
// coordinate space. The box covers the morph and every descendant ever
// attached; it grows under attachment and never shrinks.
func (m *Morph) Bounds() (minX, minY, maxX, maxY float64) {
	return m.bounds[0], m.bounds[1], m.bounds[2], m.bounds[3]
}

// EffectiveScale returns the product of this morph's scale and all ancestor
// scales. A World root (and a detached morph, which is its own root)
// contributes identity, so EffectiveScale of a root is 1. Computed fresh on
// every call; structural changes need no invalidation.
func (m *Morph) EffectiveScale() float64 {
	if m.isRoot() || m.parent == nil {
		return 1
	}
	return m.Scale * m.parent.EffectiveScale()
}

// ScaledSize returns the base size multiplied by the effective scale.
func (m *Morph) ScaledSize() (w, h float64) {
	s := m.EffectiveScale()
	return m.width * s, m.height * s
}

// WorldPosition returns the position relative to the tree's coordinate
// origin: the sum of local positions up the parent chain. The root is the
// origin.
func (m *Morph) WorldPosition() Vec2 {
	if m.isRoot() {
		return Vec2{}
	}
	if m.parent == nil {
		return Vec2{m.X, m.Y}
	}
	p := m.parent.WorldPosition()
	return Vec2{p.X + m.X, p.Y + m.Y}
}

// AbsolutePosition returns the position in host window coordinates: the
// world position offset by the draw viewport origin the host supplied to
// World.BeginFrame. Pointer hit tests compare against this frame.
func (m *Morph) AbsolutePosition() (x, y float64) {
	if m.isRoot() {
		vp := m.world.frame.Viewport
		return m.X + vp.X, m.Y + vp.Y
	}
	if m.parent == nil {
		return m.X, m.Y
	}
	px, py := m.parent.AbsolutePosition()
	return px + m.X, py + m.Y
}

// --- Visibility ---

// IsHidden reports whether the morph is hidden. Hidden morphs draw nothing
// (including their children) and ignore events.
func (m *Morph) IsHidden() bool { return m.hidden }

// SetHidden sets the hidden flag on this morph and every descendant, so the
// whole subtree stays consistent.
func (m *Morph) SetHidden(hidden bool) {
	m.hidden = hidden
	for _, c := range m.children {
		c.SetHidden(hidden)
	}
}

// DrawCount returns how many times this morph has been drawn. Useful for
// estimating the host's effective frame rate.
func (m *Morph) DrawCount() int { return m.drawCount }

// --- Tree manipulation ---

// AddMorph attaches child to this morph. The child inherits this morph's
// world transitively and this morph's bounding box expands to cover the
// child's. If child already has a parent it is detached from it first.
// Panics if child is nil or is an ancestor of this morph (cycle).
func (m *Morph) AddMorph(child *Morph) {
	if child == nil {
		panic("morpheas: cannot add nil morph")
	}
	if isAncestor(child, m) {
		panic("morpheas: adding morph would create a cycle")
	}
	if m.world != nil && m.world.debug {
		debugCheckDeleted(m, "AddMorph (parent)")
		debugCheckDeleted(child, "AddMorph (child)")
		debugCheckTreeDepth(child)
		debugCheckChildCount(m)
	}
	if child.parent != nil {
		child.parent.removeChildByPtr(child)
	}
	child.parent = m
	clearWorldCache(child)
	m.children = append(m.children, child)
	m.expandBounds(child.bounds)
}

// RemoveMorph detaches child from this morph. Panics if child's parent is
// not this morph. The child (and its subtree) keeps its state and can be
// attached elsewhere.
func (m *Morph) RemoveMorph(child *Morph) {
	if child.parent != m {
		panic("morpheas: morph's parent is not this morph")
	}
	m.removeChildByPtr(child)
	child.parent = nil
	clearWorldCache(child)
}

// RemoveFromParent detaches this morph from its parent. No-op if detached.
func (m *Morph) RemoveFromParent() {
	if m.parent == nil {
		return
	}
	m.parent.RemoveMorph(m)
}

// Children returns the child list. The returned slice MUST NOT be mutated by
// the caller.
func (m *Morph) Children() []*Morph { return m.children }

// NumChildren returns the number of children.
func (m *Morph) NumChildren() int { return len(m.children) }

// Parent returns the morph's parent, or nil if detached or a root.
func (m *Morph) Parent() *Morph { return m.parent }

// World returns the World this morph is reachable from, or nil while
// detached. The result is resolved by walking parents and cached; the cache
// is invalidated on reparenting.
func (m *Morph) World() *World {
	if m.world == nil && m.parent != nil {
		m.world = m.parent.World()
	}
	return m.world
}

// FindMorphNamed returns the first morph in this subtree (self excluded,
// depth-first, children in insertion order) whose name matches, or nil.
func (m *Morph) FindMorphNamed(name string) *Morph {
	for _, c := range m.children {
		if c.Name == name {
			return c
		}
		if found := c.FindMorphNamed(name); found != nil {
			return found
		}
	}
	return nil
}

// ChildIndexNamed returns the index of the first immediate child with the
// given name, or -1 if there is none. It does not recurse.
func (m *Morph) ChildIndexNamed(name string) int {
	for i, c := range m.children {
		if c.Name == name {
			return i
		}
	}
	return -1
}

// --- Deletion ---

// Delete removes this morph from the tree and recursively deletes it and
// all descendants, releasing any loaded texture resources through the
// world's image provider first.
func (m *Morph) Delete() {
	if m.deleted {
		return
	}
	w := m.World()
	var provider ImageProvider
	if w != nil {
		provider = w.provider
	}
	m.RemoveFromParent()
	m.delete(provider)
}

func (m *Morph) delete(provider ImageProvider) {
	m.deleted = true
	m.releaseTextures(provider)
	for _, c := range m.children {
		c.parent = nil
		c.delete(provider)
	}
	m.children = nil
	m.parent = nil
	m.world = nil
	m.OnLeftClick = nil
	m.OnLeftClickReleased = nil
	m.OnRightClick = nil
	m.OnRightClickReleased = nil
	m.OnMouseIn = nil
	m.OnMouseOut = nil
}

// IsDeleted reports whether this morph has been deleted.
func (m *Morph) IsDeleted() bool { return m.deleted }

// --- Hit testing ---

// IsPointerOver reports whether the world's pointer (in host window
// coordinates) is over this morph. Rectangles use strict containment:
// a pointer exactly on an edge is not over. Circles use center distance
// less than or equal to the radius, with radius = scaled width / 2.
func (m *Morph) IsPointerOver() bool {
	w := m.World()
	if w == nil {
		return false
	}
	p := w.pointerAbsolute
	ax, ay := m.AbsolutePosition()
	sw, sh := m.ScaledSize()
	if m.Shape == ShapeCircle {
		r := sw / 2
		return Distance(p, Vec2{ax + r, ay + r}) <= r
	}
	return p.X > ax && p.X < ax+sw && p.Y > ay && p.Y < ay+sh
}

// --- Rendering ---

// Draw renders this morph and then its children in insertion order (painter's
// algorithm: later children draw over earlier siblings and over this morph).
// A hidden morph draws nothing, children included. Screen geometry is
// recomputed from the current effective scale on every call.
func (m *Morph) Draw(ctx Context) {
	if m.hidden {
		return
	}
	w := m.World()
	if w == nil || w.renderer == nil {
		return
	}
	m.drawCount++

	r := w.renderer
	ax, ay := m.AbsolutePosition()
	sw, sh := m.ScaledSize()

	switch {
	case m.Type == MorphText:
		r.DrawText(m.Text, Vec2{ax, ay}, m.TextSize, m.TextDPI, m.Color)

	case m.activeTexture != "":
		entry := m.textures[m.activeTexture]
		if m.Shape == ShapeCircle {
			rad := sw / 2
			r.DrawTexturedFan(CircleFan(ax+rad, ay+rad, rad), CircleFanUV(), m.Color, entry.handle)
		} else {
			points := [4]Vec2{
				{ax, ay},
				{ax + sw, ay},
				{ax + sw, ay + sh},
				{ax, ay + sh},
			}
			uv := [4]Vec2{{0, 1}, {1, 1}, {1, 0}, {0, 0}}
			r.DrawTexturedQuad(points, uv, m.Color, entry.handle)
		}

	default:
		if m.Shape == ShapeCircle {
			rad := sw / 2
			r.DrawFilledPolygon(CircleFan(ax+rad, ay+rad, rad), m.Color)
		} else {
			outline := RoundedRectOutline(ax, ay, ax+sw, ay+sh, m.RoundStrength, roundCornerSteps, m.Rounded)
			r.DrawFilledPolygon(outline, m.Color)
		}
	}

	for _, c := range m.children {
		c.Draw(ctx)
	}
}

// --- Event dispatch ---

// OnEvent routes an event through this subtree. Children are visited first,
// so descendants may consume the event before this morph acts on it. This
// morph then handles the event only if it handles events at all, is not
// hidden, and no other morph has consumed the event this pass.
//
// Mutating the tree from inside a handler during dispatch is not supported.
func (m *Morph) OnEvent(ev Event, ctx Context) {
	for _, c := range m.children {
		c.OnEvent(ev, ctx)
	}
	if !m.HandlesEvents || m.hidden {
		return
	}
	w := m.World()
	if w == nil || w.consumed {
		return
	}
	switch ev.Type {
	case EventLeftMouse, EventRightMouse:
		m.onMouseDown(ev)
	case EventMouseMove:
		m.onMouseMove(ev)
	}
}

// onMouseDown marks the event consumed and routes a button event to the
// matching click handler, if the pointer is over this morph and it handles
// button events.
func (m *Morph) onMouseDown(ev Event) {
	if !m.IsPointerOver() || !m.HandlesMouseDown {
		return
	}
	w := m.World()
	w.consumed = true
	switch {
	case ev.Type == EventLeftMouse && ev.Value == EventPress:
		m.onLeftClick()
	case ev.Type == EventLeftMouse && ev.Value == EventRelease:
		m.onLeftClickReleased()
	case ev.Type == EventRightMouse && ev.Value == EventPress:
		m.onRightClick()
	case ev.Type == EventRightMouse && ev.Value == EventRelease:
		m.onRightClickReleased()
	}
}

// onMouseMove advances an active drag and then, when the morph handles
// hover, fires the hover handlers: mouse-in while the pointer is over the
// morph, mouse-out otherwise.
func (m *Morph) onMouseMove(ev Event) {
	if m.HandlesDrag && m.drag.active {
		m.dragStep()
	}
	if !m.HandlesMouseOver {
		return
	}
	if m.IsPointerOver() {
		m.onMouseIn()
	} else {
		m.onMouseOut()
	}
}

// --- Click and hover handlers ---
//
// Each handler invokes the bound callback when one is attached; otherwise it
// runs the default behavior. All return the world's current event so hosts
// can inspect what was last routed.

func (m *Morph) onLeftClick() Event {
	if m.OnLeftClick != nil {
		m.OnLeftClick(m)
		return m.World().LastEvent()
	}
	if m.HandlesDrag && !m.drag.active {
		m.startDrag()
	}
	return m.World().LastEvent()
}

func (m *Morph) onLeftClickReleased() Event {
	if m.OnLeftClickReleased != nil {
		m.OnLeftClickReleased(m)
		return m.World().LastEvent()
	}
	if m.drag.active {
		m.drag.reset()
	}
	return m.World().LastEvent()
}

func (m *Morph) onRightClick() Event {
	if m.OnRightClick != nil {
		m.OnRightClick(m)
	}
	return m.World().LastEvent()
}

func (m *Morph) onRightClickReleased() Event {
	if m.OnRightClickReleased != nil {
		m.OnRightClickReleased(m)
	}
	return m.World().LastEvent()
}

func (m *Morph) onMouseIn() Event {
	if m.OnMouseIn != nil {
		m.OnMouseIn(m)
	}
	return m.World().LastEvent()
}

func (m *Morph) onMouseOut() Event {
	if m.OnMouseOut != nil {
		m.OnMouseOut(m)
	}
	return m.World().LastEvent()
}

// --- Helpers ---

// isRoot reports whether this morph is the root of a World.
func (m *Morph) isRoot() bool {
	return m.world != nil && m == &m.world.Morph
}

// isAncestor reports whether candidate is an ancestor of morph (or morph
// itself).
func isAncestor(candidate, morph *Morph) bool {
	for p := morph; p != nil; p = p.parent {
		if p == candidate {
			return true
		}
	}
	return false
}

// removeChildByPtr removes child from m.children without clearing
// child.parent. Uses copy+nil to avoid retaining a dangling pointer in the
// backing array.
func (m *Morph) removeChildByPtr(child *Morph) {
	for i, c := range m.children {
		if c == child {
			copy(m.children[i:], m.children[i+1:])
			m.children[len(m.children)-1] = nil
			m.children = m.children[:len(m.children)-1]
			return
		}
	}
}

// clearWorldCache drops the cached world reference on morph and all its
// descendants. The next World() call re-resolves it by walking parents.
// Never clears a World's own root morph.
func clearWorldCache(morph *Morph) {
	if morph.isRoot() {
		return
	}
	morph.world = nil
	for _, c := range morph.children {
		clearWorldCache(c)
	}
}
