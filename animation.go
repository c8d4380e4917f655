package morpheas

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// TweenGroup animates up to 4 float64 fields on a Morph simultaneously.
// Create one via the convenience constructors (TweenPosition, TweenColor,
// TweenScale, TweenFade) and call Update(dt) once per host frame; the group
// writes the interpolated values directly into the morph's fields. If the
// target morph is deleted, the group stops immediately.
//
// There is no global animation manager — hosts call Update themselves, in
// keeping with the single-threaded host-driven model.
type TweenGroup struct {
	tweens [4]*gween.Tween
	count  int
	fields [4]*float64
	target *Morph
	Done   bool
}

// Update advances all tweens by dt seconds and writes values to the target
// fields. If the target morph has been deleted, Done is set to true and no
// writes occur.
func (g *TweenGroup) Update(dt float32) {
	if g.Done {
		return
	}
	if g.target != nil && g.target.IsDeleted() {
		g.Done = true
		return
	}

	allDone := true
	for i := 0; i < g.count; i++ {
		val, finished := g.tweens[i].Update(dt)
		*g.fields[i] = float64(val)
		if !finished {
			allDone = false
		}
	}
	g.Done = allDone
}

// TweenPosition creates a TweenGroup that animates the morph's local X and Y
// to the given coordinates over the specified duration using the easing
// function.
func TweenPosition(m *Morph, toX, toY float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{count: 2, target: m}
	g.tweens[0] = gween.New(float32(m.X), float32(toX), duration, fn)
	g.tweens[1] = gween.New(float32(m.Y), float32(toY), duration, fn)
	g.fields[0] = &m.X
	g.fields[1] = &m.Y
	return g
}

// TweenScale creates a TweenGroup that animates the morph's local scale to
// the given value over the specified duration using the easing function.
func TweenScale(m *Morph, to float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{count: 1, target: m}
	g.tweens[0] = gween.New(float32(m.Scale), float32(to), duration, fn)
	g.fields[0] = &m.Scale
	return g
}

// TweenColor creates a TweenGroup that animates all four components of the
// morph's color to the target color over the specified duration.
func TweenColor(m *Morph, to Color, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{count: 4, target: m}
	g.tweens[0] = gween.New(float32(m.Color.R), float32(to.R), duration, fn)
	g.tweens[1] = gween.New(float32(m.Color.G), float32(to.G), duration, fn)
	g.tweens[2] = gween.New(float32(m.Color.B), float32(to.B), duration, fn)
	g.tweens[3] = gween.New(float32(m.Color.A), float32(to.A), duration, fn)
	g.fields[0] = &m.Color.R
	g.fields[1] = &m.Color.G
	g.fields[2] = &m.Color.B
	g.fields[3] = &m.Color.A
	return g
}

// TweenFade creates a TweenGroup that animates only the morph's alpha to the
// given value, leaving RGB untouched. Useful for hover fades.
func TweenFade(m *Morph, to float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{count: 1, target: m}
	g.tweens[0] = gween.New(float32(m.Color.A), float32(to), duration, fn)
	g.fields[0] = &m.Color.A
	return g
}
