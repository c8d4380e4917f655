package morpheas

import (
	"fmt"
	"os"
)

// debugCheckDeleted panics with a descriptive message when a deleted morph
// is used in a tree operation. Only called when the world is in debug mode;
// in release mode callers skip this entirely.
func debugCheckDeleted(m *Morph, op string) {
	if m.deleted {
		panic(fmt.Sprintf("morpheas debug: %s on deleted morph %q (ID %d)", op, m.Name, m.ID))
	}
}

// debugMaxTreeDepth is the depth past which a warning is printed. Dispatch
// and draw recursion depth equal tree depth, so very deep trees are usually
// a reparenting bug.
const debugMaxTreeDepth = 32

func debugCheckTreeDepth(m *Morph) {
	depth := 0
	for p := m; p != nil; p = p.parent {
		depth++
	}
	if depth > debugMaxTreeDepth {
		_, _ = fmt.Fprintf(os.Stderr, "[morpheas] warning: tree depth %d exceeds %d (morph %q)\n",
			depth, debugMaxTreeDepth, m.Name)
	}
}

// debugMaxChildCount is the child count past which a warning is printed.
const debugMaxChildCount = 1000

func debugCheckChildCount(m *Morph) {
	if len(m.children) > debugMaxChildCount {
		_, _ = fmt.Fprintf(os.Stderr, "[morpheas] warning: morph %q has %d children (threshold %d)\n",
			m.Name, len(m.children), debugMaxChildCount)
	}
}

// debugLogFrame prints per-pass draw stats to stderr after World.Draw.
func (w *World) debugLogFrame() {
	total, visible := 0, 0
	countMorphs(&w.Morph, &total, &visible)
	_, _ = fmt.Fprintf(os.Stderr,
		"[morpheas] frame: %d morphs (%d visible) | pointer (%.0f, %.0f) inside=%v\n",
		total, visible, w.pointerAbsolute.X, w.pointerAbsolute.Y, w.pointerInside)
}

func countMorphs(m *Morph, total, visible *int) {
	for _, c := range m.children {
		*total++
		if !c.hidden {
			*visible++
		}
		countMorphs(c, total, visible)
	}
}
