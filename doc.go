// Package morpheas is a retained-mode widget toolkit for embedding host
// applications.
//
// Morpheas maintains a tree of visual elements called morphs, each owning
// position, size, texture/color state, and children, and drives per-frame
// rendering plus pointer-event dispatch against that tree. Everything tied
// to a specific host — image decoding, window geometry, native draw calls —
// lives behind the [Renderer] and [ImageProvider] interfaces; backends for
// Ebitengine and OpenGL ship in the backend subdirectories.
//
// # Quick start
//
// Create a [World] with your backend, add morphs, and drive it from the
// host's render and input loops:
//
//	world := morpheas.NewWorld(morpheas.WorldConfig{
//		Renderer: renderer,
//		Provider: provider,
//	})
//
//	panel := morpheas.NewMorph("panel", 200, 120)
//	panel.Color = morpheas.Color{R: 0.2, G: 0.2, B: 0.25, A: 0.9}
//	world.AddMorph(panel)
//
//	button := morpheas.NewButtonMorph("ok", 80, 24)
//	button.OnLeftClick = func(b *morpheas.Morph) { fmt.Println("clicked") }
//	panel.AddMorph(button)
//
// Per render pass the host calls [World.BeginFrame] with the current
// viewport and then [World.Draw]; per pointer event it calls
// [World.OnEvent] with the event and the input window's geometry, then
// checks [World.Consumed] to decide whether to pass the event through to
// the surrounding application.
//
// # Widget tree
//
// Every element is a [Morph]. Positions are local to the parent; scale
// multiplies down the tree (uniform scale and translation only — there is
// no layout engine and no arbitrary transforms). Children draw over their
// parent and over earlier siblings, and see events before their ancestors:
// the first morph to consume a button event wins.
//
// Morpheas is single-threaded and host-driven. All calls happen on the
// host's loop; mutating the tree from inside an event handler during
// dispatch is not supported.
package morpheas
