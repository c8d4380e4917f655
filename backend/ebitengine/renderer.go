package ebitengine

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/morphkit/morpheas"
)

// whitePixel is a 1x1 white image used as the source for flat fills.
var whitePixel *ebiten.Image

func init() {
	whitePixel = ebiten.NewImage(1, 1)
	whitePixel.Fill(color.White)
}

// Renderer implements morpheas.Renderer on an ebiten target image.
// Call Begin with the screen each frame before World.Draw.
type Renderer struct {
	target *ebiten.Image

	// Reused buffers to avoid per-primitive allocations.
	verts []ebiten.Vertex
	inds  []uint16
}

// NewRenderer creates a renderer with no target. Begin must be called
// before the first draw.
func NewRenderer() *Renderer {
	return &Renderer{
		verts: make([]ebiten.Vertex, 0, 512),
		inds:  make([]uint16, 0, 1024),
	}
}

// Begin sets the draw target for the coming frame.
func (r *Renderer) Begin(target *ebiten.Image) {
	r.target = target
}

// DrawTexturedQuad draws a tinted textured quad.
func (r *Renderer) DrawTexturedQuad(points [4]morpheas.Vec2, uv [4]morpheas.Vec2, tint morpheas.Color, handle morpheas.ImageHandle) {
	img := ebitenImage(handle)
	if r.target == nil || img == nil {
		return
	}
	w, h := handle.Size()
	cr, cg, cb, ca := premultiply(tint)

	r.verts = r.verts[:0]
	for i := 0; i < 4; i++ {
		r.verts = append(r.verts, ebiten.Vertex{
			DstX:   float32(points[i].X),
			DstY:   float32(points[i].Y),
			SrcX:   float32(uv[i].X * float64(w)),
			SrcY:   float32((1 - uv[i].Y) * float64(h)), // core UVs have V=0 at the bottom
			ColorR: cr,
			ColorG: cg,
			ColorB: cb,
			ColorA: ca,
		})
	}
	r.inds = append(r.inds[:0], 0, 1, 2, 0, 2, 3)
	r.target.DrawTriangles(r.verts, r.inds, img, triOptions())
}

// DrawTexturedFan draws a tinted textured triangle fan. The first point is
// the fan center; UVs are parallel to points.
func (r *Renderer) DrawTexturedFan(points []morpheas.Vec2, uv []morpheas.Vec2, tint morpheas.Color, handle morpheas.ImageHandle) {
	img := ebitenImage(handle)
	if r.target == nil || img == nil || len(points) < 3 || len(uv) < len(points) {
		return
	}
	w, h := handle.Size()
	cr, cg, cb, ca := premultiply(tint)

	r.verts = r.verts[:0]
	for i, p := range points {
		r.verts = append(r.verts, ebiten.Vertex{
			DstX:   float32(p.X),
			DstY:   float32(p.Y),
			SrcX:   float32(uv[i].X * float64(w)),
			SrcY:   float32((1 - uv[i].Y) * float64(h)),
			ColorR: cr,
			ColorG: cg,
			ColorB: cb,
			ColorA: ca,
		})
	}
	r.inds = fanIndices(r.inds[:0], len(points))
	r.target.DrawTriangles(r.verts, r.inds, img, triOptions())
}

// DrawFilledPolygon draws a convex polygon as a triangle fan from its first
// vertex using the white-pixel source image.
func (r *Renderer) DrawFilledPolygon(points []morpheas.Vec2, fill morpheas.Color) {
	if r.target == nil || len(points) < 3 {
		return
	}
	cr, cg, cb, ca := premultiply(fill)

	r.verts = r.verts[:0]
	for _, p := range points {
		r.verts = append(r.verts, ebiten.Vertex{
			DstX:   float32(p.X),
			DstY:   float32(p.Y),
			ColorR: cr,
			ColorG: cg,
			ColorB: cb,
			ColorA: ca,
		})
	}
	r.inds = fanIndices(r.inds[:0], len(points))
	r.target.DrawTriangles(r.verts, r.inds, whitePixel, triOptions())
}

// DrawText draws debug-quality text. Ebitengine's debug print uses a fixed
// bitmap font; size, dpi, and fill are ignored. Hosts that need styled text
// should draw it outside the morph tree or supply their own Renderer.
func (r *Renderer) DrawText(text string, pos morpheas.Vec2, size, dpi float64, fill morpheas.Color) {
	if r.target == nil {
		return
	}
	ebitenutil.DebugPrintAt(r.target, text, int(pos.X), int(pos.Y))
}

// --- helpers ---

func ebitenImage(handle morpheas.ImageHandle) *ebiten.Image {
	if i, ok := handle.(*Image); ok {
		return i.img
	}
	return nil
}

// premultiply converts a straight-alpha morpheas color to premultiplied
// float32 components, matching ColorScaleModePremultipliedAlpha.
func premultiply(c morpheas.Color) (cr, cg, cb, ca float32) {
	ca = float32(c.A)
	return float32(c.R) * ca, float32(c.G) * ca, float32(c.B) * ca, ca
}

func triOptions() *ebiten.DrawTrianglesOptions {
	return &ebiten.DrawTrianglesOptions{
		ColorScaleMode: ebiten.ColorScaleModePremultipliedAlpha,
	}
}

// fanIndices appends triangle-fan indices for n vertices: (0, i, i+1).
func fanIndices(inds []uint16, n int) []uint16 {
	for i := 1; i < n-1; i++ {
		inds = append(inds, 0, uint16(i), uint16(i+1))
	}
	return inds
}
