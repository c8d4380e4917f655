package opengl

import (
	"github.com/go-gl/gl/v2.1/gl"

	"github.com/morphkit/morpheas"
)

// TextFunc draws a string at a position with the given size, dpi, and color.
// Immediate-mode GL has no text facility, so hosts plug in their own (a
// bitmap font atlas, a platform font library, etc.).
type TextFunc func(text string, pos morpheas.Vec2, size, dpi float64, fill morpheas.Color)

// Renderer implements morpheas.Renderer with immediate-mode GL calls.
// Blending is enabled around each primitive and restored afterwards.
type Renderer struct {
	// Text handles DrawText. When nil, text morphs draw nothing.
	Text TextFunc
}

// NewRenderer creates an immediate-mode renderer.
func NewRenderer() *Renderer {
	return &Renderer{}
}

// DrawTexturedQuad draws a tinted textured quad.
func (r *Renderer) DrawTexturedQuad(points [4]morpheas.Vec2, uv [4]morpheas.Vec2, tint morpheas.Color, handle morpheas.ImageHandle) {
	tex, ok := handle.(*Texture)
	if !ok || tex.id == 0 {
		return
	}
	gl.Color4f(float32(tint.R), float32(tint.G), float32(tint.B), float32(tint.A))
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.Enable(gl.TEXTURE_2D)
	gl.BindTexture(gl.TEXTURE_2D, tex.id)

	gl.Begin(gl.QUADS)
	for i := 0; i < 4; i++ {
		gl.TexCoord2f(float32(uv[i].X), float32(uv[i].Y))
		gl.Vertex2f(float32(points[i].X), float32(points[i].Y))
	}
	gl.End()

	gl.Disable(gl.TEXTURE_2D)
	gl.Disable(gl.BLEND)
}

// DrawTexturedFan draws a tinted textured triangle fan. The first point is
// the fan center; UVs are parallel to points.
func (r *Renderer) DrawTexturedFan(points []morpheas.Vec2, uv []morpheas.Vec2, tint morpheas.Color, handle morpheas.ImageHandle) {
	tex, ok := handle.(*Texture)
	if !ok || tex.id == 0 || len(points) < 3 || len(uv) < len(points) {
		return
	}
	gl.Color4f(float32(tint.R), float32(tint.G), float32(tint.B), float32(tint.A))
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.Enable(gl.TEXTURE_2D)
	gl.BindTexture(gl.TEXTURE_2D, tex.id)

	gl.Begin(gl.TRIANGLE_FAN)
	for i, p := range points {
		gl.TexCoord2f(float32(uv[i].X), float32(uv[i].Y))
		gl.Vertex2f(float32(p.X), float32(p.Y))
	}
	gl.End()

	gl.Disable(gl.TEXTURE_2D)
	gl.Disable(gl.BLEND)
}

// DrawFilledPolygon draws a flat-colored convex polygon.
func (r *Renderer) DrawFilledPolygon(points []morpheas.Vec2, fill morpheas.Color) {
	if len(points) < 3 {
		return
	}
	gl.Color4f(float32(fill.R), float32(fill.G), float32(fill.B), float32(fill.A))
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)

	gl.Begin(gl.POLYGON)
	for _, p := range points {
		gl.Vertex2f(float32(p.X), float32(p.Y))
	}
	gl.End()

	gl.Disable(gl.BLEND)
}

// DrawText forwards to the host-supplied Text function.
func (r *Renderer) DrawText(text string, pos morpheas.Vec2, size, dpi float64, fill morpheas.Color) {
	if r.Text != nil {
		r.Text(text, pos, size, dpi, fill)
	}
}
