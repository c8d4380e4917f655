// Package opengl provides an immediate-mode OpenGL (2.1 compatibility
// profile) backend for the morpheas toolkit. It suits hosts that already
// own a legacy GL context and draw overlays with direct vertex submission.
//
// All calls must happen on the thread that owns the GL context.
package opengl

import (
	"fmt"
	"image"
	"image/draw"
	"os"

	_ "image/png"

	"github.com/go-gl/gl/v2.1/gl"

	"github.com/morphkit/morpheas"
)

// Texture is an ImageHandle backed by a GL texture object.
type Texture struct {
	id     uint32
	width  int
	height int
}

// Size returns the texture dimensions in pixels.
func (t *Texture) Size() (w, h int) {
	return t.width, t.height
}

// ID returns the GL texture name.
func (t *Texture) ID() uint32 {
	return t.id
}

// Provider decodes image files and uploads them as GL textures with NEAREST
// filtering.
type Provider struct{}

// NewProvider creates an image provider. The GL context must already be
// initialized.
func NewProvider() *Provider {
	return &Provider{}
}

// Load decodes the image file at path and uploads it to a new GL texture.
func (p *Provider) Load(path string) (morpheas.ImageHandle, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("load image %s: %w", path, err)
	}
	defer f.Close()

	src, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode image %s: %w", path, err)
	}

	// GL wants tightly packed RGBA with row 0 at the bottom (the toolkit's
	// texture coordinates put V=0 at the bottom), so flip rows on upload.
	bounds := src.Bounds()
	rgba := image.NewRGBA(bounds)
	draw.Draw(rgba, bounds, src, bounds.Min, draw.Src)
	flipped := make([]uint8, len(rgba.Pix))
	rowLen := rgba.Stride
	for y := 0; y < bounds.Dy(); y++ {
		row := rgba.Pix[y*rowLen : y*rowLen+rowLen]
		copy(flipped[(bounds.Dy()-1-y)*rowLen:], row)
	}

	var id uint32
	gl.GenTextures(1, &id)
	gl.BindTexture(gl.TEXTURE_2D, id)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA, int32(bounds.Dx()), int32(bounds.Dy()),
		0, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(flipped))
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.BindTexture(gl.TEXTURE_2D, 0)

	return &Texture{id: id, width: bounds.Dx(), height: bounds.Dy()}, nil
}

// Release deletes the GL texture behind the handle.
func (p *Provider) Release(handle morpheas.ImageHandle) {
	if t, ok := handle.(*Texture); ok && t.id != 0 {
		gl.DeleteTextures(1, &t.id)
		t.id = 0
	}
}
