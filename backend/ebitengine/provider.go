// Package ebitengine provides an Ebitengine backend for the morpheas
// toolkit: an ImageProvider backed by *ebiten.Image and a Renderer that
// submits morpheas draw primitives via DrawTriangles.
package ebitengine

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/morphkit/morpheas"
)

// Image is an ImageHandle backed by an *ebiten.Image.
type Image struct {
	img *ebiten.Image
}

// Size returns the image dimensions in pixels.
func (i *Image) Size() (w, h int) {
	b := i.img.Bounds()
	return b.Dx(), b.Dy()
}

// EbitenImage returns the underlying *ebiten.Image.
func (i *Image) EbitenImage() *ebiten.Image {
	return i.img
}

// Provider loads texture files into GPU-backed ebiten images.
type Provider struct{}

// NewProvider creates an image provider.
func NewProvider() *Provider {
	return &Provider{}
}

// Load decodes the image file at path into an *ebiten.Image.
func (p *Provider) Load(path string) (morpheas.ImageHandle, error) {
	img, _, err := ebitenutil.NewImageFromFile(path)
	if err != nil {
		return nil, fmt.Errorf("load image %s: %w", path, err)
	}
	return &Image{img: img}, nil
}

// Release deallocates the image's GPU resources. The handle must not be
// used afterwards.
func (p *Provider) Release(handle morpheas.ImageHandle) {
	if i, ok := handle.(*Image); ok && i.img != nil {
		i.img.Deallocate()
		i.img = nil
	}
}

// FromImage wraps an existing *ebiten.Image in an ImageHandle. Useful for
// tests and for textures generated at run time.
func FromImage(img *ebiten.Image) *Image {
	return &Image{img: img}
}
