package morpheas

// ImageHandle is an opaque reference to a loaded image owned by an
// ImageProvider. The core never interprets pixel data; it only records the
// handle and the pixel dimensions the provider reports.
type ImageHandle interface {
	// Size returns the image dimensions in pixels.
	Size() (w, h int)
}

// ImageProvider loads and releases the images that back morph textures.
// Binding for draw is folded into the Renderer primitives, which receive the
// handle with every call.
type ImageProvider interface {
	// Load opens the image at path. Errors should be returned wrapped so the
	// caller can test them with errors.Is against its own sentinels.
	Load(path string) (ImageHandle, error)

	// Release frees the resources behind a handle. The handle must not be
	// used afterwards.
	Release(handle ImageHandle)
}

// Renderer is the drawing backend. Morpheas computes all geometry (points
// and texture coordinates) and issues these primitives in paint order; the
// backend owns GPU state, including enabling blending around the draw.
//
// For quads the vertex order is min-x/min-y, max-x/min-y, max-x/max-y,
// min-x/max-y. For fans the first point is the fan center. Texture
// coordinates use a bottom-left origin (V grows upward); backends whose
// images have a top-left origin flip V.
type Renderer interface {
	DrawTexturedQuad(points [4]Vec2, uv [4]Vec2, tint Color, handle ImageHandle)
	DrawTexturedFan(points []Vec2, uv []Vec2, tint Color, handle ImageHandle)
	DrawFilledPolygon(points []Vec2, fill Color)
	DrawText(text string, pos Vec2, size, dpi float64, fill Color)
}
