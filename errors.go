package morpheas

import "errors"

// ErrInvalidGeometry is returned by geometry mutators that reject their
// argument (negative width or height). The morph is left unchanged.
var ErrInvalidGeometry = errors.New("morpheas: invalid geometry")

// ErrResourceLoad wraps texture/image load failures reported by the
// ImageProvider. Morpheas does not retry or substitute a placeholder.
var ErrResourceLoad = errors.New("morpheas: resource load failed")

// ErrDetached is returned by operations that need a live tree (texture
// loading) when the morph is not attached to a World.
var ErrDetached = errors.New("morpheas: morph not attached to a world")
