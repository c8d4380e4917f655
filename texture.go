package morpheas

import "fmt"

// textureEntry records everything the core tracks about a loaded texture:
// the provider handle, the pixel dimensions the provider reported, and the
// display scale recorded when the texture was loaded.
type textureEntry struct {
	handle ImageHandle
	width  int
	height int
	path   string
	scale  float64
}

// LoadTexture loads the named texture through the world's image provider,
// adds it to this morph's texture table, and makes it active. The file path
// is the morph's TexturePath (or the world's, when the morph's is empty)
// joined with the name. The morph must be attached to a world.
//
// The scale is recorded with the texture; activating the texture adopts it
// as the morph's scale.
func (m *Morph) LoadTexture(name string, scale float64) error {
	w := m.World()
	if w == nil || w.provider == nil {
		return fmt.Errorf("load texture %q: %w", name, ErrDetached)
	}
	path := m.TexturePath
	if path == "" {
		path = w.texturePath
	}
	fullPath := path + name
	handle, err := w.provider.Load(fullPath)
	if err != nil {
		return fmt.Errorf("load texture %q from %s: %w: %v", name, fullPath, ErrResourceLoad, err)
	}
	tw, th := handle.Size()
	if m.textures == nil {
		m.textures = make(map[string]*textureEntry)
	}
	m.textures[name] = &textureEntry{
		handle: handle,
		width:  tw,
		height: th,
		path:   fullPath,
		scale:  scale,
	}
	m.activateTexture(name)
	return nil
}

// ActivateTexture makes an already-loaded texture the active one and adopts
// its recorded scale. Returns an error if the name is not in the texture
// table.
func (m *Morph) ActivateTexture(name string) error {
	if _, ok := m.textures[name]; !ok {
		return fmt.Errorf("activate texture %q: not loaded", name)
	}
	m.activateTexture(name)
	return nil
}

func (m *Morph) activateTexture(name string) {
	m.activeTexture = name
	m.Scale = m.textures[name].scale
}

// SetTexture activates the named texture, loading it first (at scale 1) when
// it is not yet in the texture table.
func (m *Morph) SetTexture(name string) error {
	if _, ok := m.textures[name]; ok {
		m.activateTexture(name)
		return nil
	}
	return m.LoadTexture(name, 1)
}

// ActiveTexture returns the name of the texture currently displayed, or ""
// when the morph draws a flat fill.
func (m *Morph) ActiveTexture() string { return m.activeTexture }

// TextureSize returns the pixel dimensions recorded for a loaded texture.
// ok is false if the name is not in the texture table.
func (m *Morph) TextureSize(name string) (w, h int, ok bool) {
	entry, ok := m.textures[name]
	if !ok {
		return 0, 0, false
	}
	return entry.width, entry.height, true
}

// releaseTextures returns every loaded texture to the provider and clears
// the table. Called during Delete.
func (m *Morph) releaseTextures(provider ImageProvider) {
	if provider != nil {
		for _, entry := range m.textures {
			provider.Release(entry.handle)
		}
	}
	m.textures = nil
	m.activeTexture = ""
}
