package morpheas

// Text morph defaults, matching common host font settings.
const (
	defaultTextSize = 16
	defaultTextDPI  = 72
)

// NewTextMorph creates a label: a morph that renders a single string through
// Renderer.DrawText at its absolute position. Labels have no intrinsic size
// and do not handle events unless the caller enables them.
func NewTextMorph(name, text string) *Morph {
	m := &Morph{
		Name:     name,
		Type:     MorphText,
		Text:     text,
		TextSize: defaultTextSize,
		TextDPI:  defaultTextDPI,
	}
	morphDefaults(m)
	return m
}
