package cache

// Keyer builds cache keys. Swapping the Keyer (see [ScopedKeyer]) isolates
// namespaces without touching callers.
type Keyer interface {
	HTTPKey(namespace, key string) string
	AssetKey(id string) string
	ArtifactKey(imageHash string, opts ArtifactKeyOpts) string
}

// ArtifactKeyOpts holds every render option that changes the output bytes.
type ArtifactKeyOpts struct {
	Format        string   `json:"format"`
	Preset        string   `json:"preset"`
	Palette       string   `json:"palette"`
	Swatches      []string `json:"swatches,omitempty"`
	TitleBar      string   `json:"title_bar"`
	AspectRatio   string   `json:"aspect_ratio"`
	FrameStyle    string   `json:"frame_style,omitempty"`
	Animation     string   `json:"animation,omitempty"`
	ReducedMotion bool     `json:"reduced_motion,omitempty"`
	// Background is the hash of the picture href for picture presets, so a
	// render made before the picture loaded is not reused after.
	Background string `json:"background,omitempty"`
}

// DefaultKeyer is the standard key layout.
type DefaultKeyer struct{}

// NewDefaultKeyer returns the standard keyer.
func NewDefaultKeyer() Keyer { return DefaultKeyer{} }

func (DefaultKeyer) HTTPKey(namespace, key string) string {
	return "http:" + namespace + ":" + key
}

func (DefaultKeyer) AssetKey(id string) string {
	return "asset:" + id
}

func (DefaultKeyer) ArtifactKey(imageHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", imageHash, opts)
}
