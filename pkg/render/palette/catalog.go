package palette

// DefaultID is the palette used when nothing else is selected.
const DefaultID = "sunset-warm"

var builtin = []Palette{
	{ID: "sunset-warm", Label: "Sunset Warm", Swatches: []string{"#2D1B2E", "#5C2E46", "#E63946", "#F77F00", "#FCBF49"}},
	{ID: "ocean-blue", Label: "Ocean Blue", Swatches: []string{"#0A1128", "#1F2D5C", "#3D5A80", "#98C1D9", "#E0FBFC"}},
	{ID: "neon-purple", Label: "Neon Purple", Swatches: []string{"#1A0B2E", "#3C096C", "#7209B7", "#B24BF3", "#F72585"}},
	{ID: "soft-pastel", Label: "Soft Pastel", Swatches: []string{"#F8F9FA", "#E9ECEF", "#FFB3C6", "#BFACE2", "#A8E6CF"}},
	{ID: "minimal-gray", Label: "Minimal Gray", Swatches: []string{"#0F0F0F", "#1A1A1A", "#333333", "#666666", "#CCCCCC"}},
	{ID: "aurora-nights", Label: "Aurora Nights", Swatches: []string{"#0D1321", "#1D2D44", "#3E5C76", "#748CAB", "#F0EBD8"}},
	{ID: "rose-quartz", Label: "Rose Quartz", Swatches: []string{"#2B2024", "#6B4E5B", "#C08497", "#F3D5C0", "#F9F1F0"}},
	{ID: "tropical-vibes", Label: "Tropical Vibes", Swatches: []string{"#1A2238", "#2B4570", "#00B4D8", "#FF6B6B", "#FFE66D"}},
	{ID: "cyber-pink", Label: "Cyber Pink", Swatches: []string{"#0D0221", "#190B28", "#FF00FF", "#FF006E", "#00F5FF"}},
	{ID: "retro-wave", Label: "Retro Wave", Swatches: []string{"#120458", "#4D089A", "#F000FF", "#00D9FF", "#FFED4E"}},
	{ID: "midnight-blue", Label: "Midnight Blue", Swatches: []string{"#03045E", "#0077B6", "#00B4D8", "#90E0EF", "#CAF0F8"}},
	{ID: "electric-blue", Label: "Electric Blue", Swatches: []string{"#001021", "#002147", "#0047AB", "#4169E1", "#00BFFF"}},
	{ID: "forest-green", Label: "Forest Green", Swatches: []string{"#1B2A1F", "#2D5016", "#52734D", "#91C788", "#DDFFBC"}},
	{ID: "arctic-blue", Label: "Arctic Blue", Swatches: []string{"#0B1E3D", "#1A4D7C", "#2B7A9B", "#89C2D9", "#DEEDFF"}},
	{ID: "autumn-leaves", Label: "Autumn Leaves", Swatches: []string{"#2C1810", "#5E3023", "#9D5C3E", "#D4A574", "#F4E4C1"}},
	{ID: "jetbrains-dark", Label: "JetBrains Dark", Swatches: []string{"#0E0E0E", "#1A1A1A", "#00E2FF", "#FF318C", "#FFD600"}},
	{ID: "candy-pop", Label: "Candy Pop", Swatches: []string{"#FFE5EC", "#FFB3C6", "#FF8FAB", "#FB6F92", "#C9184A"}},
	{ID: "toxic-green", Label: "Toxic Green", Swatches: []string{"#0A1F0F", "#1E3A20", "#39FF14", "#7FFF00", "#CCFF00"}},
	{ID: "lava-red", Label: "Lava Red", Swatches: []string{"#1A0000", "#330000", "#8B0000", "#FF4500", "#FFD700"}},
	{ID: "mocha-brown", Label: "Mocha Brown", Swatches: []string{"#2B1700", "#4A2800", "#6F4E37", "#A67B5B", "#D4C5B9"}},
}

// All returns the built-in palettes, most versatile first. The returned slice
// is a copy.
func All() []Palette {
	out := make([]Palette, len(builtin))
	for i, p := range builtin {
		out[i] = p.clone()
	}
	return out
}

// Lookup finds a built-in palette by id.
func Lookup(id string) (Palette, bool) {
	for _, p := range builtin {
		if p.ID == id {
			return p.clone(), true
		}
	}
	return Palette{}, false
}

// Default returns the default palette.
func Default() Palette {
	p, _ := Lookup(DefaultID)
	return p
}

// Registry resolves palette ids against the built-ins plus any custom
// palettes loaded from configuration. Custom palettes shadow built-ins with
// the same id.
type Registry struct {
	custom []Palette
}

// NewRegistry validates custom and returns a registry over it.
func NewRegistry(custom ...Palette) (*Registry, error) {
	for _, p := range custom {
		if err := p.Validate(); err != nil {
			return nil, err
		}
	}
	return &Registry{custom: custom}, nil
}

// Lookup finds a palette by id, custom palettes first.
func (r *Registry) Lookup(id string) (Palette, bool) {
	if r != nil {
		for _, p := range r.custom {
			if p.ID == id {
				return p.clone(), true
			}
		}
	}
	return Lookup(id)
}

// All lists custom palettes followed by the built-ins they do not shadow.
func (r *Registry) All() []Palette {
	if r == nil {
		return All()
	}
	seen := make(map[string]bool, len(r.custom))
	out := make([]Palette, 0, len(r.custom)+len(builtin))
	for _, p := range r.custom {
		seen[p.ID] = true
		out = append(out, p.clone())
	}
	for _, p := range builtin {
		if !seen[p.ID] {
			out = append(out, p.clone())
		}
	}
	return out
}

func (p Palette) clone() Palette {
	p.Swatches = append([]string(nil), p.Swatches...)
	return p
}
