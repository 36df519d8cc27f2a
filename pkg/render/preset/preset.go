// Package preset defines the closed catalogue of presentation presets and the
// card style (corner radius and drop shadow) each one implies.
//
// Preset identifiers are a closed set of [ID] constants. Code that dispatches
// on a preset keys a map by ID and carries a test asserting the map covers
// every entry of [All], which keeps new presets from silently falling through.
package preset

import (
	"fmt"
	"strings"
)

// ID identifies a preset. The string form is the stable identifier used in
// settings, URLs and configuration files.
type ID string

const (
	GradientSunset   ID = "gradient-sunset"
	GradientOcean    ID = "gradient-ocean"
	GradientAurora   ID = "gradient-aurora"
	GradientRose     ID = "gradient-rose"
	GradientMidnight ID = "gradient-midnight"
	GradientMint     ID = "gradient-mint"
	GradientWave     ID = "gradient-wave"

	MeshCosmic   ID = "mesh-cosmic"
	MeshTropical ID = "mesh-tropical"
	MeshPastel   ID = "mesh-pastel"
	MeshNeon     ID = "mesh-neon"

	SolidDark     ID = "solid-dark"
	SolidLight    ID = "solid-light"
	SolidGradient ID = "solid-gradient"

	PatternDots  ID = "pattern-dots"
	PatternGrid  ID = "pattern-grid"
	PatternNoise ID = "pattern-noise"

	PictureDark  ID = "bg-picture-dark"
	PictureLight ID = "bg-picture-light"

	BrowserMacOS   ID = "browser-macos"
	BrowserWindows ID = "browser-windows"
	DeviceLaptop   ID = "device-laptop"
	DevicePhone    ID = "device-phone"

	CardElevated ID = "card-elevated"
	CardOutlined ID = "card-outlined"
)

// DefaultID is the preset used when nothing else is selected.
const DefaultID = GradientSunset

// Kind groups presets by how they decorate the screenshot.
type Kind string

const (
	KindBackground Kind = "background"
	KindFrame      Kind = "frame"
	KindCard       Kind = "card"
)

// Preset is one catalogue entry.
type Preset struct {
	ID            ID     `json:"id"`
	Label         string `json:"label"`
	Kind          Kind   `json:"kind"`
	SupportsTitle bool   `json:"supportsTitle"`
}

var catalog = []Preset{
	{GradientSunset, "Sunset", KindBackground, false},
	{GradientOcean, "Ocean", KindBackground, false},
	{GradientAurora, "Aurora", KindBackground, false},
	{GradientRose, "Rose Gold", KindBackground, false},
	{GradientMidnight, "Midnight", KindBackground, false},
	{GradientMint, "Fresh Mint", KindBackground, false},
	{GradientWave, "Wave", KindBackground, false},
	{MeshCosmic, "Cosmic", KindBackground, false},
	{MeshTropical, "Tropical", KindBackground, false},
	{MeshPastel, "Pastel Dream", KindBackground, false},
	{MeshNeon, "Neon Glow", KindBackground, false},
	{SolidDark, "Slate", KindBackground, false},
	{SolidLight, "Cloud", KindBackground, false},
	{SolidGradient, "Subtle", KindBackground, false},
	{PatternDots, "Dot Matrix", KindBackground, false},
	{PatternGrid, "Grid Lines", KindBackground, false},
	{PatternNoise, "Grain", KindBackground, false},
	{PictureDark, "Picture - Dark", KindBackground, false},
	{PictureLight, "Picture - Light", KindBackground, false},
	{BrowserMacOS, "Browser – macOS", KindFrame, true},
	{BrowserWindows, "Browser – Windows", KindFrame, true},
	{DeviceLaptop, "Device – Laptop", KindFrame, false},
	{DevicePhone, "Device – Phone", KindFrame, false},
	{CardElevated, "Card – Elevated", KindCard, false},
	{CardOutlined, "Card – Outlined", KindCard, false},
}

var byID = func() map[ID]Preset {
	m := make(map[ID]Preset, len(catalog))
	for _, p := range catalog {
		m[p.ID] = p
	}
	return m
}()

// All returns the catalogue in display order.
func All() []Preset {
	out := make([]Preset, len(catalog))
	copy(out, catalog)
	return out
}

// IDs returns every preset id in display order.
func IDs() []ID {
	out := make([]ID, len(catalog))
	for i, p := range catalog {
		out[i] = p.ID
	}
	return out
}

// Parse reports whether s names a preset.
func Parse(s string) (ID, bool) {
	p, ok := byID[ID(s)]
	return p.ID, ok
}

// Validate returns an error naming the valid presets when s is not one.
func Validate(s string) error {
	if _, ok := Parse(s); ok {
		return nil
	}
	names := make([]string, len(catalog))
	for i, p := range catalog {
		names[i] = string(p.ID)
	}
	return fmt.Errorf("invalid preset: %q (must be one of: %s)", s, strings.Join(names, ", "))
}

// Lookup returns the catalogue entry for id.
func Lookup(id ID) (Preset, bool) {
	p, ok := byID[id]
	return p, ok
}

// Kind returns the preset kind, or the empty Kind for unknown ids.
func (id ID) Kind() Kind { return byID[id].Kind }

// SupportsTitle reports whether a title bar may be drawn for this preset.
func (id ID) SupportsTitle() bool { return byID[id].SupportsTitle }

// IsPicture reports whether the preset uses a raster picture background.
func (id ID) IsPicture() bool { return id == PictureDark || id == PictureLight }

// Known reports whether id is part of the catalogue.
func (id ID) Known() bool {
	_, ok := byID[id]
	return ok
}

func (id ID) String() string { return string(id) }
