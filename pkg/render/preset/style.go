package preset

import (
	"fmt"
	"strconv"
)

// Shadow is an feDropShadow setting. The zero value means no shadow.
type Shadow struct {
	DY           int
	StdDeviation int
	Opacity      float64
}

// Named shadows shared by several presets.
var (
	ShadowSubtle         = Shadow{4, 8, 0.1}
	ShadowSoft           = Shadow{8, 16, 0.15}
	ShadowMedium         = Shadow{10, 20, 0.18}
	ShadowMediumDark     = Shadow{10, 20, 0.25}
	ShadowLarge          = Shadow{12, 24, 0.2}
	ShadowLargeVibrant   = Shadow{12, 24, 0.22}
	ShadowLight          = Shadow{6, 12, 0.1}
	ShadowLightMedium    = Shadow{6, 14, 0.12}
	ShadowBrowserMac     = Shadow{8, 20, 0.2}
	ShadowBrowserWindows = Shadow{6, 16, 0.18}
	ShadowCard           = Shadow{20, 40, 0.3}
	ShadowSoftPale       = Shadow{8, 16, 0.12}
	ShadowSoftDark       = Shadow{8, 16, 0.3}
	ShadowOutline        = Shadow{4, 12, 0.12}
)

// IsZero reports whether s draws nothing.
func (s Shadow) IsZero() bool { return s == Shadow{} }

// Filter returns the <filter id="shadow"> element, or "" for the zero shadow.
func (s Shadow) Filter() string {
	return s.FilterWithID("shadow")
}

// FilterWithID is Filter with a caller-chosen element id.
func (s Shadow) FilterWithID(id string) string {
	if s.IsZero() {
		return ""
	}
	return fmt.Sprintf(`<filter id="%s"><feDropShadow dx="0" dy="%d" stdDeviation="%d" flood-opacity="%s"/></filter>`,
		id, s.DY, s.StdDeviation, strconv.FormatFloat(s.Opacity, 'f', -1, 64))
}

// Style is the card treatment for a preset.
type Style struct {
	CardRadius int
	Shadow     Shadow
}

var styles = map[ID]Style{
	GradientSunset:   {24, ShadowSoft},
	GradientOcean:    {24, ShadowSoft},
	GradientAurora:   {28, ShadowLarge},
	GradientRose:     {24, ShadowSoft},
	GradientMidnight: {24, ShadowMediumDark},
	GradientMint:     {24, ShadowSoft},
	GradientWave:     {24, ShadowSoft},
	MeshCosmic:       {24, ShadowMedium},
	MeshTropical:     {24, ShadowMedium},
	MeshPastel:       {24, ShadowSoftPale},
	MeshNeon:         {28, ShadowLargeVibrant},
	SolidDark:        {20, ShadowSoftDark},
	SolidLight:       {20, ShadowLight},
	SolidGradient:    {20, ShadowLightMedium},
	PatternDots:      {16, ShadowSubtle},
	PatternGrid:      {16, ShadowSubtle},
	PatternNoise:     {16, ShadowSubtle},
	PictureDark:      {24, ShadowSoft},
	PictureLight:     {24, ShadowSoft},
	BrowserMacOS:     {12, ShadowBrowserMac},
	BrowserWindows:   {8, ShadowBrowserWindows},
	DeviceLaptop:     {6, Shadow{}},
	DevicePhone:      {8, Shadow{}},
	CardElevated:     {28, ShadowCard},
	CardOutlined:     {16, ShadowOutline},
}

// StyleFor returns the card style for id. Unknown ids get a square card with
// no shadow.
func StyleFor(id ID) Style {
	return styles[id]
}
