package code

import (
	"fmt"
	"strings"
)

// DefaultThemeID is used for unknown theme ids.
const DefaultThemeID = "dracula"

// Colors maps token classes to hex colours.
type Colors struct {
	Keyword     string
	String      string
	Comment     string
	Function    string
	Variable    string
	Number      string
	Operator    string
	Punctuation string
	Type        string
	Property    string
	Tag         string
	Attribute   string
	Default     string
}

// Theme is an editor colour scheme.
type Theme struct {
	ID         string `json:"id"`
	Label      string `json:"label"`
	Dark       bool   `json:"isDark"`
	Background string `json:"background"`
	Foreground string `json:"foreground"`
	Colors     Colors `json:"-"`
}

var themes = []Theme{
	{"dracula", "Dracula", true, "#282a36", "#f8f8f2", Colors{
		"#ff79c6", "#f1fa8c", "#6272a4", "#50fa7b", "#f8f8f2", "#bd93f9", "#ff79c6",
		"#f8f8f2", "#8be9fd", "#66d9ef", "#ff79c6", "#50fa7b", "#f8f8f2",
	}},
	{"github-dark", "GitHub Dark", true, "#0d1117", "#c9d1d9", Colors{
		"#ff7b72", "#a5d6ff", "#8b949e", "#d2a8ff", "#c9d1d9", "#79c0ff", "#ff7b72",
		"#c9d1d9", "#ff7b72", "#79c0ff", "#7ee787", "#79c0ff", "#c9d1d9",
	}},
	{"github-light", "GitHub Light", false, "#ffffff", "#24292f", Colors{
		"#cf222e", "#0a3069", "#6e7781", "#8250df", "#24292f", "#0550ae", "#cf222e",
		"#24292f", "#cf222e", "#0550ae", "#116329", "#0550ae", "#24292f",
	}},
	{"material-dark", "Material Dark", true, "#263238", "#eeffff", Colors{
		"#c792ea", "#c3e88d", "#546e7a", "#82aaff", "#eeffff", "#f78c6c", "#89ddff",
		"#89ddff", "#ffcb6b", "#82aaff", "#f07178", "#c792ea", "#eeffff",
	}},
	{"material-light", "Material Light", false, "#fafafa", "#90a4ae", Colors{
		"#7c4dff", "#91b859", "#90a4ae", "#6182b8", "#90a4ae", "#f76d47", "#39adb5",
		"#39adb5", "#ffb62c", "#6182b8", "#e53935", "#7c4dff", "#90a4ae",
	}},
	{"nord", "Nord", true, "#2e3440", "#d8dee9", Colors{
		"#81a1c1", "#a3be8c", "#616e88", "#88c0d0", "#d8dee9", "#b48ead", "#81a1c1",
		"#eceff4", "#8fbcbb", "#88c0d0", "#81a1c1", "#8fbcbb", "#d8dee9",
	}},
	{"one-dark", "One Dark", true, "#282c34", "#abb2bf", Colors{
		"#c678dd", "#98c379", "#5c6370", "#61afef", "#abb2bf", "#d19a66", "#56b6c2",
		"#abb2bf", "#e5c07b", "#61afef", "#e06c75", "#d19a66", "#abb2bf",
	}},
	{"solarized-dark", "Solarized Dark", true, "#002b36", "#839496", Colors{
		"#859900", "#2aa198", "#586e75", "#268bd2", "#839496", "#d33682", "#859900",
		"#839496", "#b58900", "#268bd2", "#268bd2", "#b58900", "#839496",
	}},
	{"solarized-light", "Solarized Light", false, "#fdf6e3", "#657b83", Colors{
		"#859900", "#2aa198", "#93a1a1", "#268bd2", "#657b83", "#d33682", "#859900",
		"#657b83", "#b58900", "#268bd2", "#268bd2", "#b58900", "#657b83",
	}},
	{"tokyo-night", "Tokyo Night", true, "#1a1b26", "#a9b1d6", Colors{
		"#bb9af7", "#9ece6a", "#565f89", "#7aa2f7", "#a9b1d6", "#ff9e64", "#89ddff",
		"#a9b1d6", "#2ac3de", "#7aa2f7", "#f7768e", "#bb9af7", "#a9b1d6",
	}},
}

// Themes returns every theme in display order.
func Themes() []Theme {
	out := make([]Theme, len(themes))
	copy(out, themes)
	return out
}

// LookupTheme returns the theme with the given id.
func LookupTheme(id string) (Theme, bool) {
	for _, t := range themes {
		if t.ID == id {
			return t, true
		}
	}
	return Theme{}, false
}

// ThemeOrDefault is LookupTheme falling back to Dracula.
func ThemeOrDefault(id string) Theme {
	if t, ok := LookupTheme(id); ok {
		return t
	}
	t, _ := LookupTheme(DefaultThemeID)
	return t
}

// ValidateTheme returns an error naming the valid themes when id is not one.
func ValidateTheme(id string) error {
	if _, ok := LookupTheme(id); ok {
		return nil
	}
	ids := make([]string, len(themes))
	for i, t := range themes {
		ids[i] = t.ID
	}
	return fmt.Errorf("invalid theme: %q (must be one of: %s)", id, strings.Join(ids, ", "))
}
