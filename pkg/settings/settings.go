// Package settings remembers the last styling choices per profile.
//
// A [Store] keeps one [Settings] record per profile in a JSON file, a Redis
// hash or a MongoDB document. Saving merges: only the fields set in the
// patch overwrite what is stored, so callers can persist one choice at a
// time.
//
//	store, err := settings.Open(ctx, cfg.Settings, cfg.Cache.RedisURL)
//	if err != nil {
//	    return err
//	}
//	defer store.Close()
//
//	_ = store.Save(ctx, settings.Settings{PresetID: "mesh-neon"})
//	s, _ := store.Load(ctx)
//	s = s.Resolve(settings.Defaults())
package settings

import (
	"context"
	"errors"
	"strconv"

	"github.com/younextz/screenshot-styler/pkg/render"
	"github.com/younextz/screenshot-styler/pkg/render/frame"
	"github.com/younextz/screenshot-styler/pkg/render/palette"
	"github.com/younextz/screenshot-styler/pkg/render/preset"
)

// ErrUnknownBackend is returned by Open for an unsupported backend name.
var ErrUnknownBackend = errors.New("unknown settings backend")

// Field names shared by every backend. They match the keys the web app keeps
// in local storage.
const (
	KeyPreset      = "screenshot-styler-preset"
	KeyPalette     = "screenshot-styler-palette"
	KeyTitleBar    = "screenshot-styler-titlebar"
	KeyAspectRatio = "screenshot-styler-aspect"
	KeyAnimations  = "screenshot-styler-animations"
	KeyFrameStyle  = "screenshot-styler-frame-style"
)

// Settings is one profile's remembered choices. Empty strings and a nil
// AnimationsEnabled mean "not set".
type Settings struct {
	PresetID          string `json:"presetId,omitempty" bson:"presetId,omitempty"`
	PaletteID         string `json:"paletteId,omitempty" bson:"paletteId,omitempty"`
	TitleBar          string `json:"titleBar,omitempty" bson:"titleBar,omitempty"`
	AspectRatio       string `json:"aspectRatio,omitempty" bson:"aspectRatio,omitempty"`
	AnimationsEnabled *bool  `json:"animationsEnabled,omitempty" bson:"animationsEnabled,omitempty"`
	FrameStyle        string `json:"frameStyle,omitempty" bson:"frameStyle,omitempty"`
}

// Store persists settings for one profile.
type Store interface {
	// Load returns the stored settings, or zero Settings when nothing was saved.
	Load(ctx context.Context) (Settings, error)
	// Save merges patch into the stored settings.
	Save(ctx context.Context, patch Settings) error
	// Reset forgets everything stored for the profile.
	Reset(ctx context.Context) error
	Close() error
}

// Bool returns a pointer to b, for AnimationsEnabled.
func Bool(b bool) *bool { return &b }

// Defaults returns the built-in choices.
func Defaults() Settings {
	return Settings{
		PresetID:          string(preset.DefaultID),
		PaletteID:         palette.DefaultID,
		TitleBar:          string(frame.TitleBarNone),
		AspectRatio:       string(render.DefaultAspectRatio),
		AnimationsEnabled: Bool(false),
		FrameStyle:        string(frame.StyleNone),
	}
}

// IsZero reports whether no field is set.
func (s Settings) IsZero() bool {
	return s == Settings{}
}

// Merge returns s with every field set in patch overwritten.
func (s Settings) Merge(patch Settings) Settings {
	if patch.PresetID != "" {
		s.PresetID = patch.PresetID
	}
	if patch.PaletteID != "" {
		s.PaletteID = patch.PaletteID
	}
	if patch.TitleBar != "" {
		s.TitleBar = patch.TitleBar
	}
	if patch.AspectRatio != "" {
		s.AspectRatio = patch.AspectRatio
	}
	if patch.AnimationsEnabled != nil {
		s.AnimationsEnabled = Bool(*patch.AnimationsEnabled)
	}
	if patch.FrameStyle != "" {
		s.FrameStyle = patch.FrameStyle
	}
	return s
}

// Sanitize clears fields that no longer name a known preset, title bar,
// aspect ratio or frame style. Palette ids are left alone since custom
// palettes come from configuration.
func (s Settings) Sanitize() Settings {
	if _, ok := preset.Parse(s.PresetID); !ok {
		s.PresetID = ""
	}
	if _, ok := frame.ParseTitleBar(s.TitleBar); !ok {
		s.TitleBar = ""
	}
	if _, ok := render.ParseAspectRatio(s.AspectRatio); !ok {
		s.AspectRatio = ""
	}
	if _, ok := frame.ParseStyle(s.FrameStyle); !ok {
		s.FrameStyle = ""
	}
	return s
}

// Resolve fills every unset or stale field from defaults.
func (s Settings) Resolve(defaults Settings) Settings {
	return defaults.Merge(s.Sanitize())
}

// Fields returns the set fields keyed by their storage names.
func (s Settings) Fields() map[string]string {
	m := make(map[string]string, 6)
	put := func(k, v string) {
		if v != "" {
			m[k] = v
		}
	}
	put(KeyPreset, s.PresetID)
	put(KeyPalette, s.PaletteID)
	put(KeyTitleBar, s.TitleBar)
	put(KeyAspectRatio, s.AspectRatio)
	put(KeyFrameStyle, s.FrameStyle)
	if s.AnimationsEnabled != nil {
		m[KeyAnimations] = strconv.FormatBool(*s.AnimationsEnabled)
	}
	return m
}

// FromFields is the inverse of Fields. Like the web app, an animations
// value other than "true" reads as false.
func FromFields(m map[string]string) Settings {
	s := Settings{
		PresetID:    m[KeyPreset],
		PaletteID:   m[KeyPalette],
		TitleBar:    m[KeyTitleBar],
		AspectRatio: m[KeyAspectRatio],
		FrameStyle:  m[KeyFrameStyle],
	}
	if v, ok := m[KeyAnimations]; ok {
		s.AnimationsEnabled = Bool(v == "true")
	}
	return s
}
