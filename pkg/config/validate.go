package config

import (
	"errors"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	styerr "github.com/younextz/screenshot-styler/pkg/errors"
	"github.com/younextz/screenshot-styler/pkg/render"
	"github.com/younextz/screenshot-styler/pkg/render/code"
	"github.com/younextz/screenshot-styler/pkg/render/frame"
	"github.com/younextz/screenshot-styler/pkg/render/preset"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()
		register := func(tag string, ok func(string) bool) {
			_ = v.RegisterValidation(tag, func(fl validator.FieldLevel) bool {
				return ok(fl.Field().String())
			})
		}
		register("preset", func(s string) bool { _, ok := preset.Parse(s); return ok })
		register("title_bar", func(s string) bool { _, ok := frame.ParseTitleBar(s); return ok })
		register("aspect_ratio", func(s string) bool { _, ok := render.ParseAspectRatio(s); return ok })
		register("frame_style", func(s string) bool { _, ok := frame.ParseStyle(s); return ok })
		register("code_theme", func(s string) bool { _, ok := code.LookupTheme(s); return ok })
		register("code_language", func(s string) bool { _, ok := code.LookupLanguage(s); return ok })
		validateInst = v
	})
	return validateInst
}

// Validate checks field constraints and the rules that span fields.
func Validate(cfg *Config) error {
	if cfg == nil {
		return styerr.New(styerr.ErrCodeInvalidConfig, "configuration is nil")
	}
	if err := validatorInstance().Struct(cfg); err != nil {
		return convertValidationError(err)
	}

	if cfg.Cache.Backend == "redis" && cfg.Cache.RedisURL == "" {
		return styerr.New(styerr.ErrCodeInvalidConfig, "cache.redis_url is required for the redis backend")
	}
	switch cfg.Settings.Backend {
	case "redis":
		if cfg.Settings.RedisURL == "" && cfg.Cache.RedisURL == "" {
			return styerr.New(styerr.ErrCodeInvalidConfig, "settings.redis_url is required for the redis backend")
		}
	case "mongo":
		if cfg.Settings.MongoURI == "" {
			return styerr.New(styerr.ErrCodeInvalidConfig, "settings.mongo_uri is required for the mongo backend")
		}
	}

	reg, err := cfg.PaletteRegistry()
	if err != nil {
		return styerr.Wrap(styerr.ErrCodeInvalidPalette, err, "invalid custom palette")
	}
	seen := make(map[string]bool, len(cfg.Palettes))
	for _, p := range cfg.Palettes {
		if seen[p.ID] {
			return styerr.New(styerr.ErrCodeInvalidConfig, "duplicate palette id %q", p.ID)
		}
		seen[p.ID] = true
	}
	if id := cfg.Defaults.Palette; id != "" {
		if _, ok := reg.Lookup(id); !ok {
			return styerr.New(styerr.ErrCodeInvalidConfig, "defaults.palette: unknown palette %q", id)
		}
	}
	return nil
}

func convertValidationError(err error) error {
	var ves validator.ValidationErrors
	if errors.As(err, &ves) && len(ves) > 0 {
		ve := ves[0]
		field := fieldName(ve)
		if ve.Param() != "" {
			return styerr.Wrap(styerr.ErrCodeInvalidConfig, err, "%s failed validation for tag '%s=%s'", field, ve.Tag(), ve.Param())
		}
		return styerr.Wrap(styerr.ErrCodeInvalidConfig, err, "%s failed validation for tag '%s'", field, ve.Tag())
	}
	return styerr.Wrap(styerr.ErrCodeInvalidConfig, err, "invalid configuration")
}

// fieldName turns Config.Defaults.TitleBar into defaults.titlebar.
func fieldName(fe validator.FieldError) string {
	parts := strings.Split(fe.StructNamespace(), ".")
	if len(parts) > 1 {
		parts = parts[1:]
	}
	for i, p := range parts {
		parts[i] = strings.ToLower(p)
	}
	return strings.Join(parts, ".")
}
