package config

import (
	"bytes"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	styerr "github.com/younextz/screenshot-styler/pkg/errors"
)

// Environment overrides.
const (
	EnvReducedMotion  = "STYLER_REDUCED_MOTION"
	EnvEnableTitleBar = "STYLER_ENABLE_TITLE_BAR"
)

// DefaultPath returns config.toml under the XDG config directory.
func DefaultPath() (string, error) {
	dir, err := baseDir("XDG_CONFIG_HOME", ".config")
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, AppName, "config.toml"), nil
}

// CacheDir returns the cache directory ($XDG_CACHE_HOME/screenshot-styler,
// or ~/.cache/screenshot-styler).
func CacheDir() (string, error) {
	dir, err := baseDir("XDG_CACHE_HOME", ".cache")
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, AppName), nil
}

func baseDir(env, fallback string) (string, error) {
	if dir := os.Getenv(env); dir != "" {
		return dir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, fallback), nil
}

// Load reads the configuration at path. An empty path reads [DefaultPath] and
// tolerates its absence; an explicit path must exist.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		p, err := DefaultPath()
		if err != nil {
			return finish(Default())
		}
		path = p
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) && !explicit {
		return finish(Default())
	}
	if errors.Is(err, fs.ErrNotExist) {
		return nil, styerr.New(styerr.ErrCodeFileNotFound, "config file not found: %s", path)
	}
	if err != nil {
		return nil, styerr.Wrap(styerr.ErrCodeInvalidConfig, err, "read %s", path)
	}

	cfg, err := Parse(data, filepath.Ext(path))
	if err != nil {
		return nil, styerr.Wrap(styerr.ErrCodeInvalidConfig, err, "parse %s", path)
	}
	return finish(cfg)
}

// Parse decodes data over the defaults. ext picks the format: ".yaml" and
// ".yml" are YAML, anything else is TOML. Parse does not validate.
func Parse(data []byte, ext string) (*Config, error) {
	cfg := Default()
	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
			return nil, err
		}
	default:
		md, err := toml.Decode(string(data), cfg)
		if err != nil {
			return nil, err
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return nil, errors.New("unknown key " + undecoded[0].String())
		}
	}
	return cfg, nil
}

func finish(cfg *Config) (*Config, error) {
	if err := ApplyEnv(cfg); err != nil {
		return nil, err
	}
	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ApplyEnv applies environment overrides to cfg.
func ApplyEnv(cfg *Config) error {
	if err := envBool(EnvReducedMotion, &cfg.Defaults.ReducedMotion); err != nil {
		return err
	}
	return envBool(EnvEnableTitleBar, &cfg.Features.TitleBar)
}

func envBool(name string, dst *bool) error {
	v, ok := os.LookupEnv(name)
	if !ok || v == "" {
		return nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return styerr.New(styerr.ErrCodeInvalidConfig, "%s must be true or false, got %q", name, v)
	}
	*dst = b
	return nil
}
