package settings

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/younextz/screenshot-styler/pkg/config"
)

// Open returns the store selected by c. The redis backend falls back to
// cacheRedisURL when c has no URL of its own; the file backend defaults to
// the settings directory next to the config file.
func Open(ctx context.Context, c config.Settings, cacheRedisURL string) (Store, error) {
	if c.Profile == "" {
		c.Profile = "default"
	}
	switch c.Backend {
	case "", "file":
		dir := c.Path
		if dir == "" {
			p, err := config.DefaultPath()
			if err != nil {
				return nil, err
			}
			dir = filepath.Join(filepath.Dir(p), "settings")
		}
		return NewFileStore(dir, c.Profile)
	case "redis":
		url := c.RedisURL
		if url == "" {
			url = cacheRedisURL
		}
		return NewRedisStore(ctx, url, c.Profile)
	case "mongo":
		return NewMongoStore(ctx, c.MongoURI, c.MongoDatabase, c.Profile)
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, c.Backend)
}
