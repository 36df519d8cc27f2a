package assets

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/younextz/screenshot-styler/pkg/integrations"
)

// DirLoader reads static URLs relative to a local directory, typically the
// web app's public/ folder.
type DirLoader struct {
	Root string
}

func (d DirLoader) Load(_ context.Context, path string) ([]byte, error) {
	rel := filepath.FromSlash(strings.TrimPrefix(path, "/"))
	return os.ReadFile(filepath.Join(d.Root, rel))
}

// HTTPLoader fetches static URLs relative to BaseURL.
type HTTPLoader struct {
	BaseURL string
	Client  *integrations.Client
}

func (h HTTPLoader) Load(ctx context.Context, path string) ([]byte, error) {
	url := strings.TrimRight(h.BaseURL, "/") + path
	var data []byte
	err := h.Client.Cached(ctx, url, false, &data, func() error {
		b, _, err := h.Client.GetBytes(ctx, url)
		data = b
		return err
	})
	return data, err
}
