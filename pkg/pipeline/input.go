package pipeline

import (
	"context"
	"io"

	"github.com/younextz/screenshot-styler/pkg/acquire"
	styerr "github.com/younextz/screenshot-styler/pkg/errors"
)

// Input names where the screenshot comes from. Exactly one source is used,
// checked in field order.
type Input struct {
	Image     *acquire.Image
	Path      string
	Reader    io.Reader
	Name      string
	Clipboard bool
}

// Source names the input kind for logs and hooks.
func (in Input) Source() string {
	switch {
	case in.Image != nil:
		return "image"
	case in.Path != "":
		return "file"
	case in.Reader != nil:
		return "reader"
	case in.Clipboard:
		return "clipboard"
	}
	return "none"
}

// Acquire loads and validates the screenshot named by in.
func Acquire(ctx context.Context, in Input) (*acquire.Image, error) {
	switch {
	case in.Image != nil:
		return in.Image, nil
	case in.Path != "":
		return acquire.FromFile(in.Path)
	case in.Reader != nil:
		name := in.Name
		if name == "" {
			name = "upload"
		}
		return acquire.FromReader(in.Reader, name)
	case in.Clipboard:
		return acquire.FromClipboard(ctx)
	}
	return nil, styerr.New(styerr.ErrCodeInvalidInput, "no image given")
}
