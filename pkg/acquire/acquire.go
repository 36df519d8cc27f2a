// Package acquire loads screenshots from files, readers and the system
// clipboard.
//
// Every source goes through the same checks: the bytes must sniff as PNG or
// JPEG, must not exceed [styerr.MaxImageSize], and must decode far enough to
// report dimensions within [styerr.MaxImageSide] and [styerr.MaxImagePixels]. Failures carry the coded errors the CLI and the HTTP
// service show to users.
//
//	img, err := acquire.FromFile("shot.png")
//	if err != nil {
//	    return err
//	}
//	fmt.Println(img.Width, img.Height)
package acquire

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"

	"github.com/gabriel-vasile/mimetype"

	styerr "github.com/younextz/screenshot-styler/pkg/errors"
)

// MaxImageSize is the largest accepted image in bytes.
const MaxImageSize = styerr.MaxImageSize

// Image is a validated screenshot.
type Image struct {
	Name    string `json:"name,omitempty"`
	Data    []byte `json:"-"`
	DataURL string `json:"-"`
	MIME    string `json:"mime"`
	Width   int    `json:"width"`
	Height  int    `json:"height"`
	Size    int64  `json:"size"`
}

// Decode decodes the full image.
func (img *Image) Decode() (image.Image, error) {
	m, _, err := image.Decode(bytes.NewReader(img.Data))
	if err != nil {
		return nil, styerr.Wrap(styerr.ErrCodeInvalidImageType, err, "Failed to load image")
	}
	return m, nil
}

// FromBytes validates data and returns it as an Image.
func FromBytes(data []byte, name string) (*Image, error) {
	if err := styerr.ValidateImageSize(int64(len(data))); err != nil {
		return nil, err
	}
	mt := mimetype.Detect(data)
	if err := styerr.ValidateMIME(mt.String()); err != nil {
		return nil, err
	}

	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, styerr.Wrap(styerr.ErrCodeInvalidImageType, err, "Failed to load image")
	}
	if err := styerr.ValidateImageDimensions(cfg.Width, cfg.Height); err != nil {
		return nil, err
	}

	return &Image{
		Name:    name,
		Data:    data,
		DataURL: "data:" + mt.String() + ";base64," + base64.StdEncoding.EncodeToString(data),
		MIME:    mt.String(),
		Width:   cfg.Width,
		Height:  cfg.Height,
		Size:    int64(len(data)),
	}, nil
}

// FromReader reads at most MaxImageSize+1 bytes from r. It does not close r.
func FromReader(r io.Reader, name string) (*Image, error) {
	data, err := io.ReadAll(io.LimitReader(r, MaxImageSize+1))
	if err != nil {
		return nil, styerr.Wrap(styerr.ErrCodeInvalidInput, err, "read %s", name)
	}
	return FromBytes(data, name)
}

// FromFile reads the image at path.
func FromFile(path string) (*Image, error) {
	if err := styerr.ValidatePath(path); err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, styerr.New(styerr.ErrCodeFileNotFound, "file not found: %s", path)
		}
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	if info, err := f.Stat(); err == nil {
		if err := styerr.ValidateImageSize(info.Size()); err != nil {
			return nil, err
		}
	}
	return FromReader(f, path)
}
