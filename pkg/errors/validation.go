package errors

import (
	"net/url"
	"path/filepath"
	"regexp"
	"strings"
	"unicode"
)

// MaxImageSize is the largest screenshot accepted, in bytes.
const MaxImageSize = 10 * 1024 * 1024

// Pixel limits for a screenshot. Compressed PNGs can declare dimensions far
// beyond what MaxImageSize suggests.
const (
	MaxImageSide   = 16384
	MaxImagePixels = 50_000_000
)

var allowedImageTypes = map[string]bool{
	"image/png":  true,
	"image/jpeg": true,
}

// ValidateMIME accepts PNG and JPEG.
func ValidateMIME(mime string) error {
	if i := strings.IndexByte(mime, ';'); i >= 0 {
		mime = mime[:i]
	}
	if !allowedImageTypes[strings.TrimSpace(mime)] {
		return New(ErrCodeInvalidImageType, "Please upload a PNG or JPG image")
	}
	return nil
}

// ValidateImageSize rejects empty images and anything over MaxImageSize.
func ValidateImageSize(n int64) error {
	if n <= 0 {
		return New(ErrCodeInvalidInput, "image is empty")
	}
	if n > MaxImageSize {
		return New(ErrCodeImageTooLarge, "File size must be less than 10MB")
	}
	return nil
}

// ValidateImageDimensions rejects images whose decoded size exceeds
// MaxImageSide on either axis or MaxImagePixels in total.
func ValidateImageDimensions(w, h int) error {
	if w <= 0 || h <= 0 {
		return New(ErrCodeInvalidImageType, "Failed to load image")
	}
	if w > MaxImageSide || h > MaxImageSide || int64(w)*int64(h) > MaxImagePixels {
		return New(ErrCodeImageTooLarge, "Image dimensions %dx%d are too large (max %d px per side, %d megapixels)",
			w, h, MaxImageSide, MaxImagePixels/1_000_000)
	}
	return nil
}

// ValidateURL requires an absolute http or https URL.
func ValidateURL(rawURL string) error {
	if rawURL == "" {
		return New(ErrCodeInvalidURL, "URL cannot be empty")
	}
	u, err := url.Parse(rawURL)
	if err != nil || u.Host == "" {
		return New(ErrCodeInvalidURL, "invalid URL: %q", rawURL)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return New(ErrCodeInvalidURL, "URL must use http or https scheme")
	}
	return nil
}

var tweetPathRegex = regexp.MustCompile(`^/[A-Za-z0-9_]{1,15}/status(?:es)?/[0-9]+/?$`)

var tweetHosts = map[string]bool{
	"twitter.com":        true,
	"www.twitter.com":    true,
	"mobile.twitter.com": true,
	"x.com":              true,
	"www.x.com":          true,
}

// ValidateTweetURL accepts twitter.com and x.com status links.
func ValidateTweetURL(rawURL string) error {
	if err := ValidateURL(rawURL); err != nil {
		return err
	}
	u, _ := url.Parse(rawURL)
	if !tweetHosts[strings.ToLower(u.Host)] || !tweetPathRegex.MatchString(u.Path) {
		return New(ErrCodeInvalidURL, "Please enter a valid Tweet URL")
	}
	return nil
}

var hexColorRegex = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// ValidateHexColor accepts #RGB and #RRGGBB.
func ValidateHexColor(c string) error {
	if !hexColorRegex.MatchString(c) {
		return New(ErrCodeInvalidColor, "invalid colour: %q (want #RGB or #RRGGBB)", c)
	}
	return nil
}

// ValidatePath checks an output path supplied by a user or a request.
//
// Rules:
//   - not empty, at most 1024 bytes
//   - no control characters
//   - no ".." components once cleaned
func ValidatePath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}
	const maxPathLength = 1024
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}
	for _, r := range path {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}
	for _, part := range strings.Split(filepath.ToSlash(filepath.Clean(path)), "/") {
		if part == ".." {
			return New(ErrCodeInvalidPath, "path cannot contain path traversal sequences (..)")
		}
	}
	return nil
}

// ValidateFilename checks a bare file name, such as an upload's name.
func ValidateFilename(name string) error {
	if name == "" {
		return New(ErrCodeInvalidPath, "filename cannot be empty")
	}
	if strings.ContainsAny(name, `/\`) || name == "." || name == ".." {
		return New(ErrCodeInvalidPath, "filename cannot contain path separators")
	}
	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "filename contains invalid characters")
		}
	}
	return nil
}
