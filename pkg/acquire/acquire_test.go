package acquire

import (
	"bytes"
	"context"
	"encoding/binary"
	"hash/crc32"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	styerr "github.com/younextz/screenshot-styler/pkg/errors"
)

func encodePNG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{R: 200, G: 40, B: 90, A: 255})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func TestFromBytesPNG(t *testing.T) {
	img, err := FromBytes(encodePNG(t, 32, 18), "shot.png")
	if err != nil {
		t.Fatal(err)
	}
	if img.Width != 32 || img.Height != 18 {
		t.Errorf("size = %dx%d, want 32x18", img.Width, img.Height)
	}
	if img.MIME != "image/png" {
		t.Errorf("MIME = %q", img.MIME)
	}
	if !strings.HasPrefix(img.DataURL, "data:image/png;base64,iVBOR") {
		t.Errorf("DataURL = %.40s", img.DataURL)
	}
	if img.Size != int64(len(img.Data)) {
		t.Errorf("Size = %d, len = %d", img.Size, len(img.Data))
	}

	m, err := img.Decode()
	if err != nil {
		t.Fatal(err)
	}
	if m.Bounds().Dx() != 32 {
		t.Errorf("decoded width = %d", m.Bounds().Dx())
	}
}

func TestFromBytesJPEG(t *testing.T) {
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, image.NewGray(image.Rect(0, 0, 10, 20)), nil); err != nil {
		t.Fatal(err)
	}
	img, err := FromBytes(buf.Bytes(), "shot.jpg")
	if err != nil {
		t.Fatal(err)
	}
	if img.MIME != "image/jpeg" || img.Height != 20 {
		t.Errorf("got %s %dx%d", img.MIME, img.Width, img.Height)
	}
}

// withDimensions rewrites the IHDR chunk of a PNG so it declares w×h
// without carrying the pixels.
func withDimensions(t *testing.T, data []byte, w, h uint32) []byte {
	t.Helper()
	out := append([]byte(nil), data...)
	if string(out[12:16]) != "IHDR" {
		t.Fatal("IHDR is not the first chunk")
	}
	binary.BigEndian.PutUint32(out[16:20], w)
	binary.BigEndian.PutUint32(out[20:24], h)
	binary.BigEndian.PutUint32(out[29:33], crc32.ChecksumIEEE(out[12:29]))
	return out
}

func TestFromBytesRejects(t *testing.T) {
	gif := []byte("GIF89a\x01\x00\x01\x00\x00\x00\x00;")
	truncated := encodePNG(t, 4, 4)[:20]
	huge := withDimensions(t, encodePNG(t, 4, 4), 40000, 40000)
	tall := withDimensions(t, encodePNG(t, 4, 4), 100, 20000)

	tests := []struct {
		name string
		data []byte
		code styerr.Code
	}{
		{"empty", nil, styerr.ErrCodeInvalidInput},
		{"gif", gif, styerr.ErrCodeInvalidImageType},
		{"text", []byte("hello world"), styerr.ErrCodeInvalidImageType},
		{"truncated png", truncated, styerr.ErrCodeInvalidImageType},
		{"too large", make([]byte, MaxImageSize+1), styerr.ErrCodeImageTooLarge},
		{"too many pixels", huge, styerr.ErrCodeImageTooLarge},
		{"side too long", tall, styerr.ErrCodeImageTooLarge},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := FromBytes(tt.data, tt.name)
			if !styerr.Is(err, tt.code) {
				t.Errorf("err = %v, want %s", err, tt.code)
			}
		})
	}
}

func TestFromReaderLimit(t *testing.T) {
	r := bytes.NewReader(make([]byte, MaxImageSize+100))
	if _, err := FromReader(r, "big"); !styerr.Is(err, styerr.ErrCodeImageTooLarge) {
		t.Errorf("err = %v, want IMAGE_TOO_LARGE", err)
	}
}

func TestFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "shot.png")
	if err := os.WriteFile(path, encodePNG(t, 8, 8), 0o644); err != nil {
		t.Fatal(err)
	}

	img, err := FromFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if img.Name != path || img.Width != 8 {
		t.Errorf("img = %+v", img)
	}

	if _, err := FromFile(filepath.Join(dir, "missing.png")); !styerr.Is(err, styerr.ErrCodeFileNotFound) {
		t.Errorf("missing file err = %v", err)
	}
	if _, err := FromFile(""); !styerr.Is(err, styerr.ErrCodeInvalidPath) {
		t.Errorf("empty path err = %v", err)
	}
}

func TestFromCommandsEmpty(t *testing.T) {
	_, err := fromCommands(context.Background(), []pasteCommand{
		{"screenshot-styler-no-such-binary", nil},
	})
	if !styerr.Is(err, styerr.ErrCodeEmptyClipboard) {
		t.Fatalf("err = %v, want EMPTY_CLIPBOARD", err)
	}
	if styerr.UserMessage(err) != "No image found in clipboard" {
		t.Errorf("message = %q", styerr.UserMessage(err))
	}
}

func TestFromCommandsReadsStdout(t *testing.T) {
	if _, err := os.Stat("/bin/cat"); err != nil {
		t.Skip("cat not available")
	}
	path := filepath.Join(t.TempDir(), "clip.png")
	if err := os.WriteFile(path, encodePNG(t, 5, 3), 0o644); err != nil {
		t.Fatal(err)
	}

	img, err := fromCommands(context.Background(), []pasteCommand{
		{"false", nil},
		{"cat", []string{path}},
	})
	if err != nil {
		t.Fatal(err)
	}
	if img.Name != "clipboard" || img.Width != 5 || img.Height != 3 {
		t.Errorf("img = %+v", img)
	}
}
