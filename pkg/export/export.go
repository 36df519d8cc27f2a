// Package export delivers rendered artifacts: to the system clipboard when a
// clipboard writer is available, otherwise to a file.
package export

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"

	styerr "github.com/younextz/screenshot-styler/pkg/errors"
)

// FilePrefix starts every downloaded file name.
const FilePrefix = "styled-screenshot-"

// Result reports how an artifact was delivered.
type Result string

const (
	Copied     Result = "copied"
	Downloaded Result = "downloaded"
)

// Outcome is the result of CopyOrDownload. Path is set for downloads.
type Outcome struct {
	Result Result `json:"result"`
	Path   string `json:"path,omitempty"`
}

type copyCommand struct {
	name string
	args []string
}

// copyCommands returns the clipboard writers to try for mime on goos.
func copyCommands(goos, mime string) []copyCommand {
	switch goos {
	case "linux", "freebsd", "openbsd":
		return []copyCommand{
			{"wl-copy", []string{"--type", mime}},
			{"xclip", []string{"-selection", "clipboard", "-t", mime, "-i"}},
		}
	case "darwin":
		// pbcopy only takes text.
		if isText(mime) {
			return []copyCommand{{"pbcopy", nil}}
		}
	}
	return nil
}

func isText(mime string) bool {
	return strings.HasPrefix(mime, "text/") || mime == "image/svg+xml"
}

// CopyOrDownload writes data to the clipboard, falling back to
// dir/styled-screenshot-<uuid>.<ext> when no writer succeeds.
func CopyOrDownload(ctx context.Context, data []byte, mime, dir string) (Outcome, error) {
	return copyOrDownload(ctx, copyCommands(runtime.GOOS, mime), data, mime, dir)
}

func copyOrDownload(ctx context.Context, cmds []copyCommand, data []byte, mime, dir string) (Outcome, error) {
	if len(data) == 0 {
		return Outcome{}, styerr.New(styerr.ErrCodeExport, "nothing to export")
	}
	if err := copyTo(ctx, cmds, data); err == nil {
		return Outcome{Result: Copied}, nil
	} else if ctx.Err() != nil {
		return Outcome{}, ctx.Err()
	}

	path := filepath.Join(dir, FileName(mime))
	if err := WriteFile(path, data); err != nil {
		return Outcome{}, err
	}
	return Outcome{Result: Downloaded, Path: path}, nil
}

// copyTo pipes data into the first clipboard writer that is installed and
// exits cleanly.
func copyTo(ctx context.Context, cmds []copyCommand, data []byte) error {
	var lastErr error = fmt.Errorf("no clipboard writer available")
	for _, c := range cmds {
		if _, err := exec.LookPath(c.name); err != nil {
			continue
		}
		cmd := exec.CommandContext(ctx, c.name, c.args...)
		cmd.Stdin = bytes.NewReader(data)
		if err := cmd.Run(); err != nil {
			lastErr = fmt.Errorf("%s: %w", c.name, err)
			continue
		}
		return nil
	}
	return lastErr
}

// FileName returns a fresh download name for mime.
func FileName(mime string) string {
	return FilePrefix + uuid.NewString() + Extension(mime)
}

// Extension returns the file extension, dot included, for mime.
func Extension(mime string) string {
	if m := mimetype.Lookup(mime); m != nil && m.Extension() != "" {
		return m.Extension()
	}
	return ".bin"
}

// WriteFile writes data to path, creating parent directories.
func WriteFile(path string, data []byte) error {
	if err := styerr.ValidatePath(path); err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return styerr.Wrap(styerr.ErrCodeExport, err, "create %s", dir)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return styerr.Wrap(styerr.ErrCodeExport, err, "write %s", path)
	}
	return nil
}
