package acquire

import (
	"bytes"
	"context"
	"os/exec"
	"runtime"

	styerr "github.com/younextz/screenshot-styler/pkg/errors"
)

// pasteCommand reads an image from the system clipboard to stdout.
type pasteCommand struct {
	name string
	args []string
}

// pasteCommands lists clipboard readers per GOOS, in the order they are tried.
var pasteCommands = map[string][]pasteCommand{
	"darwin": {
		{"pngpaste", []string{"-"}},
	},
	"linux": {
		{"wl-paste", []string{"--no-newline", "--type", "image/png"}},
		{"xclip", []string{"-selection", "clipboard", "-t", "image/png", "-o"}},
	},
	"windows": {
		{"powershell", []string{"-NoProfile", "-Command",
			"$i = Get-Clipboard -Format Image; if ($i) { $m = New-Object IO.MemoryStream; $i.Save($m, [Drawing.Imaging.ImageFormat]::Png); [Console]::OpenStandardOutput().Write($m.ToArray(), 0, $m.Length) }"}},
	},
}

// FromClipboard reads an image from the system clipboard. It returns
// EMPTY_CLIPBOARD when no reader is installed or none yields image data.
func FromClipboard(ctx context.Context) (*Image, error) {
	return fromCommands(ctx, pasteCommands[runtime.GOOS])
}

func fromCommands(ctx context.Context, cmds []pasteCommand) (*Image, error) {
	for _, c := range cmds {
		if _, err := exec.LookPath(c.name); err != nil {
			continue
		}
		var out bytes.Buffer
		cmd := exec.CommandContext(ctx, c.name, c.args...)
		cmd.Stdout = &out
		if err := cmd.Run(); err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			continue
		}
		if out.Len() == 0 {
			continue
		}
		return FromBytes(out.Bytes(), "clipboard")
	}
	return nil, styerr.New(styerr.ErrCodeEmptyClipboard, "No image found in clipboard")
}
