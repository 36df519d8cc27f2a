package raster

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strconv"
)

const rsvgBinary = "rsvg-convert"

// RSVGAvailable reports whether rsvg-convert is on PATH.
func RSVGAvailable() bool {
	_, err := exec.LookPath(rsvgBinary)
	return err == nil
}

// ToPNG converts svg with rsvg-convert. A positive width scales the output to
// that width, keeping the aspect ratio.
func ToPNG(ctx context.Context, svg []byte, width int) ([]byte, error) {
	var args []string
	if width > 0 {
		args = append(args, "-w", strconv.Itoa(width), "-a")
	}
	return rsvgConvert(ctx, svg, "png", args...)
}

// ToPDF converts svg to a single-page PDF.
func ToPDF(ctx context.Context, svg []byte) ([]byte, error) {
	return rsvgConvert(ctx, svg, "pdf")
}

func rsvgConvert(ctx context.Context, svg []byte, format string, extraArgs ...string) ([]byte, error) {
	if !RSVGAvailable() {
		return nil, fmt.Errorf("%s export requires librsvg. Install with:\n  macOS:  brew install librsvg\n  Linux:  apt install librsvg2-bin", format)
	}

	args := append([]string{"-f", format}, extraArgs...)
	cmd := exec.CommandContext(ctx, rsvgBinary, args...)
	cmd.Stdin = bytes.NewReader(svg)

	var out, errBuf bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &errBuf

	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("rsvg-convert: %v: %s", err, errBuf.String())
	}
	return out.Bytes(), nil
}
