package cli

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"github.com/younextz/screenshot-styler/pkg/pipeline"
	"github.com/younextz/screenshot-styler/pkg/render/preset"
)

// renderCommand styles a screenshot file, or stdin when the path is "-".
func (c *CLI) renderCommand() *cobra.Command {
	var f styleFlags

	cmd := &cobra.Command{
		Use:   "render <image>",
		Short: "Style a PNG or JPEG screenshot",
		Long: `Render places a screenshot on a styled background and writes the result.

Pass "-" to read the image from stdin.`,
		Example: `  styler render shot.png -p mesh-neon -a 16:9 -o styled.svg
  styler render shot.png -p browser-macos --title-bar macos -f svg,png
  cat shot.png | styler render - --copy`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in := pipeline.Input{Path: args[0]}
			if args[0] == "-" {
				in = pipeline.Input{Reader: cmd.InOrStdin(), Name: "stdin"}
			}
			return c.runStyled(cmd.Context(), &f, in, "Styling "+args[0]+"...")
		},
	}
	f.register(cmd)
	return cmd
}

// clipboardCommand styles the image currently on the clipboard.
func (c *CLI) clipboardCommand() *cobra.Command {
	var f styleFlags

	cmd := &cobra.Command{
		Use:     "clipboard",
		Aliases: []string{"paste"},
		Short:   "Style the image on the clipboard",
		Example: `  styler clipboard --copy -p gradient-ocean`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runStyled(cmd.Context(), &f, pipeline.Input{Clipboard: true}, "Styling clipboard image...")
		},
	}
	f.register(cmd)
	return cmd
}

func (c *CLI) runStyled(ctx context.Context, f *styleFlags, in pipeline.Input, message string) error {
	return c.runWith(ctx, f, message, func(ctx context.Context, e *env, opts pipeline.Options) (*pipeline.Result, error) {
		return e.runner.Execute(ctx, in, opts)
	})
}

type runFunc func(ctx context.Context, e *env, opts pipeline.Options) (*pipeline.Result, error)

// runWith resolves options, runs fn under a spinner and delivers the
// artifacts. Every rendering command goes through here.
func (c *CLI) runWith(ctx context.Context, f *styleFlags, message string, fn runFunc) error {
	e, err := c.newEnv(ctx, f.noCache)
	if err != nil {
		return err
	}
	defer e.Close()

	opts, err := c.options(ctx, f, e)
	if err != nil {
		return err
	}
	c.preloadPicture(ctx, e, opts.Preset)

	prog := newProgress(c.Logger)
	spinner := newSpinnerWithContext(ctx, message)
	spinner.Start()
	res, err := fn(ctx, e, opts)
	spinner.Stop()
	if err != nil {
		if spinner.Cancelled() {
			return ctx.Err()
		}
		return err
	}
	prog.done("Rendered " + strings.Join(opts.Formats, ", "))

	if err := c.deliver(ctx, f, res, opts.Formats); err != nil {
		return err
	}
	printStats(res)

	if f.remember {
		if err := c.remember(ctx, opts); err != nil {
			printWarning("Could not remember settings: %v", err)
		}
	}
	return nil
}

// preloadPicture loads the image behind a picture preset. A failure keeps
// the static URL, so it is only a warning.
func (c *CLI) preloadPicture(ctx context.Context, e *env, id string) {
	p, ok := preset.Parse(id)
	if !ok || !p.IsPicture() {
		return
	}
	if err := e.assets.Preload(ctx); err != nil {
		c.Logger.Warn("picture background unavailable", "preset", id, "err", err)
	}
}
