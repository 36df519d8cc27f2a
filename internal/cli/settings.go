package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	styerr "github.com/younextz/screenshot-styler/pkg/errors"
	"github.com/younextz/screenshot-styler/pkg/render"
	"github.com/younextz/screenshot-styler/pkg/render/frame"
	"github.com/younextz/screenshot-styler/pkg/render/preset"
	"github.com/younextz/screenshot-styler/pkg/settings"
)

func (c *CLI) settingsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Show or change remembered choices",
		Long: `Settings are the choices later renders start from when a flag is not
given. They are stored per profile in the backend named by the
[settings] section of the config file (file, redis or mongo).`,
	}

	cmd.AddCommand(c.settingsShowCommand())
	cmd.AddCommand(c.settingsSetCommand())
	cmd.AddCommand(c.settingsResetCommand())

	return cmd
}

// withStore opens the settings store for the duration of fn.
func (c *CLI) withStore(ctx context.Context, fn func(settings.Store) error) error {
	store, err := settings.Open(ctx, c.Config.Settings, c.Config.Cache.RedisURL)
	if err != nil {
		return err
	}
	defer store.Close()
	return fn(store)
}

func (c *CLI) settingsShowCommand() *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the remembered choices",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.withStore(cmd.Context(), func(store settings.Store) error {
				s, err := store.Load(cmd.Context())
				if err != nil {
					return err
				}
				resolved := s.Resolve(settings.Defaults())
				if asJSON {
					return writeJSON(cmd.OutOrStdout(), resolved)
				}
				printSettings(c.Config.Settings.Profile, s, resolved)
				return nil
			})
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print as JSON")
	return cmd
}

func printSettings(profile string, stored, resolved settings.Settings) {
	fmt.Println(StyleTitle.Render("Profile " + profile))
	row := func(key, set, value string) {
		if set == "" {
			value += StyleDim.Render(" (default)")
		}
		printKeyValue(key, value)
	}
	row("preset", stored.PresetID, resolved.PresetID)
	row("palette", stored.PaletteID, resolved.PaletteID)
	row("title bar", stored.TitleBar, resolved.TitleBar)
	row("aspect ratio", stored.AspectRatio, resolved.AspectRatio)
	row("frame style", stored.FrameStyle, resolved.FrameStyle)
	animSet := ""
	if stored.AnimationsEnabled != nil {
		animSet = "set"
	}
	row("animations", animSet, strconv.FormatBool(*resolved.AnimationsEnabled))
}

func (c *CLI) settingsSetCommand() *cobra.Command {
	var (
		patch      settings.Settings
		animations string
	)
	cmd := &cobra.Command{
		Use:   "set",
		Short: "Remember one or more choices",
		Example: `  styler settings set --preset mesh-neon --palette ocean-blue
  styler settings set --animations=true`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if animations != "" {
				on, err := strconv.ParseBool(animations)
				if err != nil {
					return styerr.New(styerr.ErrCodeInvalidInput, "animations must be true or false")
				}
				patch.AnimationsEnabled = settings.Bool(on)
			}
			if err := c.validatePatch(patch); err != nil {
				return err
			}
			if patch.IsZero() {
				return styerr.New(styerr.ErrCodeInvalidInput, "nothing to set")
			}
			return c.withStore(cmd.Context(), func(store settings.Store) error {
				if err := store.Save(cmd.Context(), patch); err != nil {
					return err
				}
				printSuccess("Saved settings for profile %q", c.Config.Settings.Profile)
				return nil
			})
		},
	}
	fl := cmd.Flags()
	fl.StringVar(&patch.PresetID, "preset", "", "preset id")
	fl.StringVar(&patch.PaletteID, "palette", "", "palette id")
	fl.StringVar(&patch.TitleBar, "title-bar", "", "title bar: none, macos, windows")
	fl.StringVar(&patch.AspectRatio, "aspect", "", "aspect ratio")
	fl.StringVar(&patch.FrameStyle, "frame-style", "", "frame style id")
	fl.StringVar(&animations, "animations", "", "animate backgrounds: true or false")
	return cmd
}

// validatePatch rejects unknown ids with the same codes a render would use.
func (c *CLI) validatePatch(p settings.Settings) error {
	if p.PresetID != "" {
		if err := preset.Validate(p.PresetID); err != nil {
			return styerr.Wrap(styerr.ErrCodeInvalidPreset, err, "unknown preset %q", p.PresetID)
		}
	}
	if p.PaletteID != "" {
		reg, err := c.Config.PaletteRegistry()
		if err != nil {
			return err
		}
		if _, ok := reg.Lookup(p.PaletteID); !ok {
			return styerr.New(styerr.ErrCodeInvalidPalette, "unknown palette %q", p.PaletteID)
		}
	}
	if _, ok := frame.ParseTitleBar(p.TitleBar); p.TitleBar != "" && !ok {
		return styerr.New(styerr.ErrCodeInvalidTitleBar, "unknown title bar %q", p.TitleBar)
	}
	if p.AspectRatio != "" {
		if err := render.ValidateAspectRatio(p.AspectRatio); err != nil {
			return styerr.Wrap(styerr.ErrCodeInvalidAspectRatio, err, "unknown aspect ratio %q", p.AspectRatio)
		}
	}
	if _, ok := frame.ParseStyle(p.FrameStyle); p.FrameStyle != "" && !ok {
		return styerr.New(styerr.ErrCodeInvalidFrameStyle, "unknown frame style %q", p.FrameStyle)
	}
	return nil
}

func (c *CLI) settingsResetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Forget every remembered choice",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.withStore(cmd.Context(), func(store settings.Store) error {
				if err := store.Reset(cmd.Context()); err != nil {
					return err
				}
				printSuccess("Reset settings for profile %q", c.Config.Settings.Profile)
				return nil
			})
		},
	}
}
