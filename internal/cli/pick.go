package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/younextz/screenshot-styler/pkg/render/preset"
	"github.com/younextz/screenshot-styler/pkg/settings"
)

// pickCommand chooses a preset and palette interactively and remembers them.
func (c *CLI) pickCommand() *cobra.Command {
	var noSave bool

	cmd := &cobra.Command{
		Use:   "pick",
		Short: "Choose a preset and palette interactively",
		Long: `Pick opens a list of presets, then palettes. The choice is remembered
for later renders unless --no-save is given.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			reg, err := c.Config.PaletteRegistry()
			if err != nil {
				return err
			}
			current := c.loadSettings(ctx).Resolve(settings.Settings{
				PresetID:  c.Config.Defaults.Preset,
				PaletteID: c.Config.Defaults.Palette,
			})

			model := NewPickerModel(preset.All(), reg.All(), current.PresetID, current.PaletteID)
			final, err := tea.NewProgram(model, tea.WithContext(ctx)).Run()
			if err != nil {
				return fmt.Errorf("picker: %w", err)
			}
			picked := final.(PickerModel)
			if !picked.Done() {
				printInfo("Nothing selected")
				return nil
			}

			choice := settings.Settings{PresetID: string(picked.Preset.ID), PaletteID: picked.Palette.ID}
			printSuccess("Picked %s with %s", StyleHighlight.Render(choice.PresetID), StyleHighlight.Render(choice.PaletteID))
			if !noSave {
				store, err := settings.Open(ctx, c.Config.Settings, c.Config.Cache.RedisURL)
				if err != nil {
					return err
				}
				defer store.Close()
				if err := store.Save(ctx, choice); err != nil {
					return err
				}
				printDetail("Saved to profile %q", c.Config.Settings.Profile)
			}
			printNewline()
			printNextStep("Render with it", fmt.Sprintf("styler render shot.png -p %s --palette %s", choice.PresetID, choice.PaletteID))
			return nil
		},
	}
	cmd.Flags().BoolVar(&noSave, "no-save", false, "print the choice without remembering it")
	return cmd
}
