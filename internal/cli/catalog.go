package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/younextz/screenshot-styler/pkg/render"
	"github.com/younextz/screenshot-styler/pkg/render/animation"
	"github.com/younextz/screenshot-styler/pkg/render/code"
	"github.com/younextz/screenshot-styler/pkg/render/frame"
	"github.com/younextz/screenshot-styler/pkg/render/palette"
	"github.com/younextz/screenshot-styler/pkg/render/preset"
)

var catalogHeaderStyle = lipgloss.NewStyle().Foreground(colorGray).Bold(true)

// newTable returns a table in the CLI's house style.
func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers(headers...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == -1:
				return catalogHeaderStyle.Padding(0, 1)
			case col == 0:
				return StyleHighlight.Padding(0, 1)
			}
			return lipgloss.NewStyle().Padding(0, 1)
		})
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func (c *CLI) presetsCommand() *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "presets",
		Short: "List background and frame presets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			all := preset.All()
			if asJSON {
				return writeJSON(cmd.OutOrStdout(), all)
			}
			fmt.Fprintln(cmd.OutOrStdout(), presetTable(all, preset.ID(c.Config.Defaults.Preset)))
			printDetail("Aspect ratios: %s", joinRatios(render.AspectRatios()))
			printDetail("Animations: %s", joinAnimations(animation.Types()))
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print as JSON")
	return cmd
}

func presetTable(all []preset.Preset, current preset.ID) string {
	t := newTable("ID", "Name", "Kind", "Title bar", "")
	for _, p := range all {
		title := ""
		if p.SupportsTitle {
			title = iconSuccess
		}
		marker := ""
		if p.ID == current {
			marker = iconCurrent
		}
		t.Row(string(p.ID), p.Label, string(p.Kind), title, marker)
	}
	return t.Render()
}

func joinRatios(ratios []render.AspectRatio) string {
	s := make([]string, len(ratios))
	for i, r := range ratios {
		s[i] = string(r)
	}
	return strings.Join(s, ", ")
}

func joinAnimations(types []animation.Info) string {
	s := make([]string, len(types))
	for i, t := range types {
		s[i] = string(t.Type)
	}
	return strings.Join(s, ", ")
}

func (c *CLI) palettesCommand() *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "palettes",
		Short: "List colour palettes, including those from the config file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, err := c.Config.PaletteRegistry()
			if err != nil {
				return err
			}
			all := reg.All()
			if asJSON {
				return writeJSON(cmd.OutOrStdout(), all)
			}
			fmt.Fprintln(cmd.OutOrStdout(), paletteTable(all, c.Config.Defaults.Palette))
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print as JSON")
	return cmd
}

func paletteTable(all []palette.Palette, current string) string {
	t := newTable("ID", "Name", "Swatches", "", "")
	for _, p := range all {
		tone := "light"
		if p.IsDark() {
			tone = "dark"
		}
		marker := ""
		if p.ID == current {
			marker = iconCurrent
		}
		t.Row(p.ID, p.Label, swatches(p.Swatches), tone, marker)
	}
	return t.Render()
}

func (c *CLI) framesCommand() *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "frames",
		Short: "List frame styles and title bars",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			styles := frame.Styles()
			titleBars := []frame.TitleBar{frame.TitleBarNone, frame.TitleBarMacOS, frame.TitleBarWindows}
			if asJSON {
				return writeJSON(cmd.OutOrStdout(), map[string]any{
					"styles":     styles,
					"title_bars": titleBars,
					"title_bar":  c.Config.Features.TitleBar,
				})
			}
			t := newTable("ID", "Name", "Description", "")
			for _, s := range styles {
				t.Row(string(s.ID), s.Label, s.Description, styleBadge.Render(s.Badge))
			}
			fmt.Fprintln(cmd.OutOrStdout(), t.Render())
			if c.Config.Features.TitleBar {
				printDetail("Title bars: none, macos, windows (browser presets only)")
			} else {
				printDetail("Title bars are disabled; set features.title_bar = true to enable them")
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print as JSON")
	return cmd
}

func (c *CLI) themesCommand() *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "themes",
		Short: "List code themes, languages and code backgrounds",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if asJSON {
				return writeJSON(cmd.OutOrStdout(), map[string]any{
					"themes":    code.Themes(),
					"languages": code.Languages(),
					"presets":   code.Presets(),
				})
			}
			t := newTable("Theme", "Name", "Colours", "")
			for _, th := range code.Themes() {
				tone := "light"
				if th.Dark {
					tone = "dark"
				}
				t.Row(th.ID, th.Label, swatches([]string{th.Background, th.Foreground}), tone)
			}
			fmt.Fprintln(cmd.OutOrStdout(), t.Render())

			langs := make([]string, 0, len(code.Languages()))
			for _, l := range code.Languages() {
				langs = append(langs, l.ID)
			}
			bgs := make([]string, 0, len(code.Presets()))
			for _, p := range code.Presets() {
				bgs = append(bgs, p.ID)
			}
			printDetail("Languages: %s", strings.Join(langs, ", "))
			printDetail("Backgrounds: %s", strings.Join(bgs, ", "))
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print as JSON")
	return cmd
}
