package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/younextz/screenshot-styler/pkg/render/palette"
	"github.com/younextz/screenshot-styler/pkg/render/preset"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

type pickStep int

const (
	stepPreset pickStep = iota
	stepPalette
	stepDone
)

// PickerModel is the bubbletea model behind `styler pick`: choose a preset,
// then a palette.
type PickerModel struct {
	Presets  []preset.Preset
	Palettes []palette.Palette

	Step   pickStep
	Cursor int
	Offset int
	Height int

	Preset  *preset.Preset
	Palette *palette.Palette

	paletteStart int
}

// NewPickerModel starts the picker with the cursor on the current choices.
func NewPickerModel(presets []preset.Preset, palettes []palette.Palette, currentPreset, currentPalette string) PickerModel {
	m := PickerModel{Presets: presets, Palettes: palettes, Height: 15}
	for i, p := range presets {
		if string(p.ID) == currentPreset {
			m.Cursor = i
		}
	}
	m.scrollTo(m.Cursor)
	for i, p := range palettes {
		if p.ID == currentPalette {
			m.paletteStart = i
		}
	}
	return m
}

// Done reports whether both choices were made.
func (m PickerModel) Done() bool { return m.Step == stepDone }

func (m PickerModel) Init() tea.Cmd {
	return nil
}

func (m PickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.scrollTo(m.Cursor - 1)
			}
		case "down", "j":
			if m.Cursor < m.len()-1 {
				m.scrollTo(m.Cursor + 1)
			}
		case "backspace", "left", "h":
			if m.Step == stepPalette {
				m.Step = stepPreset
				m.Offset = 0
				m.scrollTo(m.indexOfPreset())
			}
		case "enter":
			return m.choose()
		}
	case tea.WindowSizeMsg:
		m.Height = msg.Height - 6
		if m.Height < 5 {
			m.Height = 5
		}
	}
	return m, nil
}

func (m PickerModel) choose() (tea.Model, tea.Cmd) {
	switch m.Step {
	case stepPreset:
		p := m.Presets[m.Cursor]
		m.Preset = &p
		m.Step = stepPalette
		m.Offset = 0
		m.scrollTo(m.paletteStart)
		return m, nil
	case stepPalette:
		p := m.Palettes[m.Cursor]
		m.Palette = &p
		m.Step = stepDone
		return m, tea.Quit
	}
	return m, nil
}

func (m *PickerModel) scrollTo(i int) {
	m.Cursor = i
	if m.Cursor < m.Offset {
		m.Offset = m.Cursor
	}
	if m.Cursor >= m.Offset+m.Height {
		m.Offset = m.Cursor - m.Height + 1
	}
}

func (m PickerModel) len() int {
	if m.Step == stepPalette {
		return len(m.Palettes)
	}
	return len(m.Presets)
}

func (m PickerModel) indexOfPreset() int {
	if m.Preset == nil {
		return 0
	}
	for i, p := range m.Presets {
		if p.ID == m.Preset.ID {
			return i
		}
	}
	return 0
}

func (m PickerModel) View() string {
	var b strings.Builder

	title, headers := "Select Preset", []string{"", "Preset", "Kind", "Title bar"}
	if m.Step == stepPalette {
		title, headers = "Select Palette", []string{"", "Palette", "Swatches", "Tone"}
	}
	b.WriteString(StyleTitle.Render(title))
	if m.Preset != nil {
		b.WriteString(listDimStyle.Render("  " + string(m.Preset.ID)))
	}
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ select  ← back  q quit"))
	b.WriteString("\n\n")

	end := min(m.Offset+m.Height, m.len())
	rows := [][]string{}
	for i := m.Offset; i < end; i++ {
		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}
		rows = append(rows, append([]string{cursor}, m.row(i)...))
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			if m.Offset+row == m.Cursor && col != 2 {
				return listSelectedStyle
			}
			if col == 3 {
				return listDimStyle
			}
			return lipgloss.NewStyle()
		})

	b.WriteString(t.Render())
	b.WriteString("\n\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, m.len())))

	return b.String()
}

func (m PickerModel) row(i int) []string {
	if m.Step == stepPalette {
		p := m.Palettes[i]
		tone := "light"
		if p.IsDark() {
			tone = "dark"
		}
		return []string{p.ID, swatches(p.Swatches), tone}
	}
	p := m.Presets[i]
	title := ""
	if p.SupportsTitle {
		title = iconSuccess
	}
	return []string{string(p.ID), string(p.Kind), title}
}
