package cli

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/younextz/screenshot-styler/pkg/render/palette"
	"github.com/younextz/screenshot-styler/pkg/render/preset"
)

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "backspace":
		return tea.KeyMsg{Type: tea.KeyBackspace}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(t *testing.T, m PickerModel, keys ...string) (PickerModel, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, k := range keys {
		var next tea.Model
		next, cmd = m.Update(key(k))
		m = next.(PickerModel)
	}
	return m, cmd
}

func indexOf[T any](items []T, match func(T) bool) int {
	for i, it := range items {
		if match(it) {
			return i
		}
	}
	return -1
}

func TestPickerStartsOnCurrentChoice(t *testing.T) {
	presets, palettes := preset.All(), palette.All()
	m := NewPickerModel(presets, palettes, "mesh-neon", "ocean-blue")

	want := indexOf(presets, func(p preset.Preset) bool { return p.ID == preset.MeshNeon })
	if m.Cursor != want {
		t.Errorf("cursor = %d, want %d", m.Cursor, want)
	}
	if m.Cursor < m.Offset || m.Cursor >= m.Offset+m.Height {
		t.Errorf("cursor %d outside window [%d, %d)", m.Cursor, m.Offset, m.Offset+m.Height)
	}

	m, cmd := press(t, m, "enter")
	if cmd != nil {
		t.Error("choosing a preset should not quit")
	}
	if m.Preset == nil || m.Preset.ID != preset.MeshNeon {
		t.Fatalf("preset = %+v", m.Preset)
	}
	if got := m.Palettes[m.Cursor].ID; got != "ocean-blue" {
		t.Errorf("palette cursor on %q, want ocean-blue", got)
	}
}

func TestPickerSelectsPresetAndPalette(t *testing.T) {
	presets, palettes := preset.All(), palette.All()
	m := NewPickerModel(presets, palettes, "", "")

	m, _ = press(t, m, "down", "down", "j", "up", "enter")
	if m.Preset.ID != presets[2].ID {
		t.Errorf("preset = %s, want %s", m.Preset.ID, presets[2].ID)
	}
	if !strings.Contains(m.View(), "Select Palette") {
		t.Error("view should switch to palettes")
	}

	m, cmd := press(t, m, "down", "enter")
	if !m.Done() || cmd == nil {
		t.Fatalf("done = %v, cmd = %v", m.Done(), cmd)
	}
	if m.Palette.ID != palettes[1].ID {
		t.Errorf("palette = %s, want %s", m.Palette.ID, palettes[1].ID)
	}
}

func TestPickerBackAndQuit(t *testing.T) {
	presets, palettes := preset.All(), palette.All()
	m := NewPickerModel(presets, palettes, "", "")

	m, _ = press(t, m, "down", "enter", "backspace")
	if m.Step != stepPreset || m.Cursor != 1 {
		t.Errorf("back: step = %d, cursor = %d", m.Step, m.Cursor)
	}
	if !strings.Contains(m.View(), "Select Preset") {
		t.Error("view should show presets after going back")
	}

	m, cmd := press(t, m, "q")
	if cmd == nil || m.Done() {
		t.Errorf("quit: cmd = %v, done = %v", cmd, m.Done())
	}
}

func TestPickerBounds(t *testing.T) {
	presets, palettes := preset.All(), palette.All()
	m := NewPickerModel(presets, palettes, "", "")

	m, _ = press(t, m, "up")
	if m.Cursor != 0 {
		t.Errorf("cursor = %d after up at top", m.Cursor)
	}

	keys := make([]string, len(presets)+5)
	for i := range keys {
		keys[i] = "down"
	}
	m, _ = press(t, m, keys...)
	if m.Cursor != len(presets)-1 {
		t.Errorf("cursor = %d, want last index %d", m.Cursor, len(presets)-1)
	}
	if m.Offset != m.Cursor-m.Height+1 {
		t.Errorf("offset = %d, want window ending at cursor", m.Offset)
	}

	next, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 8})
	if h := next.(PickerModel).Height; h != 5 {
		t.Errorf("height = %d, want minimum 5", h)
	}
}
