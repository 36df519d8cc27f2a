package preset

import (
	"strings"
	"testing"
)

func TestCatalog(t *testing.T) {
	all := All()
	if len(all) != 25 {
		t.Fatalf("len(All()) = %d, want 25", len(all))
	}

	seen := map[ID]bool{}
	for _, p := range all {
		if seen[p.ID] {
			t.Errorf("duplicate preset %q", p.ID)
		}
		seen[p.ID] = true

		if p.Label == "" {
			t.Errorf("%s has no label", p.ID)
		}
		want := p.ID == BrowserMacOS || p.ID == BrowserWindows
		if p.SupportsTitle != want {
			t.Errorf("%s SupportsTitle = %v, want %v", p.ID, p.SupportsTitle, want)
		}
	}
}

func TestParse(t *testing.T) {
	for _, id := range IDs() {
		got, ok := Parse(string(id))
		if !ok || got != id {
			t.Errorf("Parse(%q) = %q, %v", id, got, ok)
		}
	}
	if _, ok := Parse("gradient-plaid"); ok {
		t.Error("Parse should reject unknown ids")
	}
	if err := Validate("gradient-plaid"); err == nil || !strings.Contains(err.Error(), "gradient-sunset") {
		t.Errorf("Validate error should list valid presets, got %v", err)
	}
}

func TestKinds(t *testing.T) {
	tests := []struct {
		id   ID
		kind Kind
	}{
		{GradientWave, KindBackground},
		{PictureLight, KindBackground},
		{DeviceLaptop, KindFrame},
		{CardOutlined, KindCard},
		{ID("nope"), ""},
	}
	for _, tt := range tests {
		if got := tt.id.Kind(); got != tt.kind {
			t.Errorf("%s.Kind() = %q, want %q", tt.id, got, tt.kind)
		}
	}
	if !PictureDark.IsPicture() || GradientSunset.IsPicture() {
		t.Error("IsPicture mismatch")
	}
}

func TestStyleForCoversCatalog(t *testing.T) {
	for _, id := range IDs() {
		if _, ok := styles[id]; !ok {
			t.Errorf("no style registered for %s", id)
		}
	}
}

func TestStyleFor(t *testing.T) {
	tests := []struct {
		id     ID
		radius int
		filter string
	}{
		{GradientSunset, 24, `<filter id="shadow"><feDropShadow dx="0" dy="8" stdDeviation="16" flood-opacity="0.15"/></filter>`},
		{CardElevated, 28, `<filter id="shadow"><feDropShadow dx="0" dy="20" stdDeviation="40" flood-opacity="0.3"/></filter>`},
		{PatternGrid, 16, `<filter id="shadow"><feDropShadow dx="0" dy="4" stdDeviation="8" flood-opacity="0.1"/></filter>`},
		{MeshPastel, 24, `<filter id="shadow"><feDropShadow dx="0" dy="8" stdDeviation="16" flood-opacity="0.12"/></filter>`},
		{SolidDark, 20, `<filter id="shadow"><feDropShadow dx="0" dy="8" stdDeviation="16" flood-opacity="0.3"/></filter>`},
		{CardOutlined, 16, `<filter id="shadow"><feDropShadow dx="0" dy="4" stdDeviation="12" flood-opacity="0.12"/></filter>`},
		{DeviceLaptop, 6, ""},
		{ID("unknown"), 0, ""},
	}
	for _, tt := range tests {
		t.Run(string(tt.id), func(t *testing.T) {
			s := StyleFor(tt.id)
			if s.CardRadius != tt.radius {
				t.Errorf("CardRadius = %d, want %d", s.CardRadius, tt.radius)
			}
			if got := s.Shadow.Filter(); got != tt.filter {
				t.Errorf("Filter() = %q, want %q", got, tt.filter)
			}
		})
	}
}
