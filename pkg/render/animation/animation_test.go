package animation

import (
	"strings"
	"testing"
	"time"
)

func TestDuration(t *testing.T) {
	tests := []struct {
		speed Speed
		want  string
	}{
		{Slow, "10s"},
		{Medium, "6s"},
		{Fast, "3s"},
		{Speed("warp"), "6s"},
	}
	for _, tt := range tests {
		if got := Duration(tt.speed); got != tt.want {
			t.Errorf("Duration(%q) = %q, want %q", tt.speed, got, tt.want)
		}
	}
	if DurationOf(Slow) != 10*time.Second {
		t.Error("DurationOf(Slow) should be 10s")
	}
}

func TestDefaultConfig(t *testing.T) {
	tests := []struct {
		typ   Type
		speed Speed
	}{
		{Flow, Medium},
		{Pulse, Slow},
		{Rotate, Slow},
		{Wave, Medium},
		{Shimmer, Fast},
	}
	for _, tt := range tests {
		cfg := DefaultConfig(tt.typ, true)
		if cfg.Speed != tt.speed || !cfg.Enabled || cfg.Type != tt.typ {
			t.Errorf("DefaultConfig(%q) = %+v", tt.typ, cfg)
		}
	}
}

func TestAnimateAttributeOrder(t *testing.T) {
	got := Animate(Params{AttributeName: "x1", Values: "0%;50%;0%", Dur: "6s"})
	want := `<animate attributeName="x1" values="0%;50%;0%" dur="6s" repeatCount="indefinite" calcMode="linear" />`
	if got != want {
		t.Errorf("Animate() =\n%s\nwant\n%s", got, want)
	}

	got = Animate(Params{
		AttributeName: "r", Values: "1;2", Dur: "3s", RepeatCount: "2",
		CalcMode: Spline, KeyTimes: "0;1", KeySplines: easeInOut, Begin: "0.25s",
	})
	want = `<animate attributeName="r" values="1;2" dur="3s" repeatCount="2" calcMode="spline" keyTimes="0;1" keySplines="0.42 0 0.58 1" begin="0.25s" />`
	if got != want {
		t.Errorf("Animate() =\n%s\nwant\n%s", got, want)
	}
}

func TestAnimateTransform(t *testing.T) {
	got := AnimateTransform(TransformParams{
		Params: Params{Values: "0 0;10 0;0 0", Dur: "6s"},
		Type:   "translate",
	})
	want := `<animateTransform attributeName="transform" type="translate" values="0 0;10 0;0 0" dur="6s" repeatCount="indefinite" calcMode="linear" />`
	if got != want {
		t.Errorf("AnimateTransform() =\n%s\nwant\n%s", got, want)
	}
}

func TestAnimatorGating(t *testing.T) {
	enabled := DefaultConfig(Flow, true)
	disabled := DefaultConfig(Flow, false)

	tests := []struct {
		name    string
		cfg     *Config
		reduced bool
		active  bool
	}{
		{"nil config", nil, false, false},
		{"disabled", &disabled, false, false},
		{"reduced motion", &enabled, true, false},
		{"enabled", &enabled, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := New(tt.cfg, tt.reduced)
			if a.Active() != tt.active {
				t.Fatalf("Active() = %v, want %v", a.Active(), tt.active)
			}
			out := a.LinearGradient(0, 50, 100, 50) +
				a.StopColor(0, []string{"#000", "#fff"}) +
				a.Blob(1, 4, 25, 25, 50) +
				a.Opacity("opacity", 0.35) +
				a.Drift(0, 3, 40, 0)
			if tt.active && !strings.Contains(out, "<animate") {
				t.Error("active animator produced no animation")
			}
			if !tt.active && out != "" {
				t.Errorf("inactive animator produced %q", out)
			}
		})
	}
}

func TestLinearGradientFlow(t *testing.T) {
	cfg := DefaultConfig(Flow, true)
	a := New(&cfg, false)

	horizontal := a.LinearGradient(0, 50, 100, 50)
	if !strings.Contains(horizontal, `attributeName="x1" values="0%;50%;0%"`) {
		t.Errorf("horizontal flow should animate x1: %s", horizontal)
	}
	if strings.Contains(horizontal, `attributeName="y1"`) {
		t.Errorf("horizontal flow should not animate y1: %s", horizontal)
	}

	diagonal := a.LinearGradient(0, 0, 100, 100)
	for _, attr := range []string{"x1", "y1", "x2", "y2"} {
		if !strings.Contains(diagonal, `attributeName="`+attr+`"`) {
			t.Errorf("diagonal flow should animate %s", attr)
		}
	}
	if !strings.Contains(diagonal, `calcMode="linear"`) || !strings.Contains(diagonal, `dur="6s"`) {
		t.Errorf("flow should be linear at medium speed: %s", diagonal)
	}
}

func TestBlobStagger(t *testing.T) {
	cfg := DefaultConfig(Wave, true)
	a := New(&cfg, false)

	tests := []struct {
		index int
		begin string
	}{
		{0, `begin="0s"`},
		{1, `begin="0.125s"`},
		{2, `begin="0.25s"`},
		{3, `begin="0.375s"`},
	}
	for _, tt := range tests {
		if got := a.Blob(tt.index, 4, 50, 50, 40); !strings.Contains(got, tt.begin) {
			t.Errorf("Blob(%d) = %s, want %s", tt.index, got, tt.begin)
		}
	}
}

func TestUnknownConfigFallsBack(t *testing.T) {
	a := New(&Config{Type: "spin", Speed: "ludicrous", Enabled: true}, false)
	if a.Type() != Flow {
		t.Errorf("Type() = %q, want flow", a.Type())
	}
	if got := a.LinearGradient(0, 50, 100, 50); !strings.Contains(got, `dur="6s"`) {
		t.Errorf("fallback speed should be medium: %s", got)
	}
	if err := (Config{Type: "spin"}).Validate(); err == nil {
		t.Error("Validate should reject unknown type")
	}
}
