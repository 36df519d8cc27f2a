package markup

import "testing"

func TestNum(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0"},
		{940, "940"},
		{412.5, "412.5"},
		{-20, "-20"},
		{0.35, "0.35"},
		{1.0 / 3.0, "0.3333333333333333"},
	}

	for _, tt := range tests {
		if got := Num(tt.in); got != tt.want {
			t.Errorf("Num(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestEscape(t *testing.T) {
	got := Escape(`<a href="x">Tom & 'Jerry'</a>`)
	want := "&lt;a href=&quot;x&quot;&gt;Tom &amp; &#39;Jerry&#39;&lt;/a&gt;"
	if got != want {
		t.Errorf("Escape() = %q, want %q", got, want)
	}
}
