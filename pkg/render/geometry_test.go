package render

import (
	"math"
	"testing"
)

func TestCalculateOutputSize(t *testing.T) {
	tests := []struct {
		name string
		w, h float64
		ar   AspectRatio
		want Size
	}{
		{"auto", 800, 600, AspectAuto, Size{920, 720}},
		{"unknown ratio", 800, 600, AspectRatio("7:5"), Size{920, 720}},
		{"wide grows width", 800, 600, AspectWide, Size{1280, 720}},
		{"square grows height", 800, 600, AspectSquare, Size{920, 920}},
		{"classic", 800, 600, AspectClassic, Size{960, 720}},
		{"portrait grows height", 800, 600, AspectPortrait, Size{920, 1636}},
		{"open graph", 800, 600, AspectOpenGraph, Size{1372, 720}},
		{"fractional input", 100.5, 50.2, AspectAuto, Size{221, 171}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalculateOutputSize(tt.w, tt.h, tt.ar)
			if got != tt.want {
				t.Errorf("CalculateOutputSize(%v, %v, %q) = %+v, want %+v", tt.w, tt.h, tt.ar, got, tt.want)
			}
		})
	}
}

func TestCalculateOutputSizeBounds(t *testing.T) {
	sizes := [][2]float64{{1, 1}, {320, 640}, {1920, 1080}, {1080, 1920}, {3000, 200}, {13, 977}}

	for _, ar := range AspectRatios() {
		for _, s := range sizes {
			got := CalculateOutputSize(s[0], s[1], ar)
			minW := int(math.Ceil(s[0] + 2*Padding))
			minH := int(math.Ceil(s[1] + 2*Padding))
			if got.Width < minW || got.Height < minH {
				t.Errorf("%q %v: got %+v, smaller than padded box %dx%d", ar, s, got, minW, minH)
			}

			r, ok := ar.Value()
			if !ok {
				continue
			}
			actual := float64(got.Width) / float64(got.Height)
			// Ceiling of one side moves the ratio by at most one pixel.
			tol := 1/float64(got.Height) + r/float64(got.Height)
			if math.Abs(actual-r) > tol {
				t.Errorf("%q %v: ratio %.4f, want %.4f", ar, s, actual, r)
			}
		}
	}
}

func TestParseAspectRatio(t *testing.T) {
	for _, ar := range AspectRatios() {
		got, ok := ParseAspectRatio(string(ar))
		if !ok || got != ar {
			t.Errorf("ParseAspectRatio(%q) = %q, %v", ar, got, ok)
		}
	}
	if _, ok := ParseAspectRatio("21:9"); ok {
		t.Error("ParseAspectRatio(21:9) should fail")
	}
	if err := ValidateAspectRatio("21:9"); err == nil {
		t.Error("ValidateAspectRatio(21:9) should fail")
	}
}
