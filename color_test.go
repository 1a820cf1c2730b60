package shade

import (
	"image/color"
	"testing"
)

func TestHexColor(t *testing.T) {
	tests := []struct {
		hex  string
		want Color
	}{
		{"f00", Color{1, 0, 0, 1}},
		{"#0f0", Color{0, 1, 0, 1}},
		{"0000ff", Color{0, 0, 1, 1}},
		{"ffffff00", Color{1, 1, 1, 0}},
	}
	for _, tt := range tests {
		if got := HexColor(tt.hex); got != tt.want {
			t.Errorf("HexColor(%q): got %v, want %v", tt.hex, got, tt.want)
		}
	}
}

func TestMakeColor(t *testing.T) {
	got := MakeColor(color.NRGBA{255, 0, 255, 255})
	want := Color{1, 0, 1, 1}
	if got != want {
		t.Errorf("MakeColor: got %v, want %v", got, want)
	}
}

func TestColorNRGBA(t *testing.T) {
	got := Color{1, 0, 0.5, 1}.NRGBA()
	want := color.NRGBA{255, 0, 127, 255}
	if got != want {
		t.Errorf("NRGBA: got %v, want %v", got, want)
	}

	// Out-of-range components clamp rather than wrap.
	got = Color{2, -1, 0, 1}.NRGBA()
	want = color.NRGBA{255, 0, 0, 255}
	if got != want {
		t.Errorf("NRGBA clamp: got %v, want %v", got, want)
	}
}

func TestColorLerp(t *testing.T) {
	a := Color{0, 0, 0, 1}
	b := Color{1, 1, 1, 1}
	if got, want := a.Lerp(b, 0.5), (Color{0.5, 0.5, 0.5, 1}); got != want {
		t.Errorf("Lerp(0.5): got %v, want %v", got, want)
	}
	if got := a.Lerp(b, 0); got != a {
		t.Errorf("Lerp(0): got %v, want %v", got, a)
	}
	if got := a.Lerp(b, 1); got != b {
		t.Errorf("Lerp(1): got %v, want %v", got, b)
	}
}
