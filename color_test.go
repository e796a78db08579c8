package displayer

import (
	"image/color"
	"testing"
)

func TestHex(t *testing.T) {
	tests := []struct {
		in   string
		want color.NRGBA
	}{
		{"#f00", color.NRGBA{255, 0, 0, 255}},
		{"00ff0080", color.NRGBA{0, 255, 0, 128}},
		{"#123456", color.NRGBA{0x12, 0x34, 0x56, 255}},
		{"bogus", color.NRGBA{0, 0, 0, 255}},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got := Hex(tt.in).Color().(color.NRGBA)
			if got != tt.want {
				t.Errorf("Hex(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestPremultiplied8(t *testing.T) {
	got := NewRGBA(1, 0.5, 0, 0.5).Premultiplied8()
	want := color.RGBA{128, 64, 0, 128}
	if got != want {
		t.Errorf("Premultiplied8() = %v, want %v", got, want)
	}
}

func TestPixel(t *testing.T) {
	if got := Hex("#102030").Pixel(); got != 0x102030 {
		t.Errorf("Pixel() = %#x, want 0x102030", got)
	}
}
