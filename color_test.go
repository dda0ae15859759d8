package brokeh

import (
	"errors"
	"testing"
)

func TestToRGB(t *testing.T) {
	tests := []struct {
		in      string
		r, g, b uint8
		ok      bool
	}{
		{"#FF8C00", 255, 140, 0, true},
		{"D98E48", 217, 142, 72, true},
		{"#ebbf83", 235, 191, 131, true},
		{"#000000", 0, 0, 0, true},
		{"not-a-color", 0, 0, 0, false},
		{"#FFF", 0, 0, 0, false},
		{"##FF8C00", 0, 0, 0, false},
		{"#FF8C0", 0, 0, 0, false},
		{"#FF8C000", 0, 0, 0, false},
		{"#GG8C00", 0, 0, 0, false},
		{"", 0, 0, 0, false},
	}
	for _, tt := range tests {
		r, g, b, ok := ToRGB(tt.in)
		if ok != tt.ok {
			t.Errorf("ToRGB(%q) ok = %v, want %v", tt.in, ok, tt.ok)
			continue
		}
		if r != tt.r || g != tt.g || b != tt.b {
			t.Errorf("ToRGB(%q) = (%d,%d,%d), want (%d,%d,%d)", tt.in, r, g, b, tt.r, tt.g, tt.b)
		}
	}
}

func TestDefaultPaletteDecodes(t *testing.T) {
	for _, hex := range DefaultPalette {
		if _, _, _, ok := ToRGB(hex); !ok {
			t.Errorf("palette entry %q does not decode", hex)
		}
	}
	if err := DefaultPalette.Validate(); err != nil {
		t.Errorf("DefaultPalette.Validate() = %v", err)
	}
}

func TestParseColor(t *testing.T) {
	c, err := ParseColor("#FF0000")
	if err != nil {
		t.Fatalf("ParseColor: %v", err)
	}
	if c != (Color{R: 1, G: 0, B: 0, A: 1}) {
		t.Errorf("ParseColor(#FF0000) = %+v", c)
	}

	_, err = ParseColor("nope")
	if !errors.Is(err, ErrInvalidColor) {
		t.Errorf("err = %v, want ErrInvalidColor", err)
	}
}

func TestPaletteValidate(t *testing.T) {
	if err := (Palette{}).Validate(); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("empty palette err = %v, want ErrInvalidConfig", err)
	}
	if err := (Palette{"#FFFFFF", "#abc"}).Validate(); !errors.Is(err, ErrInvalidColor) {
		t.Errorf("shorthand entry err = %v, want ErrInvalidColor", err)
	}
}

func TestColorToRGBAPremultiplies(t *testing.T) {
	got := Color{R: 1, G: 0.5, B: 0, A: 0.5}.toRGBA()
	if got.A != 127 || got.R != 127 || got.G != 63 || got.B != 0 {
		t.Errorf("toRGBA = %+v, want {127 63 0 127}", got)
	}
}
