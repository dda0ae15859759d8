package brokeh

import "testing"

func TestGlowSize(t *testing.T) {
	tests := []struct {
		radius float64
		want   int
	}{
		{100, 210},
		{200, 420},
		{10, 21},
		{0.1, 1},
		{0, 1},
	}
	for _, tt := range tests {
		if got := glowSize(tt.radius); got != tt.want {
			t.Errorf("glowSize(%v) = %d, want %d", tt.radius, got, tt.want)
		}
	}
}

func TestGlowAlphaProfile(t *testing.T) {
	const radius, alpha, softness = 100.0, 0.5, 0.2
	tests := []struct {
		name string
		dist float64
		want float64
	}{
		{"center", 0, alpha},
		{"inner plateau", 79, alpha},
		{"ramp start", 80, alpha},
		{"mid ramp", 90, alpha * 0.5},
		{"rim", 100, 0},
		{"outside", 120, 0},
	}
	for _, tt := range tests {
		got := glowAlpha(tt.dist, radius, alpha, softness)
		if diff := got - tt.want; diff > 1e-9 || diff < -1e-9 {
			t.Errorf("%s: glowAlpha(%v) = %v, want %v", tt.name, tt.dist, got, tt.want)
		}
	}
}

func TestGlowAlphaZeroSoftnessIsHardEdge(t *testing.T) {
	if got := glowAlpha(99.9, 100, 0.4, 0); got != 0.4 {
		t.Errorf("glowAlpha near rim with softness 0 = %v, want 0.4", got)
	}
}

func TestRasterizeGlow(t *testing.T) {
	const radius = 20.0
	size := glowSize(radius)
	pix := rasterizeGlow(size, radius, Color{R: 1, G: 0.5, B: 0, A: 1}, 1, 0.1)
	if len(pix) != size*size*4 {
		t.Fatalf("len(pix) = %d, want %d", len(pix), size*size*4)
	}

	at := func(x, y int) []byte {
		off := (y*size + x) * 4
		return pix[off : off+4]
	}

	// Pixel next to the center is fully inside the plateau.
	c := at(int(radius), int(radius))
	if c[3] != 255 || c[0] != 255 || c[1] != 127 || c[2] != 0 {
		t.Errorf("center pixel = %v, want [255 127 0 255]", c)
	}
	// Corners lie outside the circle.
	for _, p := range [][2]int{{0, 0}, {size - 1, 0}, {0, size - 1}, {size - 1, size - 1}} {
		if px := at(p[0], p[1]); px[3] != 0 {
			t.Errorf("corner %v alpha = %d, want 0", p, px[3])
		}
	}
	// Premultiplied: no channel exceeds alpha.
	for i := 0; i < len(pix); i += 4 {
		if pix[i] > pix[i+3] || pix[i+1] > pix[i+3] || pix[i+2] > pix[i+3] {
			t.Fatalf("pixel %d not premultiplied: %v", i/4, pix[i:i+4])
		}
	}
}

func TestRasterizeGlowZeroRadius(t *testing.T) {
	pix := rasterizeGlow(1, 0, ColorWhite, 1, 0.5)
	for _, b := range pix {
		if b != 0 {
			t.Fatalf("zero-radius glow should be transparent, got %v", pix)
		}
	}
}
