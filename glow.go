package brokeh

import "math"

// glowMargin is the sprite side length as a multiple of the glow radius.
// The extra 0.1 keeps the gradient edge from being clipped.
const glowMargin = 2.1

// glowSize returns the side length of the square sprite for a glow of the
// given radius. Never less than one pixel.
func glowSize(radius float64) int {
	size := int(math.Floor(radius * glowMargin))
	if size < 1 {
		size = 1
	}
	return size
}

// glowAlpha returns the gradient opacity at distance dist from the center of
// a glow. Opacity is zero at and beyond radius, ramps linearly up to alpha
// over the outer softness fraction of the radius, and stays at alpha inside.
func glowAlpha(dist, radius, alpha, softness float64) float64 {
	if radius <= 0 || dist >= radius {
		return 0
	}
	// t is the gradient offset: 0 on the rim, 1 at the center.
	t := 1 - dist/radius
	if softness <= 0 || t >= softness {
		return alpha
	}
	return alpha * t / softness
}

// rasterizeGlow renders a radial glow into a size x size premultiplied RGBA
// buffer. The glow is centered at (radius, radius), so the 2.1 margin lands on
// the right and bottom edges only.
func rasterizeGlow(size int, radius float64, c Color, alpha, softness float64) []byte {
	pix := make([]byte, size*size*4)
	if radius <= 0 {
		return pix
	}

	cx, cy := radius, radius
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			dx := float64(x) + 0.5 - cx
			dy := float64(y) + 0.5 - cy
			a := glowAlpha(math.Sqrt(dx*dx+dy*dy), radius, alpha, softness)
			if a <= 0 {
				continue
			}
			off := (y*size + x) * 4
			pix[off+0] = uint8(clamp01(c.R*a) * 255)
			pix[off+1] = uint8(clamp01(c.G*a) * 255)
			pix[off+2] = uint8(clamp01(c.B*a) * 255)
			pix[off+3] = uint8(clamp01(a) * 255)
		}
	}
	return pix
}
