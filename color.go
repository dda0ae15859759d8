package brokeh

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
)

var (
	// ErrInvalidColor is returned when a color string is not "#RRGGBB" or "RRGGBB".
	ErrInvalidColor = errors.New("invalid hex color")
	// ErrInvalidConfig is returned when a constructor receives out-of-range options.
	ErrInvalidConfig = errors.New("invalid config")
)

var hexColorPattern = regexp.MustCompile(`^#?([0-9a-fA-F]{2})([0-9a-fA-F]{2})([0-9a-fA-F]{2})$`)

// ToRGB decodes "#RRGGBB" (or "RRGGBB") into its three 8-bit channels.
// Shorthand "#RGB" is not accepted. ok is false when hex does not match.
func ToRGB(hex string) (r, g, b uint8, ok bool) {
	m := hexColorPattern.FindStringSubmatch(hex)
	if m == nil {
		return 0, 0, 0, false
	}
	var ch [3]uint8
	for i := range ch {
		v, err := strconv.ParseUint(m[i+1], 16, 8)
		if err != nil {
			return 0, 0, 0, false
		}
		ch[i] = uint8(v)
	}
	return ch[0], ch[1], ch[2], true
}

// ParseColor decodes a hex color into an opaque Color.
func ParseColor(hex string) (Color, error) {
	r, g, b, ok := ToRGB(hex)
	if !ok {
		return Color{}, fmt.Errorf("parse color %q: %w", hex, ErrInvalidColor)
	}
	return Color{
		R: float64(r) / 255,
		G: float64(g) / 255,
		B: float64(b) / 255,
		A: 1,
	}, nil
}

// toRGBA converts a Color to a premultiplied colorRGBA.
func (c Color) toRGBA() colorRGBA {
	return colorRGBA{
		R: uint8(clamp01(c.R*c.A) * 255),
		G: uint8(clamp01(c.G*c.A) * 255),
		B: uint8(clamp01(c.B*c.A) * 255),
		A: uint8(clamp01(c.A) * 255),
	}
}

// colorRGBA implements the color.Color interface for image.Fill.
type colorRGBA struct {
	R, G, B, A uint8
}

func (c colorRGBA) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R) * 0x101
	g = uint32(c.G) * 0x101
	b = uint32(c.B) * 0x101
	a = uint32(c.A) * 0x101
	return
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
