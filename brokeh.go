package brokeh

import (
	"fmt"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// TwoPi is a full turn in radians.
const TwoPi = math.Pi * 2

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// Premultiplication occurs when pixels are written or filled.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is the default light color.
var ColorWhite = Color{1, 1, 1, 1}

// Vec2 is a 2D vector used for positions and sizes.
type Vec2 struct {
	X, Y float64
}

// Range is a general-purpose min/max range used to describe random draws.
type Range struct {
	Min, Max float64
}

// Random returns a value drawn by RandomRange(r.Min, r.Max).
func (r Range) Random() float64 {
	return RandomRange(r.Min, r.Max)
}

// BlendMode selects a compositing operation. Each maps to a specific ebiten.Blend value.
type BlendMode uint8

const (
	BlendNormal BlendMode = iota // source-over (standard alpha blending)
	BlendAdd                     // additive / lighter
	BlendNone                    // opaque copy (skip blending)
)

// EbitenBlend returns the ebiten.Blend value corresponding to this BlendMode.
func (b BlendMode) EbitenBlend() ebiten.Blend {
	switch b {
	case BlendAdd:
		return ebiten.BlendLighter
	case BlendNone:
		return ebiten.BlendCopy
	default:
		return ebiten.BlendSourceOver
	}
}

// Palette is an ordered set of "#RRGGBB" colors that lights are tinted from.
type Palette []string

// DefaultPalette holds the warm string-light colors with a few cool accents.
var DefaultPalette = Palette{
	"#FF8C00", "#D98E48", "#EBBF83", "#9932CC", "#6495ED", "#FFFFFF",
}

// Validate reports an error if the palette is empty or any entry fails to
// decode as a 6-digit hex color.
func (p Palette) Validate() error {
	if len(p) == 0 {
		return fmt.Errorf("palette: %w: no colors", ErrInvalidConfig)
	}
	for i, hex := range p {
		if _, _, _, ok := ToRGB(hex); !ok {
			return fmt.Errorf("palette[%d] %q: %w", i, hex, ErrInvalidColor)
		}
	}
	return nil
}

// Pick returns a uniformly chosen palette entry. An empty palette yields white.
func (p Palette) Pick() string {
	hex, ok := RandomChoice(p)
	if !ok {
		return "#FFFFFF"
	}
	return hex
}
