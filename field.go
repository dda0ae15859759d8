package brokeh

import (
	"fmt"
	"math"
)

const (
	defaultFieldDensity   = 0.02
	defaultWaveAmplitude  = 0.08
	fieldMaxRadius        = 100
	fieldCenterRadius     = 80
	fieldMinVarianceRange = 50
	fieldMaxVarianceRange = 200
)

var (
	fieldAlpha    = Range{Min: 0.1, Max: 0.5}
	fieldSoftness = Range{Min: 0.1, Max: 0.5}
)

// FieldConfig controls the foreground light layout. Zero values select the
// defaults noted on each field.
type FieldConfig struct {
	// Width and Height are the viewport size in pixels.
	Width, Height float64
	// Palette colors the lights. Default DefaultPalette.
	Palette Palette
	// Density is the number of lights per pixel of width. Default 0.02.
	Density float64
	// Amplitude is the wave amplitude as a fraction of Height. Default 0.08.
	Amplitude float64
}

func (cfg FieldConfig) withDefaults() FieldConfig {
	if len(cfg.Palette) == 0 {
		cfg.Palette = DefaultPalette
	}
	if cfg.Density == 0 {
		cfg.Density = defaultFieldDensity
	}
	if cfg.Amplitude == 0 {
		cfg.Amplitude = defaultWaveAmplitude
	}
	return cfg
}

// FieldCount returns how many foreground lights a viewport of the given
// width holds at the given density.
func FieldCount(width, density float64) int {
	n := int(math.Floor(density * width))
	return max(n, 0)
}

// LayoutField places lights evenly across the width along one shared sine
// wave around mid-height. Vertical jitter is lerp(d, 50, 200), so it is
// widest at the center, and the radius range narrows toward the center.
//
// The radius is drawn from RandomRange(100, max(1, 80*d)) where d is 1 at the
// horizontal center and 0 at the edges. The upper bound never exceeds the
// lower one, so radii fall in [max(1, 80*d), 100].
func LayoutField(cfg FieldConfig) ([]*Light, error) {
	cfg = cfg.withDefaults()
	if err := cfg.Palette.Validate(); err != nil {
		return nil, fmt.Errorf("layout field: %w", err)
	}

	count := FieldCount(cfg.Width, cfg.Density)
	theta := RandomRange(0, TwoPi)
	amplitude := cfg.Height * cfg.Amplitude
	cx := cfg.Width / 2
	cy := cfg.Height / 2

	lights := make([]*Light, 0, count)
	for i := range count {
		percent := float64(i) / float64(count)
		x := percent * cfg.Width
		d := 1 - math.Abs(cx-x)/cx
		varianceRange := Lerp(d, fieldMinVarianceRange, fieldMaxVarianceRange)
		variance := RandomRange(-varianceRange, varianceRange)
		offset := math.Sin(theta+percent*TwoPi)*amplitude + variance

		l, err := NewLight(LightConfig{
			Position: Vec2{X: x, Y: cy + offset},
			Radius:   RandomRange(fieldMaxRadius, math.Max(1, fieldCenterRadius*d)),
			Color:    cfg.Palette.Pick(),
			Alpha:    fieldAlpha.Random(),
			Softness: fieldSoftness.Random(),
		})
		if err != nil {
			for _, prev := range lights {
				prev.Dispose()
			}
			return nil, fmt.Errorf("layout field: light %d: %w", i, err)
		}
		lights = append(lights, l)
	}
	return lights, nil
}
