package brokeh

import (
	"fmt"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// TwinkleMode controls whether a light gets an opacity oscillator.
type TwinkleMode uint8

const (
	TwinkleRandom TwinkleMode = iota // oscillator with probability twinkleChance
	TwinkleAlways                    // always oscillate
	TwinkleNever                     // constant opacity
)

const (
	twinkleChance   = 0.7
	twinkleMinAlpha = 0.1
	twinkleMaxAlpha = 1.0
)

var twinkleSpeed = Range{Min: 0.0001, Max: 0.001}

// Twinkle is the oscillator state of a twinkling light.
type Twinkle struct {
	// Phase is the starting angle in radians, in [0, 2π).
	Phase float64
	// Speed is the angular rate in radians per millisecond.
	Speed float64
	// Alpha is the opacity multiplier computed by the last Update, in [0.1, 1].
	// It is zero until the first Update.
	Alpha float64
}

// LightConfig enumerates every option of a Light. Start from
// DefaultLightConfig and override fields; an empty Color means white.
type LightConfig struct {
	// Position is the glow center in target surface pixels.
	Position Vec2
	// Radius is the glow radius in pixels. Must not be negative.
	Radius float64
	// Color is a "#RRGGBB" hex string.
	Color string
	// Alpha is the base opacity in [0, 1].
	Alpha float64
	// Softness is the fraction of the radius, measured from the rim, over
	// which the glow ramps up to Alpha. In [0, 1].
	Softness float64
	// Twinkle selects whether the light oscillates.
	Twinkle TwinkleMode
}

// DefaultLightConfig returns a white, zero-radius light at the origin with
// alpha 0.5 and softness 0.1.
func DefaultLightConfig() LightConfig {
	return LightConfig{
		Color:    "#FFFFFF",
		Alpha:    0.5,
		Softness: 0.1,
	}
}

// Light is a single procedurally rendered glow. Its sprite is rasterized once
// at construction and reused every frame.
type Light struct {
	position Vec2
	radius   float64
	hex      string
	color    Color
	alpha    float64
	softness float64
	twinkle  *Twinkle

	rt *RenderTexture
	op ebiten.DrawImageOptions
}

// NewLight validates cfg, assigns the twinkle oscillator and renders the
// glow sprite.
func NewLight(cfg LightConfig) (*Light, error) {
	if cfg.Color == "" {
		cfg.Color = "#FFFFFF"
	}
	c, err := ParseColor(cfg.Color)
	if err != nil {
		return nil, fmt.Errorf("new light: %w", err)
	}
	if cfg.Radius < 0 || math.IsNaN(cfg.Radius) || math.IsInf(cfg.Radius, 0) {
		return nil, fmt.Errorf("new light: radius %v: %w", cfg.Radius, ErrInvalidConfig)
	}
	if !in01(cfg.Alpha) {
		return nil, fmt.Errorf("new light: alpha %v: %w", cfg.Alpha, ErrInvalidConfig)
	}
	if !in01(cfg.Softness) {
		return nil, fmt.Errorf("new light: softness %v: %w", cfg.Softness, ErrInvalidConfig)
	}

	l := &Light{
		position: cfg.Position,
		radius:   cfg.Radius,
		hex:      cfg.Color,
		color:    c,
		alpha:    cfg.Alpha,
		softness: cfg.Softness,
	}

	if wantTwinkle(cfg.Twinkle) {
		l.twinkle = &Twinkle{
			Phase: RandomRange(0, TwoPi),
			Speed: twinkleSpeed.Random(),
		}
	}

	l.render()
	return l, nil
}

func wantTwinkle(mode TwinkleMode) bool {
	switch mode {
	case TwinkleAlways:
		return true
	case TwinkleNever:
		return false
	default:
		return RandomUnit() < twinkleChance
	}
}

func in01(v float64) bool {
	return v >= 0 && v <= 1
}

// render rasterizes the glow into the light's private texture.
func (l *Light) render() {
	size := glowSize(l.radius)
	l.rt = NewRenderTexture(size, size)
	l.rt.WritePixels(rasterizeGlow(size, l.radius, l.color, l.alpha, l.softness))
}

// Update recomputes the twinkle opacity for the given animation time in
// milliseconds. Static lights ignore it.
func (l *Light) Update(timeMs float64) {
	if l.twinkle == nil {
		return
	}
	theta := l.twinkle.Phase + timeMs*l.twinkle.Speed
	v := Normalize(math.Sin(theta), -1, 1)
	l.twinkle.Alpha = Lerp(v, twinkleMinAlpha, twinkleMaxAlpha)
}

// Draw composites the sprite additively onto dst, centered on the light's
// position. Twinkling lights apply their current opacity multiplier.
func (l *Light) Draw(dst *ebiten.Image) {
	l.DrawAt(dst, l.position.X-l.radius, l.position.Y-l.radius)
}

// DrawAt composites the sprite additively onto dst with its top-left corner
// at (x, y), ignoring the light's position. Draw options are rebuilt per
// call so no transform or alpha carries over.
func (l *Light) DrawAt(dst *ebiten.Image, x, y float64) {
	if l.rt == nil {
		return
	}
	op := &l.op
	op.GeoM.Reset()
	op.GeoM.Translate(x, y)
	op.ColorScale.Reset()
	if l.twinkle != nil {
		op.ColorScale.ScaleAlpha(float32(l.twinkle.Alpha))
	}
	op.Blend = BlendAdd.EbitenBlend()
	dst.DrawImage(l.rt.Image(), op)
}

// Opacity returns the effective peak opacity the light is drawn with: the
// base alpha, times the twinkle multiplier when the light oscillates.
func (l *Light) Opacity() float64 {
	if l.twinkle == nil {
		return l.alpha
	}
	return l.alpha * l.twinkle.Alpha
}

// Twinkle returns a copy of the oscillator state and whether one exists.
func (l *Light) Twinkle() (Twinkle, bool) {
	if l.twinkle == nil {
		return Twinkle{}, false
	}
	return *l.twinkle, true
}

// Image returns the pre-rendered glow sprite, or nil after Dispose.
func (l *Light) Image() *ebiten.Image {
	if l.rt == nil {
		return nil
	}
	return l.rt.Image()
}

// Size returns the side length of the glow sprite in pixels.
func (l *Light) Size() int {
	if l.rt == nil {
		return 0
	}
	return l.rt.Width()
}

// Position returns the glow center.
func (l *Light) Position() Vec2 { return l.position }

// Radius returns the glow radius in pixels.
func (l *Light) Radius() float64 { return l.radius }

// Color returns the hex color the light was built with.
func (l *Light) Color() string { return l.hex }

// Alpha returns the base opacity.
func (l *Light) Alpha() float64 { return l.alpha }

// Softness returns the gradient ramp fraction.
func (l *Light) Softness() float64 { return l.softness }

// Dispose releases the glow sprite. Safe to call more than once.
func (l *Light) Dispose() {
	if l.rt != nil {
		l.rt.Dispose()
		l.rt = nil
	}
}
