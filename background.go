package brokeh

import (
	"fmt"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// DefaultBackgroundColor is the near-black red base tint of the backdrop.
const DefaultBackgroundColor = "#0C0000"

const defaultBackdropDensity = 0.05

// Backdrop light parameters.
var (
	backdropRadius   = Range{Min: 200, Max: 250}
	backdropAlpha    = Range{Min: 0.01, Max: 0.05}
	backdropSoftness = Range{Min: 0.25, Max: 0.9}
	backdropJitterY  = Range{Min: -200, Max: 200}
)

// BackgroundConfig enumerates every option of a Background. Zero values
// select the defaults noted on each field.
type BackgroundConfig struct {
	// Width and Height are the surface size in pixels, normally the viewport.
	Width, Height int
	// BaseColor is the solid tint painted first. Default DefaultBackgroundColor.
	BaseColor string
	// Palette colors the stamped glows. Default DefaultPalette.
	Palette Palette
	// Density is the number of glows per pixel of width. Default 0.05.
	Density float64
}

func (cfg BackgroundConfig) withDefaults() BackgroundConfig {
	if cfg.BaseColor == "" {
		cfg.BaseColor = DefaultBackgroundColor
	}
	if len(cfg.Palette) == 0 {
		cfg.Palette = DefaultPalette
	}
	if cfg.Density == 0 {
		cfg.Density = defaultBackdropDensity
	}
	return cfg
}

// Background is the static ambient glow layer. It is rendered once at
// construction for the size given and never changes afterwards.
type Background struct {
	baseColor string
	count     int
	w, h      int
	rt        *RenderTexture
	op        ebiten.DrawImageOptions
}

// NewBackground validates cfg and renders the backdrop.
func NewBackground(cfg BackgroundConfig) (*Background, error) {
	cfg = cfg.withDefaults()
	base, err := ParseColor(cfg.BaseColor)
	if err != nil {
		return nil, fmt.Errorf("new background: %w", err)
	}
	if err := cfg.Palette.Validate(); err != nil {
		return nil, fmt.Errorf("new background: %w", err)
	}
	if cfg.Density < 0 {
		return nil, fmt.Errorf("new background: density %v: %w", cfg.Density, ErrInvalidConfig)
	}

	bg := &Background{
		baseColor: cfg.BaseColor,
		rt:        NewRenderTexture(cfg.Width, cfg.Height),
	}
	bg.w, bg.h = bg.rt.Width(), bg.rt.Height()
	if err := bg.render(base, cfg); err != nil {
		bg.Dispose()
		return nil, err
	}
	return bg, nil
}

// render fills the base tint and stamps the transient glows additively,
// scattered horizontally and jittered around mid-height.
func (bg *Background) render(base Color, cfg BackgroundConfig) error {
	width := float64(bg.rt.Width())
	centerY := float64(bg.rt.Height()) / 2

	bg.rt.Fill(base)

	bg.count = int(math.Floor(cfg.Density * float64(cfg.Width)))
	for range bg.count {
		l, err := NewLight(LightConfig{
			Radius:   backdropRadius.Random(),
			Alpha:    backdropAlpha.Random(),
			Color:    cfg.Palette.Pick(),
			Softness: backdropSoftness.Random(),
			Twinkle:  TwinkleNever,
		})
		if err != nil {
			return fmt.Errorf("render background: %w", err)
		}
		x := RandomRange(0, width) - l.Radius()
		y := centerY - l.Radius() + backdropJitterY.Random()
		l.DrawAt(bg.rt.Image(), x, y)
		l.Dispose()
	}
	return nil
}

// Draw composites the whole backdrop onto dst at (0, 0).
func (bg *Background) Draw(dst *ebiten.Image) {
	bg.DrawAlpha(dst, 1)
}

// DrawAlpha is Draw with an opacity multiplier, used while cross-fading.
func (bg *Background) DrawAlpha(dst *ebiten.Image, alpha float64) {
	if bg.rt == nil || alpha <= 0 {
		return
	}
	op := &bg.op
	op.GeoM.Reset()
	op.ColorScale.Reset()
	if alpha < 1 {
		op.ColorScale.ScaleAlpha(float32(alpha))
	}
	op.Blend = BlendAdd.EbitenBlend()
	dst.DrawImage(bg.rt.Image(), op)
}

// Width returns the backdrop width in pixels.
func (bg *Background) Width() int { return bg.w }

// Height returns the backdrop height in pixels.
func (bg *Background) Height() int { return bg.h }

// GlowCount returns how many glows were stamped into the backdrop.
func (bg *Background) GlowCount() int { return bg.count }

// BaseColor returns the hex base tint.
func (bg *Background) BaseColor() string { return bg.baseColor }

// Dispose releases the backdrop texture. Safe to call more than once.
func (bg *Background) Dispose() {
	if bg.rt != nil {
		bg.rt.Dispose()
		bg.rt = nil
	}
}
