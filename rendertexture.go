package brokeh

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// RenderTexture is a persistent offscreen canvas. Lights, the backdrop and
// the driver's output surface each own one. It is NOT recycled between frames.
type RenderTexture struct {
	image *ebiten.Image
	w, h  int
	op    ebiten.DrawImageOptions
}

// NewRenderTexture creates a persistent offscreen canvas of the given size.
// Dimensions below one pixel are clamped to one.
func NewRenderTexture(w, h int) *RenderTexture {
	w, h = max(w, 1), max(h, 1)
	return &RenderTexture{
		image: ebiten.NewImage(w, h),
		w:     w,
		h:     h,
	}
}

// Image returns the underlying *ebiten.Image for direct manipulation.
func (rt *RenderTexture) Image() *ebiten.Image {
	return rt.image
}

// Width returns the texture width in pixels.
func (rt *RenderTexture) Width() int {
	return rt.w
}

// Height returns the texture height in pixels.
func (rt *RenderTexture) Height() int {
	return rt.h
}

// Clear fills the texture with transparent black.
func (rt *RenderTexture) Clear() {
	rt.image.Clear()
}

// Fill fills the entire texture with the given color.
func (rt *RenderTexture) Fill(c Color) {
	rt.image.Fill(c.toRGBA())
}

// WritePixels replaces the texture contents with premultiplied RGBA bytes.
// len(pix) must be 4*Width()*Height().
func (rt *RenderTexture) WritePixels(pix []byte) {
	rt.image.WritePixels(pix)
}

// DrawImageAt draws src with its top-left corner at (x, y) using the
// specified blend mode.
func (rt *RenderTexture) DrawImageAt(src *ebiten.Image, x, y float64, blend BlendMode) {
	rt.DrawImageAlpha(src, x, y, 1, blend)
}

// DrawImageAlpha is DrawImageAt with an opacity multiplier applied to src.
func (rt *RenderTexture) DrawImageAlpha(src *ebiten.Image, x, y, alpha float64, blend BlendMode) {
	op := &rt.op
	op.GeoM.Reset()
	op.GeoM.Translate(x, y)
	op.ColorScale.Reset()
	if alpha != 1 {
		op.ColorScale.ScaleAlpha(float32(clamp01(alpha)))
	}
	op.Blend = blend.EbitenBlend()
	rt.image.DrawImage(src, op)
}

// Resize deallocates the old image and creates a new one at the given
// dimensions. The contents are not preserved.
func (rt *RenderTexture) Resize(width, height int) {
	width, height = max(width, 1), max(height, 1)
	if rt.image != nil {
		rt.image.Deallocate()
	}
	rt.image = ebiten.NewImage(width, height)
	rt.w = width
	rt.h = height
}

// Dispose deallocates the underlying image. The RenderTexture should not be
// used after calling Dispose.
func (rt *RenderTexture) Dispose() {
	if rt.image != nil {
		rt.image.Deallocate()
		rt.image = nil
	}
}
