package brokeh

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// fpsRefresh is how often, in seconds, the overlay text is redrawn.
const fpsRefresh = 0.5

// fpsOverlay displays the current FPS and TPS in the top-left corner.
type fpsOverlay struct {
	img        *ebiten.Image
	lastUpdate float64
	dirty      bool
}

func newFPSOverlay() *fpsOverlay {
	// 100x32 is enough for "FPS: 60.0\nTPS: 60.0"
	return &fpsOverlay{img: ebiten.NewImage(100, 32), dirty: true}
}

// update accumulates dt seconds and refreshes the text every fpsRefresh.
func (o *fpsOverlay) update(dt float64) {
	o.lastUpdate += dt
	if !o.dirty && o.lastUpdate < fpsRefresh {
		return
	}
	o.lastUpdate = 0
	o.dirty = false

	o.img.Clear()
	// Semi-transparent background for readability
	o.img.Fill(color.RGBA{0, 0, 0, 128})
	ebitenutil.DebugPrint(o.img, fmt.Sprintf("FPS: %.1f\nTPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS()))
}

func (o *fpsOverlay) draw(screen *ebiten.Image) {
	if o.img == nil {
		return
	}
	screen.DrawImage(o.img, nil)
}

func (o *fpsOverlay) dispose() {
	if o.img != nil {
		o.img.Deallocate()
		o.img = nil
	}
}
