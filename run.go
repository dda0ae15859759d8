package brokeh

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

// RunConfig holds window options for Run.
type RunConfig struct {
	// Title is the window title. Default "brokeh".
	Title string
	// Width and Height are the initial window size. Default 1280x720.
	Width, Height int
	// Fullscreen starts the window in fullscreen mode.
	Fullscreen bool
}

// Run opens a resizable window and runs d until the window is closed or
// d.Stop is called. The viewport the driver initializes with is the window's
// client area, and every later window resize reaches d.OnResize.
func Run(d *Driver, cfg RunConfig) error {
	if cfg.Title == "" {
		cfg.Title = "brokeh"
	}
	if cfg.Width <= 0 {
		cfg.Width = 1280
	}
	if cfg.Height <= 0 {
		cfg.Height = 720
	}

	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetFullscreen(cfg.Fullscreen)

	defer d.Dispose()
	if err := ebiten.RunGame(d); err != nil {
		return fmt.Errorf("run: %w", err)
	}
	return nil
}
