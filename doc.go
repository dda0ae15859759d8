// Package brokeh renders an animated field of glowing, twinkling lights over
// a soft ambient backdrop on [Ebitengine].
//
// Every light is a radial glow rasterized once into its own texture and
// composited additively each frame, so overlapping glows brighten each other.
// A fraction of the lights twinkle: their opacity follows a phase-shifted sine
// wave between 10% and 100%.
//
// # Quick start
//
// The simplest way to get started is [Run], which creates a resizable window
// and game loop for you:
//
//	d := brokeh.NewDriver(brokeh.DefaultConfig())
//	if err := brokeh.Run(d, brokeh.RunConfig{Title: "Lights"}); err != nil {
//		log.Fatal(err)
//	}
//
// [Driver] implements [ebiten.Game], so it can also be embedded in another
// game: call [Driver.Initialize] once with the viewport size, then
// [Driver.Tick] with a monotonically increasing time in milliseconds each
// frame and draw [Driver.Canvas] wherever it belongs.
//
// # Layers
//
// The [Background] is rendered once: a solid base tint plus large, faint
// glows scattered around mid-height. The foreground field, built by
// [LayoutField], places lights along one shared sine wave across the viewport
// width. Resizing the window resizes the canvas only; set
// [Config.RegenerateOnResize] to rebuild the backdrop and cross-fade to it.
//
// [Ebitengine]: https://ebitengine.org
package brokeh
