package brokeh

import (
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tanema/gween/ease"
)

const (
	defaultCrossfade     = 0.75
	defaultScreenshotDir = "screenshots"
)

// Config controls the whole effect. Zero values select the defaults noted on
// each field; DefaultConfig returns them filled in.
type Config struct {
	// Palette colors every light. Default DefaultPalette.
	Palette Palette
	// BackgroundColor is the backdrop base tint. Default DefaultBackgroundColor.
	BackgroundColor string
	// BackdropDensity is backdrop glows per pixel of width. Default 0.05.
	BackdropDensity float64
	// FieldDensity is foreground lights per pixel of width. Default 0.02.
	FieldDensity float64
	// WaveAmplitude is the foreground wave amplitude as a fraction of the
	// viewport height. Default 0.08.
	WaveAmplitude float64
	// FadeIn is the startup fade duration in seconds. Zero disables it.
	FadeIn float32
	// RegenerateOnResize rebuilds the backdrop for the new viewport size on
	// resize and cross-fades to it. The foreground field is never re-laid-out.
	RegenerateOnResize bool
	// Crossfade is the backdrop cross-fade duration in seconds. Default 0.75.
	Crossfade float32
	// ShowFPS draws an FPS/TPS counter in the top-left corner.
	ShowFPS bool
	// Debug prints frame stats and diagnostics to stderr.
	Debug bool
	// ScreenshotDir is where Screenshot writes PNGs. Default "screenshots".
	ScreenshotDir string
}

// DefaultConfig returns a Config with every default filled in.
func DefaultConfig() Config {
	return Config{}.withDefaults()
}

func (cfg Config) withDefaults() Config {
	if len(cfg.Palette) == 0 {
		cfg.Palette = DefaultPalette
	}
	if cfg.BackgroundColor == "" {
		cfg.BackgroundColor = DefaultBackgroundColor
	}
	if cfg.BackdropDensity == 0 {
		cfg.BackdropDensity = defaultBackdropDensity
	}
	if cfg.FieldDensity == 0 {
		cfg.FieldDensity = defaultFieldDensity
	}
	if cfg.WaveAmplitude == 0 {
		cfg.WaveAmplitude = defaultWaveAmplitude
	}
	if cfg.Crossfade == 0 {
		cfg.Crossfade = defaultCrossfade
	}
	if cfg.ScreenshotDir == "" {
		cfg.ScreenshotDir = defaultScreenshotDir
	}
	return cfg
}

// Validate reports the first out-of-range option.
func (cfg Config) Validate() error {
	if err := cfg.Palette.Validate(); err != nil {
		return err
	}
	if _, _, _, ok := ToRGB(cfg.BackgroundColor); !ok {
		return fmt.Errorf("background color %q: %w", cfg.BackgroundColor, ErrInvalidColor)
	}
	if cfg.BackdropDensity < 0 || cfg.FieldDensity < 0 {
		return fmt.Errorf("negative density: %w", ErrInvalidConfig)
	}
	if cfg.FadeIn < 0 || cfg.Crossfade < 0 {
		return fmt.Errorf("negative fade duration: %w", ErrInvalidConfig)
	}
	return nil
}

// Driver owns the output canvas, the backdrop and the foreground light field
// and runs the per-frame loop. It implements ebiten.Game, so it can be passed
// straight to ebiten.RunGame or Run.
//
// All methods must be called from the game loop goroutine.
type Driver struct {
	cfg Config

	canvas     *RenderTexture
	background *Background
	lights     []*Light

	// Previous backdrop and its cross-fade, set while a regenerated
	// backdrop fades in after a resize.
	fading    *Background
	crossfade *Fade
	fadeIn    *Fade

	initialized bool
	running     bool
	stopped     bool
	err         error

	startedAt time.Time
	lastTick  float64
	ticked    bool
	frames    int

	fps             *fpsOverlay
	screenshotQueue []string
	op              ebiten.DrawImageOptions
}

// NewDriver creates an uninitialized driver. Nothing is rendered until
// Initialize (or the first Layout call from the game loop).
func NewDriver(cfg Config) *Driver {
	return &Driver{cfg: cfg.withDefaults()}
}

// Config returns the driver's effective configuration.
func (d *Driver) Config() Config {
	return d.cfg
}

// Initialize sizes the canvas to the viewport, renders the backdrop, lays out
// the foreground field and starts the loop. Calling it again rebuilds
// everything for the new size.
func (d *Driver) Initialize(width, height int) error {
	if err := d.cfg.Validate(); err != nil {
		return fmt.Errorf("initialize: %w", err)
	}

	bg, err := NewBackground(BackgroundConfig{
		Width:     width,
		Height:    height,
		BaseColor: d.cfg.BackgroundColor,
		Palette:   d.cfg.Palette,
		Density:   d.cfg.BackdropDensity,
	})
	if err != nil {
		return fmt.Errorf("initialize: %w", err)
	}
	lights, err := LayoutField(FieldConfig{
		Width:     float64(width),
		Height:    float64(height),
		Palette:   d.cfg.Palette,
		Density:   d.cfg.FieldDensity,
		Amplitude: d.cfg.WaveAmplitude,
	})
	if err != nil {
		bg.Dispose()
		return fmt.Errorf("initialize: %w", err)
	}

	d.disposeScene()
	if d.canvas == nil {
		d.canvas = NewRenderTexture(width, height)
	} else {
		d.canvas.Resize(width, height)
	}
	d.background = bg
	d.lights = lights
	if d.cfg.FadeIn > 0 {
		d.fadeIn = NewFade(0, 1, d.cfg.FadeIn, ease.OutQuad)
	}
	if d.cfg.ShowFPS && d.fps == nil {
		d.fps = newFPSOverlay()
	}
	d.initialized = true
	d.debugf("initialized %dx%d: %d backdrop glows, %d lights",
		width, height, bg.GlowCount(), len(lights))

	d.Start()
	return nil
}

// OnResize matches the canvas to a new viewport size. The backdrop and the
// foreground field keep their original layout unless RegenerateOnResize is
// set, in which case a new backdrop is rendered and cross-faded in.
func (d *Driver) OnResize(width, height int) {
	if !d.initialized {
		return
	}
	width, height = max(width, 1), max(height, 1)
	if width == d.canvas.Width() && height == d.canvas.Height() {
		return
	}
	d.canvas.Resize(width, height)
	d.debugf("resized canvas to %dx%d", width, height)

	if !d.cfg.RegenerateOnResize {
		return
	}
	bg, err := NewBackground(BackgroundConfig{
		Width:     width,
		Height:    height,
		BaseColor: d.cfg.BackgroundColor,
		Palette:   d.cfg.Palette,
		Density:   d.cfg.BackdropDensity,
	})
	if err != nil {
		d.debugf("regenerate backdrop: %v", err)
		return
	}
	if d.fading != nil {
		d.fading.Dispose()
	}
	d.fading = d.background
	d.background = bg
	d.crossfade = NewFade(0, 1, d.cfg.Crossfade, ease.InOutSine)
}

// Start begins (or resumes) ticking. Animation time keeps counting from the
// first Start.
func (d *Driver) Start() {
	if d.startedAt.IsZero() {
		d.startedAt = time.Now()
	}
	d.running = true
	d.stopped = false
}

// Stop cancels further ticks. The next Update returns ebiten.Termination,
// which ends ebiten.RunGame cleanly.
func (d *Driver) Stop() {
	d.running = false
	d.stopped = true
}

// Running reports whether frames are being ticked.
func (d *Driver) Running() bool {
	return d.running
}

// Tick renders one frame into the canvas at the given animation time in
// milliseconds: clear, backdrop, then update and draw each light in order.
func (d *Driver) Tick(timeMs float64) {
	if !d.initialized || !d.running {
		return
	}
	dt := 0.0
	if d.ticked && timeMs > d.lastTick {
		dt = (timeMs - d.lastTick) / 1000
	}
	d.lastTick = timeMs
	d.ticked = true
	d.frames++
	d.advanceFades(float32(dt))

	debug := d.cfg.Debug
	var stats frameStats
	var t0 time.Time
	if debug {
		t0 = time.Now()
	}

	canvas := d.canvas.Image()
	canvas.Clear()
	if d.fading != nil && d.crossfade != nil {
		d.fading.DrawAlpha(canvas, 1-d.crossfade.Value)
		d.background.DrawAlpha(canvas, d.crossfade.Value)
	} else {
		d.background.Draw(canvas)
	}

	if debug {
		stats.backdropTime = time.Since(t0)
		t0 = time.Now()
	}

	for _, l := range d.lights {
		l.Update(timeMs)
		l.Draw(canvas)
	}

	if debug {
		stats.lightsTime = time.Since(t0)
		stats.lightCount = len(d.lights)
		for _, l := range d.lights {
			if l.twinkle != nil {
				stats.twinkling++
			}
		}
		d.debugLog(stats)
	}
}

// advanceFades steps the startup fade and any backdrop cross-fade, dropping
// the old backdrop once it has fully faded out.
func (d *Driver) advanceFades(dt float32) {
	if d.fadeIn != nil {
		d.fadeIn.Update(dt)
	}
	if d.crossfade == nil {
		return
	}
	d.crossfade.Update(dt)
	if d.crossfade.Done {
		if d.fading != nil {
			d.fading.Dispose()
			d.fading = nil
		}
		d.crossfade = nil
	}
}

// elapsedMs returns milliseconds since the first Start.
func (d *Driver) elapsedMs() float64 {
	return float64(time.Since(d.startedAt).Microseconds()) / 1000
}

// masterAlpha returns the opacity the canvas is presented with.
func (d *Driver) masterAlpha() float64 {
	if d.fadeIn == nil {
		return 1
	}
	return clamp01(d.fadeIn.Value)
}

// present copies the composed canvas onto screen.
func (d *Driver) present(screen *ebiten.Image) {
	op := &d.op
	op.GeoM.Reset()
	op.ColorScale.Reset()
	if a := d.masterAlpha(); a < 1 {
		op.ColorScale.ScaleAlpha(float32(a))
	}
	screen.DrawImage(d.canvas.Image(), op)
}

// Update implements ebiten.Game. It reports initialization failures and ends
// the loop after Stop.
func (d *Driver) Update() error {
	if d.err != nil {
		return d.err
	}
	if d.stopped {
		return ebiten.Termination
	}
	if d.fps != nil {
		d.fps.update(1.0 / float64(ebiten.TPS()))
	}
	return nil
}

// Draw implements ebiten.Game. It ticks with the elapsed animation time and
// presents the canvas.
func (d *Driver) Draw(screen *ebiten.Image) {
	if !d.initialized {
		if d.err != nil {
			return
		}
		b := screen.Bounds()
		d.setErr(d.Initialize(b.Dx(), b.Dy()))
		if !d.initialized {
			return
		}
	}
	d.Tick(d.elapsedMs())
	d.present(screen)
	d.flushScreenshots(d.canvas.Image())
	if d.fps != nil {
		d.fps.draw(screen)
	}
}

// Layout implements ebiten.Game. The first call initializes the driver at the
// window size; later size changes are forwarded to OnResize.
func (d *Driver) Layout(outsideWidth, outsideHeight int) (int, int) {
	w, h := max(outsideWidth, 1), max(outsideHeight, 1)
	if !d.initialized {
		if d.err == nil {
			d.setErr(d.Initialize(w, h))
		}
		return w, h
	}
	d.OnResize(w, h)
	return w, h
}

func (d *Driver) setErr(err error) {
	if err != nil && d.err == nil {
		d.err = err
	}
}

// Lights returns the foreground field. The returned slice MUST NOT be mutated.
func (d *Driver) Lights() []*Light {
	return d.lights
}

// Background returns the current backdrop, or nil before Initialize.
func (d *Driver) Background() *Background {
	return d.background
}

// Canvas returns the output surface, or nil before Initialize.
func (d *Driver) Canvas() *RenderTexture {
	return d.canvas
}

// Frames returns the number of ticks rendered.
func (d *Driver) Frames() int {
	return d.frames
}

// disposeScene releases the backdrops and the foreground field.
func (d *Driver) disposeScene() {
	for _, l := range d.lights {
		l.Dispose()
	}
	d.lights = nil
	if d.background != nil {
		d.background.Dispose()
		d.background = nil
	}
	if d.fading != nil {
		d.fading.Dispose()
		d.fading = nil
	}
	d.crossfade = nil
}

// Dispose stops the driver and releases every texture it owns. Safe to call
// more than once.
func (d *Driver) Dispose() {
	d.Stop()
	d.disposeScene()
	if d.canvas != nil {
		d.canvas.Dispose()
		d.canvas = nil
	}
	if d.fps != nil {
		d.fps.dispose()
		d.fps = nil
	}
	d.initialized = false
}
