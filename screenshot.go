package brokeh

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// Screenshot queues a labeled capture of the composed canvas. The PNG is
// written to Config.ScreenshotDir with a timestamped filename at the end of
// the next presented frame.
func (d *Driver) Screenshot(label string) {
	d.screenshotQueue = append(d.screenshotQueue, label)
}

// flushScreenshots captures src for every queued label and writes each as a
// PNG file. Pixel readback only works while the game loop is running, so
// this is called from Draw and never from Tick.
func (d *Driver) flushScreenshots(src *ebiten.Image) {
	if len(d.screenshotQueue) == 0 {
		return
	}
	defer func() { d.screenshotQueue = d.screenshotQueue[:0] }()

	dir := d.cfg.ScreenshotDir
	if err := os.MkdirAll(dir, 0o755); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "[brokeh] screenshot: mkdir %s: %v\n", dir, err)
		return
	}

	img := readNRGBA(src)
	stamp := time.Now().Format("20060102_150405")
	for _, label := range d.screenshotQueue {
		path := filepath.Join(dir, fmt.Sprintf("%s_%s.png", stamp, sanitizeLabel(label)))
		if err := writePNG(path, img); err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "[brokeh] screenshot: %v\n", err)
			continue
		}
		d.debugf("screenshot written to %s", path)
	}
}

// readNRGBA reads src back and converts premultiplied RGBA to straight-alpha
// NRGBA for encoding.
func readNRGBA(src *ebiten.Image) *image.NRGBA {
	bounds := src.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	pixels := make([]byte, 4*w*h)
	src.ReadPixels(pixels)
	return unpremultiply(pixels, w, h)
}

func unpremultiply(pixels []byte, w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for i := 0; i+3 < len(pixels); i += 4 {
		r, g, b, a := pixels[i], pixels[i+1], pixels[i+2], pixels[i+3]
		if a > 0 && a < 255 {
			r = uint8(min(int(r)*255/int(a), 255))
			g = uint8(min(int(g)*255/int(a), 255))
			b = uint8(min(int(b)*255/int(a), 255))
		}
		img.Pix[i] = r
		img.Pix[i+1] = g
		img.Pix[i+2] = b
		img.Pix[i+3] = a
	}
	return img
}

// writePNG encodes an image to a PNG file at the given path.
func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}

// sanitizeLabel replaces characters that are unsafe in file names with
// underscores and falls back to "unlabeled" for empty strings.
func sanitizeLabel(label string) string {
	label = strings.TrimSpace(label)
	if label == "" {
		return "unlabeled"
	}
	var b strings.Builder
	b.Grow(len(label))
	for _, r := range label {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z',
			r >= '0' && r <= '9', r == '-', r == '.':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	return b.String()
}
