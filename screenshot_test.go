package brokeh

import "testing"

func TestSanitizeLabel(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"hello", "hello"},
		{"after-resize", "after-resize"},
		{"frame.01", "frame.01"},
		{"has spaces", "has_spaces"},
		{"path/to/thing", "path_to_thing"},
		{"back\\slash", "back_slash"},
		{"special!@#$%", "special_____"},
		{"", "unlabeled"},
		{"   ", "unlabeled"},
		{"MixedCase123", "MixedCase123"},
	}
	for _, tt := range tests {
		got := sanitizeLabel(tt.in)
		if got != tt.want {
			t.Errorf("sanitizeLabel(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestScreenshotQueueAppend(t *testing.T) {
	d := NewDriver(Config{})
	d.Screenshot("a")
	d.Screenshot("b")
	d.Screenshot("c")
	if len(d.screenshotQueue) != 3 {
		t.Fatalf("queue len = %d, want 3", len(d.screenshotQueue))
	}
	if d.screenshotQueue[0] != "a" || d.screenshotQueue[1] != "b" || d.screenshotQueue[2] != "c" {
		t.Errorf("queue = %v, want [a b c]", d.screenshotQueue)
	}
}

func TestUnpremultiply(t *testing.T) {
	pix := []byte{
		100, 50, 0, 200, // half-transparent-ish
		10, 20, 30, 255, // opaque: untouched
		0, 0, 0, 0, // transparent: untouched
	}
	img := unpremultiply(pix, 3, 1)
	want := []byte{
		127, 63, 0, 200,
		10, 20, 30, 255,
		0, 0, 0, 0,
	}
	for i := range want {
		if img.Pix[i] != want[i] {
			t.Fatalf("Pix = %v, want %v", img.Pix, want)
		}
	}
}
