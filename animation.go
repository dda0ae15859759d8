package brokeh

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Fade tweens a single opacity value. Call Update(dt) each frame and read
// Value. A Fade with a non-positive duration starts Done at its target.
//
// There is no global animation manager; the Driver steps its own fades.
type Fade struct {
	tween *gween.Tween
	Value float64
	Done  bool
}

// NewFade creates a Fade from one value to another over duration seconds.
func NewFade(from, to float64, duration float32, fn ease.TweenFunc) *Fade {
	if duration <= 0 {
		return &Fade{Value: to, Done: true}
	}
	if fn == nil {
		fn = ease.Linear
	}
	return &Fade{
		tween: gween.New(float32(from), float32(to), duration, fn),
		Value: from,
	}
}

// Update advances the fade by dt seconds.
func (f *Fade) Update(dt float32) {
	if f.Done {
		return
	}
	val, finished := f.tween.Update(dt)
	f.Value = float64(val)
	f.Done = finished
}
