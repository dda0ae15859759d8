package brokeh

import (
	"fmt"
	"os"
	"time"
)

// debugLogInterval is the number of ticks between frame stat lines.
const debugLogInterval = 120

// frameStats holds timing for the most recent tick. Only populated when
// Config.Debug is true.
type frameStats struct {
	backdropTime time.Duration
	lightsTime   time.Duration
	lightCount   int
	twinkling    int
}

// debugLog prints frame stats to stderr every debugLogInterval ticks.
func (d *Driver) debugLog(stats frameStats) {
	if !d.cfg.Debug || d.frames%debugLogInterval != 0 {
		return
	}
	_, _ = fmt.Fprintf(os.Stderr,
		"[brokeh] frame %d | backdrop: %v | lights: %v | total: %v\n",
		d.frames, stats.backdropTime, stats.lightsTime, stats.backdropTime+stats.lightsTime)
	_, _ = fmt.Fprintf(os.Stderr,
		"[brokeh] lights: %d | twinkling: %d\n",
		stats.lightCount, stats.twinkling)
}

// debugf prints a one-off diagnostic line to stderr when debug is enabled.
func (d *Driver) debugf(format string, args ...any) {
	if !d.cfg.Debug {
		return
	}
	_, _ = fmt.Fprintf(os.Stderr, "[brokeh] "+format+"\n", args...)
}
