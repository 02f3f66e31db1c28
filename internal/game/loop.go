package game

import (
	"math"
	"time"
)

// fpsSmoothing is the EWMA weight of the previous frame-rate estimate.
const fpsSmoothing = 0.9

// clock tracks the timestamp baseline and a smoothed frame-rate metric.
type clock struct {
	started bool
	last    time.Time
	fps     float64
}

// Advance runs one update pass. The host calls it once per animation frame
// with the frame timestamp. Delta-time is clamped to absorb suspend gaps;
// the first tick only establishes the baseline. When paused, the clock keeps
// following the host so state is frozen rather than slowed.
func (s *Session) Advance(now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.running {
		return
	}

	var dt float64
	if !s.clock.started {
		s.clock.started = true
	} else {
		raw := now.Sub(s.clock.last).Seconds()
		s.observeRate(raw)
		dt = raw
		if dt < 0 {
			dt = 0
		}
		if dt > s.tuning.MaxDelta {
			dt = s.tuning.MaxDelta
		}
	}
	s.clock.last = now

	if s.paused {
		return
	}

	s.tick(dt)
}

// observeRate folds one raw frame interval (seconds) into the smoothed rate
// metric. Malformed samples are dropped without touching the metric.
func (s *Session) observeRate(secs float64) {
	if secs <= 0 || math.IsNaN(secs) || math.IsInf(secs, 0) {
		return
	}
	inst := 1 / secs
	if s.clock.fps == 0 {
		s.clock.fps = inst
		return
	}
	s.clock.fps = s.clock.fps*fpsSmoothing + inst*(1-fpsSmoothing)
}

// tick is one full simulation step: spawn, movement and bounds pruning,
// then level and terminal checks. Rendering belongs to the host. The
// generators run serially so ordering is deterministic. Once a terminal
// condition fires the rest of the pass is skipped.
func (s *Session) tick(dt float64) {
	s.simTime += dt

	if s.combo.update(dt) {
		s.notify(Notice{Text: "combo lost", Category: NoticeCombo, Duration: time.Second})
	}

	s.updateSpawns(dt)
	s.updateMovement(dt)
	if s.gameOver {
		return
	}
	s.updateLevel(dt)
}
