package game

import (
	"fmt"
	"time"

	"reefcatch/internal/entity"
	"reefcatch/internal/geom"
)

// CatchOutcome reports how an accepted catch attempt resolved. Rejected
// attempts (rate-limited, paused or dead session) are silently dropped.
type CatchOutcome int

const (
	OutcomeRejected CatchOutcome = iota
	OutcomeMiss
	OutcomeFish
	OutcomeGoldfish
	OutcomeMine
)

// AttemptCatch resolves a pointer attempt at a world-space point. It runs
// synchronously off the input event, serialized against ticks by the
// session lock. A shot is accepted only if at least the minimum interval
// elapsed since the last accepted shot; rejected shots increment nothing.
func (s *Session) AttemptCatch(x, y float64, at time.Time) CatchOutcome {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.running || s.paused {
		return OutcomeRejected
	}
	if s.haveLastShot && at.Sub(s.lastShotAt) < s.tuning.MinShotInterval {
		return OutcomeRejected
	}
	s.lastShotAt = at
	s.haveLastShot = true
	s.stats.Shots++

	// Newest-first scan emulates top-of-stack priority: the creature drawn
	// on top wins overlapping bounds.
	point := geom.Point{X: x, Y: y}
	var target *entity.Entity
	s.store.ForEachAliveNewestFirst(func(e *entity.Entity) bool {
		if e.Bounds().Expand(s.tuning.CatchLeniency).Contains(point) {
			target = e
			return false
		}
		return true
	})

	if target == nil {
		s.resolveMiss(x, y)
		return OutcomeMiss
	}

	switch target.Kind {
	case entity.KindMine:
		s.resolveMine(target)
		return OutcomeMine
	case entity.KindGoldfish:
		s.resolveGoldfish(target)
		return OutcomeGoldfish
	default:
		s.resolveFish(target)
		return OutcomeFish
	}
}

// resolveFish lands a catch: combo up, decay window refreshed, points
// scaled by level and streak, then the two-stage removal begins.
func (s *Session) resolveFish(e *entity.Entity) {
	streak := s.combo.scoreHit(s.tuning.ComboWindow)

	base := FishBaseValues[0]
	if e.Variant >= 0 && e.Variant < len(FishBaseValues) {
		base = FishBaseValues[e.Variant]
	}
	level := s.level.Level
	if level < 1 {
		level = 1
	}
	points := base * level * maxInt(1, streak)
	s.score += points
	s.stats.Caught++

	s.notify(Notice{
		Text:     fmt.Sprintf("+%d", points),
		Category: NoticeScore,
		Duration: time.Second,
		X:        e.X,
		Y:        e.Y,
	})
	if streak > 1 {
		s.notify(Notice{
			Text:     fmt.Sprintf("combo x%d", streak),
			Category: NoticeCombo,
			Duration: time.Duration(s.tuning.ComboWindow * float64(time.Second)),
		})
	}

	s.store.MarkDead(e, entity.PhaseSinking)
}

// resolveGoldfish grants a life up to the cap and starts the removal
// animation. Catching the bonus still resets the streak.
func (s *Session) resolveGoldfish(e *entity.Entity) {
	if s.lives < s.tuning.MaxLives {
		s.lives++
	}
	s.combo.breakStreak()
	s.gold.onCaught()

	s.notify(Notice{
		Text:     "+1 life",
		Category: NoticeLife,
		Duration: 2 * time.Second,
		X:        e.X,
		Y:        e.Y,
	})

	s.store.MarkDead(e, entity.PhaseCapturing)
}

// resolveMine applies the penalty and resets the combo. The mine itself is
// not removed and keeps moving; the only visual consequence is a brief
// flash.
func (s *Session) resolveMine(e *entity.Entity) {
	s.applyPenalty(s.tuning.MinePenalty, e.X, e.Y)
	s.combo.breakStreak()
	s.flashNotice(e.X, e.Y)
}

// resolveMiss penalizes an accepted attempt that hit nothing.
func (s *Session) resolveMiss(x, y float64) {
	s.stats.Missed++
	s.applyPenalty(s.tuning.MissPenalty, x, y)
	s.combo.breakStreak()
}

// applyPenalty deducts from the score with a floor of 0. The popup shows
// the actual, possibly truncated, delta and only appears when there was
// something to lose.
func (s *Session) applyPenalty(penalty int, x, y float64) {
	pre := s.score
	s.score -= penalty
	if s.score < 0 {
		s.score = 0
	}
	if pre > 0 {
		s.notify(Notice{
			Text:     fmt.Sprintf("-%d", pre-s.score),
			Category: NoticePenalty,
			Duration: time.Second,
			X:        x,
			Y:        y,
		})
	}
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
