package game

import (
	"fmt"
	"time"
)

// levelState is the per-level countdown. Level only increases; a full
// session reset is the only way back to 1.
type levelState struct {
	Level     int
	Remaining float64
}

// updateLevel advances the countdown and handles expiry. Below the final
// level this advances to the next one: countdown reset, per-level spawn
// flags cleared, backdrop switched by (level-1) mod mapCount with the index
// doubling as the depth tint, and a level-up notice emitted. At the final
// level expiry is terminal and the countdown is forced to 0.
func (s *Session) updateLevel(dt float64) {
	s.level.Remaining -= dt
	if s.level.Remaining > 0 {
		return
	}

	if s.level.Level >= s.tuning.MaxLevel {
		s.level.Remaining = 0
		s.endSession()
		return
	}

	s.level.Level++
	s.level.Remaining = s.tuning.LevelSeconds
	s.gold.resetLevel()
	s.mine.resetLevel()
	s.applyLevelHook()
	s.notify(Notice{
		Text:     fmt.Sprintf("Depth %d", s.level.Level),
		Category: NoticeLevel,
		Duration: 2 * time.Second,
	})
}
