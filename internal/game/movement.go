package game

import (
	"math"
	"time"

	"reefcatch/internal/entity"
)

// bobPhaseStep desynchronizes the shared bob clock per entity id.
const bobPhaseStep = 2.399 // golden angle, keeps neighboring ids apart

// updateMovement advances every alive creature per its motion profile, runs
// the bounds check, advances removal sub-states and moves the ambient
// bubbles. Iteration is insertion order.
func (s *Session) updateMovement(dt float64) {
	s.store.ForEachAlive(func(e *entity.Entity) bool {
		switch e.Kind {
		case entity.KindFish:
			s.moveFish(e, dt)
		case entity.KindGoldfish:
			s.moveGoldfish(e, dt)
		case entity.KindMine:
			e.X += e.VX * dt
			e.Y += e.VY * dt
		}
		return true
	})

	s.pruneBounds()
	s.advanceRemovals(dt)
	s.updateBubbles(dt)
}

// moveFish applies the constant horizontal velocity and a small vertical
// bob from the shared simulation clock, keyed by entity id so schools don't
// move in lockstep.
func (s *Session) moveFish(e *entity.Entity, dt float64) {
	e.X += e.VX * dt
	phase := s.simTime*s.tuning.BobFrequency + float64(e.ID)*bobPhaseStep
	e.Y = e.BaseY + s.tuning.BobAmplitude*math.Sin(phase)
}

// moveGoldfish runs the erratic profile: goal-directed horizontal travel
// toward the entry-opposite side with temporary reversals, re-randomized
// vertical drift and periodic speed bursts.
func (s *Session) moveGoldfish(e *entity.Entity, dt float64) {
	er := e.Erratic
	if er == nil {
		e.X += e.VX * dt
		e.Y += e.VY * dt
		return
	}

	// Vertical drift re-randomizes every [0.3,0.7]s.
	er.DriftTimer -= dt
	if er.DriftTimer <= 0 {
		er.DriftTimer = s.randRange(0.3, 0.7)
		e.VY = s.randRange(-3, 3)
	}

	// Temporary reversals: every [1.5,2.5]s reverse for [0.8,1.4]s, then
	// return to the goal direction.
	if er.Reversed {
		er.TurnLeft -= dt
		if er.TurnLeft <= 0 {
			er.Reversed = false
			er.TurnTimer = s.randRange(1.5, 2.5)
		}
	} else {
		er.TurnTimer -= dt
		if er.TurnTimer <= 0 {
			er.Reversed = true
			er.TurnLeft = s.randRange(0.8, 1.4)
		}
	}

	// Correction check every 2s forces the goal direction if still
	// reversed.
	er.CorrTimer -= dt
	if er.CorrTimer <= 0 {
		er.CorrTimer = 2.0
		if er.Reversed {
			er.Reversed = false
			er.TurnTimer = s.randRange(1.5, 2.5)
		}
	}

	// Periodic speed burst: x1.8 for 0.25s on a [0.8,1.4]s cycle.
	boost := 1.0
	if er.BoostLeft > 0 {
		er.BoostLeft -= dt
		boost = 1.8
	} else {
		er.BoostTimer -= dt
		if er.BoostTimer <= 0 {
			er.BoostLeft = 0.25
			er.BoostTimer = s.randRange(0.8, 1.4)
			boost = 1.8
		}
	}

	dir := er.GoalDir
	if er.Reversed {
		dir = -er.GoalDir
	}
	e.VX = dir * er.Speed * boost
	e.Flip = e.VX < 0

	e.X += e.VX * dt
	e.Y += e.VY * dt
}

// pruneBounds purges creatures that left the world by the exit margin.
// A fish escape costs a life (clamped at 0; reaching 0 ends the session).
// Goldfish and mine exits go through their escape handlers with no penalty.
func (s *Session) pruneBounds() {
	margin := s.tuning.BoundsMargin
	var escaped []*entity.Entity
	s.store.ForEachAlive(func(e *entity.Entity) bool {
		if e.X < -margin || e.X > s.world.W+margin || e.Y < -margin || e.Y > s.world.H+margin {
			escaped = append(escaped, e)
		}
		return true
	})

	for _, e := range escaped {
		switch e.Kind {
		case entity.KindFish:
			s.store.Purge(e)
			s.loseLife()
		case entity.KindGoldfish:
			s.gold.onEscaped()
			s.store.Purge(e)
		case entity.KindMine:
			s.mine.onEscaped()
			s.store.Purge(e)
		default:
			s.store.Purge(e)
		}
		if s.gameOver {
			return
		}
	}
}

// loseLife deducts one life, clamped at 0. Zero lives is session-terminal.
func (s *Session) loseLife() {
	if s.lives > 0 {
		s.lives--
	}
	if s.lives == 0 {
		s.endSession()
	}
}

// advanceRemovals drives the removal sub-state machine on the simulation
// clock: sinking for a short fixed delay, then capturing, then purge.
// Each stage fires exactly once per creature.
func (s *Session) advanceRemovals(dt float64) {
	var done []*entity.Entity
	s.store.ForEach(func(e *entity.Entity) bool {
		switch e.Phase {
		case entity.PhaseSinking:
			e.PhaseTime += dt
			e.Y += s.tuning.SinkSpeed * dt
			if e.PhaseTime >= s.tuning.SinkSeconds {
				e.Phase = entity.PhaseCapturing
				e.PhaseTime = 0
			}
		case entity.PhaseCapturing:
			e.PhaseTime += dt
			if e.PhaseTime >= s.tuning.CaptureSeconds {
				done = append(done, e)
			}
		}
		return true
	})
	for _, e := range done {
		s.store.Purge(e)
	}
}

// flashNotice is the brief feedback side effect of hitting a mine.
func (s *Session) flashNotice(x, y float64) {
	s.notify(Notice{
		Text:     "!",
		Category: NoticeFlash,
		Duration: 300 * time.Millisecond,
		X:        x,
		Y:        y,
	})
}
