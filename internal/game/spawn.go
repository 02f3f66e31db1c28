package game

import (
	"math"
	"time"

	"reefcatch/internal/entity"
	"reefcatch/internal/geom"
)

// updateSpawns advances the four generators serially within one update
// call: fish, goldfish, mine, bubbles. No generator runs concurrently with
// another, so ordering is deterministic.
func (s *Session) updateSpawns(dt float64) {
	s.fish.update(s, dt)
	s.gold.update(s, dt)
	s.mine.update(s, dt)
	s.bubbles.update(s, dt)
}

// fishSpawner emits the common catchable fish on a level-scaled cadence.
// There is no per-level spawn flag: fish keep coming all session.
type fishSpawner struct {
	elapsed  float64
	interval float64
}

func (f *fishSpawner) update(s *Session, dt float64) {
	if f.interval == 0 {
		lo, hi := s.tuning.FishInterval(s.level.Level)
		f.interval = s.randRange(lo, hi)
	}

	f.elapsed += dt
	if f.elapsed < f.interval {
		return
	}

	// Ready. Hold until the live population drops below the cap; only a
	// spawn resamples the interval.
	if s.store.CountAlive(entity.KindFish) >= s.tuning.FishCapacity(s.level.Level) {
		return
	}

	s.spawnFish()
	f.elapsed = 0
	lo, hi := s.tuning.FishInterval(s.level.Level)
	f.interval = s.randRange(lo, hi)
}

// spawnFish registers a fish at a random side swimming toward the other.
func (s *Session) spawnFish() {
	level := s.level.Level
	variant := s.rng.Intn(FishVariants(level))

	fromLeft := s.rng.Intn(2) == 0
	y := s.randRange(s.world.H*0.12, s.world.H*0.82)

	speed := s.tuning.FishBaseSpeed * (1 + s.tuning.FishLevelScale*float64(level-1))
	factor := s.randRange(0.8, 1.6)

	e := &entity.Entity{
		Kind:        entity.KindFish,
		Variant:     variant,
		Y:           y,
		BaseY:       y,
		HalfW:       2.0,
		HalfH:       1.0,
		Scale:       1,
		SpeedFactor: factor,
	}
	if fromLeft {
		e.X = -e.HalfW
		e.VX = speed * factor
	} else {
		e.X = s.world.W + e.HalfW
		e.VX = -speed * factor
		e.Flip = true
	}
	e.X = geom.Clamp(e.X, -s.tuning.BoundsMargin, s.world.W+s.tuning.BoundsMargin)

	s.store.Register(e)
	e.Visual = s.newVisual(e.Kind, e.Variant)
}

// goldfishManager is the bonus-target state machine. Other systems query
// eligibility and report catches/escapes; nothing mutates its flags
// directly.
type goldfishManager struct {
	spawnedThisLevel bool
	active           *entity.Entity

	armed      bool
	delay      float64
	elapsed    float64
	checkClock float64
}

// isEligible: a goldfish only appears when a life is missing, none is
// active and none has spawned yet this level.
func (g *goldfishManager) isEligible(s *Session) bool {
	return s.lives < s.tuning.MaxLives && g.active == nil && !g.spawnedThisLevel
}

func (g *goldfishManager) update(s *Session, dt float64) {
	if !g.isEligible(s) {
		return
	}

	if !g.armed {
		g.armed = true
		g.delay = s.randRange(s.tuning.GoldfishDelayMin, s.tuning.GoldfishDelayMax)
		g.elapsed = 0
		g.checkClock = 0
	}

	g.elapsed += dt
	if g.elapsed < g.delay {
		return
	}

	// Past the delay each periodic check is an independent coin flip.
	g.checkClock += dt
	for g.checkClock >= s.tuning.GoldfishCheckStep {
		g.checkClock -= s.tuning.GoldfishCheckStep
		if s.rng.Float64() < s.tuning.GoldfishChance {
			g.trySpawn(s)
			return
		}
	}
}

func (g *goldfishManager) trySpawn(s *Session) {
	if !g.isEligible(s) {
		return
	}

	fromLeft := s.rng.Intn(2) == 0
	goal := 1.0
	x := -2.0
	if !fromLeft {
		goal = -1.0
		x = s.world.W + 2.0
	}
	y := s.randRange(s.world.H*0.15, s.world.H*0.75)

	e := &entity.Entity{
		Kind:  entity.KindGoldfish,
		X:     geom.Clamp(x, -s.tuning.BoundsMargin, s.world.W+s.tuning.BoundsMargin),
		Y:     y,
		HalfW: 2.0,
		HalfH: 1.0,
		Scale: 1,
		Flip:  !fromLeft,
		Erratic: &entity.Erratic{
			GoalDir:    goal,
			Speed:      s.tuning.GoldfishSpeed,
			DriftTimer: s.randRange(0.3, 0.7),
			TurnTimer:  s.randRange(1.5, 2.5),
			CorrTimer:  2.0,
			BoostTimer: s.randRange(0.8, 1.4),
		},
	}
	e.VX = goal * e.Erratic.Speed
	e.VY = s.randRange(-2, 2)

	s.store.Register(e)
	e.Visual = s.newVisual(e.Kind, 0)

	g.active = e
	g.spawnedThisLevel = true
	g.armed = false

	s.notify(Notice{
		Text:     "A goldfish! Catch it for an extra life",
		Category: NoticeInfo,
		Duration: 3 * time.Second,
	})
}

// onCaught clears the active slot; the spawned-this-level flag holds until
// the next level.
func (g *goldfishManager) onCaught() {
	g.active = nil
}

// onEscaped clears the active slot with no life penalty. Unlike the mine,
// an escaped goldfish does not come back this level.
func (g *goldfishManager) onEscaped() {
	g.active = nil
}

func (g *goldfishManager) resetLevel() {
	g.spawnedThisLevel = false
	g.armed = false
}

// mineManager is the hazard state machine. One mine per level unless it
// drifts out of bounds, which re-enables eligibility.
type mineManager struct {
	spawnedThisLevel bool
	active           *entity.Entity

	armed   bool
	delay   float64
	elapsed float64
}

func (m *mineManager) isEligible() bool {
	return !m.spawnedThisLevel && m.active == nil
}

func (m *mineManager) update(s *Session, dt float64) {
	if !m.isEligible() {
		return
	}

	if !m.armed {
		m.armed = true
		m.delay = s.randRange(s.tuning.MineDelayMin, s.tuning.MineDelayMax)
		m.elapsed = 0
	}

	m.elapsed += dt
	if m.elapsed < m.delay {
		return
	}

	m.trySpawn(s)
}

// trySpawn places the mine near world center with jitter and a random
// diagonal velocity of fixed speed. Spawning past the delay is
// unconditional.
func (m *mineManager) trySpawn(s *Session) {
	if !m.isEligible() {
		return
	}

	j := s.tuning.MineJitter
	x := geom.Clamp(s.world.W/2+s.randRange(-j, j), 0, s.world.W)
	y := geom.Clamp(s.world.H/2+s.randRange(-j, j), 0, s.world.H)

	dx := 1.0
	if s.rng.Intn(2) == 0 {
		dx = -1.0
	}
	dy := 1.0
	if s.rng.Intn(2) == 0 {
		dy = -1.0
	}
	diag := s.tuning.MineSpeed / math.Sqrt2

	e := &entity.Entity{
		Kind:  entity.KindMine,
		X:     x,
		Y:     y,
		VX:    dx * diag,
		VY:    dy * diag,
		HalfW: 1.4,
		HalfH: 1.4,
		Scale: 1,
	}

	s.store.Register(e)
	e.Visual = s.newVisual(e.Kind, 0)

	m.active = e
	m.spawnedThisLevel = true
	m.armed = false
}

// onEscaped re-enables future mine eligibility: a drifted-out mine is
// replaced after a fresh delay.
func (m *mineManager) onEscaped() {
	m.active = nil
	m.spawnedThisLevel = false
	m.armed = false
}

func (m *mineManager) resetLevel() {
	m.spawnedThisLevel = false
	m.armed = false
}

// Bubble is an ambient decoration. Bubbles live outside the entity store:
// they are never hit-testable and expire on their own timer.
type Bubble struct {
	X, Y  float64
	VY    float64
	Life  float64
	Scale float64
}

type bubbleSpawner struct {
	elapsed  float64
	interval float64
	live     []Bubble
}

func (b *bubbleSpawner) update(s *Session, dt float64) {
	if b.interval == 0 {
		b.interval = s.randRange(s.tuning.BubbleCadenceMin, s.tuning.BubbleCadenceMax)
	}

	b.elapsed += dt
	if b.elapsed < b.interval {
		return
	}
	b.elapsed = 0
	b.interval = s.randRange(s.tuning.BubbleCadenceMin, s.tuning.BubbleCadenceMax)

	n := 1
	if s.rng.Float64() < s.tuning.BubblePairChance {
		n = 2
	}
	for i := 0; i < n; i++ {
		b.live = append(b.live, Bubble{
			X:     s.randRange(0, s.world.W),
			Y:     s.world.H - 1,
			VY:    -s.tuning.BubbleRiseSpeed * s.randRange(0.8, 1.2),
			Life:  s.randRange(s.tuning.BubbleLifetimeMin, s.tuning.BubbleLifetimeMax),
			Scale: s.randRange(0.5, 1.0),
		})
	}
}

// updateBubbles moves the decorations and culls expired or escaped ones.
func (s *Session) updateBubbles(dt float64) {
	margin := s.tuning.BoundsMargin
	kept := s.bubbles.live[:0]
	for _, bub := range s.bubbles.live {
		bub.Life -= dt
		bub.Y += bub.VY * dt
		if bub.Life <= 0 || bub.Y < -margin {
			continue
		}
		kept = append(kept, bub)
	}
	s.bubbles.live = kept
}
