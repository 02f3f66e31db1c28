package game

import (
	"math"
	"testing"

	"reefcatch/internal/entity"
)

func TestFishBobsAroundBaseline(t *testing.T) {
	env := newTestEnv(t, nil)
	s := env.s
	fish := env.addFish(50, 25, 0)
	fish.VX = 10

	maxDev := 0.0
	for i := 0; i < 200; i++ {
		s.simTime += 0.016
		s.moveFish(fish, 0.016)
		if dev := math.Abs(fish.Y - fish.BaseY); dev > maxDev {
			maxDev = dev
		}
	}

	if maxDev > s.tuning.BobAmplitude+0.001 {
		t.Errorf("bob deviation %v exceeds amplitude %v", maxDev, s.tuning.BobAmplitude)
	}
	if maxDev < s.tuning.BobAmplitude*0.5 {
		t.Errorf("bob deviation %v suspiciously small, fish not bobbing", maxDev)
	}
	if fish.X <= 50 {
		t.Errorf("fish did not travel horizontally, X = %v", fish.X)
	}
}

func TestFishEscapeCostsALife(t *testing.T) {
	env := newTestEnv(t, nil)
	s := env.s
	fish := env.addFish(50, 25, 0)
	fish.X = s.world.W + s.tuning.BoundsMargin + 1

	s.pruneBounds()

	if s.lives != s.tuning.MaxLives-1 {
		t.Errorf("lives = %d, want %d", s.lives, s.tuning.MaxLives-1)
	}
	if fish.Phase != entity.PhasePurged {
		t.Errorf("escaped fish phase = %v, want PhasePurged", fish.Phase)
	}
	if v := env.visuals.created[0]; !v.destroyed {
		t.Errorf("escaped fish visual not destroyed")
	}
}

func TestLastLifeEscapeEndsSession(t *testing.T) {
	env := newTestEnv(t, nil)
	s := env.s
	s.lives = 1
	fish := env.addFish(50, 25, 0)
	fish.X = -s.tuning.BoundsMargin - 1

	s.pruneBounds()

	if !s.gameOver {
		t.Fatalf("expected terminal session at 0 lives")
	}
	if s.Running() {
		t.Errorf("session still running after game over")
	}
	if env.notifier.count(NoticeGameOver) != 1 {
		t.Errorf("game-over notices = %d, want 1", env.notifier.count(NoticeGameOver))
	}
}

func TestGoldfishEscapeCostsNothing(t *testing.T) {
	env := newTestEnv(t, nil)
	s := env.s
	gold := &entity.Entity{Kind: entity.KindGoldfish, X: s.world.W + 10, Y: 25, HalfW: 2, HalfH: 1, Scale: 1}
	s.store.Register(gold)
	s.gold.active = gold
	s.gold.spawnedThisLevel = true

	s.pruneBounds()

	if s.lives != s.tuning.MaxLives {
		t.Errorf("lives = %d after goldfish escape, want %d", s.lives, s.tuning.MaxLives)
	}
	if s.gold.active != nil {
		t.Errorf("goldfish slot not cleared on escape")
	}
	if !s.gold.spawnedThisLevel {
		t.Errorf("escaped goldfish must not return this level")
	}
}

func TestMineEscapeReenablesSpawning(t *testing.T) {
	env := newTestEnv(t, nil)
	s := env.s
	mine := &entity.Entity{Kind: entity.KindMine, X: 50, Y: -s.tuning.BoundsMargin - 1, HalfW: 1.4, HalfH: 1.4, Scale: 1}
	s.store.Register(mine)
	s.mine.active = mine
	s.mine.spawnedThisLevel = true

	s.pruneBounds()

	if !s.mine.isEligible() {
		t.Errorf("mine manager not re-armed after escape")
	}
	if s.lives != s.tuning.MaxLives {
		t.Errorf("mine escape cost a life")
	}
}

func TestRemovalRunsSinkThenCaptureThenPurge(t *testing.T) {
	env := newTestEnv(t, nil)
	s := env.s
	fish := env.addFish(50, 25, 0)
	s.store.MarkDead(fish, entity.PhaseSinking)
	yBefore := fish.Y

	s.advanceRemovals(s.tuning.SinkSeconds - 0.01)
	if fish.Phase != entity.PhaseSinking {
		t.Fatalf("phase = %v before sink elapsed, want PhaseSinking", fish.Phase)
	}
	if fish.Y <= yBefore {
		t.Errorf("sinking fish did not move down: %v -> %v", yBefore, fish.Y)
	}

	s.advanceRemovals(0.02)
	if fish.Phase != entity.PhaseCapturing {
		t.Fatalf("phase = %v after sink window, want PhaseCapturing", fish.Phase)
	}

	s.advanceRemovals(s.tuning.CaptureSeconds + 0.01)
	if fish.Phase != entity.PhasePurged {
		t.Fatalf("phase = %v after capture window, want PhasePurged", fish.Phase)
	}
	if s.store.Len() != 0 {
		t.Errorf("purged fish still in store")
	}
	if v := env.visuals.created[0]; !v.destroyed {
		t.Errorf("visual survived the purge")
	}
}

func TestDyingFishIgnoredByMovementAndHits(t *testing.T) {
	env := newTestEnv(t, nil)
	s := env.s
	fish := env.addFish(50, 25, 0)
	s.store.MarkDead(fish, entity.PhaseSinking)
	fish.VX = 100

	s.updateMovement(0.016)
	if fish.X != 50 {
		t.Errorf("dying fish moved horizontally to %v", fish.X)
	}

	clock := newShotClock()
	if got := s.AttemptCatch(50, fish.Y, clock.next()); got != OutcomeMiss {
		t.Errorf("catch on dying fish = %v, want OutcomeMiss", got)
	}
}

func TestBubblesRiseAndExpire(t *testing.T) {
	env := newTestEnv(t, nil)
	s := env.s
	s.bubbles.live = []Bubble{
		{X: 10, Y: 40, VY: -4, Life: 1.0, Scale: 1},
		{X: 20, Y: 40, VY: -4, Life: 0.01, Scale: 1},
	}

	s.updateBubbles(0.1)

	if len(s.bubbles.live) != 1 {
		t.Fatalf("live bubbles = %d, want 1 after expiry cull", len(s.bubbles.live))
	}
	b := s.bubbles.live[0]
	if b.Y >= 40 {
		t.Errorf("bubble did not rise: Y = %v", b.Y)
	}
	if b.Life >= 1.0 {
		t.Errorf("bubble lifetime not decremented: %v", b.Life)
	}
}

func TestBubblesCulledAboveSurface(t *testing.T) {
	env := newTestEnv(t, nil)
	s := env.s
	s.bubbles.live = []Bubble{{X: 10, Y: -s.tuning.BoundsMargin - 1, VY: -4, Life: 10, Scale: 1}}

	s.updateBubbles(0.016)

	if len(s.bubbles.live) != 0 {
		t.Errorf("bubble above the exit margin not culled")
	}
}
