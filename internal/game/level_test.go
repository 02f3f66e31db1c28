package game

import "testing"

func TestLevelAdvancesOnCountdownExpiry(t *testing.T) {
	env := newTestEnv(t, nil)
	s := env.s
	s.gold.spawnedThisLevel = true
	s.mine.spawnedThisLevel = true
	hooksBefore := len(env.hooks)

	s.updateLevel(s.tuning.LevelSeconds + 0.01)

	if s.level.Level != 2 {
		t.Fatalf("level = %d, want 2", s.level.Level)
	}
	if s.level.Remaining != s.tuning.LevelSeconds {
		t.Errorf("Remaining = %v, want reset to %v", s.level.Remaining, s.tuning.LevelSeconds)
	}
	if s.gold.spawnedThisLevel || s.mine.spawnedThisLevel {
		t.Errorf("per-level spawn flags not cleared on level up")
	}
	if len(env.hooks) != hooksBefore+1 {
		t.Fatalf("backdrop hook not fired on level up")
	}
	got := env.hooks[len(env.hooks)-1]
	if got != (hookCall{level: 2, mapIndex: 1, depth: 1}) {
		t.Errorf("hook = %+v, want level 2 map 1 depth 1", got)
	}
	if n, ok := env.notifier.last(NoticeLevel); !ok || n.Text != "Depth 2" {
		t.Errorf("level notice = %+v ok=%v, want Depth 2", n, ok)
	}
}

func TestBackdropRotationWraps(t *testing.T) {
	env := newTestEnv(t, nil) // MapCount 4
	s := env.s

	for s.level.Level < 5 {
		s.updateLevel(s.tuning.LevelSeconds + 1)
	}

	got := env.hooks[len(env.hooks)-1]
	if got != (hookCall{level: 5, mapIndex: 0, depth: 0}) {
		t.Errorf("hook at level 5 = %+v, want wrap to map 0", got)
	}
}

func TestFinalLevelExpiryEndsSession(t *testing.T) {
	env := newTestEnv(t, nil)
	s := env.s
	s.level.Level = s.tuning.MaxLevel
	s.level.Remaining = 0.5

	s.updateLevel(1.0)

	if !s.gameOver {
		t.Fatalf("expected terminal session at final-level expiry")
	}
	if s.level.Remaining != 0 {
		t.Errorf("Remaining = %v at terminal expiry, want 0", s.level.Remaining)
	}
	if s.level.Level != s.tuning.MaxLevel {
		t.Errorf("level advanced past the cap: %d", s.level.Level)
	}
	if env.notifier.count(NoticeGameOver) != 1 {
		t.Errorf("game-over notices = %d, want 1", env.notifier.count(NoticeGameOver))
	}
}

func TestComboSurvivesLevelTransition(t *testing.T) {
	env := newTestEnv(t, nil)
	s := env.s
	s.combo.scoreHit(s.tuning.ComboWindow)
	s.combo.scoreHit(s.tuning.ComboWindow)

	s.updateLevel(s.tuning.LevelSeconds + 0.01)

	if s.combo.Streak != 2 {
		t.Errorf("streak = %d after level up, want 2 (only misses, hazards, bonuses and decay reset it)", s.combo.Streak)
	}
}

func TestLevelCountdownTicks(t *testing.T) {
	env := newTestEnv(t, nil)
	s := env.s

	s.updateLevel(1.5)

	if s.level.Level != 1 {
		t.Errorf("level advanced early")
	}
	want := s.tuning.LevelSeconds - 1.5
	if s.level.Remaining != want {
		t.Errorf("Remaining = %v, want %v", s.level.Remaining, want)
	}
}
