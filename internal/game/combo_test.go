package game

import "testing"

func TestComboHitIncrementsAndRefreshesWindow(t *testing.T) {
	var c comboState

	if got := c.scoreHit(2.5); got != 1 {
		t.Errorf("first hit streak = %d, want 1", got)
	}
	c.update(2.0) // inside the window
	if got := c.scoreHit(2.5); got != 2 {
		t.Errorf("second hit streak = %d, want 2", got)
	}
	// The second hit refreshed the timer, so another 2.0s does not expire it.
	if expired := c.update(2.0); expired {
		t.Errorf("streak expired inside refreshed window")
	}
	if c.Streak != 2 {
		t.Errorf("Streak = %d, want 2", c.Streak)
	}
}

func TestComboExpiresUnattended(t *testing.T) {
	var c comboState
	c.scoreHit(1.0)

	if expired := c.update(0.5); expired {
		t.Fatalf("expired early")
	}
	if expired := c.update(0.6); !expired {
		t.Fatalf("expected expiry after the window elapsed")
	}
	if c.Streak != 0 {
		t.Errorf("Streak = %d after expiry, want 0", c.Streak)
	}
	// Expiry reports exactly once.
	if expired := c.update(1.0); expired {
		t.Errorf("idle streak reported a second expiry")
	}
}

func TestComboBreakResetsStreakNotMax(t *testing.T) {
	var c comboState
	c.scoreHit(2.5)
	c.scoreHit(2.5)
	c.scoreHit(2.5)
	c.breakStreak()

	if c.Streak != 0 {
		t.Errorf("Streak = %d after break, want 0", c.Streak)
	}
	if c.Max != 3 {
		t.Errorf("Max = %d after break, want 3", c.Max)
	}
	if expired := c.update(10); expired {
		t.Errorf("broken streak reported an expiry")
	}
}
