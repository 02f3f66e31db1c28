package game

// comboState tracks the consecutive-catch streak. The machine has two
// states: idle (Streak == 0) and active (Streak >= 1 with the decay timer
// running). Streak > 0 implies decay > 0.
type comboState struct {
	Streak int
	Max    int
	decay  float64
}

// scoreHit records a successful fish catch: increments the streak, updates
// the observed maximum and refreshes the decay timer to the fixed window.
// Returns the streak after the increment.
func (c *comboState) scoreHit(window float64) int {
	c.Streak++
	if c.Streak > c.Max {
		c.Max = c.Streak
	}
	c.decay = window
	return c.Streak
}

// breakStreak drops back to idle immediately. Called on a miss, a mine hit
// or a goldfish catch.
func (c *comboState) breakStreak() {
	c.Streak = 0
	c.decay = 0
}

// update advances the decay timer. Returns true on the tick the streak
// expires unattended.
func (c *comboState) update(dt float64) bool {
	if c.Streak == 0 {
		return false
	}
	c.decay -= dt
	if c.decay <= 0 {
		c.Streak = 0
		c.decay = 0
		return true
	}
	return false
}
