package input

import "reefcatch/internal/geom"

// crosshairSpeed is how fast the aim point moves, world units per second.
const crosshairSpeed = 38.0

// Crosshair is the aim point moved by the directional keys. It lives
// outside the simulation core: the core only ever sees the world-space
// point of a catch attempt.
type Crosshair struct {
	X, Y float64
}

// NewCrosshair places the aim point at the center of the world.
func NewCrosshair(worldW, worldH float64) Crosshair {
	return Crosshair{X: worldW / 2, Y: worldH / 2}
}

// Update moves the crosshair from the held directional keys, clamped to
// the world.
func (c *Crosshair) Update(in Input, dt, worldW, worldH float64) {
	if in.Left {
		c.X -= crosshairSpeed * dt
	}
	if in.Right {
		c.X += crosshairSpeed * dt
	}
	if in.Up {
		c.Y -= crosshairSpeed * dt
	}
	if in.Down {
		c.Y += crosshairSpeed * dt
	}
	c.X = geom.Clamp(c.X, 0, worldW)
	c.Y = geom.Clamp(c.Y, 0, worldH)
}
