// Package entity owns the collection of active game creatures and their
// lifecycle. Creatures are created by the spawn coordinator, moved by the
// movement system and removed exactly once, either by the bounds check or by
// a successful catch.
package entity

import "reefcatch/internal/geom"

// Kind tags the creature variant union. Movement and catch resolution
// dispatch on it.
type Kind int

const (
	KindFish     Kind = iota // common catchable target
	KindGoldfish             // rare, grants an extra life
	KindMine                 // hazard, penalizes on hit, never removed by it
	KindBubble               // ambient decoration, never in the store
)

// String implements fmt.Stringer for logs and test failures.
func (k Kind) String() string {
	switch k {
	case KindFish:
		return "fish"
	case KindGoldfish:
		return "goldfish"
	case KindMine:
		return "mine"
	case KindBubble:
		return "bubble"
	default:
		return "unknown"
	}
}

// Phase is the removal sub-state of a creature. A creature leaves PhaseAlive
// at most once and then only moves forward.
type Phase int

const (
	PhaseAlive     Phase = iota
	PhaseSinking         // caught fish, first removal stage
	PhaseCapturing       // second removal stage, visual capture
	PhasePurged
)

// Visual is the render handle a creature may carry. The core only allocates,
// repositions and destroys it; drawing specifics live in the adapter.
type Visual interface {
	Move(x, y, rot, scale float64, flip bool)
	Destroy()
}

// Erratic is the goldfish motion payload: goal-directed horizontal travel
// with temporary reversals, drift re-randomization and periodic speed bursts.
// All timers count down in seconds.
type Erratic struct {
	GoalDir    float64 // +1 rightward, -1 leftward, toward the entry-opposite side
	Speed      float64 // base horizontal speed
	Reversed   bool
	DriftTimer float64 // until vertical drift re-randomizes
	TurnTimer  float64 // until the next temporary reversal begins
	TurnLeft   float64 // remaining reversal duration, when Reversed
	CorrTimer  float64 // until the next forced direction correction
	BoostTimer float64 // until the next speed burst begins
	BoostLeft  float64 // remaining burst duration
}

// Entity is one dynamic game object. Fields beyond the common set are only
// meaningful for the kind that owns them.
type Entity struct {
	ID      int64
	Kind    Kind
	Variant int // fish sprite variant, indexes the base value table

	X, Y   float64
	VX, VY float64
	HalfW  float64
	HalfH  float64

	Alive     bool
	Phase     Phase
	PhaseTime float64 // seconds spent in the current removal phase

	Scale float64
	Flip  bool // horizontal sprite flip, set from travel direction

	BaseY       float64  // fish: bob centerline
	SpeedFactor float64  // fish: per-entity random speed multiplier
	Erratic     *Erratic // goldfish only

	Visual Visual
}

// Bounds returns the creature's bounding box.
func (e *Entity) Bounds() geom.Rect {
	return geom.RectAround(e.X, e.Y, e.HalfW, e.HalfH)
}

// Dying reports whether the creature has entered removal but is not yet purged.
func (e *Entity) Dying() bool {
	return e.Phase == PhaseSinking || e.Phase == PhaseCapturing
}
