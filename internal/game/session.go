// Package game contains the simulation core: session state, the fixed-cadence
// update pipeline, spawn generators, movement, catch resolution, combo/score
// tracking and level progression. It owns no rendering; visuals and feedback
// go through the collaborator interfaces below.
package game

import (
	"math/rand"
	"sync"
	"time"

	"reefcatch/internal/entity"
)

// World is the playfield extent in viewport units. Mutated only by resize.
type World struct {
	W, H float64
}

// VisualFactory allocates a render handle for a creature. A nil factory or
// an allocation error leaves the creature without a visual; the simulation
// carries on.
type VisualFactory interface {
	CreateVisual(kind entity.Kind, variant int) (entity.Visual, error)
}

// NoticeCategory classifies feedback messages so the front-end can style
// them without the core knowing anything about visuals.
type NoticeCategory int

const (
	NoticeScore NoticeCategory = iota
	NoticePenalty
	NoticeCombo
	NoticeLife
	NoticeLevel
	NoticeInfo
	NoticeFlash
	NoticeGameOver
)

// Notice is an ephemeral feedback request: combo banner refresh, transient
// score/penalty popups, session-over banner. X,Y are world coordinates for
// positioned popups; zero for banners.
type Notice struct {
	Text     string
	Category NoticeCategory
	Duration time.Duration
	X, Y     float64
}

// Notifier receives feedback requests. Implementations own the visuals.
type Notifier interface {
	Notify(n Notice)
}

// Options configures a session. Zero-value collaborators are allowed; the
// session degrades to a headless simulation, which is how the tests run it.
type Options struct {
	Tuning    Tuning
	World     World
	Visuals   VisualFactory
	Notifier  Notifier
	Seed      int64
	MapCount  int // backdrop rotation length for (level-1) mod MapCount
	LevelHook func(level, mapIndex, depth int)
}

// Session is the single owner of all mutable game state. One lock
// serializes Advance against AttemptCatch so an input resolution never
// interleaves with a tick.
type Session struct {
	mu sync.Mutex

	tuning   Tuning
	world    World
	rng      *rand.Rand
	visuals  VisualFactory
	notifier Notifier

	mapCount  int
	levelHook func(level, mapIndex, depth int)

	store *entity.Store

	running  bool
	paused   bool
	gameOver bool

	clock   clock
	simTime float64

	score int
	lives int
	combo comboState
	level levelState

	fish    fishSpawner
	gold    goldfishManager
	mine    mineManager
	bubbles bubbleSpawner

	stats        Stats
	lastShotAt   time.Time
	haveLastShot bool
}

// NewSession creates a session in the not-running state. Call Start to
// begin play.
func NewSession(opts Options) *Session {
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	mapCount := opts.MapCount
	if mapCount < 1 {
		mapCount = 1
	}
	return &Session{
		tuning:    opts.Tuning,
		world:     opts.World,
		rng:       rand.New(rand.NewSource(seed)),
		visuals:   opts.Visuals,
		notifier:  opts.Notifier,
		mapCount:  mapCount,
		levelHook: opts.LevelHook,
		store:     entity.NewStore(),
	}
}

// Start resets all per-session state and begins play at level 1.
func (s *Session) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.store.Reset()
	s.running = true
	s.paused = false
	s.gameOver = false
	s.clock = clock{}
	s.simTime = 0
	s.score = 0
	s.lives = s.tuning.MaxLives
	s.combo = comboState{}
	s.level = levelState{Level: 1, Remaining: s.tuning.LevelSeconds}
	s.fish = fishSpawner{}
	s.gold = goldfishManager{}
	s.mine = mineManager{}
	s.bubbles = bubbleSpawner{}
	s.stats = Stats{}
	s.haveLastShot = false

	s.applyLevelHook()
}

// Pause freezes the simulation. Timers stop because delta-time is simply
// withheld; resume continues mid-interval.
func (s *Session) Pause() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.paused = true
}

// Resume unfreezes the simulation.
func (s *Session) Resume() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.paused = false
}

// Paused reports whether the simulation is frozen.
func (s *Session) Paused() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.paused
}

// Running reports whether a session is in progress and not yet terminal.
func (s *Session) Running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.running
}

// GameOver reports whether the session ended in a terminal state.
func (s *Session) GameOver() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.gameOver
}

// Resize mutates the world extent. Safe between ticks.
func (s *Session) Resize(w, h float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.world = World{W: w, H: h}
}

// HUD is a read-only snapshot of the display state for one frame.
type HUD struct {
	Score    int
	Lives    int
	MaxLives int
	Level    int
	TimeLeft float64
	Combo    int
	MaxCombo int
	FPS      float64
	Paused   bool
	GameOver bool
}

// Snapshot returns the current HUD state.
func (s *Session) Snapshot() HUD {
	s.mu.Lock()
	defer s.mu.Unlock()
	return HUD{
		Score:    s.score,
		Lives:    s.lives,
		MaxLives: s.tuning.MaxLives,
		Level:    s.level.Level,
		TimeLeft: s.level.Remaining,
		Combo:    s.combo.Streak,
		MaxCombo: s.combo.Max,
		FPS:      s.clock.fps,
		Paused:   s.paused,
		GameOver: s.gameOver,
	}
}

// SyncVisuals is the entity-positioning half of the render phase: every
// alive creature with a render handle is repositioned by center, rotation,
// scale and flip. Dying creatures keep their last position until purge
// detaches the handle.
func (s *Session) SyncVisuals() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.store.ForEach(func(e *entity.Entity) bool {
		if e.Visual != nil && e.Alive {
			e.Visual.Move(e.X, e.Y, 0, e.Scale, e.Flip)
		}
		return true
	})
}

// ForEachAlive exposes alive creatures for rendering, insertion order.
func (s *Session) ForEachAlive(fn func(*entity.Entity) bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.store.ForEachAlive(fn)
}

// Bubbles returns the live ambient decorations for rendering.
func (s *Session) Bubbles() []Bubble {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Bubble, len(s.bubbles.live))
	copy(out, s.bubbles.live)
	return out
}

// WorldSize returns the current playfield extent.
func (s *Session) WorldSize() World {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.world
}

// endSession moves the session to its terminal state. The only fatal
// conditions are 0 lives and timer exhaustion at the final level; both land
// here, never in an error path.
func (s *Session) endSession() {
	if s.gameOver {
		return
	}
	s.running = false
	s.gameOver = true
	s.notify(Notice{
		Text:     "SESSION OVER",
		Category: NoticeGameOver,
		Duration: 5 * time.Second,
	})
}

// applyLevelHook reports the backdrop selection for the current level. The
// map index doubles as the depth-tint level.
func (s *Session) applyLevelHook() {
	if s.levelHook == nil {
		return
	}
	idx := (s.level.Level - 1) % s.mapCount
	s.levelHook(s.level.Level, idx, idx)
}

// notify forwards a feedback request if a collaborator is attached.
func (s *Session) notify(n Notice) {
	if s.notifier != nil {
		s.notifier.Notify(n)
	}
}

// newVisual allocates a render handle, tolerating a missing collaborator or
// a failed allocation. The creature's logic continues with no visual.
func (s *Session) newVisual(kind entity.Kind, variant int) entity.Visual {
	if s.visuals == nil {
		return nil
	}
	v, err := s.visuals.CreateVisual(kind, variant)
	if err != nil {
		return nil
	}
	return v
}

// randRange samples uniformly from [lo, hi).
func (s *Session) randRange(lo, hi float64) float64 {
	if hi <= lo {
		return lo
	}
	return lo + s.rng.Float64()*(hi-lo)
}
