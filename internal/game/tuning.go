package game

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Tuning centralizes all gameplay parameters. Defaults match the shipped
// balance; an optional YAML file can override individual fields.
type Tuning struct {
	// Session
	MaxLives     int     `yaml:"maxLives"`
	MaxLevel     int     `yaml:"maxLevel"`
	LevelSeconds float64 `yaml:"levelSeconds"`
	MaxDelta     float64 `yaml:"maxDelta"` // per-tick delta clamp, seconds

	// Fish spawning. The sample window shrinks geometrically per level and
	// is floor-clamped.
	FishIntervalMin   float64 `yaml:"fishIntervalMin"`
	FishIntervalMax   float64 `yaml:"fishIntervalMax"`
	FishIntervalDecay float64 `yaml:"fishIntervalDecay"`
	FishIntervalFloor float64 `yaml:"fishIntervalFloor"`
	FishCapacityBase  int     `yaml:"fishCapacityBase"`

	// Fish motion
	FishBaseSpeed  float64 `yaml:"fishBaseSpeed"`
	FishLevelScale float64 `yaml:"fishLevelScale"` // speed gain per level above 1
	BobAmplitude   float64 `yaml:"bobAmplitude"`
	BobFrequency   float64 `yaml:"bobFrequency"`

	// Goldfish
	GoldfishDelayMin  float64 `yaml:"goldfishDelayMin"`
	GoldfishDelayMax  float64 `yaml:"goldfishDelayMax"`
	GoldfishChance    float64 `yaml:"goldfishChance"`    // per check, after the delay
	GoldfishCheckStep float64 `yaml:"goldfishCheckStep"` // seconds between checks
	GoldfishSpeed     float64 `yaml:"goldfishSpeed"`

	// Mine
	MineDelayMin float64 `yaml:"mineDelayMin"`
	MineDelayMax float64 `yaml:"mineDelayMax"`
	MineSpeed    float64 `yaml:"mineSpeed"`
	MineJitter   float64 `yaml:"mineJitter"` // spawn offset around world center

	// Bubbles
	BubbleCadenceMin  float64 `yaml:"bubbleCadenceMin"`
	BubbleCadenceMax  float64 `yaml:"bubbleCadenceMax"`
	BubblePairChance  float64 `yaml:"bubblePairChance"`
	BubbleRiseSpeed   float64 `yaml:"bubbleRiseSpeed"`
	BubbleLifetimeMin float64 `yaml:"bubbleLifetimeMin"`
	BubbleLifetimeMax float64 `yaml:"bubbleLifetimeMax"`

	// Combat
	MinShotInterval time.Duration `yaml:"minShotInterval"`
	CatchLeniency   float64       `yaml:"catchLeniency"`
	MissPenalty     int           `yaml:"missPenalty"`
	MinePenalty     int           `yaml:"minePenalty"`
	ComboWindow     float64       `yaml:"comboWindow"` // streak decay, seconds

	// Removal animation stages
	SinkSeconds    float64 `yaml:"sinkSeconds"`
	CaptureSeconds float64 `yaml:"captureSeconds"`
	SinkSpeed      float64 `yaml:"sinkSpeed"`

	// World
	BoundsMargin float64 `yaml:"boundsMargin"` // exit margin before a purge
}

// FishBaseValues is the per-variant base score. The variant pool widens at
// the level breakpoints below, so early levels only see the cheap fish.
var FishBaseValues = []int{10, 15, 20, 30, 40}

// fishPoolBreakpoints lists the levels at which one more variant unlocks.
// Levels 1-2 have two variants.
var fishPoolBreakpoints = []int{3, 5, 7}

// FishVariants returns how many fish variants are in the pool at a level.
func FishVariants(level int) int {
	n := 2
	for _, bp := range fishPoolBreakpoints {
		if level >= bp {
			n++
		}
	}
	if n > len(FishBaseValues) {
		n = len(FishBaseValues)
	}
	return n
}

// FishCapacity returns the live fish cap at a level.
func (t Tuning) FishCapacity(level int) int {
	return t.FishCapacityBase + int(0.6*float64(level-1))
}

// FishInterval returns the level-scaled spawn interval window.
func (t Tuning) FishInterval(level int) (min, max float64) {
	min = t.FishIntervalMin
	max = t.FishIntervalMax
	for i := 1; i < level; i++ {
		min *= t.FishIntervalDecay
		max *= t.FishIntervalDecay
	}
	if min < t.FishIntervalFloor {
		min = t.FishIntervalFloor
	}
	if max < min {
		max = min
	}
	return min, max
}

// DefaultTuning returns the shipped balance.
func DefaultTuning() Tuning {
	return Tuning{
		MaxLives:     3,
		MaxLevel:     8,
		LevelSeconds: 45,
		MaxDelta:     0.05,

		FishIntervalMin:   1.2,
		FishIntervalMax:   2.4,
		FishIntervalDecay: 0.85,
		FishIntervalFloor: 0.4,
		FishCapacityBase:  4,

		FishBaseSpeed:  9.0,
		FishLevelScale: 0.12,
		BobAmplitude:   1.1,
		BobFrequency:   2.2,

		GoldfishDelayMin:  3,
		GoldfishDelayMax:  8,
		GoldfishChance:    0.3,
		GoldfishCheckStep: 1.0,
		GoldfishSpeed:     13.0,

		MineDelayMin: 5,
		MineDelayMax: 12,
		MineSpeed:    7.0,
		MineJitter:   8.0,

		BubbleCadenceMin:  0.5,
		BubbleCadenceMax:  1.4,
		BubblePairChance:  0.15,
		BubbleRiseSpeed:   4.0,
		BubbleLifetimeMin: 2.0,
		BubbleLifetimeMax: 4.0,

		MinShotInterval: 90 * time.Millisecond,
		CatchLeniency:   1.2,
		MissPenalty:     10,
		MinePenalty:     25,
		ComboWindow:     2.5,

		SinkSeconds:    0.35,
		CaptureSeconds: 0.45,
		SinkSpeed:      3.0,

		BoundsMargin: 4.0,
	}
}

// LoadTuning reads a YAML override file on top of the defaults.
func LoadTuning(path string) (Tuning, error) {
	t := DefaultTuning()
	data, err := os.ReadFile(path)
	if err != nil {
		return t, fmt.Errorf("failed to read tuning file: %w", err)
	}
	if err := yaml.Unmarshal(data, &t); err != nil {
		return t, fmt.Errorf("failed to parse tuning YAML: %w", err)
	}
	if err := validateTuning(t); err != nil {
		return t, fmt.Errorf("invalid tuning: %w", err)
	}
	return t, nil
}

func validateTuning(t Tuning) error {
	if t.MaxLives < 1 {
		return fmt.Errorf("maxLives must be at least 1, got %d", t.MaxLives)
	}
	if t.MaxLevel < 1 {
		return fmt.Errorf("maxLevel must be at least 1, got %d", t.MaxLevel)
	}
	if t.LevelSeconds <= 0 {
		return fmt.Errorf("levelSeconds must be positive, got %v", t.LevelSeconds)
	}
	if t.GoldfishChance < 0 || t.GoldfishChance > 1 {
		return fmt.Errorf("goldfishChance must be in [0,1], got %v", t.GoldfishChance)
	}
	if t.FishIntervalMin > t.FishIntervalMax {
		return fmt.Errorf("fishIntervalMin %v exceeds fishIntervalMax %v", t.FishIntervalMin, t.FishIntervalMax)
	}
	if t.FishIntervalDecay <= 0 || t.FishIntervalDecay > 1 {
		return fmt.Errorf("fishIntervalDecay must be in (0,1], got %v", t.FishIntervalDecay)
	}
	if t.MinShotInterval < 0 {
		return fmt.Errorf("minShotInterval must not be negative, got %v", t.MinShotInterval)
	}
	return nil
}
