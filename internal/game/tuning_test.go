package game

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFishVariantsUnlockAtBreakpoints(t *testing.T) {
	tests := []struct {
		level int
		want  int
	}{
		{1, 2},
		{2, 2},
		{3, 3},
		{4, 3},
		{5, 4},
		{6, 4},
		{7, 5},
		{8, 5},
		{99, 5},
	}
	for _, tt := range tests {
		if got := FishVariants(tt.level); got != tt.want {
			t.Errorf("FishVariants(%d) = %d, want %d", tt.level, got, tt.want)
		}
	}
}

func TestFishVariantsNeverExceedValueTable(t *testing.T) {
	for level := 1; level <= 20; level++ {
		if n := FishVariants(level); n > len(FishBaseValues) {
			t.Fatalf("FishVariants(%d) = %d exceeds %d scored variants", level, n, len(FishBaseValues))
		}
	}
}

func TestFishCapacityGrowsWithLevel(t *testing.T) {
	tun := DefaultTuning()
	if got := tun.FishCapacity(1); got != tun.FishCapacityBase {
		t.Errorf("FishCapacity(1) = %d, want base %d", got, tun.FishCapacityBase)
	}
	prev := tun.FishCapacity(1)
	for level := 2; level <= 10; level++ {
		cur := tun.FishCapacity(level)
		if cur < prev {
			t.Fatalf("FishCapacity(%d) = %d shrank from %d", level, cur, prev)
		}
		prev = cur
	}
}

func TestFishIntervalDecaysAndFloors(t *testing.T) {
	tun := DefaultTuning()

	lo1, hi1 := tun.FishInterval(1)
	if lo1 != tun.FishIntervalMin || hi1 != tun.FishIntervalMax {
		t.Errorf("FishInterval(1) = (%v,%v), want (%v,%v)", lo1, hi1, tun.FishIntervalMin, tun.FishIntervalMax)
	}

	lo2, hi2 := tun.FishInterval(2)
	if lo2 >= lo1 || hi2 >= hi1 {
		t.Errorf("FishInterval(2) = (%v,%v) did not shrink from (%v,%v)", lo2, hi2, lo1, hi1)
	}

	lo99, hi99 := tun.FishInterval(99)
	if lo99 != tun.FishIntervalFloor {
		t.Errorf("FishInterval(99) min = %v, want floor %v", lo99, tun.FishIntervalFloor)
	}
	if hi99 < lo99 {
		t.Errorf("FishInterval(99) max %v below min %v", hi99, lo99)
	}
}

func TestLoadTuningMissingFile(t *testing.T) {
	_, err := LoadTuning(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func TestLoadTuningOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tuning.yaml")
	data := []byte("maxLives: 5\nmissPenalty: 3\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	tun, err := LoadTuning(path)
	if err != nil {
		t.Fatalf("LoadTuning: %v", err)
	}
	if tun.MaxLives != 5 {
		t.Errorf("MaxLives = %d, want 5", tun.MaxLives)
	}
	if tun.MissPenalty != 3 {
		t.Errorf("MissPenalty = %d, want 3", tun.MissPenalty)
	}
	// Untouched fields keep the defaults.
	if tun.MaxLevel != DefaultTuning().MaxLevel {
		t.Errorf("MaxLevel = %d, want default %d", tun.MaxLevel, DefaultTuning().MaxLevel)
	}
}

func TestLoadTuningRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"zero lives", "maxLives: 0\n"},
		{"chance above one", "goldfishChance: 1.5\n"},
		{"inverted interval window", "fishIntervalMin: 3\nfishIntervalMax: 1\n"},
		{"bad decay", "fishIntervalDecay: 0\n"},
		{"negative level time", "levelSeconds: -1\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "tuning.yaml")
			if err := os.WriteFile(path, []byte(tt.yaml), 0o644); err != nil {
				t.Fatalf("write fixture: %v", err)
			}
			if _, err := LoadTuning(path); err == nil {
				t.Errorf("expected validation error for %q", tt.yaml)
			}
		})
	}
}
