package entity

import "testing"

type countingVisual struct {
	destroys int
}

func (v *countingVisual) Move(x, y, rot, scale float64, flip bool) {}
func (v *countingVisual) Destroy()                                { v.destroys++ }

func TestRegisterAssignsUniqueIncreasingIDs(t *testing.T) {
	s := NewStore()
	a := s.Register(&Entity{Kind: KindFish})
	b := s.Register(&Entity{Kind: KindMine})

	if a.ID == 0 || b.ID == 0 {
		t.Fatalf("expected nonzero ids, got %d and %d", a.ID, b.ID)
	}
	if b.ID <= a.ID {
		t.Errorf("expected increasing ids, got %d then %d", a.ID, b.ID)
	}
	if !a.Alive || a.Phase != PhaseAlive {
		t.Errorf("expected registered entity alive in PhaseAlive, got alive=%v phase=%v", a.Alive, a.Phase)
	}
}

func TestIDsStayUniqueAcrossReset(t *testing.T) {
	s := NewStore()
	a := s.Register(&Entity{Kind: KindFish})
	s.Reset()
	b := s.Register(&Entity{Kind: KindFish})

	if b.ID == a.ID {
		t.Errorf("id %d reused after reset", a.ID)
	}
}

func TestMarkDeadKeepsRecordUntilPurge(t *testing.T) {
	s := NewStore()
	e := s.Register(&Entity{Kind: KindFish})
	s.MarkDead(e, PhaseSinking)

	if s.CountAlive(KindFish) != 0 {
		t.Errorf("expected 0 alive fish after MarkDead, got %d", s.CountAlive(KindFish))
	}
	seen := 0
	s.ForEachAlive(func(*Entity) bool { seen++; return true })
	if seen != 0 {
		t.Errorf("dead entity visited by ForEachAlive")
	}
	if s.Len() != 1 {
		t.Errorf("expected record kept until purge, Len = %d", s.Len())
	}
	if !e.Dying() {
		t.Errorf("expected MarkDead entity to report Dying")
	}
	if e.Phase != PhaseSinking {
		t.Errorf("Phase = %v, want PhaseSinking", e.Phase)
	}
	if e.PhaseTime != 0 {
		t.Errorf("PhaseTime = %v, want 0", e.PhaseTime)
	}
}

func TestPurgeDetachesVisualOnce(t *testing.T) {
	s := NewStore()
	v := &countingVisual{}
	e := s.Register(&Entity{Kind: KindFish, Visual: v})

	s.Purge(e)
	s.Purge(e)

	if v.destroys != 1 {
		t.Errorf("expected exactly 1 visual destroy, got %d", v.destroys)
	}
	if e.Phase != PhasePurged {
		t.Errorf("expected PhasePurged, got %v", e.Phase)
	}
	if e.Visual != nil {
		t.Errorf("expected visual detached after purge")
	}
	if s.Len() != 0 {
		t.Errorf("expected empty store after purge, Len = %d", s.Len())
	}
}

func TestNewestFirstOrder(t *testing.T) {
	s := NewStore()
	first := s.Register(&Entity{Kind: KindFish})
	second := s.Register(&Entity{Kind: KindFish})
	third := s.Register(&Entity{Kind: KindFish})

	var order []int64
	s.ForEachAliveNewestFirst(func(e *Entity) bool {
		order = append(order, e.ID)
		return true
	})

	want := []int64{third.ID, second.ID, first.ID}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("expected newest-first order %v, got %v", want, order)
		}
	}
}

func TestCountAliveFiltersByKind(t *testing.T) {
	s := NewStore()
	s.Register(&Entity{Kind: KindFish})
	s.Register(&Entity{Kind: KindFish})
	s.Register(&Entity{Kind: KindMine})
	dead := s.Register(&Entity{Kind: KindFish})
	s.MarkDead(dead, PhaseSinking)

	if got := s.CountAlive(KindFish); got != 2 {
		t.Errorf("expected 2 alive fish, got %d", got)
	}
	if got := s.CountAlive(KindMine); got != 1 {
		t.Errorf("expected 1 alive mine, got %d", got)
	}
}
