package entity

// Store holds all registered creatures in insertion order. IDs are unique
// and monotonic for the lifetime of the store.
type Store struct {
	nextID   int64
	entities []*Entity
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{nextID: 1}
}

// Register assigns the next id, marks the creature alive and appends it.
// Returns the same pointer for convenience.
func (s *Store) Register(e *Entity) *Entity {
	e.ID = s.nextID
	s.nextID++
	e.Alive = true
	e.Phase = PhaseAlive
	s.entities = append(s.entities, e)
	return e
}

// Len returns the number of registered creatures, dying ones included.
func (s *Store) Len() int {
	return len(s.entities)
}

// CountAlive returns the number of alive creatures of the given kind.
func (s *Store) CountAlive(kind Kind) int {
	n := 0
	for _, e := range s.entities {
		if e.Alive && e.Kind == kind {
			n++
		}
	}
	return n
}

// ForEachAlive visits alive creatures in insertion order. The movement
// system iterates this way. Returning false stops the walk.
func (s *Store) ForEachAlive(fn func(*Entity) bool) {
	for _, e := range s.entities {
		if !e.Alive {
			continue
		}
		if !fn(e) {
			return
		}
	}
}

// ForEachAliveNewestFirst visits alive creatures in reverse insertion order.
// Hit detection iterates this way so the most recently spawned creature wins
// overlapping catches, matching top-of-stack visual priority.
func (s *Store) ForEachAliveNewestFirst(fn func(*Entity) bool) {
	for i := len(s.entities) - 1; i >= 0; i-- {
		e := s.entities[i]
		if !e.Alive {
			continue
		}
		if !fn(e) {
			return
		}
	}
}

// ForEach visits every registered creature, dying ones included. The removal
// sub-state machine advances through this.
func (s *Store) ForEach(fn func(*Entity) bool) {
	for _, e := range s.entities {
		if !fn(e) {
			return
		}
	}
}

// MarkDead clears the alive flag and enters the given removal phase in one
// step, so a dead creature is never left in PhaseAlive. The record stays in
// the store, excluded from movement, rendering and hit tests, until purged.
func (s *Store) MarkDead(e *Entity, phase Phase) {
	e.Alive = false
	e.Phase = phase
	e.PhaseTime = 0
}

// Purge detaches the render handle and removes the record. Purging a
// creature that was already purged is a no-op.
func (s *Store) Purge(e *Entity) {
	if e.Phase == PhasePurged {
		return
	}
	e.Alive = false
	e.Phase = PhasePurged
	if e.Visual != nil {
		e.Visual.Destroy()
		e.Visual = nil
	}
	for i, other := range s.entities {
		if other == e {
			s.entities = append(s.entities[:i], s.entities[i+1:]...)
			break
		}
	}
}

// Reset purges every creature. IDs keep counting up; they are unique for the
// session, not per level.
func (s *Store) Reset() {
	for len(s.entities) > 0 {
		s.Purge(s.entities[len(s.entities)-1])
	}
}
