package tilemap

import "testing"

type fakeSurface struct {
	id        int
	x, y      float64
	tint      int
	destroyed bool
}

func (f *fakeSurface) SetTint(depth int) { f.tint = depth }
func (f *fakeSurface) Destroy()          { f.destroyed = true }

type fakeFactory struct {
	created []*fakeSurface
	fail    bool
}

func (f *fakeFactory) CreateTileSurface(id int, x, y float64, depth int) (Surface, error) {
	if f.fail {
		return nil, errCreate
	}
	s := &fakeSurface{id: id, x: x, y: y}
	f.created = append(f.created, s)
	return s, nil
}

var errCreate = &createError{}

type createError struct{}

func (*createError) Error() string { return "create failed" }

func (f *fakeFactory) liveCount() int {
	n := 0
	for _, s := range f.created {
		if !s.destroyed {
			n++
		}
	}
	return n
}

// fullMap builds a cols x rows map with every tile set to id 1.
func fullMap(cols, rows int, ts float64) *Map {
	m := New(cols, rows, ts)
	m.Fill(1)
	return m
}

func TestRenderMaterializesOnlyVisibleTiles(t *testing.T) {
	f := &fakeFactory{}
	r := NewRenderer(f)
	r.SetViewport(0, 0, 7.9, 3.9) // tiles 0..1 x 0..0 with ts=4
	r.SetMap(fullMap(10, 10, 4), 1)

	if got := r.CachedCount(); got != 2 {
		t.Errorf("expected 2 cached surfaces for a 2x1 visible range, got %d", got)
	}
	if f.liveCount() != 2 {
		t.Errorf("expected 2 live surfaces, got %d", f.liveCount())
	}
}

func TestViewportOnTileBoundaryExcludesTouchingTiles(t *testing.T) {
	f := &fakeFactory{}
	r := NewRenderer(f)
	// Right and bottom edges land exactly on tile boundaries. Touching a
	// boundary is not overlap, so only columns 0..1 of row 0 materialize.
	r.SetViewport(0, 0, 8, 4)
	r.SetMap(fullMap(10, 10, 4), 1)

	if got := r.CachedCount(); got != 2 {
		t.Errorf("expected 2 cached surfaces for a boundary-aligned viewport, got %d", got)
	}

	// A viewport spanning exactly one tile keeps exactly one surface.
	r.SetViewport(4, 4, 4, 4)
	r.Render()
	if got := r.CachedCount(); got != 1 {
		t.Errorf("expected 1 cached surface for a single-tile viewport, got %d", got)
	}
}

func TestRenderSkipsEmptyTiles(t *testing.T) {
	m := New(4, 4, 4)
	m.Set(1, 1, 2)
	m.Set(2, 2, 3)

	f := &fakeFactory{}
	r := NewRenderer(f)
	r.SetViewport(0, 0, 16, 16)
	r.SetMap(m, 0)

	if got := r.CachedCount(); got != 2 {
		t.Errorf("expected surfaces only for the 2 non-zero tiles, got %d", got)
	}
}

func TestViewportShrinkReleasesSurfaces(t *testing.T) {
	f := &fakeFactory{}
	r := NewRenderer(f)
	r.SetViewport(0, 0, 15.9, 15.9)
	r.SetMap(fullMap(4, 4, 4), 0)

	if got := r.CachedCount(); got != 16 {
		t.Fatalf("expected full map cached, got %d", got)
	}

	r.SetViewport(0, 0, 3.9, 3.9)
	r.Render()

	if got := r.CachedCount(); got != 1 {
		t.Errorf("expected 1 surface after shrink, got %d", got)
	}
	if f.liveCount() != 1 {
		t.Errorf("expected out-of-range surfaces destroyed, %d still live", f.liveCount())
	}
}

func TestViewportFullyOffMapCachesNothing(t *testing.T) {
	f := &fakeFactory{}
	r := NewRenderer(f)
	r.SetViewport(-100, -100, 10, 10)
	r.SetMap(fullMap(4, 4, 4), 0)

	if got := r.CachedCount(); got != 0 {
		t.Errorf("expected empty cache for an off-map viewport, got %d", got)
	}
}

func TestViewportStraddlingEdgeClamps(t *testing.T) {
	f := &fakeFactory{}
	r := NewRenderer(f)
	// Half off the left and top; only tile (0,0) overlaps.
	r.SetViewport(-2, -2, 5, 5)
	r.SetMap(fullMap(4, 4, 4), 0)

	if got := r.CachedCount(); got != 1 {
		t.Errorf("expected 1 clamped surface, got %d", got)
	}
}

func TestSetMapDestroysOldSurfacesAndRetints(t *testing.T) {
	f := &fakeFactory{}
	r := NewRenderer(f)
	r.SetViewport(0, 0, 15.9, 15.9)
	r.SetMap(fullMap(4, 4, 4), 0)
	firstBatch := len(f.created)

	r.SetMap(fullMap(4, 4, 4), 2)

	if f.liveCount() != 16 {
		t.Errorf("expected exactly the new map's surfaces live, got %d", f.liveCount())
	}
	for _, s := range f.created[:firstBatch] {
		if !s.destroyed {
			t.Fatalf("old-map surface not destroyed on map switch")
		}
	}
	for _, s := range f.created[firstBatch:] {
		if s.tint != 2 {
			t.Errorf("expected new surfaces tinted with depth 2, got %d", s.tint)
		}
	}
	if r.Depth() != 2 {
		t.Errorf("expected Depth() = 2, got %d", r.Depth())
	}
}

func TestRenderSurvivesFactoryFailure(t *testing.T) {
	f := &fakeFactory{fail: true}
	r := NewRenderer(f)
	r.SetViewport(0, 0, 16, 16)
	r.SetMap(fullMap(4, 4, 4), 0)

	if got := r.CachedCount(); got != 0 {
		t.Errorf("expected no cache entries when creation fails, got %d", got)
	}

	// Recovery: same renderer succeeds once the factory does.
	f.fail = false
	r.Render()
	if got := r.CachedCount(); got == 0 {
		t.Errorf("expected surfaces after factory recovered")
	}
}

func TestScrollingWindowOverLargeMap(t *testing.T) {
	f := &fakeFactory{}
	r := NewRenderer(f)
	m := fullMap(30, 20, 4)

	// A 3x2-tile window in the middle of the map.
	r.SetViewport(40, 40, 11.9, 7.9)
	r.SetMap(m, 3)

	if got := r.CachedCount(); got != 6 {
		t.Fatalf("cached = %d for a 3x2 window, want 6", got)
	}
	for _, s := range f.created {
		if !s.destroyed && s.tint != 3 {
			t.Errorf("surface tint = %d, want depth 3", s.tint)
		}
	}

	// Scroll fully off the map: every surface must be released.
	r.SetViewport(1000, 1000, 11.9, 7.9)
	r.Render()
	if got := r.CachedCount(); got != 0 {
		t.Errorf("cached = %d after scrolling off-map, want 0", got)
	}
	if f.liveCount() != 0 {
		t.Errorf("%d surfaces leaked after scrolling off-map", f.liveCount())
	}
}

func TestRenderWithoutMapIsANoOp(t *testing.T) {
	r := NewRenderer(&fakeFactory{})
	r.SetViewport(0, 0, 16, 16)
	r.Render()

	if got := r.CachedCount(); got != 0 {
		t.Errorf("expected no surfaces without a map, got %d", got)
	}
}
