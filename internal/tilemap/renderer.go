package tilemap

import "math"

// Surface is a materialized render handle for one on-screen tile.
type Surface interface {
	// SetTint applies the whole-map depth preset, 0 (fully transparent)
	// through 3 (darkest, most blue-shifted).
	SetTint(depth int)
	Destroy()
}

// Factory allocates tile surfaces. id selects the tileset sub-region and
// (x,y) is the tile's top-left position in world units. A nil factory or a
// creation error leaves the tile without a surface; the renderer keeps going.
type Factory interface {
	CreateTileSurface(id int, x, y float64, depth int) (Surface, error)
}

type coord struct {
	col, row int
}

// Renderer materializes surfaces only for tiles intersecting the current
// viewport. After Render the cached surface set is exactly the non-zero
// tiles in range: no leaks, no duplicates.
type Renderer struct {
	factory Factory
	m       *Map
	depth   int

	viewX, viewY float64
	viewW, viewH float64

	cache map[coord]Surface
}

// NewRenderer creates a renderer with no active map.
func NewRenderer(factory Factory) *Renderer {
	return &Renderer{
		factory: factory,
		cache:   make(map[coord]Surface),
	}
}

// SetMap replaces the active map, clears all cached surfaces, records the
// depth level for subsequent tinting and re-renders from scratch.
func (r *Renderer) SetMap(m *Map, depth int) {
	for c, surf := range r.cache {
		surf.Destroy()
		delete(r.cache, c)
	}
	r.m = m
	r.depth = depth
	r.Render()
}

// SetViewport updates the visible window. The change takes effect on the
// next Render call.
func (r *Renderer) SetViewport(x, y, w, h float64) {
	r.viewX = x
	r.viewY = y
	r.viewW = w
	r.viewH = h
}

// Depth returns the active depth-tint level.
func (r *Renderer) Depth() int {
	return r.depth
}

// CachedCount returns the number of materialized tile surfaces.
func (r *Renderer) CachedCount() int {
	return len(r.cache)
}

// Render reconciles the surface cache against the tiles intersecting the
// viewport. Without a map or a factory it is a no-op, so a failed tileset
// load never propagates into the frame loop.
func (r *Renderer) Render() {
	if r.m == nil || r.factory == nil {
		return
	}

	c0, c1, r0, r1 := r.visibleRange()

	// Release surfaces that fell out of range or whose tile was cleared.
	for c, surf := range r.cache {
		if c.col < c0 || c.col > c1 || c.row < r0 || c.row > r1 || r.m.At(c.col, c.row) == 0 {
			surf.Destroy()
			delete(r.cache, c)
		}
	}

	// Materialize missing surfaces for non-zero tiles in range.
	for row := r0; row <= r1; row++ {
		for col := c0; col <= c1; col++ {
			id := r.m.At(col, row)
			if id == 0 {
				continue
			}
			c := coord{col, row}
			if _, ok := r.cache[c]; ok {
				continue
			}
			ts := r.m.TileSize
			surf, err := r.factory.CreateTileSurface(id, float64(col)*ts, float64(row)*ts, r.depth)
			if err != nil || surf == nil {
				continue
			}
			surf.SetTint(r.depth)
			r.cache[c] = surf
		}
	}
}

// visibleRange computes the inclusive tile column/row range intersecting the
// viewport, clamped to the map. An empty intersection yields an inverted
// range so the reconcile loops do nothing.
func (r *Renderer) visibleRange() (c0, c1, r0, r1 int) {
	ts := r.m.TileSize
	if r.viewW <= 0 || r.viewH <= 0 ||
		r.viewX >= float64(r.m.Cols)*ts || r.viewX+r.viewW <= 0 ||
		r.viewY >= float64(r.m.Rows)*ts || r.viewY+r.viewH <= 0 {
		return 0, -1, 0, -1
	}
	c0 = int(math.Floor(r.viewX / ts))
	c1 = int(math.Ceil((r.viewX+r.viewW)/ts)) - 1
	r0 = int(math.Floor(r.viewY / ts))
	r1 = int(math.Ceil((r.viewY+r.viewH)/ts)) - 1
	if c0 < 0 {
		c0 = 0
	}
	if r0 < 0 {
		r0 = 0
	}
	if c1 > r.m.Cols-1 {
		c1 = r.m.Cols - 1
	}
	if r1 > r.m.Rows-1 {
		r1 = r.m.Rows - 1
	}
	return c0, c1, r0, r1
}
