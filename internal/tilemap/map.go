// Package tilemap holds the background grid data and its incremental,
// viewport-culled renderer.
package tilemap

// Map is a flat row-major grid of tile ids. Tile id 0 means "do not render".
type Map struct {
	Cols     int
	Rows     int
	TileSize float64
	Tiles    []int
}

// New creates an empty map of the given dimensions.
func New(cols, rows int, tileSize float64) *Map {
	return &Map{
		Cols:     cols,
		Rows:     rows,
		TileSize: tileSize,
		Tiles:    make([]int, cols*rows),
	}
}

// At returns the tile id at (col,row). Out-of-bounds reads return 0.
func (m *Map) At(col, row int) int {
	if col < 0 || col >= m.Cols || row < 0 || row >= m.Rows {
		return 0
	}
	return m.Tiles[row*m.Cols+col]
}

// Set writes the tile id at (col,row). Out-of-bounds writes are a no-op.
func (m *Map) Set(col, row, id int) {
	if col < 0 || col >= m.Cols || row < 0 || row >= m.Rows {
		return
	}
	m.Tiles[row*m.Cols+col] = id
}

// Fill sets every tile to id.
func (m *Map) Fill(id int) {
	for i := range m.Tiles {
		m.Tiles[i] = id
	}
}
