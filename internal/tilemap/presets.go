package tilemap

// Tile ids used by the preset reef backdrops. 0 stays "empty".
const (
	TileSand  = 1
	TileRock  = 2
	TileCoral = 3
	TileKelp  = 4
)

// Presets builds the rotation of backdrop maps for the given world size.
// Level progression selects from these with (level-1) mod len.
func Presets(worldW, worldH, tileSize float64) []*Map {
	cols := int(worldW / tileSize)
	rows := int(worldH / tileSize)
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}

	return []*Map{
		sandFlats(cols, rows, tileSize),
		rockShelf(cols, rows, tileSize),
		coralGarden(cols, rows, tileSize),
		kelpForest(cols, rows, tileSize),
	}
}

// sandFlats: bare floor strip along the bottom.
func sandFlats(cols, rows int, ts float64) *Map {
	m := New(cols, rows, ts)
	for col := 0; col < cols; col++ {
		m.Set(col, rows-1, TileSand)
		if col%3 == 0 {
			m.Set(col, rows-2, TileSand)
		}
	}
	return m
}

// rockShelf: sand floor with rock outcrops.
func rockShelf(cols, rows int, ts float64) *Map {
	m := sandFlats(cols, rows, ts)
	for col := 2; col < cols; col += 5 {
		m.Set(col, rows-2, TileRock)
		m.Set(col+1, rows-2, TileRock)
		m.Set(col, rows-3, TileRock)
	}
	return m
}

// coralGarden: scattered coral clumps over sand.
func coralGarden(cols, rows int, ts float64) *Map {
	m := sandFlats(cols, rows, ts)
	for col := 1; col < cols; col += 4 {
		m.Set(col, rows-2, TileCoral)
		if col%8 == 1 {
			m.Set(col, rows-3, TileCoral)
		}
	}
	return m
}

// kelpForest: tall kelp columns reaching midwater.
func kelpForest(cols, rows int, ts float64) *Map {
	m := sandFlats(cols, rows, ts)
	for col := 3; col < cols; col += 6 {
		for row := rows - 2; row >= rows/2; row-- {
			m.Set(col, row, TileKelp)
		}
	}
	return m
}
