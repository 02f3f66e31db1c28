// Package draw provides the terminal drawing layer: a colored cell canvas
// scaled from world coordinates, ANSI cursor helpers and a chunked writer
// tuned for SSH output.
package draw

import (
	"io"
	"math"
	"strings"
)

// Cell is one terminal cell: a rune plus an optional SGR color sequence.
type Cell struct {
	Ch  rune
	SGR string
}

// Canvas is a cell buffer that maps world coordinates to terminal cells.
// Game systems draw in world units; the canvas scales to whatever terminal
// it is rendered on.
type Canvas struct {
	termWidth  int
	termHeight int
	cells      []Cell

	// Scaling from world to cell coordinates
	worldW float64
	worldH float64
	scaleX float64
	scaleY float64

	// Offset for centering the render area when the terminal is larger
	// than the max render resolution. 0-based terminal offsets.
	offsetCol int
	offsetRow int

	renderBuf strings.Builder
}

// NewScaledCanvas creates a canvas that scales from world coordinates to
// the given terminal dimensions.
func NewScaledCanvas(termWidth, termHeight int, worldW, worldH float64) *Canvas {
	return &Canvas{
		termWidth:  termWidth,
		termHeight: termHeight,
		cells:      make([]Cell, termWidth*termHeight),
		worldW:     worldW,
		worldH:     worldH,
		scaleX:     float64(termWidth) / worldW,
		scaleY:     float64(termHeight) / worldH,
	}
}

// Resize updates the canvas for new terminal dimensions while keeping the
// world size.
func (c *Canvas) Resize(termWidth, termHeight int) {
	if termWidth != c.termWidth || termHeight != c.termHeight {
		c.cells = make([]Cell, termWidth*termHeight)
		c.termWidth = termWidth
		c.termHeight = termHeight
	}
	c.scaleX = float64(termWidth) / c.worldW
	c.scaleY = float64(termHeight) / c.worldH
}

// SetOffset sets the column and row offset for centering the canvas.
func (c *Canvas) SetOffset(col, row int) {
	c.offsetCol = col
	c.offsetRow = row
}

// OffsetCol returns the column offset used for centering.
func (c *Canvas) OffsetCol() int { return c.offsetCol }

// OffsetRow returns the row offset used for centering.
func (c *Canvas) OffsetRow() int { return c.offsetRow }

// TerminalWidth returns the canvas width in terminal columns.
func (c *Canvas) TerminalWidth() int { return c.termWidth }

// TerminalHeight returns the canvas height in terminal rows.
func (c *Canvas) TerminalHeight() int { return c.termHeight }

// Clear resets all cells.
func (c *Canvas) Clear() {
	clear(c.cells)
}

// SetCell writes a cell at terminal coordinates (0-based, no scaling).
func (c *Canvas) SetCell(col, row int, ch rune, sgr string) {
	if col < 0 || col >= c.termWidth || row < 0 || row >= c.termHeight {
		return
	}
	c.cells[row*c.termWidth+col] = Cell{Ch: ch, SGR: sgr}
}

// WorldToCell converts world coordinates to terminal cell coordinates.
func (c *Canvas) WorldToCell(x, y float64) (col, row int) {
	return int(math.Round(x * c.scaleX)), int(math.Round(y * c.scaleY))
}

// Stamp draws a rune at world coordinates.
func (c *Canvas) Stamp(x, y float64, ch rune, sgr string) {
	col, row := c.WorldToCell(x, y)
	c.SetCell(col, row, ch, sgr)
}

// StampString draws a short string centered on world coordinates, one cell
// per rune. Used for multi-cell sprites.
func (c *Canvas) StampString(x, y float64, s string, sgr string) {
	runes := []rune(s)
	col, row := c.WorldToCell(x, y)
	col -= len(runes) / 2
	for i, ch := range runes {
		c.SetCell(col+i, row, ch, sgr)
	}
}

// FillRect fills a world-space rectangle with a rune.
func (c *Canvas) FillRect(x, y, w, h float64, ch rune, sgr string) {
	c0, r0 := int(math.Floor(x*c.scaleX)), int(math.Floor(y*c.scaleY))
	c1, r1 := int(math.Ceil((x+w)*c.scaleX))-1, int(math.Ceil((y+h)*c.scaleY))-1
	for row := r0; row <= r1; row++ {
		for col := c0; col <= c1; col++ {
			c.SetCell(col, row, ch, sgr)
		}
	}
}

// Render writes the canvas to w: cursor moves plus SGR runs, empty cells
// skipped, output chunked for smooth network flow.
func (c *Canvas) Render(w io.Writer) {
	c.renderBuf.Reset()
	c.renderBuf.Grow(c.termWidth * c.termHeight * 4)

	lastSGR := ""
	for row := 0; row < c.termHeight; row++ {
		rowOffset := row * c.termWidth
		prevCol := -2
		for col := 0; col < c.termWidth; col++ {
			cell := c.cells[rowOffset+col]
			if cell.Ch == 0 {
				continue
			}
			if col != prevCol+1 {
				moveCursorTo(&c.renderBuf, col+1+c.offsetCol, row+1+c.offsetRow)
			}
			prevCol = col
			if cell.SGR != lastSGR {
				if cell.SGR == "" {
					c.renderBuf.WriteString(sgrReset)
				} else {
					c.renderBuf.WriteString(cell.SGR)
				}
				lastSGR = cell.SGR
			}
			c.renderBuf.WriteRune(cell.Ch)
		}
	}
	if lastSGR != "" {
		c.renderBuf.WriteString(sgrReset)
	}

	writeChunked(w, c.renderBuf.String())
}
