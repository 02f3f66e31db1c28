// Package render adapts the simulation's collaborator interfaces to the
// terminal: creature visuals, tile surfaces and feedback notices all
// compose onto one cell canvas per frame.
package render

import (
	"time"

	"reefcatch/internal/draw"
	"reefcatch/internal/entity"
	"reefcatch/internal/game"
	"reefcatch/internal/tilemap"
)

// Terminal implements game.VisualFactory, tilemap.Factory and
// game.Notifier for a single session. It is confined to the session's
// goroutine, like the canvas it draws on.
type Terminal struct {
	sprites map[*sprite]struct{}
	tiles   map[*tileSurface]struct{}
	notices []activeNotice
}

// NewTerminal creates an empty terminal renderer.
func NewTerminal() *Terminal {
	return &Terminal{
		sprites: make(map[*sprite]struct{}),
		tiles:   make(map[*tileSurface]struct{}),
	}
}

var (
	_ game.VisualFactory = (*Terminal)(nil)
	_ tilemap.Factory    = (*Terminal)(nil)
	_ game.Notifier      = (*Terminal)(nil)
)

// sprite is one creature's render handle.
type sprite struct {
	r       *Terminal
	kind    entity.Kind
	variant int

	x, y    float64
	scale   float64
	flip    bool
	visible bool
}

// Move implements entity.Visual.
func (sp *sprite) Move(x, y, rot, scale float64, flip bool) {
	_ = rot // terminal sprites don't rotate
	sp.x = x
	sp.y = y
	sp.scale = scale
	sp.flip = flip
	sp.visible = true
}

// Destroy implements entity.Visual.
func (sp *sprite) Destroy() {
	delete(sp.r.sprites, sp)
}

// CreateVisual implements game.VisualFactory.
func (t *Terminal) CreateVisual(kind entity.Kind, variant int) (entity.Visual, error) {
	sp := &sprite{r: t, kind: kind, variant: variant, scale: 1}
	t.sprites[sp] = struct{}{}
	return sp, nil
}

// tileSurface is one materialized backdrop tile.
type tileSurface struct {
	r     *Terminal
	id    int
	x, y  float64
	size  float64
	depth int
}

// SetTint implements tilemap.Surface.
func (ts *tileSurface) SetTint(depth int) {
	ts.depth = depth
}

// Destroy implements tilemap.Surface.
func (ts *tileSurface) Destroy() {
	delete(ts.r.tiles, ts)
}

// TileSize positions tile fills; the session wires the same size into the
// map presets.
const TileSize = 4.0

// CreateTileSurface implements tilemap.Factory.
func (t *Terminal) CreateTileSurface(id int, x, y float64, depth int) (tilemap.Surface, error) {
	ts := &tileSurface{r: t, id: id, x: x, y: y, size: TileSize, depth: depth}
	t.tiles[ts] = struct{}{}
	return ts, nil
}

// activeNotice is a feedback message with its expiry.
type activeNotice struct {
	n       game.Notice
	expires time.Time
}

// Notify implements game.Notifier.
func (t *Terminal) Notify(n game.Notice) {
	t.notices = append(t.notices, activeNotice{n: n, expires: time.Now().Add(n.Duration)})
}

// Compose draws backdrop tiles, then sprites, then positioned popups onto
// the canvas. Banner-style notices are returned by Banners instead.
func (t *Terminal) Compose(c *draw.Canvas, now time.Time) {
	for ts := range t.tiles {
		ch, sgr, ok := tileGlyph(ts.id, ts.depth)
		if !ok {
			continue
		}
		c.FillRect(ts.x, ts.y, ts.size, ts.size, ch, sgr)
	}

	for sp := range t.sprites {
		if !sp.visible {
			continue
		}
		glyph, sgr := spriteGlyph(sp.kind, sp.variant, sp.flip)
		c.StampString(sp.x, sp.y, glyph, sgr)
	}

	t.expireNotices(now)
	for _, an := range t.notices {
		if an.n.X == 0 && an.n.Y == 0 {
			continue // banner, drawn by the HUD
		}
		c.StampString(an.n.X, an.n.Y-1, an.n.Text, noticeSGR(an.n.Category))
	}
}

// Banners returns the live banner notices (no world position) for the HUD.
func (t *Terminal) Banners(now time.Time) []game.Notice {
	t.expireNotices(now)
	var out []game.Notice
	for _, an := range t.notices {
		if an.n.X == 0 && an.n.Y == 0 {
			out = append(out, an.n)
		}
	}
	return out
}

// expireNotices drops elapsed messages.
func (t *Terminal) expireNotices(now time.Time) {
	kept := t.notices[:0]
	for _, an := range t.notices {
		if now.Before(an.expires) {
			kept = append(kept, an)
		}
	}
	t.notices = kept
}
