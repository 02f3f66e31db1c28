package render

import (
	"reefcatch/internal/entity"
	"reefcatch/internal/game"
)

// Raw SGR sequences for canvas cells. The HUD uses lipgloss; the canvas
// works in per-cell escape runs, so colors live here as plain codes.
const (
	sgrOrange     = "\033[38;5;208m"
	sgrGold       = "\033[38;5;220m"
	sgrRed        = "\033[38;5;196m"
	sgrCyan       = "\033[38;5;51m"
	sgrGreen      = "\033[38;5;84m"
	sgrWhite      = "\033[38;5;255m"
	sgrGray       = "\033[38;5;245m"
	sgrSandLight  = "\033[38;5;180m"
	sgrSandDeep   = "\033[38;5;137m"
	sgrRockLight  = "\033[38;5;246m"
	sgrRockDeep   = "\033[38;5;240m"
	sgrCoralLight = "\033[38;5;211m"
	sgrCoralDeep  = "\033[38;5;168m"
	sgrKelpLight  = "\033[38;5;71m"
	sgrKelpDeep   = "\033[38;5;22m"
)

// fishGlyphs keys each fish variant to its left-facing body. Flipping a
// fish mirrors the string by reversing it rune-for-rune with the angle
// brackets swapped.
var fishGlyphs = []string{
	"<><",
	"<>><",
	"<°)))",
	"<=><",
	"<:}><",
}

var fishColors = []string{sgrOrange, sgrCyan, sgrGreen, sgrWhite, sgrGray}

// spriteGlyph returns the terminal body and color for a creature.
func spriteGlyph(kind entity.Kind, variant int, flip bool) (string, string) {
	switch kind {
	case entity.KindFish:
		if variant < 0 || variant >= len(fishGlyphs) {
			variant = 0
		}
		g := fishGlyphs[variant]
		if flip {
			g = mirror(g)
		}
		return g, fishColors[variant]
	case entity.KindGoldfish:
		if flip {
			return mirror("<£><"), sgrGold
		}
		return "<£><", sgrGold
	case entity.KindMine:
		return "({})", sgrRed
	case entity.KindBubble:
		return "o", sgrCyan
	}
	return "?", sgrWhite
}

// mirror reverses a sprite body and swaps direction-sensitive runes.
func mirror(s string) string {
	runes := []rune(s)
	out := make([]rune, len(runes))
	for i, r := range runes {
		switch r {
		case '<':
			r = '>'
		case '>':
			r = '<'
		case '(':
			r = ')'
		case ')':
			r = '('
		case '{':
			r = '}'
		case '}':
			r = '{'
		}
		out[len(runes)-1-i] = r
	}
	return string(out)
}

// tileGlyph returns the fill rune and color for a backdrop tile. Tile 0
// and depth 0 are invisible; deeper maps draw heavier fills with darker
// colors so descent reads as increasing depth.
func tileGlyph(id, depth int) (rune, string, bool) {
	if id == 0 || depth <= 0 {
		return 0, "", false
	}
	deep := depth >= 2
	var ch rune
	var sgr string
	switch id {
	case 1: // sand
		ch, sgr = '.', sgrSandLight
		if deep {
			sgr = sgrSandDeep
		}
	case 2: // rock
		ch, sgr = '▒', sgrRockLight
		if deep {
			sgr = sgrRockDeep
		}
	case 3: // coral
		ch, sgr = '*', sgrCoralLight
		if deep {
			sgr = sgrCoralDeep
		}
	case 4: // kelp
		ch, sgr = '|', sgrKelpLight
		if deep {
			sgr = sgrKelpDeep
		}
	default:
		return 0, "", false
	}
	if depth >= 3 {
		ch = '░'
	}
	return ch, sgr, true
}

// noticeSGR maps a feedback category to a canvas color.
func noticeSGR(cat game.NoticeCategory) string {
	switch cat {
	case game.NoticeScore:
		return sgrGreen
	case game.NoticePenalty:
		return sgrRed
	case game.NoticeCombo:
		return sgrGold
	case game.NoticeLife:
		return sgrGold
	case game.NoticeLevel:
		return sgrCyan
	case game.NoticeFlash:
		return sgrRed
	case game.NoticeGameOver:
		return sgrRed
	}
	return sgrWhite
}
