package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/vovakirdan/ringboard/internal/board"
	"github.com/vovakirdan/ringboard/internal/config"
	"github.com/vovakirdan/ringboard/internal/core"
	"github.com/vovakirdan/ringboard/internal/game"
)

const tileCellWidth = 2

type glyph struct {
	r rune
	c core.Color
}

var tileGlyphs = map[config.TileKind]glyph{
	config.TileCorner:      {'■', core.ColorWhite},
	config.TileStock:       {'$', core.ColorGreen},
	config.TileQuickReward: {'+', core.ColorGreen},
	config.TileMysteryBox:  {'?', core.ColorOrange},
	config.TileWildcard:    {'*', core.ColorBlue},
	config.TileEvent:       {'!', core.ColorRed},
	config.TilePortal:      {'◆', core.ColorMagenta},
	config.TileThrone:      {'♛', core.ColorYellow},
}

var ringColors = map[board.RingNumber]core.Color{
	board.Ring1: core.ColorWhite,
	board.Ring2: core.ColorCyan,
	board.Ring3: core.ColorYellow,
}

func tileGlyph(t config.TileConfig, portal bool) glyph {
	g, ok := tileGlyphs[t.Kind]
	if !ok {
		g = glyph{'·', core.ColorGray}
	}
	if portal && t.Kind != config.TileThrone {
		g = tileGlyphs[config.TilePortal]
	}
	return g
}

// drawBoard draws the rings innermost first, starting at row y, and returns
// the first row below them. The token tile is drawn as '@' and tiles in
// trail keep their glyph but turn cyan.
func drawBoard(s *core.Screen, layout config.Layout, token int, trail map[int]bool, y int) int {
	for n := board.RingCount; n >= 1; n-- {
		r, ok := layout.Ring(board.RingNumber(n))
		if !ok {
			continue
		}
		y = drawRing(s, r, token, trail, y)
	}
	return y
}

func drawRing(s *core.Screen, r config.RingConfig, token int, trail map[int]bool, y int) int {
	inner := s.Width() - 4
	cellW := tileCellWidth
	if len(r.Tiles)*cellW > inner {
		cellW = 1
	}
	perRow := core.Max(inner/cellW, 1)
	lines := (len(r.Tiles) + perRow - 1) / perRow

	box := core.NewRect(0, y, s.Width(), lines+2)
	s.DrawBox(box, core.ColorGray)

	number := board.RingNumber(r.Number)
	title := fmt.Sprintf(" Ring %d %s  reward x%g  risk x%g ", r.Number, r.Name, r.RewardMultiplier, r.RiskMultiplier)
	s.DrawText(2, y, title, ringColors[number])

	for i, t := range r.Tiles {
		id := r.Offset + i
		g := tileGlyph(t, i == r.Portal.Index)
		switch {
		case id == token:
			g = glyph{'@', core.ColorBrightWhite}
		case trail[id]:
			g.c = core.ColorCyan
		}
		s.Set(2+(i%perRow)*cellW, y+1+i/perRow, g.r, g.c)
	}
	return box.Bottom()
}

// rollText formats a dice result as "3+4 = 7".
func rollText(r game.Turn) string {
	if len(r.Roll.Faces) == 0 {
		return strconv.Itoa(r.Roll.Total)
	}
	faces := make([]string, len(r.Roll.Faces))
	for i, f := range r.Roll.Faces {
		faces[i] = strconv.Itoa(f)
	}
	return fmt.Sprintf("%s = %d", strings.Join(faces, "+"), r.Roll.Total)
}

// transitionText describes a fired portal rule.
func transitionText(t board.Transition) string {
	return fmt.Sprintf("%s portal %d on %s: %s", t.Ring, t.TileID, t.Event, t.Action)
}
