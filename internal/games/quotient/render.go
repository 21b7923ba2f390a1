package quotient

import (
	"fmt"
	"strings"

	platformcore "github.com/vovakirdan/quotient/internal/core"
	"github.com/vovakirdan/quotient/internal/games/quotient/core"
)

// Render draws the game to the screen.
func (g *Game) Render(dst *platformcore.Screen) {
	dst.Clear()

	g.renderHUD(dst)

	if g.tooSmall {
		g.renderOverlay(dst, "Window too small", "Resize to continue")
		return
	}

	if g.sim == nil {
		if g.mode == ModeEdit {
			g.renderOverlay(dst, "Nothing to edit", "Check levels directory")
		} else {
			g.renderOverlay(dst, "No levels found", "Check levels directory")
		}
		return
	}

	snap := g.sim.Snapshot()

	g.renderBoard(dst, snap)
	g.renderSidebar(dst, snap)
	g.renderCursor(dst)

	switch {
	case g.mode == ModeEdit && !g.testing:
		// The board itself is the whole story while editing
	case snap.Won && g.testing:
		g.renderOverlay(dst, "Level complete! "+starString(snap.Stars), "Enter: back to editor")
	case snap.Won:
		g.renderOverlay(dst, "Level complete! "+starString(snap.Stars), "Enter: next  R: replay")
	case snap.Over && g.testing:
		g.renderOverlay(dst, "Game Over", "Enter: back to editor")
	case snap.Over:
		g.renderOverlay(dst, "Game Over", "Press R to restart")
	case snap.Paused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

// renderHUD draws the top status bar.
func (g *Game) renderHUD(dst *platformcore.Screen) {
	var hud string
	switch {
	case g.sim == nil:
		hud = " " + g.Title()
	case g.mode == ModeEdit && g.testing:
		hud = fmt.Sprintf(" Quotient Editor | %s | test play", g.level.Name)
	case g.mode == ModeEdit:
		hud = fmt.Sprintf(" Quotient Editor | %s", g.level.Name)
		if g.dirty {
			hud += " *"
		}
	default:
		hud = fmt.Sprintf(" Quotient | %s | Level %d/%d", g.level.Name, g.levelIndex+1, len(g.allLevels))
	}

	dst.DrawTextWithColor(0, 0, hud, platformcore.ColorCyan)

	for x := 0; x < dst.Width(); x++ {
		dst.SetWithColor(x, 1, '─', platformcore.ColorGray)
	}
}

// renderBoard draws the grid, towers and tokens.
func (g *Game) renderBoard(dst *platformcore.Screen, snap core.Snapshot) {
	for y := 0; y < snap.Rows; y++ {
		for x := 0; x < snap.Cols; x++ {
			text, color := baseGlyphs(snap.At(core.C(x, y)))
			g.drawCell(dst, x, y, text, color)
		}
	}

	for _, tw := range snap.Towers {
		g.drawCell(dst, tw.Pos.X, tw.Pos.Y, fmt.Sprintf("÷%-2d", tw.Value), platformcore.ColorBrightCyan)
	}

	for _, tk := range snap.Tokens {
		pos := tk.Pos
		if tk.State == core.TokenMoving && snap.MoveFraction < 0.5 {
			pos = tk.From
		}
		color := platformcore.ColorBrightYellow
		if tk.Value <= 1 {
			color = platformcore.ColorBrightGreen
		}
		g.drawCell(dst, pos.X, pos.Y, tokenLabel(tk.Value), color)
	}
}

// drawCell blits one board cell (cellW runes) at its screen position.
func (g *Game) drawCell(dst *platformcore.Screen, bx, by int, text string, color platformcore.Color) {
	sx := g.boardOffsetX + bx*g.cellW
	sy := g.boardOffsetY + by
	for i, r := range []rune(text) {
		if i >= g.cellW {
			break
		}
		dst.SetWithColor(sx+i, sy, r, color)
	}
}

// baseGlyphs maps a cell kind to its resting appearance.
func baseGlyphs(kind core.CellKind) (string, platformcore.Color) {
	switch kind {
	case core.CellWall:
		return "███", platformcore.ColorGray
	case core.CellStart:
		return " S ", platformcore.ColorBrightGreen
	case core.CellEnd:
		return " E ", platformcore.ColorBrightRed
	case core.CellTower:
		// Towers redraw with their value right after
		return "   ", platformcore.ColorDefault
	default:
		return " · ", platformcore.ColorGray
	}
}

// tokenLabel formats a token value into a cell-wide label.
func tokenLabel(v int) string {
	if v > 999 {
		return "+++"
	}
	return fmt.Sprintf("%3d", v)
}

// renderCursor re-colors the cursor cell, filling spare space with
// brackets so the highlight reads even on blank cells.
func (g *Game) renderCursor(dst *platformcore.Screen) {
	sx := g.boardOffsetX + g.cursor.X*g.cellW
	sy := g.boardOffsetY + g.cursor.Y
	for i := 0; i < g.cellW; i++ {
		r := dst.Get(sx+i, sy)
		if i == 0 && r == ' ' {
			r = '['
		}
		if i == g.cellW-1 && r == ' ' {
			r = ']'
		}
		dst.SetWithColor(sx+i, sy, r, platformcore.ColorBrightYellow)
	}
}

// renderSidebar draws health, stars, score and the spawn queue next to
// the board.
func (g *Game) renderSidebar(dst *platformcore.Screen, snap core.Snapshot) {
	x := g.sideX
	y := g.boardOffsetY

	dst.DrawText(x, y, fmt.Sprintf("HP %d/%d", snap.HP, snap.MaxHP))
	g.renderHealthBar(dst, x, y+1, snap)
	dst.DrawTextWithColor(x, y+2, "Stars "+starString(snap.Stars), platformcore.ColorBrightYellow)

	dst.DrawText(x, y+4, fmt.Sprintf("Score %d", g.score))
	dst.DrawText(x, y+5, fmt.Sprintf("Tick  %d", snap.Tick))

	qy := y + 7
	dst.DrawTextWithColor(x, qy, "Next:", platformcore.ColorGray)
	dst.DrawText(x+6, qy, queueLine(snap.Queue))
	switch {
	case snap.QueueDone:
		dst.DrawTextWithColor(x, qy+1, "Queue empty", platformcore.ColorGray)
	case snap.QueueBlocked:
		dst.DrawTextWithColor(x, qy+1, fmt.Sprintf("Left %d (blocked)", snap.QueuePending), platformcore.ColorBrightRed)
	default:
		dst.DrawTextWithColor(x, qy+1, fmt.Sprintf("Left %d", snap.QueuePending), platformcore.ColorGray)
	}

	g.renderControls(dst, x, qy+3)

	if g.mode == ModeEdit && g.savedFor > 0 {
		dst.DrawTextWithColor(x, qy+8, "Saved "+g.savedPath, platformcore.ColorBrightGreen)
	}
}

// renderHealthBar draws the 12-cell health gauge.
func (g *Game) renderHealthBar(dst *platformcore.Screen, x, y int, snap core.Snapshot) {
	const width = 12

	filled := 0
	if snap.MaxHP > 0 && snap.HP > 0 {
		filled = snap.HP * width / snap.MaxHP
		if filled == 0 {
			filled = 1
		}
	}

	color := platformcore.ColorBrightGreen
	switch {
	case snap.HP*3 <= snap.MaxHP:
		color = platformcore.ColorBrightRed
	case snap.HP*3 <= snap.MaxHP*2:
		color = platformcore.ColorYellow
	}

	for i := 0; i < width; i++ {
		if i < filled {
			dst.SetWithColor(x+i, y, '█', color)
		} else {
			dst.SetWithColor(x+i, y, '░', platformcore.ColorGray)
		}
	}
}

// renderControls draws the key hints for the current mode.
func (g *Game) renderControls(dst *platformcore.Screen, x, y int) {
	var lines []string
	switch {
	case g.mode == ModeEdit && g.testing:
		lines = []string{
			"Space   place / upgrade",
			"P       pause",
			"Enter   back to editor",
		}
	case g.mode == ModeEdit:
		lines = []string{
			"Space   toggle wall",
			"I / O   move spawn / exit",
			"Ctrl+S  save draft",
			"Enter   test play",
		}
	default:
		lines = []string{
			"Arrows  move cursor",
			"Space   place / upgrade",
			"P pause   R restart",
			"Q       quit",
		}
	}

	for i, line := range lines {
		dst.DrawTextWithColor(x, y+i, line, platformcore.ColorGray)
	}
}

// queueLine joins upcoming spawn values into one readable line.
func queueLine(values []int) string {
	if len(values) == 0 {
		return "-"
	}
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = fmt.Sprintf("%d", v)
	}
	return strings.Join(parts, " ")
}

// starString renders a 0-3 rating as filled and hollow stars.
func starString(stars int) string {
	stars = platformcore.Clamp(stars, 0, 3)
	return strings.Repeat("★", stars) + strings.Repeat("☆", 3-stars)
}

// renderOverlay draws a centered overlay message.
func (g *Game) renderOverlay(dst *platformcore.Screen, line1, line2 string) {
	w := dst.Width()
	h := dst.Height()

	maxLen := len(line1)
	if len(line2) > maxLen {
		maxLen = len(line2)
	}
	boxW := maxLen + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	for y := boxY; y < boxY+boxH && y < h; y++ {
		for x := boxX; x < boxX+boxW && x < w; x++ {
			if x < 0 || y < 0 {
				continue
			}
			isTopOrBottom := y == boxY || y == boxY+boxH-1
			isLeftOrRight := x == boxX || x == boxX+boxW-1
			switch {
			case isTopOrBottom && isLeftOrRight:
				dst.Set(x, y, '+')
			case isTopOrBottom:
				dst.Set(x, y, '-')
			case isLeftOrRight:
				dst.Set(x, y, '|')
			default:
				dst.Set(x, y, ' ')
			}
		}
	}

	g.drawCenteredText(dst, line1, boxY+1)
	g.drawCenteredText(dst, line2, boxY+3)
}

// drawCenteredText draws text centered horizontally.
func (g *Game) drawCenteredText(dst *platformcore.Screen, text string, y int) {
	if y < 0 || y >= dst.Height() {
		return
	}
	runes := []rune(text)
	x := (dst.Width() - len(runes)) / 2
	for i, ch := range runes {
		px := x + i
		if px >= 0 && px < dst.Width() {
			dst.Set(px, y, ch)
		}
	}
}
