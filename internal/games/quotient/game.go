// Package quotient provides the divisor tower-defense game: numbered
// tokens march from spawn to exit through a walled grid, divisor towers
// cut them down, and health pays for both towers and escapes.
package quotient

import (
	"path/filepath"
	"strings"

	"github.com/vovakirdan/quotient/internal/config"
	platformcore "github.com/vovakirdan/quotient/internal/core"
	"github.com/vovakirdan/quotient/internal/games/quotient/core"
	"github.com/vovakirdan/quotient/internal/games/quotient/levels"
	"github.com/vovakirdan/quotient/internal/registry"
)

// Mode selects between playing levels and authoring them.
type Mode string

const (
	ModePlay Mode = "play"
	ModeEdit Mode = "edit"
)

// Game adapts the quotient simulation core to the platform game API.
type Game struct {
	mode Mode

	sim        *core.Sim
	level      *core.Level // Level as loaded, before difficulty scaling
	allLevels  []levels.Entry
	levelIndex int

	cursor core.Coord // Board cell the keyboard cursor is on

	// Editor state
	testing   bool        // Test-play running inside the editor
	draft     *core.Level // Edited layout to return to after test-play
	dirty     bool        // Unsaved edits
	savedFor  int         // Frames left on the save confirmation
	savedPath string

	score int

	// Screen dimensions and layout
	screenW      int
	screenH      int
	tickRate     int
	hudHeight    int
	cellW        int
	boardOffsetX int
	boardOffsetY int
	boardRect    platformcore.Rect
	sideX        int
	tooSmall     bool

	cfg  platformcore.RuntimeConfig
	tick uint64
}

// Package-level variables set by the command layer before Reset.
var (
	selectedLevelID    string
	selectedStartLevel int
	difficultyPreset   string
	userLevelsDir      string
	editLevelID        string
)

// SetLevelID selects the level to play by id. Empty keeps the default.
func SetLevelID(id string) {
	selectedLevelID = id
}

// SetStartLevel selects the level to play by position (1-indexed).
// 0 means start from the first level.
func SetStartLevel(level int) {
	selectedStartLevel = level
}

// GetStartLevel returns the currently selected start level.
func GetStartLevel() int {
	return selectedStartLevel
}

// SetDifficultyPreset sets the pacing preset applied on the next Reset.
func SetDifficultyPreset(preset string) {
	difficultyPreset = preset
}

// SetUserLevelsDir overrides the directory searched for user levels.
func SetUserLevelsDir(dir string) {
	userLevelsDir = dir
}

// SetEditLevelID selects the level the editor opens. Empty opens a
// blank draft.
func SetEditLevelID(id string) {
	editLevelID = id
}

func init() {
	registry.Register("quotient", func() registry.Game {
		return New()
	})
	registry.Register("quotient_editor", func() registry.Game {
		return NewEditor()
	})
}

// New creates a new Quotient game in play mode.
func New() *Game {
	return &Game{
		mode: ModePlay,
	}
}

// NewEditor creates a new Quotient level editor.
func NewEditor() *Game {
	return &Game{
		mode: ModeEdit,
	}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.mode == ModeEdit {
		return "quotient_editor"
	}
	return "quotient"
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == ModeEdit {
		return "Quotient Editor"
	}
	return "Quotient"
}

// Reset initializes or restarts the game.
func (g *Game) Reset(cfg platformcore.RuntimeConfig) {
	g.cfg = cfg
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.tickRate = cfg.TickRate
	if g.tickRate <= 0 {
		g.tickRate = 60
	}
	g.tick = 0
	g.score = 0
	g.testing = false
	g.draft = nil
	g.dirty = false
	g.savedFor = 0
	g.sim = nil
	g.level = nil

	g.calculateLayout()

	if g.mode == ModeEdit {
		g.resetEditor()
		return
	}

	all, err := levels.Available(userLevelsDir)
	if err != nil || len(all) == 0 {
		return
	}
	g.allLevels = all

	// A pending selection wins; otherwise keep the current index so a
	// mid-run Reset (terminal resize) replays the same level instead of
	// dropping back to the first one.
	switch {
	case selectedLevelID != "":
		g.levelIndex = 0
		for i, e := range all {
			if e.Level.ID == selectedLevelID {
				g.levelIndex = i
				break
			}
		}
		selectedLevelID = "" // Consume after use
	case selectedStartLevel > 0 && selectedStartLevel <= len(all):
		g.levelIndex = selectedStartLevel - 1
		selectedStartLevel = 0
	default:
		if g.levelIndex < 0 || g.levelIndex >= len(all) {
			g.levelIndex = 0
		}
	}

	g.loadCurrentLevel()
}

// resetEditor opens the selected level for editing, or a blank draft.
// An id that matches no existing level starts a fresh draft under that
// id, so saving creates the new level file.
func (g *Game) resetEditor() {
	var lvl *core.Level
	id := editLevelID
	editLevelID = ""
	if id != "" {
		if entry, err := levels.Find(userLevelsDir, id); err == nil {
			lvl = entry.Level
		}
	}
	if lvl == nil {
		var err error
		lvl, err = blankLevel()
		if err != nil {
			return
		}
		if id != "" {
			lvl.ID = id
			lvl.Name = id
		}
	}

	g.level = lvl
	g.sim = core.NewSim(lvl) // Clock stays stopped while editing
	g.cursor = core.C(core.Cols/2, core.Rows/2)
}

// blankLevel builds the empty draft the editor starts from: an open
// board with spawn top-left and exit bottom-right.
func blankLevel() (*core.Level, error) {
	rows := make([]string, core.Rows)
	for y := range rows {
		rows[y] = strings.Repeat(".", core.Cols)
	}
	rows[0] = "S" + strings.Repeat(".", core.Cols-1)
	rows[core.Rows-1] = strings.Repeat(".", core.Cols-1) + "E"
	return core.NewLevel("draft", "Draft", rows, 10, []int{2, 4, 6, 8, 12}, 4, 1.0)
}

// loadCurrentLevel builds a fresh simulation for the level at
// levelIndex, applying the difficulty preset's tick scaling.
func (g *Game) loadCurrentLevel() {
	if g.levelIndex < 0 || g.levelIndex >= len(g.allLevels) {
		return
	}
	g.level = g.allLevels[g.levelIndex].Level

	lvl := g.level
	if scale := difficultyScale(); scale != 1.0 {
		if scaled, err := scaledLevel(lvl, scale); err == nil {
			lvl = scaled
		}
	}

	g.sim = core.NewSim(lvl)
	g.sim.Start()
	g.cursor = core.C(core.Cols/2, core.Rows/2)
}

// difficultyScale resolves the configured preset to a tick multiplier.
func difficultyScale() float64 {
	preset, err := config.ParsePreset(difficultyPreset)
	if err != nil {
		return 1.0
	}
	return preset.TickScale()
}

// scaledLevel rebuilds a level with its tick duration multiplied.
// Presets touch pacing only; every other rule stays as authored.
func scaledLevel(lvl *core.Level, scale float64) (*core.Level, error) {
	rows := core.RowsFromGrid(lvl.Grid)
	return core.NewLevel(lvl.ID, lvl.Name, rows, lvl.StartingHP, lvl.Sequence, lvl.SpawnEvery, lvl.TickSeconds*scale)
}

// calculateLayout fixes the board and sidebar positions for the screen.
func (g *Game) calculateLayout() {
	g.cellW = 3
	g.hudHeight = 2

	boardW := core.Cols * g.cellW
	requiredW := 1 + boardW + 3 + 24 // margin + board + gap + sidebar
	requiredH := core.Rows + g.hudHeight + 1

	if g.screenW < requiredW || g.screenH < requiredH {
		g.tooSmall = true
		return
	}
	g.tooSmall = false

	g.boardOffsetX = 1
	g.boardOffsetY = g.hudHeight
	g.sideX = g.boardOffsetX + boardW + 3
	g.boardRect = platformcore.NewRect(g.boardOffsetX, g.boardOffsetY, boardW, core.Rows)
}

// Step advances the game by one frame.
func (g *Game) Step(input platformcore.InputFrame) platformcore.StepResult {
	g.tick++
	if g.savedFor > 0 {
		g.savedFor--
	}

	if g.mode == ModePlay && input.Has(platformcore.ActionRestart) && g.runEnded() {
		g.score = 0
		g.loadCurrentLevel()
		return platformcore.StepResult{State: g.State()}
	}

	if g.tooSmall || g.sim == nil {
		return platformcore.StepResult{State: g.State()}
	}

	if g.mode == ModeEdit {
		g.stepEditor(input)
		return platformcore.StepResult{State: g.State()}
	}

	// A completed level waits for confirmation before moving on
	if g.sim.Won() && input.Has(platformcore.ActionConfirm) {
		g.advanceLevel()
		return platformcore.StepResult{State: g.State()}
	}

	if input.Has(platformcore.ActionPause) {
		g.sim.TogglePause()
	}

	g.moveCursor(input)

	if !g.runEnded() {
		if input.Has(platformcore.ActionTap) {
			g.applyTap(g.cursor)
		}
		if input.Tap != nil {
			if c, ok := g.screenToBoard(input.Tap.X, input.Tap.Y); ok {
				g.cursor = c
				g.applyTap(c)
			}
		}
	}

	// Frame time drives the simulation clock
	g.applyEvents(g.sim.Advance(1.0 / float64(g.tickRate)))

	return platformcore.StepResult{State: g.State()}
}

// stepEditor handles one frame of editing or in-editor test play.
func (g *Game) stepEditor(input platformcore.InputFrame) {
	if input.Has(platformcore.ActionConfirm) {
		g.toggleTestPlay()
		return
	}

	if g.testing {
		if input.Has(platformcore.ActionRestart) && g.runEnded() {
			g.sim = core.NewSim(g.draft)
			g.sim.Start()
			return
		}
		if input.Has(platformcore.ActionPause) {
			g.sim.TogglePause()
		}
		g.moveCursor(input)
		if !g.runEnded() {
			if input.Has(platformcore.ActionTap) {
				g.applyTap(g.cursor)
			}
			if input.Tap != nil {
				if c, ok := g.screenToBoard(input.Tap.X, input.Tap.Y); ok {
					g.cursor = c
					g.applyTap(c)
				}
			}
		}
		g.applyEvents(g.sim.Advance(1.0 / float64(g.tickRate)))
		return
	}

	g.moveCursor(input)

	switch {
	case input.Has(platformcore.ActionTap):
		if g.sim.ToggleCell(g.cursor) {
			g.dirty = true
		}
	case input.Has(platformcore.ActionSetStart):
		if g.sim.MoveSpawn(g.cursor) {
			g.dirty = true
		}
	case input.Has(platformcore.ActionSetEnd):
		if g.sim.MoveExit(g.cursor) {
			g.dirty = true
		}
	case input.Has(platformcore.ActionSave):
		g.saveLevel()
	}

	if input.Tap != nil {
		if c, ok := g.screenToBoard(input.Tap.X, input.Tap.Y); ok {
			g.cursor = c
			if g.sim.ToggleCell(c) {
				g.dirty = true
			}
		}
	}
}

// toggleTestPlay switches the editor between authoring and running the
// draft. Entering snapshots the layout; leaving restores it untouched.
func (g *Game) toggleTestPlay() {
	if g.testing {
		g.sim = core.NewSim(g.draft)
		g.level = g.draft
		g.testing = false
		return
	}

	draft, err := g.draftLevel()
	if err != nil {
		return
	}
	g.draft = draft
	g.sim = core.NewSim(draft)
	g.sim.Start()
	g.testing = true
}

// draftLevel assembles a level from the edited board and the scalar
// fields of the level being edited.
func (g *Game) draftLevel() (*core.Level, error) {
	l := g.level
	return core.NewLevel(l.ID, l.Name, g.sim.Layout(), l.StartingHP, l.Sequence, l.SpawnEvery, l.TickSeconds)
}

// saveLevel writes the draft to the user levels directory.
func (g *Game) saveLevel() {
	draft, err := g.draftLevel()
	if err != nil {
		return
	}

	dir := userLevelsDir
	if dir == "" {
		dir = levels.DefaultUserDir()
		if dir == "" {
			return
		}
	}

	path := filepath.Join(dir, draft.ID+".yaml")
	if err := levels.SaveFile(path, draft); err != nil {
		return
	}

	g.draft = draft
	g.dirty = false
	g.savedPath = path
	g.savedFor = g.tickRate * 2 // Confirmation shows for about two seconds
}

// advanceLevel moves to the next level, wrapping past the last one.
func (g *Game) advanceLevel() {
	g.levelIndex++
	if g.levelIndex >= len(g.allLevels) {
		g.levelIndex = 0
	}
	g.loadCurrentLevel()
}

// moveCursor shifts the keyboard cursor, clamped to the board.
func (g *Game) moveCursor(input platformcore.InputFrame) {
	if input.Has(platformcore.ActionUp) {
		g.cursor.Y = platformcore.Clamp(g.cursor.Y-1, 0, core.Rows-1)
	}
	if input.Has(platformcore.ActionDown) {
		g.cursor.Y = platformcore.Clamp(g.cursor.Y+1, 0, core.Rows-1)
	}
	if input.Has(platformcore.ActionLeft) {
		g.cursor.X = platformcore.Clamp(g.cursor.X-1, 0, core.Cols-1)
	}
	if input.Has(platformcore.ActionRight) {
		g.cursor.X = platformcore.Clamp(g.cursor.X+1, 0, core.Cols-1)
	}
}

// applyTap routes a tap through the simulation: towers upgrade,
// anything else attempts a placement. Rejections are quiet.
func (g *Game) applyTap(c core.Coord) {
	events, _ := g.sim.Tap(c)
	g.applyEvents(events)
}

// applyEvents folds simulation events into the running score: solved
// tokens are worth their spawn value, a cleared level its stars.
func (g *Game) applyEvents(events []core.Event) {
	for _, ev := range events {
		switch e := ev.(type) {
		case core.TokenSolved:
			g.score += e.Value
		case core.LevelComplete:
			g.score += e.Stars * 100
		}
	}
}

// screenToBoard converts a screen tap to a board cell.
func (g *Game) screenToBoard(sx, sy int) (core.Coord, bool) {
	if !g.boardRect.Contains(sx, sy) {
		return core.Coord{}, false
	}
	bx := (sx - g.boardOffsetX) / g.cellW
	by := sy - g.boardOffsetY
	return core.C(bx, by), true
}

// runEnded reports whether the current run reached either terminal
// state.
func (g *Game) runEnded() bool {
	return g.sim != nil && (g.sim.Over() || g.sim.Won())
}

// State returns the current game state.
func (g *Game) State() platformcore.GameState {
	st := platformcore.GameState{Score: g.score}
	if g.sim == nil {
		return st
	}
	st.Paused = g.sim.Paused()

	// Editor runs are drafts; the platform never records them.
	if g.mode == ModeEdit {
		return st
	}

	st.GameOver = g.runEnded()
	st.Level = g.level.ID
	st.Won = g.sim.Won()
	st.Stars = g.sim.Stars()
	st.HP = g.sim.HP()
	st.MaxHP = g.sim.MaxHP()
	st.Ticks = g.sim.Tick()
	return st
}

// LevelCount returns the number of available levels.
func LevelCount() int {
	all, err := levels.Available(userLevelsDir)
	if err != nil {
		return 0
	}
	return len(all)
}

// LevelNames returns the names of all available levels in order.
func LevelNames() []string {
	all, err := levels.Available(userLevelsDir)
	if err != nil {
		return nil
	}
	names := make([]string, len(all))
	for i, e := range all {
		names[i] = e.Level.Name
	}
	return names
}

// AvailableLevels returns builtin plus user levels, honoring the
// configured user levels directory.
func AvailableLevels() ([]levels.Entry, error) {
	return levels.Available(userLevelsDir)
}
