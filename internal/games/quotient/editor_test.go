package quotient

import (
	"path/filepath"
	"testing"

	platformcore "github.com/vovakirdan/quotient/internal/core"
	"github.com/vovakirdan/quotient/internal/games/quotient/core"
	"github.com/vovakirdan/quotient/internal/games/quotient/levels"
)

func TestEditorOpensBlankDraft(t *testing.T) {
	SetUserLevelsDir(t.TempDir())
	defer SetUserLevelsDir("")

	g := NewEditor()
	g.Reset(testConfig())

	if g.sim == nil {
		t.Fatal("editor should open a blank draft")
	}
	if g.level.ID != "draft" {
		t.Errorf("draft id = %s, want draft", g.level.ID)
	}
	if g.sim.SpawnCell() != core.C(0, 0) {
		t.Errorf("draft spawn = %v, want (0,0)", g.sim.SpawnCell())
	}
	if g.sim.ExitCell() != core.C(core.Cols-1, core.Rows-1) {
		t.Errorf("draft exit = %v, want bottom-right", g.sim.ExitCell())
	}
	if g.sim.Tick() != 0 {
		t.Error("the editing clock should not run")
	}
}

func TestEditorOpensExistingLevel(t *testing.T) {
	SetUserLevelsDir(t.TempDir())
	defer SetUserLevelsDir("")

	SetEditLevelID("02-the-bend")
	g := NewEditor()
	g.Reset(testConfig())

	if g.level.ID != "02-the-bend" {
		t.Errorf("editor opened %s, want 02-the-bend", g.level.ID)
	}

	// The selection is consumed
	g.Reset(testConfig())
	if g.level.ID != "draft" {
		t.Errorf("editor after second Reset opened %s, want draft", g.level.ID)
	}
}

func TestEditorOpensNamedDraft(t *testing.T) {
	SetUserLevelsDir(t.TempDir())
	defer SetUserLevelsDir("")

	SetEditLevelID("my-gauntlet")
	g := NewEditor()
	g.Reset(testConfig())

	if g.level.ID != "my-gauntlet" {
		t.Errorf("editor opened %s, want my-gauntlet", g.level.ID)
	}
	if g.sim.SpawnCell() != core.C(0, 0) {
		t.Error("a named draft should still start from the blank layout")
	}
}

func TestEditorToggleWall(t *testing.T) {
	SetUserLevelsDir(t.TempDir())
	defer SetUserLevelsDir("")

	g := NewEditor()
	g.Reset(testConfig())

	g.cursor = core.C(4, 4)
	g.Step(frame(platformcore.ActionTap))

	if got := g.sim.CellAt(core.C(4, 4)); got != core.CellWall {
		t.Errorf("cell after toggle = %v, want Wall", got)
	}
	if !g.dirty {
		t.Error("a successful edit should mark the draft dirty")
	}

	g.Step(frame(platformcore.ActionTap))
	if got := g.sim.CellAt(core.C(4, 4)); got != core.CellPath {
		t.Errorf("cell after second toggle = %v, want Path", got)
	}
}

func TestEditorToggleSpawnRefused(t *testing.T) {
	SetUserLevelsDir(t.TempDir())
	defer SetUserLevelsDir("")

	g := NewEditor()
	g.Reset(testConfig())

	g.cursor = g.sim.SpawnCell()
	g.Step(frame(platformcore.ActionTap))

	if got := g.sim.CellAt(g.cursor); got != core.CellStart {
		t.Errorf("spawn cell became %v", got)
	}
	if g.dirty {
		t.Error("a refused edit should not mark the draft dirty")
	}
}

func TestEditorMovesSpawnAndExit(t *testing.T) {
	SetUserLevelsDir(t.TempDir())
	defer SetUserLevelsDir("")

	g := NewEditor()
	g.Reset(testConfig())

	oldSpawn := g.sim.SpawnCell()
	g.cursor = core.C(3, 3)
	g.Step(frame(platformcore.ActionSetStart))

	if g.sim.SpawnCell() != core.C(3, 3) {
		t.Errorf("spawn = %v, want (3,3)", g.sim.SpawnCell())
	}
	if got := g.sim.CellAt(oldSpawn); got != core.CellPath {
		t.Errorf("old spawn cell = %v, want Path", got)
	}

	oldExit := g.sim.ExitCell()
	g.cursor = core.C(5, 5)
	g.Step(frame(platformcore.ActionSetEnd))

	if g.sim.ExitCell() != core.C(5, 5) {
		t.Errorf("exit = %v, want (5,5)", g.sim.ExitCell())
	}
	if got := g.sim.CellAt(oldExit); got != core.CellPath {
		t.Errorf("old exit cell = %v, want Path", got)
	}
	if !g.dirty {
		t.Error("moving endpoints should mark the draft dirty")
	}
}

func TestEditorSaveWritesYAML(t *testing.T) {
	dir := t.TempDir()
	SetUserLevelsDir(dir)
	defer SetUserLevelsDir("")

	g := NewEditor()
	g.Reset(testConfig())

	g.cursor = core.C(4, 4)
	g.Step(frame(platformcore.ActionTap))
	g.Step(frame(platformcore.ActionSave))

	if g.dirty {
		t.Error("save should clear the dirty flag")
	}
	if g.savedFor == 0 {
		t.Error("save should show a confirmation")
	}

	loader := levels.NewLoader(dir)
	entry, err := loader.LoadFile(filepath.Join(dir, "draft.yaml"))
	if err != nil {
		t.Fatalf("saved draft does not load: %v", err)
	}
	if entry.Level.ID != "draft" {
		t.Errorf("saved id = %s, want draft", entry.Level.ID)
	}
	if got := entry.Level.Grid.Get(core.C(4, 4)); got != core.CellWall {
		t.Errorf("saved grid cell (4,4) = %v, want Wall", got)
	}
}

func TestEditorTestPlayRoundTrip(t *testing.T) {
	SetUserLevelsDir(t.TempDir())
	defer SetUserLevelsDir("")

	g := NewEditor()
	g.Reset(testConfig())

	g.cursor = core.C(4, 4)
	g.Step(frame(platformcore.ActionTap))

	g.Step(frame(platformcore.ActionConfirm))
	if !g.testing {
		t.Fatal("confirm should start test play")
	}
	if got := g.sim.CellAt(core.C(4, 4)); got != core.CellWall {
		t.Error("test play should run the edited layout")
	}

	// The draft ticks once per second; a bit over a second must spawn
	for i := 0; i < 61; i++ {
		g.Step(frame())
	}
	if g.sim.Tick() == 0 {
		t.Fatal("test play clock should run")
	}
	if g.sim.ActiveTokens() == 0 {
		t.Error("test play should admit tokens")
	}

	g.Step(frame(platformcore.ActionConfirm))
	if g.testing {
		t.Fatal("confirm should return to editing")
	}
	if g.sim.Tick() != 0 {
		t.Errorf("editing sim tick = %d, want 0", g.sim.Tick())
	}
	if g.sim.ActiveTokens() != 0 {
		t.Error("returning to the editor should clear tokens")
	}
	if got := g.sim.CellAt(core.C(4, 4)); got != core.CellWall {
		t.Error("edits should survive the test play round trip")
	}
}

func TestEditorStateIsNeverRecorded(t *testing.T) {
	SetUserLevelsDir(t.TempDir())
	defer SetUserLevelsDir("")

	g := NewEditor()
	g.Reset(testConfig())
	g.Step(frame(platformcore.ActionConfirm)) // enter test play

	st := g.State()
	if st.GameOver {
		t.Error("editor runs must not report GameOver")
	}
	if st.Level != "" {
		t.Errorf("editor runs must not carry a level id, got %q", st.Level)
	}
}
