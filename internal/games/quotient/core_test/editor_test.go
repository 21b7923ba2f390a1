package core_test

import (
	"testing"

	"github.com/vovakirdan/quotient/internal/games/quotient/core"
)

// pocketRows seals the top-right corner cell behind walls. The pocket
// does not break the main route, it just cannot hold an endpoint.
func pocketRows() []string {
	rows := openRows()
	rows[0] = "S.......#."
	rows[1] = ".........#"
	return rows
}

func TestToggleCellFlipsWallAndPath(t *testing.T) {
	sim := core.NewSim(mustLevel(t, openRows(), 10, []int{4}, 50))

	if !sim.ToggleCell(core.C(5, 5)) {
		t.Fatal("closing an open cell should succeed")
	}
	if sim.CellAt(core.C(5, 5)) != core.CellWall {
		t.Errorf("cell kind = %v, expected Wall", sim.CellAt(core.C(5, 5)))
	}
	if !sim.ToggleCell(core.C(5, 5)) {
		t.Fatal("reopening a wall should succeed")
	}
	if sim.CellAt(core.C(5, 5)) != core.CellPath {
		t.Errorf("cell kind = %v, expected Path", sim.CellAt(core.C(5, 5)))
	}

	if sim.ToggleCell(core.C(0, 0)) {
		t.Error("the spawn cell should not toggle")
	}
	if sim.ToggleCell(core.C(9, 19)) {
		t.Error("the exit cell should not toggle")
	}
	if sim.ToggleCell(core.C(-1, 5)) {
		t.Error("out of bounds should not toggle")
	}
}

func TestToggleCellRefusesSealing(t *testing.T) {
	sim := core.NewSim(mustLevel(t, openRows(), 10, []int{4}, 50))

	if !sim.ToggleCell(core.C(1, 0)) {
		t.Fatal("first corner wall should be fine")
	}
	if sim.ToggleCell(core.C(0, 1)) {
		t.Error("sealing the spawn corner should be refused")
	}
	if sim.CellAt(core.C(0, 1)) != core.CellPath {
		t.Error("refused toggle should revert the cell")
	}
}

func TestToggleCellRefusesHeldCell(t *testing.T) {
	sim := core.NewSim(mustLevel(t, openRows(), 10, []int{4}, 50))

	sim.StepTick() // spawn
	sim.StepTick() // token moves into (1,0) and holds it

	if sim.ToggleCell(core.C(1, 0)) {
		t.Error("a held cell should not close")
	}
	if sim.CellAt(core.C(1, 0)) != core.CellPath {
		t.Error("refused toggle should leave the cell open")
	}
}

func TestToggleCellReroutesTokens(t *testing.T) {
	sim := core.NewSim(mustLevel(t, ringRows(), 20, []int{6}, 1))

	sim.StepTick()
	sim.StepTick()

	// Close the top lane ahead of the token; it must swing back through
	// the left edge.
	if !sim.ToggleCell(core.C(5, 0)) {
		t.Fatal("closing the top lane with a detour available should succeed")
	}

	sim.StepTick()
	sim.StepTick()
	snap := sim.Snapshot()
	if len(snap.Tokens) != 1 {
		t.Fatalf("%d tokens, expected 1", len(snap.Tokens))
	}
	if snap.Tokens[0].Pos.X != 0 {
		t.Errorf("token at %v, expected rerouted onto the left edge", snap.Tokens[0].Pos)
	}
}

func TestMoveSpawnRelocates(t *testing.T) {
	sim := core.NewSim(mustLevel(t, openRows(), 10, []int{4}, 50))

	if !sim.MoveSpawn(core.C(3, 3)) {
		t.Fatal("relocating the spawn onto an open cell should succeed")
	}
	if !sim.SpawnCell().Equal(core.C(3, 3)) {
		t.Errorf("SpawnCell = %v, expected (3,3)", sim.SpawnCell())
	}
	if sim.CellAt(core.C(3, 3)) != core.CellStart {
		t.Error("new spawn cell should carry the Start kind")
	}
	if sim.CellAt(core.C(0, 0)) != core.CellPath {
		t.Error("old spawn cell should open up")
	}

	// The next admission uses the new cell.
	events := sim.StepTick()
	tl := tallyEvents(events)
	if len(tl.spawned) != 1 || !tl.spawned[0].Pos.Equal(core.C(3, 3)) {
		t.Errorf("spawn = %+v, expected at (3,3)", tl.spawned)
	}
}

func TestMoveSpawnRejections(t *testing.T) {
	sim := core.NewSim(mustLevel(t, pocketRows(), 10, []int{4}, 50))

	if sim.MoveSpawn(core.C(8, 0)) {
		t.Error("spawn cannot land on a wall")
	}
	if sim.MoveSpawn(core.C(9, 19)) {
		t.Error("spawn cannot land on the exit")
	}
	if sim.MoveSpawn(core.C(9, 0)) {
		t.Error("spawn cannot land in a sealed pocket")
	}
	if !sim.SpawnCell().Equal(core.C(0, 0)) {
		t.Errorf("SpawnCell = %v, expected unchanged (0,0)", sim.SpawnCell())
	}
	if sim.CellAt(core.C(0, 0)) != core.CellStart {
		t.Error("refused relocation should keep the Start kind in place")
	}
	if sim.CellAt(core.C(9, 0)) != core.CellPath {
		t.Error("refused relocation should revert the pocket cell")
	}
}

func TestMoveExitRelocates(t *testing.T) {
	sim := core.NewSim(mustLevel(t, openRows(), 20, []int{4}, 1))

	if !sim.MoveExit(core.C(5, 5)) {
		t.Fatal("relocating the exit onto an open cell should succeed")
	}
	if !sim.ExitCell().Equal(core.C(5, 5)) {
		t.Errorf("ExitCell = %v, expected (5,5)", sim.ExitCell())
	}
	if sim.CellAt(core.C(9, 19)) != core.CellPath {
		t.Error("old exit cell should open up")
	}

	// Routes now target the new exit: ten steps from the spawn corner,
	// so the token resolves on tick 12.
	events := runUntilDone(t, sim, 30)
	tl := tallyEvents(events)
	if len(tl.escaped) != 1 || tl.escaped[0].Value != 4 {
		t.Fatalf("escaped = %+v, expected one leak of 4", tl.escaped)
	}
	if sim.Tick() != 12 {
		t.Errorf("leak resolved on tick %d, expected 12", sim.Tick())
	}
	if sim.HP() != 16 {
		t.Errorf("HP = %d, expected 16", sim.HP())
	}
}

func TestMoveExitRejections(t *testing.T) {
	sim := core.NewSim(mustLevel(t, pocketRows(), 10, []int{4}, 50))

	if sim.MoveExit(core.C(8, 0)) {
		t.Error("exit cannot land on a wall")
	}
	if sim.MoveExit(core.C(0, 0)) {
		t.Error("exit cannot land on the spawn")
	}
	if sim.MoveExit(core.C(9, 0)) {
		t.Error("exit cannot land in a sealed pocket")
	}
	if !sim.ExitCell().Equal(core.C(9, 19)) {
		t.Errorf("ExitCell = %v, expected unchanged (9,19)", sim.ExitCell())
	}
	if sim.CellAt(core.C(9, 19)) != core.CellEnd {
		t.Error("refused relocation should keep the End kind in place")
	}
	if sim.CellAt(core.C(9, 0)) != core.CellPath {
		t.Error("refused relocation should revert the pocket cell")
	}
}
