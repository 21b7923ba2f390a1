package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Save some results
	_, err = store.SaveResult(Result{LevelID: "01-first-steps", Won: true, Stars: 2, Score: 180, HPLeft: 5, DurationTicks: 90})
	if err != nil {
		t.Fatalf("SaveResult() failed: %v", err)
	}

	_, err = store.SaveResult(Result{LevelID: "01-first-steps", Won: false, Stars: 0, Score: 40, HPLeft: 0, DurationTicks: 33})
	if err != nil {
		t.Fatalf("SaveResult() failed: %v", err)
	}

	_, err = store.SaveResult(Result{LevelID: "01-first-steps", Won: true, Stars: 3, Score: 320, HPLeft: 10, DurationTicks: 85})
	if err != nil {
		t.Fatalf("SaveResult() failed: %v", err)
	}

	// Different level
	_, err = store.SaveResult(Result{LevelID: "02-the-bend", Won: true, Stars: 1, Score: 150, HPLeft: 3, DurationTicks: 120})
	if err != nil {
		t.Fatalf("SaveResult() failed: %v", err)
	}

	// Retrieve top results for the first level
	results, err := store.TopResults("01-first-steps", 10)
	if err != nil {
		t.Fatalf("TopResults() failed: %v", err)
	}

	if len(results) != 3 {
		t.Errorf("Expected 3 results, got %d", len(results))
	}

	// Should be sorted by score descending
	if results[0].Score != 320 {
		t.Errorf("Expected highest score to be 320, got %d", results[0].Score)
	}
	if results[1].Score != 180 {
		t.Errorf("Expected second score to be 180, got %d", results[1].Score)
	}
	if results[2].Score != 40 {
		t.Errorf("Expected third score to be 40, got %d", results[2].Score)
	}

	// Fields round-trip
	if !results[0].Won || results[0].Stars != 3 || results[0].HPLeft != 10 || results[0].DurationTicks != 85 {
		t.Errorf("Top result fields mangled: %+v", results[0])
	}
	if results[2].Won {
		t.Error("Lost run came back as won")
	}

	// Retrieve top results for the other level
	bendResults, err := store.TopResults("02-the-bend", 10)
	if err != nil {
		t.Fatalf("TopResults() failed: %v", err)
	}

	if len(bendResults) != 1 {
		t.Errorf("Expected 1 result for 02-the-bend, got %d", len(bendResults))
	}
}

func TestStoreTopResultsLimit(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Save 5 results
	for i := 0; i < 5; i++ {
		store.SaveResult(Result{LevelID: "test", Score: (i + 1) * 100})
	}

	// Request only top 3
	results, err := store.TopResults("test", 3)
	if err != nil {
		t.Fatalf("TopResults() failed: %v", err)
	}

	if len(results) != 3 {
		t.Errorf("Expected 3 results with limit, got %d", len(results))
	}

	// Should be 500, 400, 300 (top 3)
	if results[0].Score != 500 || results[1].Score != 400 || results[2].Score != 300 {
		t.Errorf("Results not in expected order: %v", results)
	}
}

func TestStoreBestStars(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// No results yet
	stars, err := store.BestStars("01-first-steps")
	if err != nil {
		t.Fatalf("BestStars() failed: %v", err)
	}
	if stars != 0 {
		t.Errorf("Expected 0 stars for unplayed level, got %d", stars)
	}

	// Add results
	store.SaveResult(Result{LevelID: "01-first-steps", Won: true, Stars: 1, Score: 100})
	store.SaveResult(Result{LevelID: "01-first-steps", Won: true, Stars: 3, Score: 300})
	store.SaveResult(Result{LevelID: "01-first-steps", Won: true, Stars: 2, Score: 200})

	stars, err = store.BestStars("01-first-steps")
	if err != nil {
		t.Fatalf("BestStars() failed: %v", err)
	}
	if stars != 3 {
		t.Errorf("Expected best stars of 3, got %d", stars)
	}
}

func TestStoreClearResults(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	store.SaveResult(Result{LevelID: "01-first-steps", Score: 100})
	store.SaveResult(Result{LevelID: "01-first-steps", Score: 200})
	store.SaveResult(Result{LevelID: "02-the-bend", Score: 300})

	// Clear only the first level
	err = store.ClearResults("01-first-steps")
	if err != nil {
		t.Fatalf("ClearResults() failed: %v", err)
	}

	// First level should be empty
	firstResults, _ := store.TopResults("01-first-steps", 10)
	if len(firstResults) != 0 {
		t.Errorf("Expected 0 results after clear, got %d", len(firstResults))
	}

	// Other level should still have results
	bendResults, _ := store.TopResults("02-the-bend", 10)
	if len(bendResults) != 1 {
		t.Errorf("Other levels should not be affected by a scoped clear")
	}
}

func TestStoreLevelStats(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	store.SaveResult(Result{LevelID: "03-switchback", Won: true, Stars: 2, Score: 100, HPLeft: 4})
	store.SaveResult(Result{LevelID: "03-switchback", Won: false, Stars: 0, Score: 200, HPLeft: 0})
	store.SaveResult(Result{LevelID: "03-switchback", Won: true, Stars: 3, Score: 300, HPLeft: 9})

	stats, err := store.GetLevelStats("03-switchback")
	if err != nil {
		t.Fatalf("GetLevelStats() failed: %v", err)
	}

	if stats.Plays != 3 {
		t.Errorf("Expected 3 plays, got %d", stats.Plays)
	}
	if stats.Wins != 2 {
		t.Errorf("Expected 2 wins, got %d", stats.Wins)
	}
	if stats.BestStars != 3 {
		t.Errorf("Expected best stars 3, got %d", stats.BestStars)
	}
	if stats.BestScore != 300 {
		t.Errorf("Expected best score 300, got %d", stats.BestScore)
	}
	if stats.AvgScore != 200 {
		t.Errorf("Expected avg score 200, got %g", stats.AvgScore)
	}
}

func TestStoreLevelStatsEmpty(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	stats, err := store.GetLevelStats("never-played")
	if err != nil {
		t.Fatalf("GetLevelStats() failed: %v", err)
	}
	if stats.Plays != 0 || stats.Wins != 0 || stats.BestStars != 0 {
		t.Errorf("Expected zeroed stats for unplayed level, got %+v", stats)
	}
}

func TestStoreAllLevelStats(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	store.SaveResult(Result{LevelID: "01-first-steps", Won: true, Stars: 3, Score: 300})
	store.SaveResult(Result{LevelID: "01-first-steps", Won: false, Score: 50})
	store.SaveResult(Result{LevelID: "02-the-bend", Won: true, Stars: 1, Score: 120})

	stats, err := store.GetAllLevelStats()
	if err != nil {
		t.Fatalf("GetAllLevelStats() failed: %v", err)
	}

	if len(stats) != 2 {
		t.Fatalf("Expected stats for 2 levels, got %d", len(stats))
	}
	if stats["01-first-steps"].Plays != 2 || stats["01-first-steps"].Wins != 1 {
		t.Errorf("Unexpected stats for 01-first-steps: %+v", stats["01-first-steps"])
	}
	if stats["02-the-bend"].BestStars != 1 {
		t.Errorf("Unexpected stats for 02-the-bend: %+v", stats["02-the-bend"])
	}
}

func TestStoreExpandHomePath(t *testing.T) {
	// Test that ~ expansion works (we won't actually write to home)
	// Just verify the function doesn't crash
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	// Verify nested directories were created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}
