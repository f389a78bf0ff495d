package storage

import (
	"database/sql"
	"os"
	"path/filepath"
	"testing"

	_ "modernc.org/sqlite"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	for _, score := range []int{100, 50, 200} {
		if _, err := store.SaveScore("jumper", score); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}
	if _, err := store.SaveScore("beepy", 500); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	scores, err := store.TopScores("jumper", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}
	if scores[0].Score != 200 || scores[1].Score != 100 || scores[2].Score != 50 {
		t.Errorf("Scores not sorted descending: %v", scores)
	}

	beepy, err := store.TopScores("beepy", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(beepy) != 1 {
		t.Errorf("Expected 1 beepy score, got %d", len(beepy))
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.SaveScore("test", (i+1)*100)
	}

	scores, err := store.TopScores("test", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Errorf("Expected 3 scores with limit, got %d", len(scores))
	}
	if scores[0].Score != 500 || scores[1].Score != 400 || scores[2].Score != 300 {
		t.Errorf("Scores not in expected order: %v", scores)
	}
}

func TestStoreBestTimes(t *testing.T) {
	store := openTestStore(t)

	runs := []Run{
		{GameID: "jumper", Score: 300, Won: true, FinishMs: 42000},
		{GameID: "jumper", Score: 900, Won: false, FinishMs: 1000},
		{GameID: "jumper", Score: 250, Won: true, FinishMs: 31500},
		{GameID: "jumper", Score: 400, Won: true, FinishMs: 31500},
		{GameID: "beepy", Score: 7, Won: true, FinishMs: 10},
	}
	for _, r := range runs {
		if _, err := store.SaveRun(r); err != nil {
			t.Fatalf("SaveRun(%+v) failed: %v", r, err)
		}
	}

	best, err := store.BestTimes("jumper", 10)
	if err != nil {
		t.Fatalf("BestTimes() failed: %v", err)
	}
	want := []struct {
		ms    int64
		score int
	}{
		{31500, 400},
		{31500, 250},
		{42000, 300},
	}
	if len(best) != len(want) {
		t.Fatalf("got %d best times, want %d", len(best), len(want))
	}
	for i, w := range want {
		if best[i].FinishMs != w.ms || best[i].Score != w.score || !best[i].Won {
			t.Errorf("best[%d] = %+v, want %d ms score %d", i, best[i], w.ms, w.score)
		}
	}

	ms, ok, err := store.BestTime("jumper")
	if err != nil || !ok || ms != 31500 {
		t.Errorf("BestTime() = %d, %v, %v; want 31500", ms, ok, err)
	}
}

func TestStoreLostRunHasNoTime(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun(Run{GameID: "jumper", Score: 120, Won: false, FinishMs: 5000})

	scores, err := store.TopScores("jumper", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 1 || scores[0].FinishMs != 0 || scores[0].Won {
		t.Errorf("lost run stored as %+v", scores)
	}

	if _, ok, err := store.BestTime("jumper"); ok || err != nil {
		t.Errorf("BestTime() ok=%v err=%v, want no time", ok, err)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("jumper")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty game, got %d", high)
	}

	store.SaveScore("jumper", 100)
	store.SaveScore("jumper", 300)
	store.SaveScore("jumper", 200)

	high, err = store.HighScore("jumper")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("jumper", 100)
	store.SaveScore("jumper", 200)
	store.SaveScore("beepy", 300)

	if err := store.ClearScores("jumper"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	jumper, _ := store.TopScores("jumper", 10)
	if len(jumper) != 0 {
		t.Errorf("Expected 0 jumper scores after clear, got %d", len(jumper))
	}

	beepy, _ := store.TopScores("beepy", 10)
	if len(beepy) != 1 {
		t.Errorf("beepy scores should not be affected by clearing jumper")
	}
}

func TestStoreAllScores(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 20; i++ {
		store.SaveScore("test", i*10)
	}

	scores, err := store.AllScores("test")
	if err != nil {
		t.Fatalf("AllScores() failed: %v", err)
	}
	if len(scores) != 20 {
		t.Errorf("Expected 20 scores, got %d", len(scores))
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun(Run{GameID: "jumper", Score: 100, Won: true, FinishMs: 50000})
	store.SaveRun(Run{GameID: "jumper", Score: 300, Won: false})
	store.SaveRun(Run{GameID: "jumper", Score: 200, Won: true, FinishMs: 40000})

	stats, err := store.GetGameStats("jumper")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 3 || stats.Wins != 2 || stats.HighScore != 300 {
		t.Errorf("stats = %+v", stats)
	}
	if stats.AvgScore != 200 || stats.TotalScore != 600 {
		t.Errorf("avg/total = %v/%d, want 200/600", stats.AvgScore, stats.TotalScore)
	}
	if stats.BestTimeMs != 40000 {
		t.Errorf("best time = %d, want 40000", stats.BestTimeMs)
	}

	empty, err := store.GetGameStats("beepy")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if empty.GamesCount != 0 || empty.BestTimeMs != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("empty stats = %+v", empty)
	}
}

func TestStoreMigratesOldSchema(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "old.db")

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		t.Fatal(err)
	}
	_, err = db.Exec(`CREATE TABLE scores (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		game_id TEXT NOT NULL,
		score INTEGER NOT NULL,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	); INSERT INTO scores (game_id, score) VALUES ('jumper', 77);`)
	if err != nil {
		t.Fatal(err)
	}
	db.Close()

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() on old schema failed: %v", err)
	}
	defer store.Close()

	scores, err := store.TopScores("jumper", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 1 || scores[0].Score != 77 || scores[0].Won {
		t.Errorf("old rows = %+v", scores)
	}

	if _, err := store.SaveRun(Run{GameID: "jumper", Score: 10, Won: true, FinishMs: 900}); err != nil {
		t.Fatalf("SaveRun() after migration failed: %v", err)
	}
}

func TestStoreNestedPath(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}
