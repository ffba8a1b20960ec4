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

	_, err = store.SaveScore("shooter", 100)
	if err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	_, err = store.SaveScore("shooter", 50)
	if err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	_, err = store.SaveScore("shooter", 200)
	if err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	// Different game
	_, err = store.SaveScore("jumper", 500)
	if err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	scores, err := store.TopScores("shooter", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Errorf("Expected 3 scores, got %d", len(scores))
	}

	// Should be sorted descending
	if scores[0].Score != 200 {
		t.Errorf("Expected highest score to be 200, got %d", scores[0].Score)
	}
	if scores[1].Score != 100 {
		t.Errorf("Expected second score to be 100, got %d", scores[1].Score)
	}
	if scores[2].Score != 50 {
		t.Errorf("Expected third score to be 50, got %d", scores[2].Score)
	}

	jumperScores, err := store.TopScores("jumper", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(jumperScores) != 1 {
		t.Errorf("Expected 1 jumper score, got %d", len(jumperScores))
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

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

func TestStoreHighScore(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// No scores yet
	high, err := store.HighScore("shooter")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty game, got %d", high)
	}

	store.SaveScore("shooter", 100)
	store.SaveScore("shooter", 300)
	store.SaveScore("shooter", 200)

	high, err = store.HighScore("shooter")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	store.SaveScore("shooter", 100)
	store.SaveScore("shooter", 200)
	store.SaveScore("jumper", 300)

	err = store.ClearScores("shooter")
	if err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	shooterScores, _ := store.TopScores("shooter", 10)
	if len(shooterScores) != 0 {
		t.Errorf("Expected 0 shooter scores after clear, got %d", len(shooterScores))
	}

	jumperScores, _ := store.TopScores("jumper", 10)
	if len(jumperScores) != 1 {
		t.Errorf("Jumper scores should not be affected by clearing shooter")
	}
}

func TestStoreAllScores(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

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

func TestStoreConcepts(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	id, err := store.SaveConcept("star-miner", `{"name":"Star Miner"}`)
	if err != nil {
		t.Fatalf("SaveConcept() failed: %v", err)
	}
	if id == "" {
		t.Error("SaveConcept() returned empty ID")
	}

	rec, err := store.ConceptByName("star-miner")
	if err != nil {
		t.Fatalf("ConceptByName() failed: %v", err)
	}
	if rec == nil {
		t.Fatal("ConceptByName() returned nil for saved concept")
	}
	if rec.Content != `{"name":"Star Miner"}` {
		t.Errorf("Unexpected content: %s", rec.Content)
	}

	// Saving under the same name replaces the content
	_, err = store.SaveConcept("star-miner", `{"name":"Star Miner II"}`)
	if err != nil {
		t.Fatalf("SaveConcept() update failed: %v", err)
	}
	rec, err = store.ConceptByName("star-miner")
	if err != nil {
		t.Fatalf("ConceptByName() failed: %v", err)
	}
	if rec.Content != `{"name":"Star Miner II"}` {
		t.Errorf("Expected updated content, got %s", rec.Content)
	}

	// Unknown name returns nil, not an error
	missing, err := store.ConceptByName("no-such-concept")
	if err != nil {
		t.Fatalf("ConceptByName() failed: %v", err)
	}
	if missing != nil {
		t.Error("Expected nil for unknown concept name")
	}

	store.SaveConcept("moon-farmer", `{"name":"Moon Farmer"}`)
	all, err := store.Concepts()
	if err != nil {
		t.Fatalf("Concepts() failed: %v", err)
	}
	if len(all) != 2 {
		t.Errorf("Expected 2 concepts, got %d", len(all))
	}
}

func TestStoreGameStats(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	store.SaveScore("rpg", 100)
	store.SaveScore("rpg", 300)

	stats, err := store.GetGameStats("rpg")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 2 {
		t.Errorf("Expected 2 games, got %d", stats.GamesCount)
	}
	if stats.HighScore != 300 {
		t.Errorf("Expected high score 300, got %d", stats.HighScore)
	}
	if stats.TotalScore != 400 {
		t.Errorf("Expected total 400, got %d", stats.TotalScore)
	}
}

func TestStoreExpandHomePath(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}
