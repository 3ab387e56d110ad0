package storage

import (
	"slices"
	"testing"

	"github.com/vovakirdan/bubble-rustle/internal/games/rustle"
)

var _ rustle.Leaderboard = (*Board)(nil)

func openMemory(t *testing.T) *Store {
	t.Helper()
	store, err := OpenMemory()
	if err != nil {
		t.Fatalf("OpenMemory() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openMemory(t)

	for _, s := range []int{100, 50, 200} {
		if _, err := store.SaveScore("rustle", s); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}
	if _, err := store.SaveScore("other", 500); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	scores, err := store.TopScores("rustle", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}
	if scores[0].Score != 200 || scores[1].Score != 100 || scores[2].Score != 50 {
		t.Errorf("Scores not in descending order: %v", scores)
	}
	for _, e := range scores {
		if e.GameID != "rustle" {
			t.Errorf("entry from wrong game: %+v", e)
		}
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openMemory(t)
	for i := 0; i < 5; i++ {
		store.SaveScore("test", (i+1)*100)
	}

	scores, err := store.TopScores("test", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores with limit, got %d", len(scores))
	}
	if scores[0].Score != 500 || scores[1].Score != 400 || scores[2].Score != 300 {
		t.Errorf("Scores not in expected order: %v", scores)
	}
}

func TestStoreStats(t *testing.T) {
	store := openMemory(t)

	stats, err := store.Stats("rustle")
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.GamesCount != 0 || stats.HighScore != 0 {
		t.Errorf("Stats() for empty game = %+v", stats)
	}

	store.SaveScore("rustle", 100)
	store.SaveScore("rustle", 300)
	store.SaveScore("rustle", 200)

	stats, err = store.Stats("rustle")
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.GamesCount != 3 || stats.HighScore != 300 || stats.TotalScore != 600 || stats.AvgScore != 200 {
		t.Errorf("Stats() = %+v", stats)
	}
}

func TestMemoryStoresAreIndependent(t *testing.T) {
	a := openMemory(t)
	b := openMemory(t)

	a.SaveScore("rustle", 10)
	if scores, _ := b.TopScores("rustle", 10); len(scores) != 0 {
		t.Errorf("second in-memory store sees %d scores", len(scores))
	}
}

func TestBoardTop(t *testing.T) {
	board := NewBoard(openMemory(t), "rustle")

	for _, s := range []int{100, 400, 250, 400, 50, 75} {
		if err := board.Record(s); err != nil {
			t.Fatalf("Record(%d) failed: %v", s, err)
		}
	}

	tests := []struct {
		n    int
		want []int
	}{
		{5, []int{400, 400, 250, 100, 75}},
		{2, []int{400, 400}},
		{10, []int{400, 400, 250, 100, 75, 50}},
		{0, nil},
	}
	for _, tt := range tests {
		got, err := board.Top(tt.n)
		if err != nil {
			t.Fatalf("Top(%d) failed: %v", tt.n, err)
		}
		if !slices.Equal(got, tt.want) {
			t.Errorf("Top(%d) = %v, expected %v", tt.n, got, tt.want)
		}
	}
}

func TestBoardMatchesMemoryLeaderboard(t *testing.T) {
	board := NewBoard(openMemory(t), "rustle")
	mem := rustle.NewMemoryLeaderboard()
	for _, s := range []int{30, 10, 30, 20, 90, 0} {
		board.Record(s)
		mem.Record(s)
	}

	got, _ := board.Top(5)
	want, _ := mem.Top(5)
	if !slices.Equal(got, want) {
		t.Errorf("board top = %v, memory top = %v", got, want)
	}
}

func TestBoardEmpty(t *testing.T) {
	board := NewBoard(openMemory(t), "rustle")
	got, err := board.Top(5)
	if err != nil {
		t.Fatalf("Top() failed: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("Top() = %v, expected none", got)
	}
}
