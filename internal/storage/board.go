package storage

// Board exposes one game's scores in a Store as a leaderboard.
type Board struct {
	store  *Store
	gameID string
}

// NewBoard returns a leaderboard over the scores recorded for gameID.
func NewBoard(store *Store, gameID string) *Board {
	return &Board{store: store, gameID: gameID}
}

// Record appends a finished run's score.
func (b *Board) Record(score int) error {
	_, err := b.store.SaveScore(b.gameID, score)
	return err
}

// Top returns the best n scores, highest first. Equal scores keep
// recording order.
func (b *Board) Top(n int) ([]int, error) {
	if n <= 0 {
		return nil, nil
	}
	entries, err := b.store.TopScores(b.gameID, n)
	if err != nil {
		return nil, err
	}
	scores := make([]int, 0, len(entries))
	for _, e := range entries {
		scores = append(scores, e.Score)
	}
	return scores, nil
}

// Stats returns aggregate numbers for the board's game.
func (b *Board) Stats() (*GameStats, error) {
	return b.store.Stats(b.gameID)
}
