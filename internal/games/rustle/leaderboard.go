package rustle

import (
	"slices"
)

// Leaderboard keeps the final score of every finished run.
// Top returns the best n scores, highest first.
type Leaderboard interface {
	Record(score int) error
	Top(n int) ([]int, error)
}

// MemoryLeaderboard is a Leaderboard that lives for the process only.
type MemoryLeaderboard struct {
	scores []int
}

// NewMemoryLeaderboard creates an empty leaderboard.
func NewMemoryLeaderboard() *MemoryLeaderboard {
	return &MemoryLeaderboard{}
}

// Record appends a score.
func (m *MemoryLeaderboard) Record(score int) error {
	m.scores = append(m.scores, score)
	return nil
}

// Top returns the best n scores. The recorded list stays in insertion order.
func (m *MemoryLeaderboard) Top(n int) ([]int, error) {
	return TopScores(m.scores, n), nil
}

// TopScores sorts scores ascending and returns the best n, highest first.
func TopScores(scores []int, n int) []int {
	if n <= 0 {
		return nil
	}
	sorted := slices.Clone(scores)
	slices.Sort(sorted)

	top := make([]int, 0, min(n, len(sorted)))
	for i := len(sorted) - 1; i >= 0 && len(top) < n; i-- {
		top = append(top, sorted[i])
	}
	return top
}
