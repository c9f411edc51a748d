// Package ranking orders leaderboard entries for display.
package ranking

import (
	"sort"

	"github.com/jason-s-yu/snake-arena/internal/models"
)

// Rank returns a new slice sorted by score descending. The sort is stable:
// entries with equal scores keep their relative input order, which the store
// guarantees is submission order, so earlier submissions rank above later
// ones at the same score. The input slice is never mutated.
func Rank(entries []models.LeaderboardEntry) []models.LeaderboardEntry {
	ranked := make([]models.LeaderboardEntry, len(entries))
	copy(ranked, entries)

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})
	return ranked
}
