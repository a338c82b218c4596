package ranking

import (
	"fmt"
	"sort"

	"github.com/musictags/tagchart/internal/dataset"
	"github.com/musictags/tagchart/internal/models"
)

// DefaultTagCount is the number of tags returned when the caller does not
// supply a usable count.
const DefaultTagCount = 10

// TopTags ranks the tags applied to an artist by how often they were
// applied and returns the top n as (value, count) pairs, highest count
// first. Ties resolve to the tag that first appears in the association
// data, so results are deterministic for a given dataset.
//
// An artist with no associations yields an empty result and no error; that
// is a valid state, not a failure. A counted tag id with no known value is
// an error and is propagated rather than silently dropped.
func TopTags(cat *dataset.Catalog, artistID int, n int) ([]models.RankedTag, error) {
	if n <= 0 {
		n = DefaultTagCount
	}

	tagIDs := cat.ArtistTagIDs(artistID)
	if len(tagIDs) == 0 {
		return nil, nil
	}

	// Count occurrences per tag id, remembering the order in which each
	// distinct id was first seen.
	counts := make(map[int]int, len(tagIDs))
	order := make([]int, 0, len(tagIDs))
	for _, id := range tagIDs {
		if _, seen := counts[id]; !seen {
			order = append(order, id)
		}
		counts[id]++
	}

	// Stable sort over the first-seen sequence keeps the first-encountered
	// tag ahead among equal counts.
	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})

	k := min(n, len(order))
	ranked := make([]models.RankedTag, 0, k)
	for _, id := range order[:k] {
		value, ok := cat.TagValue(id)
		if !ok {
			return nil, fmt.Errorf("no value for tag id %d", id)
		}
		ranked = append(ranked, models.RankedTag{Value: value, Count: counts[id]})
	}
	return ranked, nil
}
