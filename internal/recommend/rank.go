package recommend

import (
	"sort"

	"ootd/internal/models"
)

// MaxPicks bounds every ranking result.
const MaxPicks = 5

// TodaysPicks ranks outfits by composite score against targetF and
// returns at most the top 5. The sort is stable: outfits with equal
// scores keep their relative input order, so repeated calls over the
// same snapshot render identically. The result is always a subsequence
// of the input; an empty input yields an empty result, never an error.
func TodaysPicks(outfits []*models.Outfit, targetF float64) []*models.Outfit {
	if len(outfits) == 0 {
		return nil
	}

	type scored struct {
		outfit *models.Outfit
		score  float64
	}
	ranked := make([]scored, len(outfits))
	for i, o := range outfits {
		ranked[i] = scored{outfit: o, score: CompositeScore(o, targetF)}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].score > ranked[j].score
	})

	n := len(ranked)
	if n > MaxPicks {
		n = MaxPicks
	}
	picks := make([]*models.Outfit, n)
	for i := 0; i < n; i++ {
		picks[i] = ranked[i].outfit
	}
	return picks
}

// MostWorn orders outfits ascending by creation time and returns the
// first 5. Outfits with a zero creation timestamp sort earliest; equal
// timestamps tie-break ascending by ID so the order is total.
//
// Longest-owned is a stand-in for a wear-count signal the data model
// does not track yet; callers should treat the ordering, not the
// heuristic, as the contract.
func MostWorn(outfits []*models.Outfit) []*models.Outfit {
	if len(outfits) == 0 {
		return nil
	}

	ranked := make([]*models.Outfit, len(outfits))
	copy(ranked, outfits)

	sort.Slice(ranked, func(i, j int) bool {
		a, b := ranked[i], ranked[j]
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.Before(b.CreatedAt)
		}
		return a.ID < b.ID
	})

	if len(ranked) > MaxPicks {
		ranked = ranked[:MaxPicks]
	}
	return ranked
}
