package recommend

import (
	"testing"
	"time"

	"ootd/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func outfit(id uint, opts ...func(*models.Outfit)) *models.Outfit {
	o := &models.Outfit{ID: id, Name: "look"}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

func favorite(o *models.Outfit) { o.IsFavorite = true }

func createdAt(ts time.Time) func(*models.Outfit) {
	return func(o *models.Outfit) { o.CreatedAt = ts }
}

func TestTodaysPicks_BoundedByFive(t *testing.T) {
	t.Parallel()

	var outfits []*models.Outfit
	for i := uint(1); i <= 8; i++ {
		outfits = append(outfits, outfit(i))
	}

	picks := TodaysPicks(outfits, DefaultTemperatureF)
	assert.Len(t, picks, 5)

	picks = TodaysPicks(outfits[:3], DefaultTemperatureF)
	assert.Len(t, picks, 3)
}

func TestTodaysPicks_EmptyInput(t *testing.T) {
	t.Parallel()

	assert.Empty(t, TodaysPicks(nil, DefaultTemperatureF))
	assert.Empty(t, TodaysPicks([]*models.Outfit{}, DefaultTemperatureF))
}

func TestTodaysPicks_OrdersByScoreDescending(t *testing.T) {
	t.Parallel()

	worn := time.Now()
	plain := outfit(1)
	wornOnly := outfit(2, func(o *models.Outfit) { o.LastWornAt = &worn })
	fav := outfit(3, favorite)
	favWornWeather := outfit(4, favorite, func(o *models.Outfit) {
		o.LastWornAt = &worn
		o.WeatherSummary = "Great for ~72°F"
	})

	picks := TodaysPicks([]*models.Outfit{plain, wornOnly, fav, favWornWeather}, 75)
	require.Len(t, picks, 4)
	assert.Equal(t, uint(4), picks[0].ID) // score 5
	assert.Equal(t, uint(3), picks[1].ID) // score 2
	assert.Equal(t, uint(2), picks[2].ID) // score 1
	assert.Equal(t, uint(1), picks[3].ID) // score 0
}

func TestTodaysPicks_StableOnTies(t *testing.T) {
	t.Parallel()

	// All four outfits score identically; input order must survive.
	outfits := []*models.Outfit{outfit(9), outfit(3), outfit(7), outfit(1)}

	picks := TodaysPicks(outfits, DefaultTemperatureF)
	require.Len(t, picks, 4)
	for i, o := range outfits {
		assert.Equal(t, o.ID, picks[i].ID)
	}
}

func TestTodaysPicks_ResultIsSubsequenceOfInput(t *testing.T) {
	t.Parallel()

	outfits := []*models.Outfit{
		outfit(1), outfit(2, favorite), outfit(3), outfit(4, favorite), outfit(5), outfit(6),
	}
	picks := TodaysPicks(outfits, DefaultTemperatureF)

	byID := map[uint]bool{}
	for _, o := range outfits {
		byID[o.ID] = true
	}
	for _, p := range picks {
		assert.True(t, byID[p.ID], "pick %d not drawn from input", p.ID)
	}
	// Equal-score outfits keep input order within the result.
	assert.Equal(t, uint(2), picks[0].ID)
	assert.Equal(t, uint(4), picks[1].ID)
	assert.Equal(t, uint(1), picks[2].ID)
}

func TestTodaysPicks_DoesNotMutateInput(t *testing.T) {
	t.Parallel()

	outfits := []*models.Outfit{outfit(1), outfit(2, favorite), outfit(3)}
	TodaysPicks(outfits, DefaultTemperatureF)

	assert.Equal(t, uint(1), outfits[0].ID)
	assert.Equal(t, uint(2), outfits[1].ID)
	assert.Equal(t, uint(3), outfits[2].ID)
}

func TestMostWorn_OrdersByCreationAscending(t *testing.T) {
	t.Parallel()

	base := time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)
	outfits := []*models.Outfit{
		outfit(1, createdAt(base.Add(48*time.Hour))),
		outfit(2, createdAt(base)),
		outfit(3, createdAt(base.Add(24*time.Hour))),
	}

	ranked := MostWorn(outfits)
	require.Len(t, ranked, 3)
	assert.Equal(t, uint(2), ranked[0].ID)
	assert.Equal(t, uint(3), ranked[1].ID)
	assert.Equal(t, uint(1), ranked[2].ID)
}

func TestMostWorn_ZeroTimestampSortsEarliest(t *testing.T) {
	t.Parallel()

	base := time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)
	outfits := []*models.Outfit{
		outfit(1, createdAt(base)),
		outfit(2), // zero CreatedAt
	}

	ranked := MostWorn(outfits)
	require.Len(t, ranked, 2)
	assert.Equal(t, uint(2), ranked[0].ID)
}

func TestMostWorn_TieBreaksOnID(t *testing.T) {
	t.Parallel()

	base := time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)
	outfits := []*models.Outfit{
		outfit(5, createdAt(base)),
		outfit(2, createdAt(base)),
		outfit(9, createdAt(base)),
	}

	ranked := MostWorn(outfits)
	require.Len(t, ranked, 3)
	assert.Equal(t, uint(2), ranked[0].ID)
	assert.Equal(t, uint(5), ranked[1].ID)
	assert.Equal(t, uint(9), ranked[2].ID)
}

func TestMostWorn_BoundedByFive(t *testing.T) {
	t.Parallel()

	var outfits []*models.Outfit
	for i := uint(1); i <= 7; i++ {
		outfits = append(outfits, outfit(i))
	}
	assert.Len(t, MostWorn(outfits), 5)
	assert.Empty(t, MostWorn(nil))
}
