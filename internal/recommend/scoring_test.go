package recommend

import (
	"testing"
	"time"

	"ootd/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestScoreForWeather(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		summary  string
		targetF  float64
		expected float64
	}{
		{"within window", "Great for ~72°F", 75, 2},
		{"outside window", "Great for ~72°F", 95, 0},
		{"boundary inclusive", "60°F and sunny", 70, 2},
		{"just outside boundary", "59°F and windy", 70, 0},
		{"no number", "sunny and mild", 70, 0},
		{"empty summary", "", 70, 0},
		{"decimal temperature", "around 71.5F, light breeze", 70, 2},
		{"negative temperature", "brutal at -5°F", 0, 2},
		{"first token wins", "40°F in the morning, 75°F later", 70, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := &models.Outfit{WeatherSummary: tt.summary}
			assert.Equal(t, tt.expected, ScoreForWeather(o, tt.targetF))
		})
	}
}

func TestScoreFavorite(t *testing.T) {
	t.Parallel()

	assert.Equal(t, float64(2), ScoreFavorite(&models.Outfit{IsFavorite: true}))
	assert.Equal(t, float64(0), ScoreFavorite(&models.Outfit{}))
}

func TestScoreWorn(t *testing.T) {
	t.Parallel()

	worn := time.Now()
	assert.Equal(t, float64(1), ScoreWorn(&models.Outfit{LastWornAt: &worn}))
	assert.Equal(t, float64(0), ScoreWorn(&models.Outfit{}))

	var zero time.Time
	assert.Equal(t, float64(0), ScoreWorn(&models.Outfit{LastWornAt: &zero}))
}

func TestCompositeScore_SumsAllPrimitives(t *testing.T) {
	t.Parallel()

	worn := time.Now()
	o := &models.Outfit{
		IsFavorite:     true,
		LastWornAt:     &worn,
		WeatherSummary: "Great for ~72°F",
	}
	// +2 weather, +2 favorite, +1 worn
	assert.Equal(t, float64(5), CompositeScore(o, 75))

	// Weather out of range drops only the weather contribution.
	assert.Equal(t, float64(3), CompositeScore(o, 95))
}

func TestCompositeScore_BareOutfitScoresZero(t *testing.T) {
	t.Parallel()

	assert.Equal(t, float64(0), CompositeScore(&models.Outfit{}, DefaultTemperatureF))
}
