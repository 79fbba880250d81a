// Package recommend contains the pure scoring, ranking and filtering
// functions behind outfit suggestions and the upcoming-events shelf.
// Every function here is a pure function of its inputs: no I/O, no
// ambient state, and malformed or missing optional fields degrade to a
// zero contribution instead of failing the ranking.
package recommend

import (
	"strconv"
	"unicode"

	"ootd/internal/models"
)

// DefaultTemperatureF is the context temperature used when no weather
// collaborator is available.
const DefaultTemperatureF = 70

// weatherWindowF is the half-width of the temperature band, inclusive,
// inside which an outfit's weather summary counts as a match.
const weatherWindowF = 10

// ScoreForWeather contributes +2 when the first numeric token embedded
// in the outfit's free-text weather summary (read as °F) is within 10
// degrees inclusive of targetF. A summary with no parseable number
// contributes 0.
func ScoreForWeather(o *models.Outfit, targetF float64) float64 {
	temp, ok := firstNumericToken(o.WeatherSummary)
	if !ok {
		return 0
	}
	diff := temp - targetF
	if diff < 0 {
		diff = -diff
	}
	if diff <= weatherWindowF {
		return 2
	}
	return 0
}

// ScoreFavorite contributes +2 for favorited outfits.
func ScoreFavorite(o *models.Outfit) float64 {
	if o.IsFavorite {
		return 2
	}
	return 0
}

// ScoreWorn contributes +1 for outfits that have been worn at least once.
func ScoreWorn(o *models.Outfit) float64 {
	if o.LastWornAt != nil && !o.LastWornAt.IsZero() {
		return 1
	}
	return 0
}

// CompositeScore is the unweighted sum of all scoring primitives against
// the given context temperature.
func CompositeScore(o *models.Outfit, targetF float64) float64 {
	return ScoreForWeather(o, targetF) + ScoreFavorite(o) + ScoreWorn(o)
}

// firstNumericToken extracts the first run of digits (with an optional
// leading minus sign and optional fractional part) from s, e.g. 72 from
// "Great for ~72°F". Returns false when s holds no numeric token.
func firstNumericToken(s string) (float64, bool) {
	runes := []rune(s)
	for i := 0; i < len(runes); i++ {
		if !unicode.IsDigit(runes[i]) {
			continue
		}
		start := i
		if start > 0 && runes[start-1] == '-' {
			start--
		}
		end := i
		seenDot := false
		for end < len(runes) {
			r := runes[end]
			if unicode.IsDigit(r) {
				end++
				continue
			}
			if r == '.' && !seenDot && end+1 < len(runes) && unicode.IsDigit(runes[end+1]) {
				seenDot = true
				end++
				continue
			}
			break
		}
		v, err := strconv.ParseFloat(string(runes[start:end]), 64)
		if err != nil {
			return 0, false
		}
		return v, true
	}
	return 0, false
}
