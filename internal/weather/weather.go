// Package weather exposes the weather collaborator used to contextualize
// outfit rankings. The service never owns weather data: a Provider hands
// back current conditions, and every consumer must tolerate its absence.
package weather

import (
	"context"

	"ootd/internal/cache"
	"ootd/internal/recommend"
)

// Conditions is the current weather snapshot for the user's city.
type Conditions struct {
	CityName     string  `json:"city_name"`
	TemperatureF float64 `json:"temperature_f"`
	Description  string  `json:"description"`
}

// Provider supplies current conditions. Implementations may block on
// network I/O; callers pass a context and treat errors as "no weather".
type Provider interface {
	Current(ctx context.Context) (Conditions, error)
}

// StaticProvider serves fixed conditions from configuration. It stands
// in for a live weather API during development and keeps rankings
// deterministic in tests.
type StaticProvider struct {
	Conditions Conditions
}

func (p StaticProvider) Current(_ context.Context) (Conditions, error) {
	return p.Conditions, nil
}

// CachedProvider wraps another provider with a Redis-backed cache so a
// slow or flaky upstream is consulted at most once per TTL window.
type CachedProvider struct {
	next Provider
}

// NewCachedProvider wraps next with the shared weather cache entry.
func NewCachedProvider(next Provider) *CachedProvider {
	return &CachedProvider{next: next}
}

func (p *CachedProvider) Current(ctx context.Context) (Conditions, error) {
	var cond Conditions
	err := cache.Aside(ctx, cache.WeatherKey, &cond, cache.WeatherTTL, func() error {
		var fetchErr error
		cond, fetchErr = p.next.Current(ctx)
		return fetchErr
	})
	return cond, err
}

// TemperatureOrDefault resolves the ranking context temperature from the
// provider, falling back to 70°F when the provider is missing or fails.
// Ranking must never fail because weather is unavailable.
func TemperatureOrDefault(ctx context.Context, p Provider) float64 {
	if p == nil {
		return recommend.DefaultTemperatureF
	}
	cond, err := p.Current(ctx)
	if err != nil {
		return recommend.DefaultTemperatureF
	}
	return cond.TemperatureF
}
