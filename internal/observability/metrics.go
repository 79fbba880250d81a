package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RankingLatency records how long each ranking computation takes, by purpose.
	RankingLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "ootd_ranking_latency_seconds",
		Help:    "Outfit ranking latency in seconds by ranking purpose",
		Buckets: prometheus.DefBuckets,
	}, []string{"purpose"})

	// ReactionToggles counts reaction toggles by kind and direction.
	ReactionToggles = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "ootd_reaction_toggles_total",
		Help: "Total reaction toggles by kind and resulting state",
	}, []string{"kind", "state"})

	// FeedSeedServed counts feed responses served from seeded placeholder posts.
	FeedSeedServed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "ootd_feed_seed_served_total",
		Help: "Total feed responses synthesized from outfit seeding",
	})
)

// ObserveRanking records the latency of a ranking computation.
func ObserveRanking(purpose string, start time.Time) {
	RankingLatency.WithLabelValues(purpose).Observe(time.Since(start).Seconds())
}
