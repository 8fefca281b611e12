// Package observability объявляет метрики Prometheus сервиса
package observability

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	httpRequests = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "octofit",
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "HTTP requests served, by method, route pattern and status code.",
	}, []string{"method", "route", "status"})
	httpDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "octofit",
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "HTTP request latency, by method and route pattern.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "route"})

	leaderboardRebuilds = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "octofit",
		Subsystem: "leaderboard",
		Name:      "rebuilds_total",
		Help:      "Leaderboard rebuilds, by result.",
	}, []string{"result"})
	leaderboardEntries = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "octofit",
		Subsystem: "leaderboard",
		Name:      "entries",
		Help:      "Rows written by the most recent successful leaderboard rebuild.",
	})
	leaderboardRebuiltAt = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "octofit",
		Subsystem: "leaderboard",
		Name:      "last_rebuild_timestamp_seconds",
		Help:      "Unix timestamp of the most recent successful leaderboard rebuild.",
	})
)

func init() {
	prometheus.MustRegister(
		httpRequests,
		httpDuration,
		leaderboardRebuilds,
		leaderboardEntries,
		leaderboardRebuiltAt,
	)
}

// ObserveHTTPRequest records one served request.
func ObserveHTTPRequest(method, route string, status int, elapsed time.Duration) {
	if route == "" {
		route = "unmatched"
	}
	httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	httpDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

// RecordLeaderboardRebuild records a successful rebuild that wrote entries rows.
func RecordLeaderboardRebuild(entries int, at time.Time) {
	leaderboardRebuilds.WithLabelValues("success").Inc()
	leaderboardEntries.Set(float64(entries))
	if !at.IsZero() {
		leaderboardRebuiltAt.Set(float64(at.Unix()))
	}
}

// RecordLeaderboardRebuildFailure records a rebuild aborted by a store error.
func RecordLeaderboardRebuildFailure() {
	leaderboardRebuilds.WithLabelValues("failure").Inc()
}
