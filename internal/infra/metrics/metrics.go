// Package metrics provides Prometheus metrics for Lingo: progression
// events, store I/O and HTTP traffic.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// ─── Progression ────────────────────────────────────────────────────────────

// XPAwarded tracks XP granted by source (welcome, login, translation).
var XPAwarded = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "lingo",
	Name:      "xp_awarded_total",
	Help:      "Total XP awarded by source.",
}, []string{"source"})

// Logins tracks daily login evaluations by outcome
// (first, consecutive, reset, same_day).
var Logins = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "lingo",
	Name:      "logins_total",
	Help:      "Daily login evaluations by outcome.",
}, []string{"outcome"})

// Translations tracks recorded translations by target language and
// whether the dictionary had a match.
var Translations = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "lingo",
	Name:      "translations_total",
	Help:      "Total recorded translations.",
}, []string{"to", "found"})

// TranslationsRejected tracks translations refused before any mutation.
var TranslationsRejected = promauto.NewCounter(prometheus.CounterOpts{
	Namespace: "lingo",
	Name:      "translations_rejected_total",
	Help:      "Translations rejected as invalid input.",
})

// Notifications tracks notifications emitted by type.
var Notifications = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "lingo",
	Name:      "notifications_total",
	Help:      "Notifications emitted by type.",
}, []string{"type"})

// PlayerXP tracks the current XP total.
var PlayerXP = promauto.NewGauge(prometheus.GaugeOpts{
	Namespace: "lingo",
	Name:      "player_xp",
	Help:      "Current XP total.",
})

// StreakDays tracks the current streak length.
var StreakDays = promauto.NewGauge(prometheus.GaugeOpts{
	Namespace: "lingo",
	Name:      "streak_days",
	Help:      "Current consecutive-day streak.",
})

// ─── Store ──────────────────────────────────────────────────────────────────

// StoreLatency tracks state store round trips by operation (get, set).
var StoreLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
	Namespace: "lingo",
	Name:      "store_latency_seconds",
	Help:      "State store operation duration in seconds.",
	Buckets:   []float64{0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5},
}, []string{"op"})

// StoreErrors tracks failed store operations.
var StoreErrors = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "lingo",
	Name:      "store_errors_total",
	Help:      "Failed state store operations.",
}, []string{"op"})

// StateResets tracks loads that fell back to a fresh state because the
// stored blob was unreadable.
var StateResets = promauto.NewCounter(prometheus.CounterOpts{
	Namespace: "lingo",
	Name:      "state_resets_total",
	Help:      "Loads that discarded an unreadable state blob.",
})

// HealthCheck is 1 while the named check passes, 0 otherwise.
var HealthCheck = promauto.NewGaugeVec(prometheus.GaugeOpts{
	Namespace: "lingo",
	Name:      "health_check_up",
	Help:      "Health check status by check name.",
}, []string{"check"})

// ─── HTTP ───────────────────────────────────────────────────────────────────

// HTTPRequests tracks API requests by route pattern and status code.
var HTTPRequests = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "lingo",
	Name:      "http_requests_total",
	Help:      "HTTP requests by route and status.",
}, []string{"route", "status"})

// HTTPLatency tracks API request duration by route pattern.
var HTTPLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
	Namespace: "lingo",
	Name:      "http_request_duration_seconds",
	Help:      "HTTP request duration in seconds.",
	Buckets:   prometheus.DefBuckets,
}, []string{"route"})
