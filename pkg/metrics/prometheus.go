// Package metrics provides Prometheus metrics for the workout scoring service.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Default metrics configuration constants.
const (
	defaultRefreshInterval = 10 * time.Second
)

// Manager manages all Prometheus metrics for the service.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	enabled          bool
	refreshInterval  time.Duration
	registry         prometheus.Registerer

	// Core business metrics - workout completions and rewards
	sessionsCompleted prometheus.Counter
	sessionsRejected  *prometheus.CounterVec
	tokensEarned      prometheus.Counter
	tokensSpent       prometheus.Counter
	tokenBalance      prometheus.Gauge
	badgesUnlocked    *prometheus.CounterVec
	exchangesTotal    prometheus.Counter
	exchangesRejected prometheus.Counter

	// Leaderboard metrics
	leaderboardRebuilds        prometheus.Counter
	leaderboardRebuildDuration prometheus.Histogram
	leaderboardIdentities      prometheus.Gauge

	// Simulation metrics
	driftTicks      prometheus.Counter
	workoutsActive  prometheus.Gauge
	workoutSeconds  prometheus.Counter

	// Mirror metrics - best-effort persistence health
	mirrorWrites      prometheus.Counter
	mirrorWriteErrors prometheus.Counter
	mirrorQueueSize   prometheus.Gauge

	// HTTP performance metrics
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	// Error metrics
	errorRateByComponent *prometheus.CounterVec

	// System performance metrics
	systemMemoryUsage    prometheus.Gauge
	systemGoroutineCount prometheus.Gauge
	systemGCPauseTime    prometheus.Histogram
}

// Global metrics manager instance.
var globalManager *Manager //nolint:gochecknoglobals // intentional global for singleton metrics manager

// Custom registry to avoid default Go metrics.
var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // intentional global for metrics registry

// Initialize global metrics.
func init() { //nolint:gochecknoinits // intentional init for global metrics setup
	globalManager = NewManager(WithPrometheusRegistry(customRegistry))
}

// NewManager creates a new metrics manager with default configuration.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "onefit",
		subsystem:        "engine",
		histogramBuckets: prometheus.DefBuckets,
		enabled:          true,
		refreshInterval:  defaultRefreshInterval,
		registry:         prometheus.DefaultRegisterer,
	}

	// Apply all options
	for _, opt := range opts {
		opt(m)
	}

	m.initializeMetrics()

	return m
}

func (m *Manager) initializeMetrics() { //nolint:funlen // metric declarations are long by nature
	// Ensure metrics are registered on the configured registry (custom by default)
	auto := promauto.With(m.registry)

	m.sessionsCompleted = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "sessions_completed_total",
		Help:      "Total number of workout sessions committed to the ledger",
	})

	m.sessionsRejected = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "sessions_rejected_total",
			Help:      "Total number of rejected workout completions by reason",
		},
		[]string{"reason"},
	)

	m.tokensEarned = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "tokens_earned_total",
		Help:      "Total tokens credited across all sources",
	})

	m.tokensSpent = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "tokens_spent_total",
		Help:      "Total tokens debited by spends and exchanges",
	})

	m.tokenBalance = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "token_balance",
		Help:      "Current token balance of the connected identity",
	})

	m.badgesUnlocked = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "badges_unlocked_total",
			Help:      "Total badges unlocked by kind (daily, progress, achievement)",
		},
		[]string{"kind"},
	)

	m.exchangesTotal = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "exchanges_total",
		Help:      "Total successful item exchanges",
	})

	m.exchangesRejected = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "exchanges_rejected_total",
		Help:      "Total rejected item exchanges (unknown item, unavailable, balance)",
	})

	m.leaderboardRebuilds = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "leaderboard_rebuilds_total",
		Help:      "Total number of full leaderboard recomputations",
	})

	m.leaderboardRebuildDuration = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "leaderboard_rebuild_duration_milliseconds",
		Help:      "Histogram of full leaderboard rebuild duration in milliseconds",
		Buckets:   m.histogramBuckets,
	})

	m.leaderboardIdentities = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "leaderboard_identities",
		Help:      "Number of distinct identities on the leaderboard",
	})

	m.driftTicks = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "drift_ticks_total",
		Help:      "Total cosmetic score-drift ticks applied to the overlay",
	})

	m.workoutsActive = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "workouts_active",
		Help:      "Number of workout clocks currently running",
	})

	m.workoutSeconds = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "workout_seconds_total",
		Help:      "Total active workout seconds accumulated by running clocks",
	})

	m.mirrorWrites = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "mirror_writes_total",
		Help:      "Total records persisted to the best-effort mirror",
	})

	m.mirrorWriteErrors = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "mirror_write_errors_total",
		Help:      "Total mirror persistence failures (local state is unaffected)",
	})

	m.mirrorQueueSize = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "mirror_queue_size",
		Help:      "Current size of the mirror write queue",
	})

	m.httpRequests = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests by endpoint and method",
		},
		[]string{"endpoint", "method", "status_code"},
	)

	m.httpRequestDuration = auto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "http_request_duration_milliseconds",
			Help:      "HTTP request duration in milliseconds",
			Buckets:   m.histogramBuckets,
		},
		[]string{"endpoint", "method", "status_code"},
	)

	m.errorRateByComponent = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "errors_by_component_total",
			Help:      "Total errors by component and error type",
		},
		[]string{"component", "error_type"},
	)

	m.systemMemoryUsage = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "system_memory_usage_bytes",
		Help:      "System memory usage in bytes",
	})

	m.systemGoroutineCount = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "system_goroutine_count",
		Help:      "Number of goroutines",
	})

	m.systemGCPauseTime = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "system_gc_pause_time_milliseconds",
		Help:      "GC pause time in milliseconds",
		Buckets:   []float64{0.1, 0.5, 1, 2, 5, 10, 25, 50, 100, 250, 500, 1000},
	})
}

// RecordSessionCompleted increments the completed sessions counter.
func RecordSessionCompleted() {
	globalManager.sessionsCompleted.Inc()
}

// RecordSessionRejected increments the rejected sessions counter for a reason.
func RecordSessionRejected(reason string) {
	globalManager.sessionsRejected.WithLabelValues(reason).Inc()
}

// RecordTokensEarned adds to the earned tokens counter.
func RecordTokensEarned(amount int) {
	globalManager.tokensEarned.Add(float64(amount))
}

// RecordTokensSpent adds to the spent tokens counter.
func RecordTokensSpent(amount int) {
	globalManager.tokensSpent.Add(float64(amount))
}

// UpdateTokenBalance sets the current token balance gauge.
func UpdateTokenBalance(balance int) {
	globalManager.tokenBalance.Set(float64(balance))
}

// RecordBadgeUnlocked increments the unlocked badges counter for a kind.
func RecordBadgeUnlocked(kind string) {
	globalManager.badgesUnlocked.WithLabelValues(kind).Inc()
}

// RecordExchange increments the successful exchanges counter.
func RecordExchange() {
	globalManager.exchangesTotal.Inc()
}

// RecordExchangeRejected increments the rejected exchanges counter.
func RecordExchangeRejected() {
	globalManager.exchangesRejected.Inc()
}

// RecordLeaderboardRebuild records one full leaderboard recomputation.
func RecordLeaderboardRebuild(durationMs float64) {
	globalManager.leaderboardRebuilds.Inc()
	globalManager.leaderboardRebuildDuration.Observe(durationMs)
}

// UpdateLeaderboardIdentities sets the distinct-identity gauge.
func UpdateLeaderboardIdentities(count int) {
	globalManager.leaderboardIdentities.Set(float64(count))
}

// RecordDriftTick increments the drift tick counter.
func RecordDriftTick() {
	globalManager.driftTicks.Inc()
}

// UpdateWorkoutsActive sets the number of running workout clocks.
func UpdateWorkoutsActive(count int) {
	globalManager.workoutsActive.Set(float64(count))
}

// RecordWorkoutSecond counts one active workout second.
func RecordWorkoutSecond() {
	globalManager.workoutSeconds.Inc()
}

// RecordMirrorWrite increments the mirror write counter.
func RecordMirrorWrite() {
	globalManager.mirrorWrites.Inc()
}

// RecordMirrorWriteError increments the mirror error counter.
func RecordMirrorWriteError() {
	globalManager.mirrorWriteErrors.Inc()
}

// UpdateMirrorQueueSize sets the mirror queue size gauge.
func UpdateMirrorQueueSize(size int) {
	globalManager.mirrorQueueSize.Set(float64(size))
}

// RecordHTTPRequest records an HTTP request.
func RecordHTTPRequest(endpoint, method, statusCode string) {
	globalManager.httpRequests.WithLabelValues(endpoint, method, statusCode).Inc()
}

// RecordHTTPRequestDuration records HTTP request duration.
func RecordHTTPRequestDuration(endpoint, method, statusCode string, durationMs float64) {
	globalManager.httpRequestDuration.WithLabelValues(endpoint, method, statusCode).Observe(durationMs)
}

// RecordErrorByComponent records an error by component and type.
func RecordErrorByComponent(component, errorType string) {
	globalManager.errorRateByComponent.WithLabelValues(component, errorType).Inc()
}

// UpdateSystemMemoryUsage sets current memory usage.
func UpdateSystemMemoryUsage(bytes uint64) {
	globalManager.systemMemoryUsage.Set(float64(bytes))
}

// UpdateSystemGoroutineCount sets current goroutine count.
func UpdateSystemGoroutineCount(count int) {
	globalManager.systemGoroutineCount.Set(float64(count))
}

// RecordSystemGCPauseTime records a GC pause observation.
func RecordSystemGCPauseTime(pauseMs float64) {
	globalManager.systemGCPauseTime.Observe(pauseMs)
}

// GetRegistry returns the custom Prometheus registry used by the service.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}
