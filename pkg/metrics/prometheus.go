// Package metrics provides Prometheus metrics for the shot-form
// analysis pipeline.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metric label values for the four tracked metrics.
const (
	MetricElbow     = "elbow"
	MetricRelease   = "release"
	MetricKnee      = "knee"
	MetricAlignment = "alignment"
)

// Manager manages all Prometheus metrics for the analyzer.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	enabled          bool
	customLabels     map[string]string
	registry         prometheus.Registerer

	// Frame accounting
	framesProcessed prometheus.Counter
	framesMissing   prometheus.Counter
	framesDiscarded prometheus.Counter
	frameLatency    prometheus.Histogram

	// Score state
	smoothedMetric *prometheus.GaugeVec
	metricScore    *prometheus.GaugeVec
	compositeScore prometheus.Gauge
	tierTotal      *prometheus.CounterVec

	// Window state
	windowFill     prometheus.Gauge
	windowCapacity prometheus.Gauge

	// Session lifecycle
	sessionResets prometheus.Counter
	sessionStarts prometheus.Counter
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
		namespace:        "shotform",
		subsystem:        "analyzer",
		histogramBuckets: prometheus.DefBuckets,
		enabled:          true,
		customLabels:     make(map[string]string),
		registry:         prometheus.DefaultRegisterer,
	}

	for _, opt := range opts {
		opt(m)
	}

	m.initializeMetrics()

	return m
}

// initializeMetrics creates all the Prometheus metrics.
func (m *Manager) initializeMetrics() {
	auto := promauto.With(m.registry)

	m.framesProcessed = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "frames_processed_total",
		Help:      "Total number of frames with a complete detection that went through the pipeline",
	})

	m.framesMissing = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "frames_missing_detection_total",
		Help:      "Total number of frames skipped because the subject or a required joint was not detected",
	})

	m.framesDiscarded = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "frames_discarded_total",
		Help:      "Total number of frames discarded while the analyzer was stopped",
	})

	m.frameLatency = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "frame_latency_milliseconds",
		Help:      "Histogram of per-frame processing latency in milliseconds",
		Buckets:   m.histogramBuckets,
	})

	m.smoothedMetric = auto.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "smoothed_metric",
			Help:      "Current rolling-window mean per raw metric",
		},
		[]string{"metric"},
	)

	m.metricScore = auto.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "metric_score",
			Help:      "Current per-metric score in [0,100]",
		},
		[]string{"metric"},
	)

	m.compositeScore = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "composite_score",
		Help:      "Current weighted composite score in [0,100]",
	})

	m.tierTotal = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "tier_frames_total",
			Help:      "Total number of processed frames per overall tier",
		},
		[]string{"tier"},
	)

	m.windowFill = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "window_fill",
		Help:      "Current number of samples held per metric window",
	})

	m.windowCapacity = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "window_capacity",
		Help:      "Configured capacity of the metric windows",
	})

	m.sessionResets = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "session_resets_total",
		Help:      "Total number of explicit history resets",
	})

	m.sessionStarts = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "session_starts_total",
		Help:      "Total number of analyzer sessions started",
	})
}

// RecordFrameProcessed increments the processed-frames counter.
func RecordFrameProcessed() {
	globalManager.framesProcessed.Inc()
}

// RecordMissingDetection increments the missing-detection counter.
func RecordMissingDetection() {
	globalManager.framesMissing.Inc()
}

// RecordFrameDiscarded increments the discarded-frames counter.
func RecordFrameDiscarded() {
	globalManager.framesDiscarded.Inc()
}

// RecordFrameLatency records per-frame processing latency in milliseconds.
func RecordFrameLatency(latencyMs float64) {
	globalManager.frameLatency.Observe(latencyMs)
}

// UpdateSmoothedMetric sets the current rolling mean for a metric.
func UpdateSmoothedMetric(metric string, value float64) {
	globalManager.smoothedMetric.WithLabelValues(metric).Set(value)
}

// UpdateMetricScore sets the current score for a metric.
func UpdateMetricScore(metric string, score float64) {
	globalManager.metricScore.WithLabelValues(metric).Set(score)
}

// UpdateCompositeScore sets the current composite score.
func UpdateCompositeScore(score int) {
	globalManager.compositeScore.Set(float64(score))
}

// RecordTier counts a processed frame against its overall tier.
func RecordTier(tier string) {
	globalManager.tierTotal.WithLabelValues(tier).Inc()
}

// UpdateWindowFill sets the current number of samples per window.
func UpdateWindowFill(size int) {
	globalManager.windowFill.Set(float64(size))
}

// UpdateWindowCapacity sets the configured window capacity.
func UpdateWindowCapacity(capacity int) {
	globalManager.windowCapacity.Set(float64(capacity))
}

// RecordSessionReset increments the reset counter.
func RecordSessionReset() {
	globalManager.sessionResets.Inc()
}

// RecordSessionStart increments the session-start counter.
func RecordSessionStart() {
	globalManager.sessionStarts.Inc()
}

// GetRegistry returns the custom Prometheus registry used by our metrics.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}
