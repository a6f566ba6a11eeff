// Package config defines analyzer configuration structures and loading hooks.
//
// Conventions:
// - Defaults come from New; Load layers an optional YAML file and env vars.
// - External errors must be wrapped via this package's error helpers.
package config

// Default band and weighting constants. These mirror the scoring and
// feedback package defaults so a zero-config run scores identically to
// a configured one.
const (
	defaultWindowSize = 30

	defaultElbowOptimalDeg   = 90.0
	defaultElbowToleranceDeg = 10.0
	defaultReleaseMinDeg     = 45.0
	defaultReleaseMaxDeg     = 60.0
	defaultKneeMinDeg        = 100.0
	defaultKneeMaxDeg        = 130.0

	defaultWeightElbow     = 0.30
	defaultWeightRelease   = 0.30
	defaultWeightKnee      = 0.20
	defaultWeightAlignment = 0.20
)

// Config contains process configuration. Extend as needed.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// MetricsAddr configures the Prometheus listen address, e.g. ":9090".
	// Empty disables the metrics endpoint.
	MetricsAddr string `koanf:"metrics_addr"`

	// WindowSize bounds the per-metric rolling windows.
	WindowSize int `koanf:"window_size"`

	// ShootingSide selects which arm and leg are measured: left or right.
	ShootingSide string `koanf:"shooting_side"`

	// ElbowOptimalDeg and ElbowToleranceDeg define the elbow scoring band.
	ElbowOptimalDeg   float64 `koanf:"elbow_optimal_deg"`
	ElbowToleranceDeg float64 `koanf:"elbow_tolerance_deg"`

	// ReleaseMinDeg and ReleaseMaxDeg define the optimal release band.
	ReleaseMinDeg float64 `koanf:"release_min_deg"`
	ReleaseMaxDeg float64 `koanf:"release_max_deg"`

	// KneeMinDeg and KneeMaxDeg define the optimal knee-bend band.
	KneeMinDeg float64 `koanf:"knee_min_deg"`
	KneeMaxDeg float64 `koanf:"knee_max_deg"`

	// Composite weights. Must be positive and sum to 1.
	WeightElbow     float64 `koanf:"weight_elbow"`
	WeightRelease   float64 `koanf:"weight_release"`
	WeightKnee      float64 `koanf:"weight_knee"`
	WeightAlignment float64 `koanf:"weight_alignment"`
}

// New creates a Config populated with defaults.
func New() *Config {
	return &Config{
		LogLevel:          "info",
		MetricsAddr:       ":9090",
		WindowSize:        defaultWindowSize,
		ShootingSide:      "right",
		ElbowOptimalDeg:   defaultElbowOptimalDeg,
		ElbowToleranceDeg: defaultElbowToleranceDeg,
		ReleaseMinDeg:     defaultReleaseMinDeg,
		ReleaseMaxDeg:     defaultReleaseMaxDeg,
		KneeMinDeg:        defaultKneeMinDeg,
		KneeMaxDeg:        defaultKneeMaxDeg,
		WeightElbow:       defaultWeightElbow,
		WeightRelease:     defaultWeightRelease,
		WeightKnee:        defaultWeightKnee,
		WeightAlignment:   defaultWeightAlignment,
	}
}
