// Package model contains domain models passed between layers.
package model

// FrameMetrics holds the raw measurements derived from a single frame's
// landmarks. Recomputed every frame, never stored.
type FrameMetrics struct {
	ElbowAngle   float64 // interior angle at the elbow, degrees [0,180]
	ReleaseAngle float64 // wrist elevation relative to the shoulder, degrees >= 0
	KneeAngle    float64 // interior angle at the knee, degrees [0,180]
	Alignment    float64 // shoulder levelness, [0,100]
}

// SmoothedMetrics is the rolling-window mean of the four raw metrics.
type SmoothedMetrics struct {
	ElbowAngle   float64 `json:"elbow_angle"`
	ReleaseAngle float64 `json:"release_angle"`
	KneeAngle    float64 `json:"knee_angle"`
	Alignment    float64 `json:"alignment"`
}

// Scores holds the four per-metric scores and the weighted composite.
// Per-metric scores are in [0,100]; the composite is rounded to an
// integer in [0,100].
type Scores struct {
	Elbow     float64 `json:"elbow"`
	Release   float64 `json:"release"`
	Knee      float64 `json:"knee"`
	Alignment float64 `json:"alignment"`
	Composite int     `json:"composite"`
}

// Feedback carries the overall tier plus a directional label per metric.
type Feedback struct {
	Tier      string `json:"tier"`
	Elbow     string `json:"elbow"`
	Release   string `json:"release"`
	Knee      string `json:"knee"`
	Alignment string `json:"alignment"`
}

// Result is the per-frame output handed to the presentation layer.
// When Detected is false the metrics and scores reflect the window
// contents from before the gap, so displayed values freeze rather than
// dropping to zero.
type Result struct {
	SessionID string          `json:"session_id"`
	Frame     uint64          `json:"frame"`
	Detected  bool            `json:"detected"`
	Metrics   SmoothedMetrics `json:"metrics"`
	Scores    Scores          `json:"scores"`
	Feedback  Feedback        `json:"feedback"`
}
