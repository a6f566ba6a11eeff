// Package feedback turns current scores and smoothed metrics into
// discrete coaching labels. The engine is stateless: every evaluation
// is a pure function of the values handed to it, with no memory across
// frames.
package feedback

import "github.com/courtlab/shotform/internal/domain/model"

// Overall tier labels, matched in descending threshold order.
const (
	TierExcellent        = "excellent"
	TierGood             = "good"
	TierFair             = "fair"
	TierNeedsImprovement = "needs improvement"
)

// Per-metric directional labels.
const (
	LabelOptimal       = "optimal"
	LabelRaiseElbow    = "raise elbow"
	LabelLowerElbow    = "lower elbow"
	LabelReleaseLow    = "too low"
	LabelReleaseHigh   = "too high"
	LabelBendMore      = "bend more"
	LabelTooBent       = "too bent"
	LabelShoulderLevel = "check shoulder level"
)

// Default threshold constants.
const (
	defaultTierExcellent = 85.0
	defaultTierGood      = 70.0
	defaultTierFair      = 50.0

	defaultElbowLow  = 85.0
	defaultElbowHigh = 95.0

	defaultReleaseLow  = 45.0
	defaultReleaseHigh = 60.0

	defaultKneeLow  = 100.0
	defaultKneeHigh = 130.0

	defaultAlignmentOptimal = 90.0
)

// Engine classifies scores and smoothed metrics into labels.
type Engine struct {
	tierExcellent float64
	tierGood      float64
	tierFair      float64

	elbowLow         float64
	elbowHigh        float64
	releaseLow       float64
	releaseHigh      float64
	kneeLow          float64
	kneeHigh         float64
	alignmentOptimal float64
}

// NewEngine creates a feedback engine with configuration options.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		tierExcellent:    defaultTierExcellent,
		tierGood:         defaultTierGood,
		tierFair:         defaultTierFair,
		elbowLow:         defaultElbowLow,
		elbowHigh:        defaultElbowHigh,
		releaseLow:       defaultReleaseLow,
		releaseHigh:      defaultReleaseHigh,
		kneeLow:          defaultKneeLow,
		kneeHigh:         defaultKneeHigh,
		alignmentOptimal: defaultAlignmentOptimal,
	}

	for _, opt := range opts {
		opt(e)
	}

	return e
}

// Tier maps a composite score to its overall tier. Thresholds are
// checked in descending order; first match wins.
func (e *Engine) Tier(composite int) string {
	switch {
	case float64(composite) >= e.tierExcellent:
		return TierExcellent
	case float64(composite) >= e.tierGood:
		return TierGood
	case float64(composite) >= e.tierFair:
		return TierFair
	default:
		return TierNeedsImprovement
	}
}

// ElbowLabel classifies the smoothed elbow angle.
func (e *Engine) ElbowLabel(angle float64) string {
	switch {
	case angle < e.elbowLow:
		return LabelRaiseElbow
	case angle > e.elbowHigh:
		return LabelLowerElbow
	default:
		return LabelOptimal
	}
}

// ReleaseLabel classifies the smoothed release angle.
func (e *Engine) ReleaseLabel(angle float64) string {
	switch {
	case angle < e.releaseLow:
		return LabelReleaseLow
	case angle > e.releaseHigh:
		return LabelReleaseHigh
	default:
		return LabelOptimal
	}
}

// KneeLabel classifies the smoothed knee angle.
func (e *Engine) KneeLabel(angle float64) string {
	switch {
	case angle < e.kneeLow:
		return LabelBendMore
	case angle > e.kneeHigh:
		return LabelTooBent
	default:
		return LabelOptimal
	}
}

// AlignmentLabel classifies the smoothed alignment value.
func (e *Engine) AlignmentLabel(alignment float64) string {
	if alignment >= e.alignmentOptimal {
		return LabelOptimal
	}
	return LabelShoulderLevel
}

// Evaluate produces the full feedback for the current frame.
func (e *Engine) Evaluate(m model.SmoothedMetrics, s model.Scores) model.Feedback {
	return model.Feedback{
		Tier:      e.Tier(s.Composite),
		Elbow:     e.ElbowLabel(m.ElbowAngle),
		Release:   e.ReleaseLabel(m.ReleaseAngle),
		Knee:      e.KneeLabel(m.KneeAngle),
		Alignment: e.AlignmentLabel(m.Alignment),
	}
}
