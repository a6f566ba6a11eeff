// Package scoring maps smoothed shot metrics to per-metric scores and a
// weighted composite.
package scoring

import (
	"math"

	"github.com/courtlab/shotform/internal/domain/model"
)

// Default scoring law constants. The slopes and breakpoints are part of
// the scoring contract; changing them changes every reported score.
const (
	defaultElbowOptimal   = 90.0
	defaultElbowTolerance = 10.0
	elbowInnerSlope       = 5.0
	elbowOuterSlope       = 2.0
	elbowOuterBase        = 50.0

	defaultReleaseLow  = 45.0
	defaultReleaseHigh = 60.0
	releaseHighSlope   = 3.0

	defaultKneeLow  = 100.0
	defaultKneeHigh = 130.0
	kneeHighSlope   = 2.0

	maxScoreValue = 100.0
)

// Weights holds the composite weighting of the four per-metric scores.
// A valid set of weights is strictly positive and sums to 1.
type Weights struct {
	Elbow     float64
	Release   float64
	Knee      float64
	Alignment float64
}

// DefaultWeights returns the standard composite weighting.
func DefaultWeights() Weights {
	return Weights{Elbow: 0.30, Release: 0.30, Knee: 0.20, Alignment: 0.20}
}

// valid reports whether all weights are positive and sum to 1.
func (w Weights) valid() bool {
	if w.Elbow <= 0 || w.Release <= 0 || w.Knee <= 0 || w.Alignment <= 0 {
		return false
	}
	const tolerance = 1e-9
	return math.Abs(w.Elbow+w.Release+w.Knee+w.Alignment-1.0) < tolerance
}

// Scorer computes per-metric and composite scores from smoothed metrics.
type Scorer interface {
	Score(m model.SmoothedMetrics) model.Scores
}

// PiecewiseScorer implements Scorer with piecewise-linear scoring laws:
// each metric has an optimal band mapped to 100 and monotone decay
// outside it, floored at 0. Out-of-range inputs need no pre-validation;
// they degrade toward 0 through the floor in each branch.
type PiecewiseScorer struct {
	elbowOptimal   float64
	elbowTolerance float64
	releaseLow     float64
	releaseHigh    float64
	kneeLow        float64
	kneeHigh       float64
	weights        Weights
}

// NewPiecewiseScorer creates a scorer with configuration options.
func NewPiecewiseScorer(opts ...Option) *PiecewiseScorer {
	s := &PiecewiseScorer{
		elbowOptimal:   defaultElbowOptimal,
		elbowTolerance: defaultElbowTolerance,
		releaseLow:     defaultReleaseLow,
		releaseHigh:    defaultReleaseHigh,
		kneeLow:        defaultKneeLow,
		kneeHigh:       defaultKneeHigh,
		weights:        DefaultWeights(),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// ElbowScore penalizes deviation from the optimal elbow angle: slope -5
// per degree within the tolerance band, then -2 per degree beyond it.
func (s *PiecewiseScorer) ElbowScore(angle float64) float64 {
	deviation := math.Abs(angle - s.elbowOptimal)
	if deviation <= s.elbowTolerance {
		return clamp(maxScoreValue - elbowInnerSlope*deviation)
	}
	return clamp(elbowOuterBase - elbowOuterSlope*(deviation-s.elbowTolerance))
}

// ReleaseScore is flat 100 inside the optimal band, rises linearly from
// 0 below it, and decays at -3 per degree above it.
func (s *PiecewiseScorer) ReleaseScore(angle float64) float64 {
	switch {
	case angle < s.releaseLow:
		return clamp(angle / s.releaseLow * maxScoreValue)
	case angle <= s.releaseHigh:
		return maxScoreValue
	default:
		return clamp(maxScoreValue - releaseHighSlope*(angle-s.releaseHigh))
	}
}

// KneeScore is flat 100 inside the optimal bend band, rises linearly
// from 0 below it, and decays at -2 per degree above it.
func (s *PiecewiseScorer) KneeScore(angle float64) float64 {
	switch {
	case angle < s.kneeLow:
		return clamp(angle / s.kneeLow * maxScoreValue)
	case angle <= s.kneeHigh:
		return maxScoreValue
	default:
		return clamp(maxScoreValue - kneeHighSlope*(angle-s.kneeHigh))
	}
}

// AlignmentScore passes the smoothed alignment value through unchanged,
// clamped to [0,100].
func (s *PiecewiseScorer) AlignmentScore(alignment float64) float64 {
	return clamp(alignment)
}

// Composite combines the four per-metric scores using the configured
// weights and rounds to the nearest integer, half away from zero.
func (s *PiecewiseScorer) Composite(elbow, release, knee, alignment float64) int {
	sum := elbow*s.weights.Elbow +
		release*s.weights.Release +
		knee*s.weights.Knee +
		alignment*s.weights.Alignment
	return int(math.Round(sum))
}

// Score computes all four per-metric scores and the composite.
func (s *PiecewiseScorer) Score(m model.SmoothedMetrics) model.Scores {
	elbow := s.ElbowScore(m.ElbowAngle)
	release := s.ReleaseScore(m.ReleaseAngle)
	knee := s.KneeScore(m.KneeAngle)
	alignment := s.AlignmentScore(m.Alignment)

	return model.Scores{
		Elbow:     elbow,
		Release:   release,
		Knee:      knee,
		Alignment: alignment,
		Composite: s.Composite(elbow, release, knee, alignment),
	}
}

// clamp bounds a score to [0,100]. NaN degrades to 0.
func clamp(v float64) float64 {
	if v > maxScoreValue {
		return maxScoreValue
	}
	if v < 0 || math.IsNaN(v) {
		return 0
	}
	return v
}
