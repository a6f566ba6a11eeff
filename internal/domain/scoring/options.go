package scoring

// Option applies a configuration option to the PiecewiseScorer.
type Option func(*PiecewiseScorer)

// WithElbowBand sets the optimal elbow angle and its tolerance.
func WithElbowBand(optimal, tolerance float64) Option {
	return func(s *PiecewiseScorer) {
		if optimal > 0 && tolerance > 0 {
			s.elbowOptimal = optimal
			s.elbowTolerance = tolerance
		}
	}
}

// WithReleaseBand sets the optimal release-angle band.
func WithReleaseBand(low, high float64) Option {
	return func(s *PiecewiseScorer) {
		if low > 0 && high > low {
			s.releaseLow = low
			s.releaseHigh = high
		}
	}
}

// WithKneeBand sets the optimal knee-angle band.
func WithKneeBand(low, high float64) Option {
	return func(s *PiecewiseScorer) {
		if low > 0 && high > low {
			s.kneeLow = low
			s.kneeHigh = high
		}
	}
}

// WithWeights sets the composite weighting. Invalid weights (any
// non-positive, or not summing to 1) are ignored.
func WithWeights(w Weights) Option {
	return func(s *PiecewiseScorer) {
		if w.valid() {
			s.weights = w
		}
	}
}
