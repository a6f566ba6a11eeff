package feedback

// Option applies a configuration option to the Engine.
type Option func(*Engine)

// WithTierThresholds sets the overall tier cutoffs. The cutoffs must be
// strictly descending; invalid values are ignored.
func WithTierThresholds(excellent, good, fair float64) Option {
	return func(e *Engine) {
		if excellent > good && good > fair && fair > 0 {
			e.tierExcellent = excellent
			e.tierGood = good
			e.tierFair = fair
		}
	}
}

// WithElbowRange sets the smoothed elbow band considered optimal.
func WithElbowRange(low, high float64) Option {
	return func(e *Engine) {
		if low > 0 && high > low {
			e.elbowLow = low
			e.elbowHigh = high
		}
	}
}

// WithReleaseRange sets the smoothed release band considered optimal.
func WithReleaseRange(low, high float64) Option {
	return func(e *Engine) {
		if low > 0 && high > low {
			e.releaseLow = low
			e.releaseHigh = high
		}
	}
}

// WithKneeRange sets the smoothed knee band considered optimal.
func WithKneeRange(low, high float64) Option {
	return func(e *Engine) {
		if low > 0 && high > low {
			e.kneeLow = low
			e.kneeHigh = high
		}
	}
}

// WithAlignmentThreshold sets the minimum alignment considered optimal.
func WithAlignmentThreshold(threshold float64) Option {
	return func(e *Engine) {
		if threshold > 0 {
			e.alignmentOptimal = threshold
		}
	}
}
