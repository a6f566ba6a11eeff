// Package sim generates synthetic shooting-motion landmark frames and
// drives them through the analysis pipeline. It stands in for the real
// pose source during demos and load checks.
package sim

import "github.com/courtlab/shotform/internal/domain/pose"

// Default simulation constants.
const (
	DefaultFrames       = 300
	DefaultFrameRate    = 30
	DefaultSeed         = 42 // deterministic runs for reproducible demos
	DefaultDropoutEvery = 0  // disabled
	DefaultDropoutLen   = 15
)

// Config controls a simulated session.
type Config struct {
	// Profile names the shooter archetype to simulate.
	Profile string

	// Frames is the total number of frames to emit, dropouts included.
	Frames int

	// FrameRate paces emission in frames per second; 0 runs unpaced.
	FrameRate int

	// DropoutEvery inserts a missing-detection gap after every N
	// detected frames; 0 disables dropouts.
	DropoutEvery int

	// DropoutLen is the length of each missing-detection gap.
	DropoutLen int

	// Seed fixes the jitter source for reproducible sessions.
	Seed int64

	// Side is the simulated shooter's shooting side.
	Side pose.Side
}

// NewConfig returns a Config populated with defaults.
func NewConfig() *Config {
	return &Config{
		Profile:      ProfileElite,
		Frames:       DefaultFrames,
		FrameRate:    DefaultFrameRate,
		DropoutEvery: DefaultDropoutEvery,
		DropoutLen:   DefaultDropoutLen,
		Seed:         DefaultSeed,
		Side:         pose.SideRight,
	}
}
