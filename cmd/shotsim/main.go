package main

import (
	"context"
	"flag"
	"os"
	"strings"
	"time"

	"github.com/courtlab/shotform/internal/adapters/display"
	"github.com/courtlab/shotform/internal/app"
	"github.com/courtlab/shotform/internal/domain/pose"
	"github.com/courtlab/shotform/internal/sim"
	"github.com/courtlab/shotform/pkg/logger"
)

// Default configuration constants.
const (
	defaultSessionTimeout = 10 * time.Minute
	defaultPrintEvery     = 10
)

func main() {
	var (
		profile      = flag.String("profile", sim.ProfileElite, "Shooter profile: "+strings.Join(sim.Profiles(), ", "))
		frames       = flag.Int("frames", sim.DefaultFrames, "Number of frames to simulate")
		rate         = flag.Int("rate", sim.DefaultFrameRate, "Frame rate in fps (0 = unpaced)")
		side         = flag.String("side", "right", "Shooting side: left or right")
		seed         = flag.Int64("seed", sim.DefaultSeed, "Random seed for jitter")
		dropoutEvery = flag.Int("dropout-every", sim.DefaultDropoutEvery, "Insert a detection gap after every N frames (0 = never)")
		dropoutLen   = flag.Int("dropout-len", sim.DefaultDropoutLen, "Length of each detection gap in frames")
		printEvery   = flag.Int("print-every", defaultPrintEvery, "Print every Nth detected frame")
		windowSize   = flag.Int("window", 0, "Rolling-window size (0 = default)")
	)
	flag.Parse()

	if err := logger.Init(); err != nil {
		os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), defaultSessionTimeout)
	defer cancel()

	opts := []app.Option{
		app.WithShootingSide(pose.Side(*side)),
	}
	if *windowSize > 0 {
		opts = append(opts, app.WithWindowSize(*windowSize))
	}

	analyzer := app.New(opts...)
	if err := analyzer.Start(ctx); err != nil {
		os.Stderr.WriteString("failed to start analyzer: " + err.Error() + "\n")
		return
	}
	defer analyzer.Stop()

	cfg := sim.NewConfig()
	cfg.Profile = *profile
	cfg.Frames = *frames
	cfg.FrameRate = *rate
	cfg.Side = pose.Side(*side)
	cfg.Seed = *seed
	cfg.DropoutEvery = *dropoutEvery
	cfg.DropoutLen = *dropoutLen

	presenter := display.NewConsole(display.WithInterval(*printEvery))
	report, err := sim.Run(ctx, analyzer, presenter, cfg)
	if err != nil {
		os.Stderr.WriteString("session interrupted: " + err.Error() + "\n")
	}

	os.Stdout.WriteString(report.Summary())
}
