package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/courtlab/shotform/internal/adapters/display"
	"github.com/courtlab/shotform/internal/app"
	"github.com/courtlab/shotform/internal/config"
	"github.com/courtlab/shotform/internal/domain/feedback"
	"github.com/courtlab/shotform/internal/domain/pose"
	"github.com/courtlab/shotform/internal/domain/scoring"
	"github.com/courtlab/shotform/internal/sim"
	"github.com/courtlab/shotform/pkg/logger"
	"github.com/courtlab/shotform/pkg/metrics"
)

// HTTP server timeout constants for the metrics endpoint.
const (
	readTimeout       = 10 * time.Second
	writeTimeout      = 10 * time.Second
	idleTimeout       = 60 * time.Second
	readHeaderTimeout = 5 * time.Second

	demoDropoutEvery = 120
	demoDropoutLen   = 30
)

func main() {
	// Initialize logging
	if err := logger.Init(); err != nil {
		os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
		return
	}
	defer func() {
		_ = logger.Sync()
	}()

	loggerInstance := logger.Get()

	// Root context with cancel on SIGINT/SIGTERM.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Load configuration (defaults -> optional file -> env)
	cfg, err := config.Load(ctx)
	if err != nil {
		os.Stderr.WriteString("failed to load config: " + err.Error() + "\n")
		return
	}

	// Apply configured log level (fallback to info on invalid input)
	if err := logger.SetLevelString(cfg.LogLevel); err != nil {
		loggerInstance.Warn(ctx, "invalid log_level; falling back to info", logger.String("log_level", cfg.LogLevel), logger.Error(err))
		_ = logger.SetLevelString("info")
	}

	// Expose the Prometheus registry. This is an operational surface
	// only; frames enter the pipeline through direct calls.
	if cfg.MetricsAddr != "" {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.HandlerFor(metrics.GetRegistry(), promhttp.HandlerOpts{}))
		srv := &http.Server{
			Addr:              cfg.MetricsAddr,
			Handler:           mux,
			ReadTimeout:       readTimeout,
			WriteTimeout:      writeTimeout,
			IdleTimeout:       idleTimeout,
			ReadHeaderTimeout: readHeaderTimeout,
		}
		go func() {
			loggerInstance.Info(ctx, "serving metrics", logger.String("addr", cfg.MetricsAddr))
			if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				loggerInstance.Error(ctx, "metrics server failed", logger.Error(err))
			}
		}()
		defer func() { _ = srv.Close() }()
	}

	// Build the pipeline from configuration.
	analyzer := app.New(
		app.WithLogger(loggerInstance),
		app.WithWindowSize(cfg.WindowSize),
		app.WithShootingSide(pose.Side(cfg.ShootingSide)),
		app.WithScorer(scoring.NewPiecewiseScorer(
			scoring.WithElbowBand(cfg.ElbowOptimalDeg, cfg.ElbowToleranceDeg),
			scoring.WithReleaseBand(cfg.ReleaseMinDeg, cfg.ReleaseMaxDeg),
			scoring.WithKneeBand(cfg.KneeMinDeg, cfg.KneeMaxDeg),
			scoring.WithWeights(scoring.Weights{
				Elbow:     cfg.WeightElbow,
				Release:   cfg.WeightRelease,
				Knee:      cfg.WeightKnee,
				Alignment: cfg.WeightAlignment,
			}),
		)),
		app.WithFeedbackEngine(feedback.NewEngine(
			feedback.WithReleaseRange(cfg.ReleaseMinDeg, cfg.ReleaseMaxDeg),
			feedback.WithKneeRange(cfg.KneeMinDeg, cfg.KneeMaxDeg),
		)),
	)
	if err := analyzer.Start(ctx); err != nil {
		os.Stderr.WriteString("failed to start analyzer: " + err.Error() + "\n")
		return
	}
	defer analyzer.Stop()

	// Run a simulated session through the console presenter. A real
	// deployment would wire the pose source here instead.
	simCfg := sim.NewConfig()
	simCfg.Side = pose.Side(cfg.ShootingSide)
	simCfg.DropoutEvery = demoDropoutEvery
	simCfg.DropoutLen = demoDropoutLen

	presenter := display.NewConsole()
	report, err := sim.Run(ctx, analyzer, presenter, simCfg)
	if err != nil {
		loggerInstance.Warn(ctx, "session interrupted", logger.Error(err))
	}

	os.Stdout.WriteString(report.Summary())
}
