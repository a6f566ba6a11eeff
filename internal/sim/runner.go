package sim

import (
	"context"
	"time"

	"github.com/courtlab/shotform/internal/adapters/display"
	"github.com/courtlab/shotform/internal/app"
	"github.com/courtlab/shotform/internal/domain/pose"
	"github.com/courtlab/shotform/pkg/logger"
)

// Run feeds a full simulated session through the analyzer, presenting
// every result. It returns early with the partial report when ctx is
// canceled.
func Run(ctx context.Context, analyzer *app.Analyzer, presenter display.Presenter, cfg *Config) (*Report, error) {
	gen := NewGenerator(cfg.Profile, cfg.Side, cfg.Seed)
	report := NewReport(analyzer.SessionID(), cfg.Profile)

	logger.Get().Info(ctx, "starting simulated session",
		logger.String("sessionID", analyzer.SessionID()),
		logger.String("profile", cfg.Profile),
		logger.Int("frames", cfg.Frames),
		logger.Int("frameRate", cfg.FrameRate),
	)

	var ticker *time.Ticker
	if cfg.FrameRate > 0 {
		ticker = time.NewTicker(time.Second / time.Duration(cfg.FrameRate))
		defer ticker.Stop()
	}

	sinceDropout := 0
	dropoutLeft := 0

	for i := 0; i < cfg.Frames; i++ {
		if ticker != nil {
			select {
			case <-ctx.Done():
				report.Finish()
				return report, ctx.Err()
			case <-ticker.C:
			}
		} else if ctx.Err() != nil {
			report.Finish()
			return report, ctx.Err()
		}

		var frame *pose.Frame
		switch {
		case dropoutLeft > 0:
			dropoutLeft-- // subject out of frame
		case cfg.DropoutEvery > 0 && sinceDropout >= cfg.DropoutEvery:
			sinceDropout = 0
			dropoutLeft = cfg.DropoutLen - 1
		default:
			frame = gen.Next()
			sinceDropout++
		}

		result, ok := analyzer.ProcessFrame(ctx, frame)
		if !ok {
			continue // gate closed; nothing to present
		}

		report.Record(result)
		presenter.Present(ctx, result)
	}

	report.Finish()
	logger.Get().Info(ctx, "simulated session finished",
		logger.String("sessionID", report.SessionID),
		logger.Int("emitted", report.Emitted),
		logger.Int("missed", report.Missed),
		logger.Int("finalComposite", report.Final.Scores.Composite),
	)

	return report, nil
}
