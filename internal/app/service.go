// Package app provides the per-frame analysis pipeline that turns pose
// landmarks into scores and feedback.
package app

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/courtlab/shotform/internal/domain/feedback"
	"github.com/courtlab/shotform/internal/domain/model"
	"github.com/courtlab/shotform/internal/domain/pose"
	"github.com/courtlab/shotform/internal/domain/scoring"
	"github.com/courtlab/shotform/internal/domain/window"
	"github.com/courtlab/shotform/pkg/logger"
	"github.com/courtlab/shotform/pkg/metrics"
)

// Default analyzer configuration constants.
const (
	defaultWindowSize         = 30
	nanosecondsPerMillisecond = 1e6
)

// history holds the four rolling windows, one per raw metric. It is the
// only mutable state the pipeline accumulates across frames.
type history struct {
	elbow     *window.Window
	release   *window.Window
	knee      *window.Window
	alignment *window.Window
}

func newHistory(size int) *history {
	return &history{
		elbow:     window.New(window.WithCapacity(size)),
		release:   window.New(window.WithCapacity(size)),
		knee:      window.New(window.WithCapacity(size)),
		alignment: window.New(window.WithCapacity(size)),
	}
}

func (h *history) push(m model.FrameMetrics) {
	h.elbow.Push(m.ElbowAngle)
	h.release.Push(m.ReleaseAngle)
	h.knee.Push(m.KneeAngle)
	h.alignment.Push(m.Alignment)
}

func (h *history) smoothed() model.SmoothedMetrics {
	return model.SmoothedMetrics{
		ElbowAngle:   h.elbow.Mean(),
		ReleaseAngle: h.release.Mean(),
		KneeAngle:    h.knee.Mean(),
		Alignment:    h.alignment.Mean(),
	}
}

func (h *history) reset() {
	h.elbow.Reset()
	h.release.Reset()
	h.knee.Reset()
	h.alignment.Reset()
}

// Analyzer drives the frame pipeline: geometry, smoothing, scoring,
// aggregation, and feedback. One Analyzer serves one subject/session
// and must be confined to a single execution context; the mutex only
// guards the Start/Stop/Reset lifecycle against a concurrent host.
type Analyzer struct {
	mu sync.Mutex

	// Core components
	hist     *history
	scorer   scoring.Scorer
	feedback *feedback.Engine

	// Configuration
	windowSize int
	side       pose.Side

	// State
	sessionID string
	started   bool
	frames    uint64
	missed    uint64

	// Logging
	logger logger.Logger
}

// Option applies a configuration option to the Analyzer.
type Option func(*Analyzer)

// WithWindowSize sets the rolling-window capacity for all four metrics.
func WithWindowSize(size int) Option {
	return func(a *Analyzer) {
		if size > 0 {
			a.windowSize = size
		}
	}
}

// WithShootingSide selects which arm and leg feed the single-sided
// metrics. Alignment always uses both shoulders.
func WithShootingSide(side pose.Side) Option {
	return func(a *Analyzer) {
		if side.Valid() {
			a.side = side
		}
	}
}

// WithScorer sets a custom scorer.
func WithScorer(s scoring.Scorer) Option {
	return func(a *Analyzer) {
		if s != nil {
			a.scorer = s
		}
	}
}

// WithFeedbackEngine sets a custom feedback engine.
func WithFeedbackEngine(e *feedback.Engine) Option {
	return func(a *Analyzer) {
		if e != nil {
			a.feedback = e
		}
	}
}

// WithLogger sets a custom logger for the analyzer.
func WithLogger(l logger.Logger) Option {
	return func(a *Analyzer) {
		if l != nil {
			a.logger = l
		}
	}
}

// New constructs an Analyzer with default configuration. Each analyzer
// carries a fresh session id.
func New(opts ...Option) *Analyzer {
	a := &Analyzer{
		windowSize: defaultWindowSize,
		side:       pose.SideRight,
		sessionID:  uuid.New().String(),
	}

	for _, opt := range opts {
		opt(a)
	}

	if a.scorer == nil {
		a.scorer = scoring.NewPiecewiseScorer()
	}
	if a.feedback == nil {
		a.feedback = feedback.NewEngine()
	}
	a.hist = newHistory(a.windowSize)

	return a
}

// SessionID returns the analyzer's session identifier.
func (a *Analyzer) SessionID() string {
	return a.sessionID
}

// Start opens the frame gate. Frames arriving before Start (or after
// Stop) are discarded without touching history.
func (a *Analyzer) Start(ctx context.Context) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.started {
		return nil
	}

	if a.logger == nil {
		a.logger = logger.Get()
	}

	a.started = true
	metrics.RecordSessionStart()
	metrics.UpdateWindowCapacity(a.windowSize)
	a.logger.Info(ctx, "analyzer started",
		logger.String("sessionID", a.sessionID),
		logger.Int("windowSize", a.windowSize),
		logger.String("side", string(a.side)),
	)

	return nil
}

// Stop closes the frame gate. History is preserved so a later Start
// resumes with the same smoothed state.
func (a *Analyzer) Stop() {
	a.mu.Lock()
	defer a.mu.Unlock()

	if !a.started {
		return
	}

	a.started = false
	a.logger.Info(context.Background(), "analyzer stopped",
		logger.String("sessionID", a.sessionID),
		logger.Uint64("frames", a.frames),
		logger.Uint64("missed", a.missed),
	)
}

// Reset clears all four metric histories unconditionally, independent
// of the start/stop gate and of detection state.
func (a *Analyzer) Reset(ctx context.Context) {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.hist.reset()
	a.frames = 0
	a.missed = 0
	metrics.RecordSessionReset()
	metrics.UpdateWindowFill(0)
	if a.logger != nil {
		a.logger.Info(ctx, "history reset", logger.String("sessionID", a.sessionID))
	}
}

// ProcessFrame runs one frame through the pipeline. The returned bool
// is false when the analyzer is stopped and the frame was ignored.
//
// A nil or incomplete frame yields a result with Detected=false; the
// histories stay untouched, so the attached metrics and scores repeat
// the values from before the gap and displayed scores freeze rather
// than dropping to zero.
func (a *Analyzer) ProcessFrame(ctx context.Context, frame *pose.Frame) (model.Result, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if !a.started {
		metrics.RecordFrameDiscarded()
		return model.Result{}, false
	}

	start := time.Now()
	defer func() {
		metrics.RecordFrameLatency(float64(time.Since(start).Nanoseconds()) / nanosecondsPerMillisecond)
	}()

	if !frame.Complete() {
		a.missed++
		metrics.RecordMissingDetection()
		a.logger.Debug(ctx, "no subject detected",
			logger.String("sessionID", a.sessionID),
			logger.Uint64("frame", a.frames),
		)
		return a.buildResult(false), true
	}

	raw := a.measure(frame)
	a.hist.push(raw)
	a.frames++

	metrics.RecordFrameProcessed()
	metrics.UpdateWindowFill(a.hist.elbow.Len())

	result := a.buildResult(true)
	metrics.UpdateCompositeScore(result.Scores.Composite)
	metrics.RecordTier(result.Feedback.Tier)
	a.publishGauges(result)

	a.logger.Debug(ctx, "frame processed",
		logger.String("sessionID", a.sessionID),
		logger.Uint64("frame", result.Frame),
		logger.Float64("elbow", raw.ElbowAngle),
		logger.Float64("release", raw.ReleaseAngle),
		logger.Float64("knee", raw.KneeAngle),
		logger.Float64("alignment", raw.Alignment),
		logger.Int("composite", result.Scores.Composite),
	)

	return result, true
}

// measure derives the four raw metrics from one complete frame. It is
// only called after Complete() has verified every required joint, so
// lookups cannot miss.
func (a *Analyzer) measure(frame *pose.Frame) model.FrameMetrics {
	shoulder := frame.Landmarks[a.side.Shoulder()]
	elbow := frame.Landmarks[a.side.Elbow()]
	wrist := frame.Landmarks[a.side.Wrist()]
	hip := frame.Landmarks[a.side.Hip()]
	knee := frame.Landmarks[a.side.Knee()]
	ankle := frame.Landmarks[a.side.Ankle()]
	leftShoulder := frame.Landmarks[pose.LeftShoulder]
	rightShoulder := frame.Landmarks[pose.RightShoulder]

	return model.FrameMetrics{
		ElbowAngle:   pose.JointAngle(shoulder, elbow, wrist),
		ReleaseAngle: pose.ReleaseAngle(shoulder, wrist),
		KneeAngle:    pose.JointAngle(hip, knee, ankle),
		Alignment:    pose.ShoulderAlignment(leftShoulder, rightShoulder),
	}
}

// buildResult assembles the per-frame output from the current window
// state. Scores and feedback are recomputed from the smoothed means, so
// a no-detection frame repeats the last valid values.
func (a *Analyzer) buildResult(detected bool) model.Result {
	smoothed := a.hist.smoothed()
	scores := a.scorer.Score(smoothed)

	return model.Result{
		SessionID: a.sessionID,
		Frame:     a.frames,
		Detected:  detected,
		Metrics:   smoothed,
		Scores:    scores,
		Feedback:  a.feedback.Evaluate(smoothed, scores),
	}
}

// publishGauges mirrors the current smoothed metrics and scores into
// the metrics registry.
func (a *Analyzer) publishGauges(r model.Result) {
	metrics.UpdateSmoothedMetric(metrics.MetricElbow, r.Metrics.ElbowAngle)
	metrics.UpdateSmoothedMetric(metrics.MetricRelease, r.Metrics.ReleaseAngle)
	metrics.UpdateSmoothedMetric(metrics.MetricKnee, r.Metrics.KneeAngle)
	metrics.UpdateSmoothedMetric(metrics.MetricAlignment, r.Metrics.Alignment)
	metrics.UpdateMetricScore(metrics.MetricElbow, r.Scores.Elbow)
	metrics.UpdateMetricScore(metrics.MetricRelease, r.Scores.Release)
	metrics.UpdateMetricScore(metrics.MetricKnee, r.Scores.Knee)
	metrics.UpdateMetricScore(metrics.MetricAlignment, r.Scores.Alignment)
}

// Stats returns counters for monitoring.
func (a *Analyzer) Stats() map[string]interface{} {
	a.mu.Lock()
	defer a.mu.Unlock()

	return map[string]interface{}{
		"sessionID":  a.sessionID,
		"started":    a.started,
		"windowSize": a.windowSize,
		"frames":     a.frames,
		"missed":     a.missed,
		"windowFill": a.hist.elbow.Len(),
	}
}
