// Package display renders per-frame analysis results for a terminal.
// It is the presentation collaborator: the pipeline hands it plain data
// results and never draws anything itself.
package display

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/courtlab/shotform/internal/domain/model"
)

// Presenter consumes per-frame analysis results.
type Presenter interface {
	Present(ctx context.Context, r model.Result)
}

// Default console configuration constants.
const (
	defaultInterval = 30 // print every Nth detected frame (~1/s at 30 Hz)
)

// Console implements Presenter by writing one-line summaries to a writer.
// Missing-detection frames render a "step into frame" prompt; the last
// valid scores are kept on screen because the result carries the frozen
// window state.
type Console struct {
	mu       sync.Mutex
	w        io.Writer
	interval int
	seen     int
	prompted bool
}

// Option applies a configuration option to the Console.
type Option func(*Console)

// WithWriter sets the output writer.
func WithWriter(w io.Writer) Option {
	return func(c *Console) {
		if w != nil {
			c.w = w
		}
	}
}

// WithInterval sets how many detected frames to skip between lines.
func WithInterval(n int) Option {
	return func(c *Console) {
		if n > 0 {
			c.interval = n
		}
	}
}

// NewConsole creates a console presenter with configuration options.
func NewConsole(opts ...Option) *Console {
	c := &Console{
		w:        os.Stdout,
		interval: defaultInterval,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Present renders one result.
func (c *Console) Present(_ context.Context, r model.Result) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !r.Detected {
		// Print the prompt once per gap, not once per missing frame.
		if !c.prompted {
			fmt.Fprintf(c.w, "no subject detected - step into frame (last composite %d)\n", r.Scores.Composite)
			c.prompted = true
		}
		return
	}
	c.prompted = false

	c.seen++
	if c.seen%c.interval != 0 {
		return
	}

	fmt.Fprintf(c.w, "frame %4d  score %3d (%s)  elbow %5.1f° [%s]  release %5.1f° [%s]  knee %5.1f° [%s]  align %5.1f [%s]\n",
		r.Frame, r.Scores.Composite, r.Feedback.Tier,
		r.Metrics.ElbowAngle, r.Feedback.Elbow,
		r.Metrics.ReleaseAngle, r.Feedback.Release,
		r.Metrics.KneeAngle, r.Feedback.Knee,
		r.Metrics.Alignment, r.Feedback.Alignment,
	)
}
