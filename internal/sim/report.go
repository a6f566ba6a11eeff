package sim

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/courtlab/shotform/internal/domain/model"
)

// Report accumulates the outcome of a simulated session.
type Report struct {
	SessionID string
	Profile   string
	StartTime time.Time
	EndTime   time.Time

	Emitted    int // results emitted by the pipeline
	Detected   int // frames with a complete detection
	Missed     int // missing-detection frames
	TierCounts map[string]int
	Final      model.Result
}

// NewReport creates an empty report for one session.
func NewReport(sessionID, profile string) *Report {
	return &Report{
		SessionID:  sessionID,
		Profile:    profile,
		StartTime:  time.Now(),
		TierCounts: make(map[string]int),
	}
}

// Record folds one pipeline result into the report.
func (r *Report) Record(result model.Result) {
	r.Emitted++
	if result.Detected {
		r.Detected++
		r.TierCounts[result.Feedback.Tier]++
	} else {
		r.Missed++
	}
	r.Final = result
}

// Finish stamps the end time.
func (r *Report) Finish() {
	r.EndTime = time.Now()
}

// Summary renders the report for a terminal.
func (r *Report) Summary() string {
	var b strings.Builder

	fmt.Fprintf(&b, "session %s (%s profile)\n", r.SessionID, r.Profile)
	fmt.Fprintf(&b, "  duration: %s\n", r.EndTime.Sub(r.StartTime).Round(time.Millisecond))
	fmt.Fprintf(&b, "  frames:   %d emitted, %d detected, %d missed\n", r.Emitted, r.Detected, r.Missed)

	tiers := make([]string, 0, len(r.TierCounts))
	for tier := range r.TierCounts {
		tiers = append(tiers, tier)
	}
	sort.Strings(tiers)
	for _, tier := range tiers {
		fmt.Fprintf(&b, "  tier %q: %d frames\n", tier, r.TierCounts[tier])
	}

	s := r.Final.Scores
	m := r.Final.Metrics
	fmt.Fprintf(&b, "  final composite: %d (%s)\n", s.Composite, r.Final.Feedback.Tier)
	fmt.Fprintf(&b, "  final metrics:   elbow %.1f° release %.1f° knee %.1f° alignment %.1f\n",
		m.ElbowAngle, m.ReleaseAngle, m.KneeAngle, m.Alignment)
	fmt.Fprintf(&b, "  final scores:    elbow %.0f release %.0f knee %.0f alignment %.0f\n",
		s.Elbow, s.Release, s.Knee, s.Alignment)

	return b.String()
}
