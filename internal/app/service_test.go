package app_test

import (
	"context"
	"math"
	"os"
	"testing"

	"github.com/courtlab/shotform/internal/app"
	"github.com/courtlab/shotform/internal/domain/feedback"
	"github.com/courtlab/shotform/internal/domain/model"
	"github.com/courtlab/shotform/internal/domain/pose"
	"github.com/courtlab/shotform/pkg/logger"
	. "github.com/smartystreets/goconvey/convey"
)

func TestMain(m *testing.M) {
	if err := logger.Init(); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

// apex places the vertex of an isosceles triangle over the segment a-b so
// that the interior angle at the vertex equals deg.
func apex(a, b pose.Point, deg float64) pose.Point {
	dx := b.X - a.X
	dy := b.Y - a.Y
	d := math.Hypot(dx, dy)
	h := d / 2 / math.Tan(deg/2*math.Pi/180)
	return pose.Point{
		X: (a.X+b.X)/2 + dy/d*h,
		Y: (a.Y+b.Y)/2 - dx/d*h,
	}
}

// idealFrame builds a frame whose right-side form measures an elbow of
// 90, a release inside [45,60], a knee of 115, and level shoulders.
func idealFrame() *pose.Frame {
	shoulder := pose.Point{X: 0.60, Y: 0.40}
	wrist := pose.Point{X: 0.66, Y: 0.33}
	hip := pose.Point{X: 0.58, Y: 0.62}
	ankle := pose.Point{X: 0.60, Y: 0.95}

	f := pose.NewFrame()
	f.Set(pose.RightShoulder, shoulder)
	f.Set(pose.RightElbow, apex(shoulder, wrist, 90))
	f.Set(pose.RightWrist, wrist)
	f.Set(pose.RightHip, hip)
	f.Set(pose.RightKnee, apex(hip, ankle, 115))
	f.Set(pose.RightAnkle, ankle)

	f.Set(pose.LeftShoulder, pose.Point{X: 0.40, Y: 0.40})
	f.Set(pose.LeftElbow, pose.Point{X: 0.36, Y: 0.50})
	f.Set(pose.LeftWrist, pose.Point{X: 0.34, Y: 0.42})
	f.Set(pose.LeftHip, pose.Point{X: 0.42, Y: 0.62})
	f.Set(pose.LeftKnee, pose.Point{X: 0.41, Y: 0.78})
	f.Set(pose.LeftAnkle, pose.Point{X: 0.40, Y: 0.95})
	return f
}

// processN feeds n ideal frames and returns the last result.
func processN(ctx context.Context, a *app.Analyzer, n int) (model.Result, bool) {
	var r model.Result
	var ok bool
	for i := 0; i < n; i++ {
		r, ok = a.ProcessFrame(ctx, idealFrame())
	}
	return r, ok
}

func TestAnalyzerIdealForm(t *testing.T) {
	Convey("Given a started analyzer with the default window", t, func() {
		ctx := context.Background()
		a := app.New()
		So(a.Start(ctx), ShouldBeNil)
		So(a.SessionID(), ShouldNotBeEmpty)

		Convey("When ideal frames fill the window", func() {
			r, ok := processN(ctx, a, 30)

			Convey("Then the composite is perfect and every label optimal", func() {
				So(ok, ShouldBeTrue)
				So(r.Detected, ShouldBeTrue)
				So(r.Frame, ShouldEqual, uint64(30))
				So(r.Metrics.ElbowAngle, ShouldAlmostEqual, 90.0, 0.001)
				So(r.Metrics.KneeAngle, ShouldAlmostEqual, 115.0, 0.001)
				So(r.Metrics.Alignment, ShouldAlmostEqual, 100.0, 0.001)
				So(r.Scores.Composite, ShouldEqual, 100)
				So(r.Feedback.Tier, ShouldEqual, feedback.TierExcellent)
				So(r.Feedback.Elbow, ShouldEqual, feedback.LabelOptimal)
				So(r.Feedback.Release, ShouldEqual, feedback.LabelOptimal)
				So(r.Feedback.Knee, ShouldEqual, feedback.LabelOptimal)
				So(r.Feedback.Alignment, ShouldEqual, feedback.LabelOptimal)
			})
		})
	})
}

func TestAnalyzerMissingDetection(t *testing.T) {
	Convey("Given an analyzer warmed up on ideal frames", t, func() {
		ctx := context.Background()
		a := app.New(app.WithWindowSize(5))
		So(a.Start(ctx), ShouldBeNil)
		warm, _ := processN(ctx, a, 3)

		Convey("When a frame arrives with no subject", func() {
			r, ok := a.ProcessFrame(ctx, nil)

			Convey("Then the result repeats the frozen smoothed state", func() {
				So(ok, ShouldBeTrue)
				So(r.Detected, ShouldBeFalse)
				So(r.Frame, ShouldEqual, warm.Frame)
				So(r.Metrics, ShouldResemble, warm.Metrics)
				So(r.Scores.Composite, ShouldEqual, warm.Scores.Composite)
			})
		})

		Convey("When a frame arrives with missing joints", func() {
			partial := pose.NewFrame()
			partial.Set(pose.RightShoulder, pose.Point{X: 0.6, Y: 0.4})
			r, ok := a.ProcessFrame(ctx, partial)

			Convey("Then history stays untouched", func() {
				So(ok, ShouldBeTrue)
				So(r.Detected, ShouldBeFalse)
				So(r.Metrics, ShouldResemble, warm.Metrics)
			})
		})

		Convey("When detection resumes", func() {
			_, _ = a.ProcessFrame(ctx, nil)
			r, ok := a.ProcessFrame(ctx, idealFrame())

			Convey("Then the frame counter moves on from where it was", func() {
				So(ok, ShouldBeTrue)
				So(r.Detected, ShouldBeTrue)
				So(r.Frame, ShouldEqual, warm.Frame+1)
			})
		})
	})
}

func TestAnalyzerLifecycle(t *testing.T) {
	Convey("Given an analyzer", t, func() {
		ctx := context.Background()
		a := app.New(app.WithWindowSize(5))

		Convey("When a frame arrives before Start", func() {
			_, ok := a.ProcessFrame(ctx, idealFrame())
			So(ok, ShouldBeFalse)
		})

		Convey("When the analyzer is stopped", func() {
			So(a.Start(ctx), ShouldBeNil)
			_, _ = processN(ctx, a, 2)
			a.Stop()

			_, ok := a.ProcessFrame(ctx, idealFrame())
			So(ok, ShouldBeFalse)

			Convey("And restarting keeps the session history", func() {
				So(a.Start(ctx), ShouldBeNil)
				r, ok := a.ProcessFrame(ctx, idealFrame())
				So(ok, ShouldBeTrue)
				So(r.Frame, ShouldEqual, uint64(3))
			})
		})

		Convey("When Start is called twice", func() {
			So(a.Start(ctx), ShouldBeNil)
			So(a.Start(ctx), ShouldBeNil)
		})
	})
}

func TestAnalyzerReset(t *testing.T) {
	Convey("Given an analyzer with accumulated history", t, func() {
		ctx := context.Background()
		a := app.New(app.WithWindowSize(5))
		So(a.Start(ctx), ShouldBeNil)
		_, _ = processN(ctx, a, 5)

		Convey("When the session is reset", func() {
			a.Reset(ctx)

			Convey("Then the counters clear", func() {
				stats := a.Stats()
				So(stats["frames"], ShouldEqual, uint64(0))
				So(stats["missed"], ShouldEqual, uint64(0))
			})

			Convey("And the first smoothed value equals the raw sample", func() {
				r, ok := a.ProcessFrame(ctx, idealFrame())
				So(ok, ShouldBeTrue)
				So(r.Frame, ShouldEqual, uint64(1))
				So(r.Metrics.ElbowAngle, ShouldAlmostEqual, 90.0, 0.001)
			})
		})
	})
}

func TestAnalyzerShootingSide(t *testing.T) {
	Convey("Given an analyzer tracking the left side", t, func() {
		ctx := context.Background()
		a := app.New(app.WithWindowSize(5), app.WithShootingSide(pose.SideLeft))
		So(a.Start(ctx), ShouldBeNil)

		Convey("When a frame with ideal left-side form arrives", func() {
			shoulder := pose.Point{X: 0.40, Y: 0.40}
			wrist := pose.Point{X: 0.34, Y: 0.33}
			hip := pose.Point{X: 0.42, Y: 0.62}
			ankle := pose.Point{X: 0.40, Y: 0.95}

			f := pose.NewFrame()
			f.Set(pose.LeftShoulder, shoulder)
			f.Set(pose.LeftElbow, apex(shoulder, wrist, 90))
			f.Set(pose.LeftWrist, wrist)
			f.Set(pose.LeftHip, hip)
			f.Set(pose.LeftKnee, apex(hip, ankle, 115))
			f.Set(pose.LeftAnkle, ankle)
			f.Set(pose.RightShoulder, pose.Point{X: 0.60, Y: 0.40})
			f.Set(pose.RightElbow, pose.Point{X: 0.64, Y: 0.50})
			f.Set(pose.RightWrist, pose.Point{X: 0.66, Y: 0.42})
			f.Set(pose.RightHip, pose.Point{X: 0.58, Y: 0.62})
			f.Set(pose.RightKnee, pose.Point{X: 0.59, Y: 0.78})
			f.Set(pose.RightAnkle, pose.Point{X: 0.60, Y: 0.95})

			r, ok := a.ProcessFrame(ctx, f)

			Convey("Then the left-side joints drive the metrics", func() {
				So(ok, ShouldBeTrue)
				So(r.Detected, ShouldBeTrue)
				So(r.Metrics.ElbowAngle, ShouldAlmostEqual, 90.0, 0.001)
				So(r.Metrics.KneeAngle, ShouldAlmostEqual, 115.0, 0.001)
			})
		})
	})
}
