package scoring_test

import (
	"math"
	"testing"

	"github.com/courtlab/shotform/internal/domain/model"
	"github.com/courtlab/shotform/internal/domain/scoring"
	. "github.com/smartystreets/goconvey/convey"
)

func TestElbowScore(t *testing.T) {
	Convey("Given a scorer with default elbow band", t, func() {
		s := scoring.NewPiecewiseScorer()

		Convey("When the angle is exactly optimal", func() {
			So(s.ElbowScore(90), ShouldEqual, 100.0)
		})

		Convey("When the angle deviates within the tolerance band", func() {
			So(s.ElbowScore(95), ShouldEqual, 75.0)
			So(s.ElbowScore(85), ShouldEqual, 75.0)
			So(s.ElbowScore(100), ShouldEqual, 50.0)
			So(s.ElbowScore(80), ShouldEqual, 50.0)
		})

		Convey("When the angle deviates beyond the tolerance band", func() {
			So(s.ElbowScore(105), ShouldEqual, 40.0)
			So(s.ElbowScore(70), ShouldEqual, 30.0)
		})

		Convey("When the deviation is extreme", func() {
			So(s.ElbowScore(0), ShouldEqual, 0.0)
			So(s.ElbowScore(180), ShouldEqual, 0.0)
		})
	})
}

func TestReleaseScore(t *testing.T) {
	Convey("Given a scorer with default release band", t, func() {
		s := scoring.NewPiecewiseScorer()

		Convey("When the angle is inside the optimal band", func() {
			So(s.ReleaseScore(45), ShouldEqual, 100.0)
			So(s.ReleaseScore(52), ShouldEqual, 100.0)
			So(s.ReleaseScore(60), ShouldEqual, 100.0)
		})

		Convey("When the angle is below the band", func() {
			So(s.ReleaseScore(30), ShouldAlmostEqual, 66.6666666, 0.0001)
			So(s.ReleaseScore(0), ShouldEqual, 0.0)
		})

		Convey("When the angle is above the band", func() {
			So(s.ReleaseScore(70), ShouldEqual, 70.0)
			So(s.ReleaseScore(100), ShouldEqual, 0.0)
		})
	})
}

func TestKneeScore(t *testing.T) {
	Convey("Given a scorer with default knee band", t, func() {
		s := scoring.NewPiecewiseScorer()

		Convey("When the angle is inside the optimal band", func() {
			So(s.KneeScore(100), ShouldEqual, 100.0)
			So(s.KneeScore(115), ShouldEqual, 100.0)
			So(s.KneeScore(130), ShouldEqual, 100.0)
		})

		Convey("When the knee is bent too deep", func() {
			So(s.KneeScore(80), ShouldEqual, 80.0)
			So(s.KneeScore(0), ShouldEqual, 0.0)
		})

		Convey("When the legs are too straight", func() {
			So(s.KneeScore(150), ShouldEqual, 60.0)
			So(s.KneeScore(180), ShouldEqual, 0.0)
		})
	})
}

func TestAlignmentScore(t *testing.T) {
	Convey("Given a scorer", t, func() {
		s := scoring.NewPiecewiseScorer()

		Convey("When the alignment value is in range it passes through", func() {
			So(s.AlignmentScore(87.3), ShouldEqual, 87.3)
		})

		Convey("When the value is out of range it clamps", func() {
			So(s.AlignmentScore(120), ShouldEqual, 100.0)
			So(s.AlignmentScore(-5), ShouldEqual, 0.0)
		})

		Convey("When the value is NaN it degrades to 0", func() {
			So(s.AlignmentScore(math.NaN()), ShouldEqual, 0.0)
		})
	})
}

func TestComposite(t *testing.T) {
	Convey("Given a scorer with default weights", t, func() {
		s := scoring.NewPiecewiseScorer()

		Convey("When every metric is perfect", func() {
			So(s.Composite(100, 100, 100, 100), ShouldEqual, 100)
		})

		Convey("When every metric is zero", func() {
			So(s.Composite(0, 0, 0, 0), ShouldEqual, 0)
		})

		Convey("When metrics are mixed the weights apply", func() {
			// 0.3*100 + 0.3*100 + 0.2*0 + 0.2*0 = 60
			So(s.Composite(100, 100, 0, 0), ShouldEqual, 60)
		})

		Convey("When the weighted sum is fractional it rounds to nearest", func() {
			// 0.3*92 + 0.3*88 + 0.2*75 + 0.2*70 = 83.0
			So(s.Composite(92, 88, 75, 70), ShouldEqual, 83)
			// 0.3*91 + 0.3*88 + 0.2*75 + 0.2*70 = 82.7
			So(s.Composite(91, 88, 75, 70), ShouldEqual, 83)
		})
	})
}

func TestScore(t *testing.T) {
	Convey("Given a scorer and smoothed metrics from an ideal shot", t, func() {
		s := scoring.NewPiecewiseScorer()
		m := model.SmoothedMetrics{
			ElbowAngle:   90,
			ReleaseAngle: 52,
			KneeAngle:    115,
			Alignment:    100,
		}

		Convey("When scoring", func() {
			scores := s.Score(m)

			Convey("Then every component and the composite are perfect", func() {
				So(scores.Elbow, ShouldEqual, 100.0)
				So(scores.Release, ShouldEqual, 100.0)
				So(scores.Knee, ShouldEqual, 100.0)
				So(scores.Alignment, ShouldEqual, 100.0)
				So(scores.Composite, ShouldEqual, 100)
			})
		})
	})
}

func TestScorerOptions(t *testing.T) {
	Convey("Given configuration options", t, func() {
		Convey("When custom bands are supplied", func() {
			s := scoring.NewPiecewiseScorer(
				scoring.WithElbowBand(100, 5),
				scoring.WithReleaseBand(40, 50),
				scoring.WithKneeBand(110, 120),
			)

			Convey("Then the scoring laws follow the new bands", func() {
				So(s.ElbowScore(100), ShouldEqual, 100.0)
				So(s.ReleaseScore(45), ShouldEqual, 100.0)
				So(s.KneeScore(115), ShouldEqual, 100.0)
				So(s.KneeScore(100), ShouldAlmostEqual, 90.909090, 0.0001)
			})
		})

		Convey("When custom weights are supplied", func() {
			s := scoring.NewPiecewiseScorer(scoring.WithWeights(scoring.Weights{
				Elbow: 0.25, Release: 0.25, Knee: 0.25, Alignment: 0.25,
			}))

			Convey("Then the composite uses them", func() {
				So(s.Composite(100, 100, 0, 0), ShouldEqual, 50)
			})
		})

		Convey("When invalid weights are supplied they are ignored", func() {
			s := scoring.NewPiecewiseScorer(scoring.WithWeights(scoring.Weights{
				Elbow: 0.5, Release: 0.5, Knee: 0.5, Alignment: 0.5,
			}))

			So(s.Composite(100, 100, 0, 0), ShouldEqual, 60)
		})
	})
}
