package sim

import (
	"math"
	"math/rand"

	"github.com/courtlab/shotform/internal/domain/pose"
)

// Shooter archetypes. Each profile centers the generated metrics on a
// characteristic flaw (or none, for elite).
const (
	ProfileElite       = "elite"
	ProfileFlatRelease = "flat_release"
	ProfileChickenWing = "chicken_wing"
	ProfileStiffLegs   = "stiff_legs"
	ProfileLeaning     = "leaning"
	ProfileErratic     = "erratic"
)

// Profiles lists the supported archetype names.
func Profiles() []string {
	return []string{
		ProfileElite,
		ProfileFlatRelease,
		ProfileChickenWing,
		ProfileStiffLegs,
		ProfileLeaning,
		ProfileErratic,
	}
}

// targets are the metric values one generated frame should exhibit.
type targets struct {
	elbowDeg    float64
	releaseDeg  float64
	kneeDeg     float64
	shoulderGap float64 // vertical shoulder disparity, normalized units
}

// Generator produces landmark frames whose geometry reproduces the
// profile's target metrics with per-frame jitter.
type Generator struct {
	profile string
	side    pose.Side
	rng     *rand.Rand
}

// NewGenerator creates a generator for the named profile. Unknown
// profiles fall back to elite.
func NewGenerator(profile string, side pose.Side, seed int64) *Generator {
	if !side.Valid() {
		side = pose.SideRight
	}
	return &Generator{
		profile: profile,
		side:    side,
		rng:     rand.New(rand.NewSource(seed)), //nolint:gosec // deterministic seed for reproducible sessions
	}
}

// jitter returns a uniform value in [-spread, spread].
func (g *Generator) jitter(spread float64) float64 {
	return (g.rng.Float64()*2 - 1) * spread
}

// nextTargets rolls the per-frame metric targets for the profile.
func (g *Generator) nextTargets() targets {
	t := targets{
		elbowDeg:    90 + g.jitter(2),
		releaseDeg:  52 + g.jitter(3),
		kneeDeg:     115 + g.jitter(5),
		shoulderGap: 0.002 + g.jitter(0.002),
	}

	switch g.profile {
	case ProfileFlatRelease:
		t.releaseDeg = 32 + g.jitter(4)
	case ProfileChickenWing:
		t.elbowDeg = 112 + g.jitter(5)
	case ProfileStiffLegs:
		t.kneeDeg = 148 + g.jitter(5)
	case ProfileLeaning:
		t.shoulderGap = 0.055 + g.jitter(0.015)
	case ProfileErratic:
		t.elbowDeg = 90 + g.jitter(30)
		t.releaseDeg = 45 + g.jitter(25)
		t.kneeDeg = 115 + g.jitter(35)
		t.shoulderGap = 0.02 + g.jitter(0.02)
	}

	if t.shoulderGap < 0 {
		t.shoulderGap = 0
	}
	return t
}

// Next synthesizes one complete frame.
func (g *Generator) Next() *pose.Frame {
	return g.frameFor(g.nextTargets())
}

// Skeleton layout constants, normalized image coordinates (y down).
const (
	shoulderY  = 0.42
	hipY       = 0.62
	ankleY     = 0.95
	torsoHalfW = 0.06
	wristReach = 0.06 // horizontal shoulder-to-wrist offset
)

// frameFor builds a frame whose shooting-side geometry reproduces the
// target metrics exactly (up to floating point).
//
// The elbow and knee are placed on the perpendicular bisector of their
// neighbor segment: for an isosceles triangle with apex angle theta the
// apex sits (d/2)/tan(theta/2) away from the midpoint. The wrist is
// placed so atan2(shoulder.y-wrist.y, |dx|) matches the release target.
func (g *Generator) frameFor(t targets) *pose.Frame {
	f := pose.NewFrame()

	sign := 1.0 // offsets point right of the torso for a right-handed shooter
	if g.side == pose.SideLeft {
		sign = -1.0
	}

	shootShoulder := pose.Point{X: 0.5 + sign*torsoHalfW, Y: shoulderY}
	offShoulder := pose.Point{X: 0.5 - sign*torsoHalfW, Y: shoulderY + t.shoulderGap}

	wrist := pose.Point{
		X: shootShoulder.X + sign*wristReach,
		Y: shootShoulder.Y - math.Tan(t.releaseDeg*math.Pi/180)*wristReach,
	}
	elbow := apexPoint(shootShoulder, wrist, t.elbowDeg, sign)

	shootHip := pose.Point{X: shootShoulder.X - sign*0.015, Y: hipY}
	shootAnkle := pose.Point{X: shootHip.X + sign*0.02, Y: ankleY}
	knee := apexPoint(shootHip, shootAnkle, t.kneeDeg, sign)

	offHip := pose.Point{X: offShoulder.X + sign*0.015, Y: hipY}
	offAnkle := pose.Point{X: offHip.X - sign*0.02, Y: ankleY}
	offKnee := apexPoint(offHip, offAnkle, 170, -sign)
	offElbow := pose.Point{X: offShoulder.X - sign*0.04, Y: shoulderY + 0.10}
	offWrist := pose.Point{X: offElbow.X - sign*0.02, Y: shoulderY + 0.18}

	f.Set(pose.Nose, pose.Point{X: 0.5, Y: 0.30})
	if g.side == pose.SideRight {
		f.Set(pose.RightShoulder, shootShoulder)
		f.Set(pose.RightElbow, elbow)
		f.Set(pose.RightWrist, wrist)
		f.Set(pose.RightHip, shootHip)
		f.Set(pose.RightKnee, knee)
		f.Set(pose.RightAnkle, shootAnkle)
		f.Set(pose.LeftShoulder, offShoulder)
		f.Set(pose.LeftElbow, offElbow)
		f.Set(pose.LeftWrist, offWrist)
		f.Set(pose.LeftHip, offHip)
		f.Set(pose.LeftKnee, offKnee)
		f.Set(pose.LeftAnkle, offAnkle)
	} else {
		f.Set(pose.LeftShoulder, shootShoulder)
		f.Set(pose.LeftElbow, elbow)
		f.Set(pose.LeftWrist, wrist)
		f.Set(pose.LeftHip, shootHip)
		f.Set(pose.LeftKnee, knee)
		f.Set(pose.LeftAnkle, shootAnkle)
		f.Set(pose.RightShoulder, offShoulder)
		f.Set(pose.RightElbow, offElbow)
		f.Set(pose.RightWrist, offWrist)
		f.Set(pose.RightHip, offHip)
		f.Set(pose.RightKnee, offKnee)
		f.Set(pose.RightAnkle, offAnkle)
	}

	return f
}

// apexPoint returns the point forming the interior angle apexDeg with
// the segment a-b, offset from the segment's midpoint toward sign's
// side of the body.
func apexPoint(a, b pose.Point, apexDeg, sign float64) pose.Point {
	dx := b.X - a.X
	dy := b.Y - a.Y
	d := math.Hypot(dx, dy)
	if d == 0 {
		return a
	}

	h := (d / 2) / math.Tan(apexDeg/2*math.Pi/180)
	// Perpendicular unit vector, oriented outward.
	nx := dy / d * sign
	ny := -dx / d * sign

	return pose.Point{
		X: (a.X+b.X)/2 + h*nx,
		Y: (a.Y+b.Y)/2 + h*ny,
	}
}
