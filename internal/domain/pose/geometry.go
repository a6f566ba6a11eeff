package pose

import "math"

// Alignment scoring constants.
const (
	alignmentMax       = 100.0
	alignmentSlope     = 1000.0 // score units per unit of normalized vertical disparity
	degreesPerRadian   = 180.0 / math.Pi
	fullCircleDegrees  = 360.0
	straightLineDegree = 180.0
)

// JointAngle computes the interior angle at vertex formed by the
// segments vertex->p1 and vertex->p3, in degrees. The result is always
// in [0,180] and is symmetric under swapping p1 and p3. Coincident
// points do not fault; atan2(0,0) resolves to 0 and the angle degrades
// to 0.
func JointAngle(p1, vertex, p3 Point) float64 {
	a := math.Atan2(p3.Y-vertex.Y, p3.X-vertex.X) - math.Atan2(p1.Y-vertex.Y, p1.X-vertex.X)
	deg := math.Abs(a * degreesPerRadian)
	if deg > straightLineDegree {
		deg = fullCircleDegrees - deg
	}
	return deg
}

// ReleaseAngle measures how far the wrist sits above the shoulder, in
// degrees, floored at 0. With y increasing downward, a wrist raised
// above the shoulder makes shoulder.Y-wrist.Y positive, so a higher
// release yields a larger angle.
func ReleaseAngle(shoulder, wrist Point) float64 {
	deg := math.Atan2(shoulder.Y-wrist.Y, math.Abs(shoulder.X-wrist.X)) * degreesPerRadian
	if deg < 0 {
		return 0
	}
	return deg
}

// ShoulderAlignment scores how level the shoulders are: 100 for
// perfectly level, decreasing linearly with vertical disparity and
// floored at 0.
func ShoulderAlignment(left, right Point) float64 {
	score := alignmentMax - alignmentSlope*math.Abs(left.Y-right.Y)
	if score < 0 {
		return 0
	}
	return score
}
