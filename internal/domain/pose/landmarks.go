// Package pose defines the body-landmark model supplied by the upstream
// pose source and the pure geometry used to turn landmarks into joint
// metrics.
//
// Coordinates are normalized image coordinates: x and y in [0,1] with
// y increasing downward. Depth and visibility are optional passthrough
// values from the pose source; the geometry here only reads x and y.
package pose

// Body landmark indices following the MediaPipe Pose convention.
// See: https://developers.google.com/mediapipe/solutions/vision/pose_landmarker
const (
	Nose           = 0
	LeftEyeInner   = 1
	LeftEye        = 2
	LeftEyeOuter   = 3
	RightEyeInner  = 4
	RightEye       = 5
	RightEyeOuter  = 6
	LeftEar        = 7
	RightEar       = 8
	MouthLeft      = 9
	MouthRight     = 10
	LeftShoulder   = 11
	RightShoulder  = 12
	LeftElbow      = 13
	RightElbow     = 14
	LeftWrist      = 15
	RightWrist     = 16
	LeftPinky      = 17
	RightPinky     = 18
	LeftIndex      = 19
	RightIndex     = 20
	LeftThumb      = 21
	RightThumb     = 22
	LeftHip        = 23
	RightHip       = 24
	LeftKnee       = 25
	RightKnee      = 26
	LeftAnkle      = 27
	RightAnkle     = 28
	LeftHeel       = 29
	RightHeel      = 30
	LeftFootIndex  = 31
	RightFootIndex = 32
	NumLandmarks   = 33
)

// Point is one tracked body point in normalized coordinates.
type Point struct {
	X          float64 `json:"x"`
	Y          float64 `json:"y"`
	Z          float64 `json:"z,omitempty"`
	Visibility float64 `json:"visibility,omitempty"`
}

// Frame is one sampled set of landmarks. Only landmarks the pose source
// actually detected are present; absent joints have no entry.
type Frame struct {
	Landmarks map[int]Point
}

// NewFrame returns an empty frame ready to receive landmarks.
func NewFrame() *Frame {
	return &Frame{Landmarks: make(map[int]Point, NumLandmarks)}
}

// Set records the position of a single landmark.
func (f *Frame) Set(index int, p Point) {
	f.Landmarks[index] = p
}

// At returns the landmark at index and whether it is present.
func (f *Frame) At(index int) (Point, bool) {
	if f == nil || f.Landmarks == nil {
		return Point{}, false
	}
	p, ok := f.Landmarks[index]
	return p, ok
}

// RequiredJoints are the twelve landmarks the analysis cannot run
// without: both shoulders, elbows, wrists, hips, knees, and ankles.
var RequiredJoints = []int{
	LeftShoulder, RightShoulder,
	LeftElbow, RightElbow,
	LeftWrist, RightWrist,
	LeftHip, RightHip,
	LeftKnee, RightKnee,
	LeftAnkle, RightAnkle,
}

// Complete reports whether every required joint is present in the frame.
func (f *Frame) Complete() bool {
	if f == nil || f.Landmarks == nil {
		return false
	}
	for _, j := range RequiredJoints {
		if _, ok := f.Landmarks[j]; !ok {
			return false
		}
	}
	return true
}

// Side selects which arm and leg feed the single-sided metrics.
type Side string

// Supported shooting sides.
const (
	SideLeft  Side = "left"
	SideRight Side = "right"
)

// Valid reports whether s names a supported side.
func (s Side) Valid() bool {
	return s == SideLeft || s == SideRight
}

// Shoulder returns the landmark index of the side's shoulder.
func (s Side) Shoulder() int {
	if s == SideLeft {
		return LeftShoulder
	}
	return RightShoulder
}

// Elbow returns the landmark index of the side's elbow.
func (s Side) Elbow() int {
	if s == SideLeft {
		return LeftElbow
	}
	return RightElbow
}

// Wrist returns the landmark index of the side's wrist.
func (s Side) Wrist() int {
	if s == SideLeft {
		return LeftWrist
	}
	return RightWrist
}

// Hip returns the landmark index of the side's hip.
func (s Side) Hip() int {
	if s == SideLeft {
		return LeftHip
	}
	return RightHip
}

// Knee returns the landmark index of the side's knee.
func (s Side) Knee() int {
	if s == SideLeft {
		return LeftKnee
	}
	return RightKnee
}

// Ankle returns the landmark index of the side's ankle.
func (s Side) Ankle() int {
	if s == SideLeft {
		return LeftAnkle
	}
	return RightAnkle
}
