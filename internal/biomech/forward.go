package biomech

import "math"

// JointPositions is the chain ankle→knee→hip→torsoTop in upward-y
// coordinates with the ankle at the origin. Successive segment lengths are
// exactly ShinLength, FemurLength, TorsoLength.
type JointPositions struct {
	Ankle    Point
	Knee     Point
	Hip      Point
	TorsoTop Point
}

// DerivedState is everything the evaluator computes from one Parameters
// value.
type DerivedState struct {
	Phi   float64 // thigh angle, radians
	Psi   float64 // shin angle, radians, sign-flipped
	Theta float64 // back angle from the balance equation, radians

	TorsoAngleDeg       float64 // |Theta| in degrees
	ShoulderHeight      float64 // standing stature, angle-independent
	TorsoShinRatio      float64
	ShinTorsoAngleRatio float64 // 0 when the back angle is 0

	Joints JointPositions
}

// Evaluate runs the forward kinematics: parameters in, joint positions and
// derived angles out. Total over all real-valued inputs; a balance ratio
// outside [-1,1] saturates the back angle at vertical instead of failing.
func Evaluate(p Parameters) DerivedState {
	phi := radians(p.ThighAngle)
	// positive shin angle leans the shank backward
	psi := radians(-p.ShinAngle)

	ratio := (-p.FeetLength/2 - p.ShinLength*math.Sin(psi) - p.FemurLength*math.Sin(phi)) / p.TorsoLength
	theta := math.Asin(clamp(ratio, -1, 1))

	torsoDeg := math.Abs(degrees(theta))
	angleRatio := 0.0
	if torsoDeg != 0 {
		angleRatio = p.ShinAngle / torsoDeg
	}

	var j JointPositions
	j.Knee = j.Ankle.add(segment(p.ShinLength, psi))
	j.Hip = j.Knee.add(segment(p.FemurLength, phi))
	j.TorsoTop = j.Hip.add(segment(p.TorsoLength, theta))

	return DerivedState{
		Phi:                 phi,
		Psi:                 psi,
		Theta:               theta,
		TorsoAngleDeg:       torsoDeg,
		ShoulderHeight:      p.Stature(),
		TorsoShinRatio:      p.TorsoLength / p.ShinLength,
		ShinTorsoAngleRatio: angleRatio,
		Joints:              j,
	}
}

// segment is a bone vector of the given length at the given angle from
// vertical.
func segment(length, angle float64) Point {
	return Point{length * math.Sin(angle), length * math.Cos(angle)}
}

func radians(deg float64) float64 { return deg * math.Pi / 180 }
func degrees(rad float64) float64 { return rad * 180 / math.Pi }

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
