package biomech

import (
	"fmt"
	"math"
)

// InitialValues are the session baseline constants derived once from the
// default parameters. They seed the inverse solver whenever no drag
// snapshot is active.
type InitialValues struct {
	Psi0   float64 // baseline shin angle, radians
	Phi    float64 // baseline thigh angle, radians
	Theta0 float64 // solved baseline back angle, radians
	H0     float64 // standing height shin+femur+torso
	T0     float64 // baseline torso length
	S0     float64 // baseline shin length
	RShin  float64 // shin angle per degree of back angle
}

// ComputeInitialValues solves the balance equation for the given defaults
// and fixes the baseline constants. Unlike Evaluate it refuses a baseline
// that would need clamping: these values are ground truth for the session,
// so defaults outside the asin domain are a configuration error.
func ComputeInitialValues(defaults Parameters) (InitialValues, error) {
	phi := radians(defaults.ThighAngle)
	psi := radians(-defaults.ShinAngle)

	ratio := (-defaults.FeetLength/2 - defaults.ShinLength*math.Sin(psi) - defaults.FemurLength*math.Sin(phi)) / defaults.TorsoLength
	if ratio < -1 || ratio > 1 {
		return InitialValues{}, fmt.Errorf("default parameters put balance ratio %.4f outside [-1,1]", ratio)
	}

	d := Evaluate(defaults)
	return InitialValues{
		Psi0:   d.Psi,
		Phi:    d.Phi,
		Theta0: d.Theta,
		H0:     defaults.Stature(),
		T0:     defaults.TorsoLength,
		S0:     defaults.ShinLength,
		RShin:  d.ShinTorsoAngleRatio,
	}, nil
}
