package biomech

import "fmt"

// Parameters holds the six scalars describing the figure: two control
// angles in degrees and four segment lengths in meters.
type Parameters struct {
	ThighAngle  float64
	ShinAngle   float64
	TorsoLength float64
	FemurLength float64
	ShinLength  float64
	FeetLength  float64
}

func DefaultParameters() Parameters {
	return Parameters{
		ThighAngle:  90.0,
		ShinAngle:   45.0,
		TorsoLength: 0.50,
		FemurLength: 0.48,
		ShinLength:  0.41,
		FeetLength:  0.24,
	}
}

func (p Parameters) GetParams() map[string]float64 {
	return map[string]float64{
		"thigh_angle": p.ThighAngle,
		"shin_angle":  p.ShinAngle,
		"torso":       p.TorsoLength,
		"femur":       p.FemurLength,
		"shin":        p.ShinLength,
		"feet":        p.FeetLength,
	}
}

func (p *Parameters) SetParam(name string, value float64) error {
	switch name {
	case "thigh_angle":
		p.ThighAngle = value
	case "shin_angle":
		p.ShinAngle = value
	case "torso":
		p.TorsoLength = value
	case "femur":
		p.FemurLength = value
	case "shin":
		p.ShinLength = value
	case "feet":
		p.FeetLength = value
	default:
		return fmt.Errorf("unknown param: %s", name)
	}
	return nil
}

// Stature is the standing height shin+femur+torso. It does not depend on
// the current joint angles.
func (p Parameters) Stature() float64 {
	return p.ShinLength + p.FemurLength + p.TorsoLength
}
