package biomech

import (
	"math"
	"testing"
)

func dist(a, b Point) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}

func TestEvaluateRegression(t *testing.T) {
	d := Evaluate(DefaultParameters())

	if got := d.Joints.Ankle; got.X != 0 || got.Y != 0 {
		t.Errorf("ankle should stay at origin, got %+v", got)
	}
	if math.Abs(d.Joints.Knee.X+0.2899137803) > 1e-6 || math.Abs(d.Joints.Knee.Y-0.2899137803) > 1e-6 {
		t.Errorf("knee: expected (-0.290, 0.290), got (%.4f, %.4f)", d.Joints.Knee.X, d.Joints.Knee.Y)
	}
	if math.Abs(d.TorsoAngleDeg-38.328728) > 1e-4 {
		t.Errorf("expected back angle 38.3287 deg, got %.4f", d.TorsoAngleDeg)
	}
	// balance constraint: torso top centered over the feet
	if math.Abs(d.Joints.TorsoTop.X+0.12) > 1e-9 {
		t.Errorf("expected torso top at x=-0.12, got %.6f", d.Joints.TorsoTop.X)
	}
	if math.Abs(d.ShoulderHeight-1.39) > 1e-9 {
		t.Errorf("expected shoulder height 1.39, got %.6f", d.ShoulderHeight)
	}
}

func TestEvaluateSegmentLengths(t *testing.T) {
	tests := []struct {
		name string
		p    Parameters
	}{
		{"defaults", DefaultParameters()},
		{"standing", Parameters{ThighAngle: 0, ShinAngle: 0, TorsoLength: 0.5, FemurLength: 0.48, ShinLength: 0.41, FeetLength: 0.24}},
		{"quarter squat", Parameters{ThighAngle: 45, ShinAngle: 20, TorsoLength: 0.5, FemurLength: 0.48, ShinLength: 0.41, FeetLength: 0.24}},
		{"clamped", Parameters{ThighAngle: 90, ShinAngle: 45, TorsoLength: 0.3, FemurLength: 2.0, ShinLength: 0.41, FeetLength: 0.24}},
		{"negative shin angle", Parameters{ThighAngle: 60, ShinAngle: -30, TorsoLength: 0.55, FemurLength: 0.5, ShinLength: 0.44, FeetLength: 0.26}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			j := Evaluate(tt.p).Joints
			if got := dist(j.Knee, j.Ankle); math.Abs(got-tt.p.ShinLength) > 1e-9 {
				t.Errorf("shank length: expected %.4f, got %.12f", tt.p.ShinLength, got)
			}
			if got := dist(j.Hip, j.Knee); math.Abs(got-tt.p.FemurLength) > 1e-9 {
				t.Errorf("femur length: expected %.4f, got %.12f", tt.p.FemurLength, got)
			}
			if got := dist(j.TorsoTop, j.Hip); math.Abs(got-tt.p.TorsoLength) > 1e-9 {
				t.Errorf("torso length: expected %.4f, got %.12f", tt.p.TorsoLength, got)
			}
		})
	}
}

func TestEvaluateClampSaturation(t *testing.T) {
	tests := []struct {
		name string
		p    Parameters
	}{
		{"lean past vertical forward", Parameters{ThighAngle: 90, ShinAngle: 45, TorsoLength: 0.3, FemurLength: 2.0, ShinLength: 0.41, FeetLength: 0.24}},
		{"lean past vertical backward", Parameters{ThighAngle: -90, ShinAngle: 89, TorsoLength: 0.5, FemurLength: 0.48, ShinLength: 0.41, FeetLength: 0.24}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := Evaluate(tt.p)
			if math.Abs(d.TorsoAngleDeg-90) > 1e-9 {
				t.Errorf("expected saturation at 90 deg, got %f", d.TorsoAngleDeg)
			}
			if math.IsNaN(d.Theta) || math.IsNaN(d.Joints.TorsoTop.X) || math.IsNaN(d.Joints.TorsoTop.Y) {
				t.Error("clamped evaluation produced NaN")
			}
		})
	}
}

func TestEvaluateZeroBackAngle(t *testing.T) {
	// feet of zero length and vertical segments balance with no lean
	p := Parameters{ThighAngle: 0, ShinAngle: 0, TorsoLength: 0.5, FemurLength: 0.48, ShinLength: 0.41, FeetLength: 0}
	d := Evaluate(p)

	if d.TorsoAngleDeg != 0 {
		t.Fatalf("expected zero back angle, got %f", d.TorsoAngleDeg)
	}
	if d.ShinTorsoAngleRatio != 0 {
		t.Errorf("expected ratio fallback 0 for zero back angle, got %f", d.ShinTorsoAngleRatio)
	}
}

func TestSetParam(t *testing.T) {
	p := DefaultParameters()

	if err := p.SetParam("femur", 0.52); err != nil {
		t.Fatalf("set failed: %v", err)
	}
	if p.FemurLength != 0.52 {
		t.Errorf("expected femur 0.52, got %f", p.FemurLength)
	}
	if err := p.SetParam("wingspan", 1.0); err == nil {
		t.Error("expected error for unknown param")
	}
}
