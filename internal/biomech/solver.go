package biomech

import (
	"errors"
	"fmt"
	"math"
)

// ErrNoRoot reports a bisection bracket whose endpoint values share a
// sign: no consistent shin angle exists in [0°, 90°] for the requested
// femur length.
var ErrNoRoot = errors.New("no sign change in bisection bracket")

const (
	bisectIterations = 30
	bisectTolerance  = 1e-6
)

// FemurUpdate is the consistent parameter set re-derived for an edited
// femur length.
type FemurUpdate struct {
	Shin      float64
	Torso     float64
	ShinAngle float64 // degrees
}

// SolveFemurLength recomputes shin length, torso length, and shin angle
// for a new femur length so the pose keeps the snapshot's stature and
// ratios (or the session baseline when snap is nil).
//
// The lengths come from the linear system
//
//	shin + femur + torso = H
//	torso = TS * shin
//
// and the shin angle from a 1-D root-find on the balance residual. The
// root equation mixes sin(x) and sin(R*x), so there is no closed form;
// bisection over [0°, 90°] is robust in the operating range.
func SolveFemurLength(newFemur float64, p Parameters, iv InitialValues, snap *DragSnapshot) (FemurUpdate, error) {
	r, ts, h := iv.RShin, iv.T0/iv.S0, iv.H0
	if snap != nil {
		r, ts, h = snap.Ratio, snap.TSRatio, snap.ShoulderHeight
	}

	shin := (h - newFemur) / (1 + ts)
	torso := ts * shin

	f := func(xDeg float64) float64 {
		return shin*math.Sin(radians(r*xDeg)) + torso*math.Sin(radians(xDeg)) -
			newFemur*math.Sin(iv.Phi) - p.FeetLength/2
	}

	x, err := bisect(f, 0, 90)
	if err != nil {
		return FemurUpdate{}, fmt.Errorf("femur length %.3f: %w", newFemur, err)
	}

	return FemurUpdate{Shin: shin, Torso: torso, ShinAngle: r * x}, nil
}

// bisect finds a root of f in [lo, hi]. The bracket is validated up front
// and ErrNoRoot returned when the endpoints do not straddle zero. The
// bracket half to keep is chosen against f(lo) recomputed each iteration,
// not a sign reference fixed at entry.
func bisect(f func(float64) float64, lo, hi float64) (float64, error) {
	if f(lo)*f(hi) > 0 {
		return 0, ErrNoRoot
	}

	mid := (lo + hi) / 2
	for i := 0; i < bisectIterations; i++ {
		mid = (lo + hi) / 2
		fm := f(mid)
		if math.Abs(fm) < bisectTolerance {
			return mid, nil
		}
		if f(lo)*fm < 0 {
			hi = mid
		} else {
			lo = mid
		}
	}
	return mid, nil
}
