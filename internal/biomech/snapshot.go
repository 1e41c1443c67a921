package biomech

// DragSnapshot fixes the three ratios observed at the moment a femur drag
// began, so chained adjustments preserve what the user currently sees
// rather than the session baseline.
type DragSnapshot struct {
	Ratio          float64 // shin angle per degree of back angle at capture
	TSRatio        float64 // torso length / shin length at capture
	ShoulderHeight float64 // standing stature at capture
}

// BeginDrag captures a snapshot from the current parameters. The caller
// owns the value for the lifetime of the gesture and ends the drag by
// dropping it; a nil snapshot passed to the solver means "use the session
// baseline". A back angle of exactly zero falls back to iv.RShin.
func BeginDrag(p Parameters, iv InitialValues) *DragSnapshot {
	d := Evaluate(p)
	ratio := iv.RShin
	if d.TorsoAngleDeg != 0 {
		ratio = p.ShinAngle / d.TorsoAngleDeg
	}
	return &DragSnapshot{
		Ratio:          ratio,
		TSRatio:        p.TorsoLength / p.ShinLength,
		ShoulderHeight: p.Stature(),
	}
}
