// Package biomech is the constraint-solving core of the squat visualizer.
//
// The figure is a four-segment planar chain (foot, shank, femur, torso)
// anchored at the ankle. Two angles are user-controlled; the back angle is
// derived from a horizontal balance constraint that keeps the torso top
// centered over the feet:
//
//	state := biomech.Evaluate(params)
//
// Editing the femur length is special-cased: [SolveFemurLength] re-derives
// the shin length, torso length, and shin angle so the pose stays
// consistent, preserving the ratios captured in a [DragSnapshot] (or the
// session baseline from [ComputeInitialValues] when no drag is active).
//
// All angles cross the package boundary in degrees and all lengths in
// meters; trigonometry is done in radians internally. Every function is
// pure: no state is retained between calls.
package biomech
