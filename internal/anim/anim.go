// Package anim interpolates the squat-and-return motion cycle.
//
// The scheduler is polled: the caller supplies elapsed time at whatever
// cadence it refreshes and gets back the current thigh/shin angles plus a
// completion flag. No timer or state lives here; stopping the animation is
// simply not polling again.
package anim

import "math"

// Angles pairs a thigh and shin angle in degrees.
type Angles struct {
	Thigh float64
	Shin  float64
}

// Schedule describes one animation run: Cycles repetitions of a
// Duration-second squat cycle between the Stand and Squat targets.
type Schedule struct {
	Duration float64 // seconds per cycle
	Cycles   int
	Squat    Angles
	Stand    Angles // zero value means fully upright
}

// Frame is the interpolated output for one poll.
type Frame struct {
	Complete bool
	Thigh    float64
	Shin     float64
}

// FrameAt returns the frame for the given elapsed time. Past the total
// duration the frame is Complete with angles pinned at the squat targets;
// the transition is one-way for a given run, restarting means measuring
// elapsed time from a fresh start.
func (s Schedule) FrameAt(elapsed float64) Frame {
	total := s.Duration * float64(s.Cycles)
	if total <= 0 || elapsed >= total {
		return Frame{Complete: true, Thigh: s.Squat.Thigh, Shin: s.Squat.Shin}
	}
	if elapsed < 0 {
		elapsed = 0
	}

	u := math.Mod(elapsed, s.Duration) / s.Duration
	e := smooth(u)

	return Frame{
		Thigh: s.Squat.Thigh - (s.Squat.Thigh-s.Stand.Thigh)*e,
		Shin:  s.Squat.Shin - (s.Squat.Shin-s.Stand.Shin)*e,
	}
}

// smooth maps one cycle of linear time to a 0→1→0 eased sweep: a full
// cosine period, so each cycle rises out of the squat and settles back in.
func smooth(t float64) float64 {
	return (1 - math.Cos(2*math.Pi*t)) / 2
}
