package systems

import (
	"math"

	"github.com/automoto/skybreaker/components"
)

// easeAxis moves speed toward target by at most accel. An axis on its
// target decays by drag instead.
func easeAxis(speed, target, accel, drag float64) float64 {
	switch {
	case speed < target:
		return math.Min(speed+accel, target)
	case speed > target:
		return math.Max(speed-accel, target)
	}
	return speed * drag
}

// clampMagnitude scales (x, y) down so its length does not exceed max.
func clampMagnitude(x, y, max float64) (float64, float64) {
	length := math.Hypot(x, y)
	if length > max && length > 0 {
		scale := max / length
		return x * scale, y * scale
	}
	return x, y
}

// stepVelocity eases the current velocity toward the target one tick and
// enforces the max speed.
func stepVelocity(p *components.PhysicsData) {
	p.SpeedX = easeAxis(p.SpeedX, p.TargetX, p.Acceleration, p.Drag)
	p.SpeedY = easeAxis(p.SpeedY, p.TargetY, p.Acceleration, p.Drag)
	p.SpeedX, p.SpeedY = clampMagnitude(p.SpeedX, p.SpeedY, p.MaxSpeed)
}

func clamp(v, lo, hi float64) float64 {
	if hi < lo {
		return lo
	}
	return math.Max(lo, math.Min(v, hi))
}
