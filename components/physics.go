package components

import (
	"github.com/yohamta/donburi"
)

// PhysicsData holds smoothed velocity. Speed approaches Target by
// Acceleration per tick and never exceeds MaxSpeed in magnitude. An axis
// already on its target is multiplied by Drag.
type PhysicsData struct {
	SpeedX       float64
	SpeedY       float64
	TargetX      float64
	TargetY      float64
	MaxSpeed     float64
	Acceleration float64
	Drag         float64
}

var Physics = donburi.NewComponentType[PhysicsData]()

// VelocityData is a constant per-tick displacement, used by projectiles.
type VelocityData struct {
	X, Y float64
}

var Velocity = donburi.NewComponentType[VelocityData]()
