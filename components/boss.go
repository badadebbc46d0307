package components

import (
	"time"

	cfg "github.com/automoto/skybreaker/config"
	"github.com/yohamta/donburi"
)

// SweepState drives the normal pattern: a horizontal sweep between the
// playfield edges with a small vertical bob.
type SweepState struct {
	Direction float64 // +1 right, -1 left
}

// OrbitState drives the circle pattern.
type OrbitState struct {
	Angle float64
}

// ZigzagState drives the zigzag pattern.
type ZigzagState struct {
	Angle float64
	Step  float64
}

// BossData is the boss sub-state. Phase only ever moves from 1 to 2.
type BossData struct {
	Phase          int
	Pattern        cfg.BossPattern
	PatternStarted time.Duration
	AttackInterval time.Duration

	Sweep  SweepState
	Orbit  OrbitState
	Zigzag ZigzagState
}

var Boss = donburi.NewComponentType[BossData]()
