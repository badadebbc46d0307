package components

import (
	"math"
	"time"

	cfg "github.com/automoto/skybreaker/config"
	"github.com/yohamta/donburi"
)

// Pulse bounces Alpha between Min and Max, flipping direction at the bounds.
type Pulse struct {
	Alpha float64
	Speed float64
	Min   float64
	Max   float64
}

func NewPulse(c cfg.PulseConfig) Pulse {
	return Pulse{Alpha: c.Max, Speed: c.Speed, Min: c.Min, Max: c.Max}
}

// Step advances the pulse by one tick.
func (p *Pulse) Step() {
	p.Alpha -= p.Speed
	if p.Alpha <= p.Min {
		p.Alpha = p.Min
		p.Speed = -math.Abs(p.Speed)
	} else if p.Alpha >= p.Max {
		p.Alpha = p.Max
		p.Speed = math.Abs(p.Speed)
	}
}

// Reset returns the pulse to fully opaque.
func (p *Pulse) Reset() {
	p.Alpha = p.Max
	p.Speed = math.Abs(p.Speed)
}

// ShieldData absorbs one hit. Warning drives the faster flicker shown near
// expiry.
type ShieldData struct {
	Active  bool
	Started time.Duration
	Pulse   Pulse
	Warning Pulse
}

// Remaining returns the time left before the shield expires.
func (s *ShieldData) Remaining(now time.Duration) time.Duration {
	if !s.Active {
		return 0
	}
	return cfg.Player.ShieldDuration - (now - s.Started)
}

// Covers reports whether the shield still absorbs a hit at now.
func (s *ShieldData) Covers(now time.Duration) bool {
	return s.Active && now-s.Started <= cfg.Player.ShieldDuration
}

// Alpha returns the overlay alpha for the current phase of the shield.
func (s *ShieldData) Alpha(now time.Duration) float64 {
	if s.Remaining(now) <= cfg.Player.ShieldWarning {
		return s.Warning.Alpha
	}
	return s.Pulse.Alpha
}

var Shield = donburi.NewComponentType[ShieldData]()

type InvincibleData struct {
	Active  bool
	Started time.Duration
	Pulse   Pulse
}

// Covers reports whether invincibility still applies at now. It holds for
// exactly the configured duration after Started.
func (i *InvincibleData) Covers(now time.Duration) bool {
	return i.Active && now-i.Started <= cfg.Player.InvincibleDuration
}

var Invincible = donburi.NewComponentType[InvincibleData]()
