package components

import "github.com/yohamta/donburi"

type HealthData struct {
	Current int
	Max     int
}

// Damage removes one point, clamped at zero, and reports whether the
// entity is now destroyed.
func (h *HealthData) Damage() bool {
	if h.Current > 0 {
		h.Current--
	}
	return h.Current == 0
}

// Ratio is Current/Max in [0,1].
func (h *HealthData) Ratio() float64 {
	if h.Max <= 0 {
		return 0
	}
	return float64(h.Current) / float64(h.Max)
}

var Health = donburi.NewComponentType[HealthData]()
