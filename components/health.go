package components

import "github.com/yohamta/donburi"

type HealthData struct {
	Current int
	Max     int
}

// Percent returns current health as a percentage of max.
func (h *HealthData) Percent() float64 {
	if h.Max <= 0 {
		return 0
	}
	return float64(h.Current) / float64(h.Max) * 100
}

var Health = donburi.NewComponentType[HealthData]()
