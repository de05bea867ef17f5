package stats

import "time"

type Stats struct {
	Uptime        float64 `json:"uptime"`
	StatesServed  uint64  `json:"states_served"`
	RecipeReloads uint64  `json:"recipe_reloads"`
	WsClients     int     `json:"ws_clients"`

	start time.Time
}

func New() *Stats {
	s := &Stats{}
	s.start = time.Now()
	return s
}

func (s *Stats) Update() {
	s.Uptime = float64(time.Since(s.start).Nanoseconds()) / 1e9
}
