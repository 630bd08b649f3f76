package model

// PatternNote is a single accompaniment note. Times are in beats.
type PatternNote struct {
	Midi          uint8   `json:"midi"`
	TimeBeats     float64 `json:"time_beats"`
	DurationBeats float64 `json:"duration_beats"`
	Velocity      uint8   `json:"velocity"`
}

type BackingPattern struct {
	Notes      []PatternNote `json:"notes"`
	TotalBeats float64       `json:"total_beats"`
}
