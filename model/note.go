package model

// NoteEvent is one sounded note. Times are in seconds.
type NoteEvent struct {
	Pitch     uint8   `json:"pitch"`
	StartTime float64 `json:"start_time"`
	Duration  float64 `json:"duration"`
	Velocity  uint8   `json:"velocity"`
}

func (n NoteEvent) End() float64 {
	return n.StartTime + n.Duration
}

type Notes = []NoteEvent
