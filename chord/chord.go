package chord

import (
	"sort"

	"github.com/jsphweid/chordsmith/model"
	"github.com/jsphweid/chordsmith/pitch"
)

const (
	DefaultGapThreshold      = 0.1
	DefaultMergeGapThreshold = 0.2
)

// Options holds the segmentation thresholds in seconds.
type Options struct {
	// GapThreshold is how far past the previous boundary an event must fall to open a new one.
	GapThreshold float64
	// MergeGapThreshold is the largest gap bridged when merging equal neighbouring regions.
	MergeGapThreshold float64
}

func DefaultOptions() Options {
	return Options{GapThreshold: DefaultGapThreshold, MergeGapThreshold: DefaultMergeGapThreshold}
}

type noteEvent struct {
	time  float64
	off   bool
	pitch uint8
}

func toEvents(notes []model.NoteEvent) []noteEvent {
	events := make([]noteEvent, 0, len(notes)*2)
	for _, n := range notes {
		if n.Duration <= 0 || n.Pitch > pitch.MaxMidi {
			continue
		}
		events = append(events,
			noteEvent{time: n.StartTime, pitch: n.Pitch},
			noteEvent{time: n.End(), off: true, pitch: n.Pitch},
		)
	}

	// earlier first, then note offs, then lower pitch
	sort.Slice(events, func(i, j int) bool {
		if events[i].time != events[j].time {
			return events[i].time < events[j].time
		}
		if events[i].off != events[j].off {
			return events[i].off
		}
		return events[i].pitch < events[j].pitch
	})
	return events
}
