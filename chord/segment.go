package chord

import (
	"github.com/jsphweid/chordsmith/model"
)

// activeNotes counts sounding instances per MIDI pitch so a re-struck note that overlaps
// itself stays active until its last instance ends.
type activeNotes [128]int

func (a *activeNotes) apply(e noteEvent) {
	if !e.off {
		a[e.pitch]++
	} else if a[e.pitch] > 0 {
		a[e.pitch]--
	}
}

// pitchClasses returns the sounding pitch classes in ascending order and the pitch class of
// the lowest sounding note (-1 when silent).
func (a *activeNotes) pitchClasses() ([]int, int) {
	var seen [12]bool
	bass := -1
	for p, count := range a {
		if count == 0 {
			continue
		}
		if bass < 0 {
			bass = p % 12
		}
		seen[p%12] = true
	}
	var pcs []int
	for pc, ok := range seen {
		if ok {
			pcs = append(pcs, pc)
		}
	}
	return pcs, bass
}

type Segmenter struct {
	matcher *Matcher
	opts    Options
}

func NewSegmenter(m *Matcher, opts Options) *Segmenter {
	return &Segmenter{matcher: m, opts: opts}
}

// Spans sweeps the note on/off events left to right. A boundary is drawn only when an event
// time exceeds the previous boundary by more than the gap threshold; the last event time
// always closes a final span. Each span carries the pitch classes sounding just before its
// closing boundary and is labelled when at least three are present.
func (s *Segmenter) Spans(notes []model.NoteEvent) []model.Span {
	events := toEvents(notes)
	if len(events) == 0 {
		return nil
	}

	var spans []model.Span
	var active activeNotes
	lastBoundary := events[0].time

	for i := 0; i < len(events); {
		t := events[i].time
		j := i
		for j < len(events) && events[j].time == t {
			j++
		}
		final := j == len(events)

		if t-lastBoundary > s.opts.GapThreshold || (final && t > lastBoundary) {
			spans = append(spans, s.span(lastBoundary, t, &active))
			lastBoundary = t
		}
		for ; i < j; i++ {
			active.apply(events[i])
		}
	}
	return spans
}

func (s *Segmenter) span(start, end float64, active *activeNotes) model.Span {
	pcs, bass := active.pitchClasses()
	span := model.Span{StartTime: start, EndTime: end, PitchClasses: pcs}
	if len(pcs) < 3 {
		return span
	}
	if m, ok := s.matcher.Match(pcs, bass); ok {
		span.Labeled = true
		span.Root = m.Root
		span.Quality = string(m.Quality)
		span.Label = m.Label
	}
	return span
}
