package chord

import (
	"github.com/jsphweid/chordsmith/model"
	"github.com/jsphweid/chordsmith/pitch"
	"github.com/jsphweid/chordsmith/theory"
)

// Engine turns note events into merged, labelled chord regions.
type Engine struct {
	segmenter *Segmenter
	opts      Options
}

func NewEngine(dict *theory.Dictionary, opts Options) *Engine {
	return &Engine{segmenter: NewSegmenter(NewMatcher(dict), opts), opts: opts}
}

func (e *Engine) Segment(notes []model.NoteEvent) []model.ChordRegion {
	var regions []model.ChordRegion
	for _, span := range e.segmenter.Spans(notes) {
		if !span.Labeled {
			continue
		}
		regions = append(regions, model.ChordRegion{
			StartTime:      span.StartTime,
			EndTime:        span.EndTime,
			PitchClasses:   span.PitchClasses,
			RootPitchClass: span.Root,
			QualityID:      span.Quality,
			Label:          span.Label,
		})
	}
	return Merge(regions, e.opts.MergeGapThreshold)
}

// Merge joins consecutive regions with the same root and quality whose gap is below
// maxGap, extending the earlier region and taking the union of pitch classes.
// The input is not modified. Merging an already merged list returns it unchanged.
func Merge(regions []model.ChordRegion, maxGap float64) []model.ChordRegion {
	var res []model.ChordRegion
	for _, r := range regions {
		if n := len(res); n > 0 {
			prev := &res[n-1]
			if prev.RootPitchClass == r.RootPitchClass && prev.QualityID == r.QualityID &&
				r.StartTime-prev.EndTime < maxGap {
				if r.EndTime > prev.EndTime {
					prev.EndTime = r.EndTime
				}
				prev.PitchClasses = unionPitchClasses(prev.PitchClasses, r.PitchClasses)
				continue
			}
		}
		r.PitchClasses = append([]int(nil), r.PitchClasses...)
		res = append(res, r)
	}
	return res
}

func unionPitchClasses(a, b []int) []int {
	var seen [12]bool
	for _, pc := range a {
		seen[pitch.Mod12(pc)] = true
	}
	for _, pc := range b {
		seen[pitch.Mod12(pc)] = true
	}
	res := make([]int, 0, len(a))
	for pc, ok := range seen {
		if ok {
			res = append(res, pc)
		}
	}
	return res
}
