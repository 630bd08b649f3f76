package model

// Span is a raw segmenter interval [StartTime, EndTime) with the pitch classes that were
// sounding inside it. Root, Quality and Label are only meaningful when Labeled is set.
type Span struct {
	StartTime    float64
	EndTime      float64
	PitchClasses []int
	Labeled      bool
	Root         int
	Quality      string
	Label        string
}

type ChordRegion struct {
	StartTime      float64 `json:"start_time"`
	EndTime        float64 `json:"end_time"`
	PitchClasses   []int   `json:"pitch_classes"`
	RootPitchClass int     `json:"root_pitch_class"`
	QualityID      string  `json:"quality_id"`
	Label          string  `json:"label"`
}

func (r ChordRegion) Duration() float64 {
	return r.EndTime - r.StartTime
}
