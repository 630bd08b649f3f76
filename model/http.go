package model

type SegmentRequestBody struct {
	Notes []NoteEvent `json:"notes"`
}

type SegmentResponse struct {
	Regions []ChordRegion `json:"regions"`
}

type IdentifyRequestBody struct {
	Pitches []int `json:"pitches"`
}

type IdentifyResponse struct {
	Root    string `json:"root"`
	Quality string `json:"quality"`
	Label   string `json:"label"`
	Exact   bool   `json:"exact"`
}

type VoicingResponse struct {
	Symbol   string `json:"symbol"`
	Notes    []int  `json:"notes"`
	Fallback bool   `json:"fallback"`
}

// BackingRequestBody leaves Octave nil to use the default, so octave 0 can be asked for.
type BackingRequestBody struct {
	Context string `json:"context"`
	Style   string `json:"style"`
	Bars    int    `json:"bars"`
	Octave  *int   `json:"octave,omitempty"`
}

type ErrorResponse struct {
	Error string `json:"detail"`
}
