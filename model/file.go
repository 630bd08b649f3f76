package model

type FileNumToMidiPath = map[uint32]string

// Occurrence locates one chord region inside an indexed file.
type Occurrence struct {
	FileNum   uint32  `json:"file_num"`
	StartTime float64 `json:"start_time"`
	EndTime   float64 `json:"end_time"`
}

// Buckets maps a chord label to every place it occurs.
type Buckets = map[string][]Occurrence

type SearchResult struct {
	FileNum uint32    `json:"file_num"`
	Path    string    `json:"path"`
	Offsets []float64 `json:"offsets"`
}

type SearchResponse struct {
	Label      string         `json:"label"`
	NumMatches int            `json:"num_matches"`
	NumFiles   int            `json:"num_files"`
	Results    []SearchResult `json:"results"`
}
