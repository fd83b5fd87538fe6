package models

// MediaCandidate is what the ingestion surface hands the core once a file
// has been uploaded and (optionally) probed: everything but placement.
// Duration may be zero when metadata has not resolved yet.
type MediaCandidate struct {
	Kind      ClipKind `json:"type"`
	URL       string   `json:"url"`
	FileName  string   `json:"fileName,omitempty"`
	MimeType  string   `json:"mimeType,omitempty"`
	Duration  float64  `json:"duration,omitempty"`
	HasAudio  *bool    `json:"hasAudio,omitempty"`
	Thumbnail string   `json:"thumbnail,omitempty"`
}

// ClipPatch carries raw move/trim values from the editing surface. Nil
// fields are untouched. Values are raw: the core clamps them.
type ClipPatch struct {
	StartTime *float64 `json:"startTime,omitempty"`
	TrimStart *float64 `json:"trimStart,omitempty"`
	TrimEnd   *float64 `json:"trimEnd,omitempty"`
}

// EditorState is the full read-only snapshot the rendering surface draws.
type EditorState struct {
	Clips          []Clip       `json:"clips"`
	SelectedClipID string       `json:"selectedClipId,omitempty"`
	CurrentTime    float64      `json:"currentTime"`
	TotalDuration  float64      `json:"totalDuration"`
	IsPlaying      bool         `json:"isPlaying"`
	ActiveClip     *ActiveClip  `json:"activeClip,omitempty"`
	View           ViewGeometry `json:"view"`
	TimeDisplay    string       `json:"timeDisplay"`
	TotalDisplay   string       `json:"totalDisplay"`
}
