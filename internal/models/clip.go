package models

// ClipKind identifies the media class of a clip.
type ClipKind string

const (
	KindVideo ClipKind = "video"
	KindAudio ClipKind = "audio"
	KindImage ClipKind = "image"
)

const (
	// MinClipDuration is the floor a trim can shrink a clip to, in seconds.
	MinClipDuration = 0.1

	// ImageDefaultDuration is the synthetic duration assigned to still images.
	ImageDefaultDuration = 5.0

	// TrackVideo is the primary video/image lane, TrackAudio the audio lane.
	TrackVideo = 0
	TrackAudio = 1
)

// Clip is one placed, trimmable media fragment on the timeline.
// All times are seconds. JSON field names match the frontend contract.
type Clip struct {
	ID        string   `json:"id"`
	Kind      ClipKind `json:"type"`
	URL       string   `json:"url"`
	FileName  string   `json:"fileName,omitempty"`
	MimeType  string   `json:"mimeType,omitempty"`
	Duration  float64  `json:"duration"`
	StartTime float64  `json:"startTime"`
	EndTime   float64  `json:"endTime"`
	TrimStart float64  `json:"trimStart"`
	TrimEnd   float64  `json:"trimEnd"`
	HasAudio  bool     `json:"hasAudio"`
	Thumbnail string   `json:"thumbnail,omitempty"`
	Track     int      `json:"track"`
}

// Length is the clip's extent on the global timeline.
func (c Clip) Length() float64 {
	return c.EndTime - c.StartTime
}

// IsVisual reports whether the clip occupies the video/image lane.
// Video and image clips aggregate together for duration purposes.
func (c Clip) IsVisual() bool {
	return c.Kind == KindVideo || c.Kind == KindImage
}

// Contains reports whether the global playhead time t falls inside the
// clip's span. The end bound is exclusive.
func (c Clip) Contains(t float64) bool {
	return t >= c.StartTime && t < c.EndTime
}
