package models

// ActiveClip is what the playback surface is told to render: the selected
// clip plus the position within its source the surface should start from.
type ActiveClip struct {
	ID           string   `json:"id"`
	URL          string   `json:"url"`
	Kind         ClipKind `json:"type"`
	StartTime    float64  `json:"startTime"`
	RelativeTime float64  `json:"relativeTime"`
}

// ViewGeometry is the read-only pixel layout the rendering surface draws
// from: total strip width, playhead position and per-clip rectangles.
type ViewGeometry struct {
	PixelsPerSecond float64    `json:"pixelsPerSecond"`
	TimelineWidth   float64    `json:"timelineWidth"`
	PlayheadX       float64    `json:"playheadX"`
	MarkerInterval  float64    `json:"markerIntervalSec"`
	Clips           []ClipRect `json:"clips"`
}

// ClipRect is one clip's horizontal placement in view space.
type ClipRect struct {
	ClipID string  `json:"clipId"`
	Left   float64 `json:"left"`
	Width  float64 `json:"width"`
	Track  int     `json:"track"`
}
