package editor

import (
	"math"

	"clipforge/internal/models"
	"clipforge/internal/timescale"
	"clipforge/internal/validate"
)

const (
	// minViewDuration keeps the timeline strip at least 60s wide so an
	// empty or short project still has room to drag into.
	minViewDuration = 60.0

	// markerIntervalSec is the spacing of the time ruler marks.
	markerIntervalSec = 10.0
)

// State snapshots the whole session for the rendering surface. The clip
// set is validated on the way out; a failure means a core bug and is
// surfaced as an error rather than a corrupt payload.
func (s *Session) State() (models.EditorState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	clips := s.tl.Clips()
	total := s.tl.TotalDuration()
	if err := validate.ValidateTimeline(clips, total); err != nil {
		s.log.Error("timeline failed validation", "error", err)
		return models.EditorState{}, err
	}

	now := s.seq.CurrentTime()
	return models.EditorState{
		Clips:          clips,
		SelectedClipID: s.seq.SelectedClipID(),
		CurrentTime:    now,
		TotalDuration:  total,
		IsPlaying:      s.seq.IsPlaying(),
		ActiveClip:     s.seq.ActiveClip(),
		View:           s.viewGeometry(clips, total, now),
		TimeDisplay:    timescale.FormatClock(now),
		TotalDisplay:   timescale.FormatClock(total),
	}, nil
}

// viewGeometry lays the clips out in pixel space the way the timeline
// strip draws them.
func (s *Session) viewGeometry(clips []models.Clip, total, now float64) models.ViewGeometry {
	viewDuration := math.Max(total, minViewDuration)
	rects := make([]models.ClipRect, 0, len(clips))
	for _, c := range clips {
		rects = append(rects, models.ClipRect{
			ClipID: c.ID,
			Left:   s.scale.TimeToPixels(c.StartTime),
			Width:  s.scale.TimeToPixels(c.Length()),
			Track:  c.Track,
		})
	}
	return models.ViewGeometry{
		PixelsPerSecond: float64(s.scale),
		TimelineWidth:   s.scale.TimeToPixels(viewDuration),
		PlayheadX:       s.scale.TimeToPixels(now),
		MarkerInterval:  markerIntervalSec,
		Clips:           rects,
	}
}
