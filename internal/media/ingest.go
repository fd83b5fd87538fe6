// Package media turns uploaded-media candidates into placed clips and
// merges asynchronously probed metadata back into the timeline.
package media

import (
	"github.com/google/uuid"

	"clipforge/internal/models"
	"clipforge/internal/timeline"
)

// NewClip builds a fully-formed clip from a candidate and the placement
// the timeline computes for its media class: appended after the current
// max end time of same-class clips, default trims, fresh id. Images with
// no intrinsic duration get the synthetic 5s default; other kinds keep a
// zero duration until the prober reports (treated as provisional, not an
// error).
func NewClip(tl *timeline.Timeline, cand models.MediaCandidate) models.Clip {
	duration := cand.Duration
	if cand.Kind == models.KindImage && duration == 0 {
		duration = models.ImageDefaultDuration
	}

	startTime, track := tl.Placement(cand.Kind)

	hasAudio := cand.Kind == models.KindVideo || cand.Kind == models.KindAudio
	if cand.HasAudio != nil {
		hasAudio = *cand.HasAudio
	}

	return models.Clip{
		ID:        uuid.NewString(),
		Kind:      cand.Kind,
		URL:       cand.URL,
		FileName:  cand.FileName,
		MimeType:  cand.MimeType,
		Duration:  duration,
		StartTime: startTime,
		EndTime:   startTime + duration,
		TrimStart: 0,
		TrimEnd:   0,
		HasAudio:  hasAudio,
		Thumbnail: cand.Thumbnail,
		Track:     track,
	}
}

// ApplyMetadata merges a resolved duration and thumbnail into an existing
// clip, through the same update path interactive edits use. While the
// clip is still untouched (no trims) its end stretches to the resolved
// duration; once the user has trimmed, only the intrinsic duration and
// thumbnail are filled in. A deleted clip is a silent no-op.
func ApplyMetadata(tl *timeline.Timeline, clipID string, duration float64, thumbnail string) bool {
	return tl.Apply(clipID, func(c models.Clip) models.Clip {
		if duration > 0 {
			c.Duration = duration
			if c.TrimStart == 0 && c.TrimEnd == 0 {
				c.EndTime = c.StartTime + duration
			}
		}
		if thumbnail != "" {
			c.Thumbnail = thumbnail
		}
		return c
	})
}
