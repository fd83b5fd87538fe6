// Package timeline owns the ordered clip collection and the aggregates
// derived from it. Clips keep insertion order; playback sequencing walks
// that order. Aggregates are pure derivations recomputed from the clips on
// demand, never cached.
package timeline

import "clipforge/internal/models"

// Timeline is the canonical clip collection for one editing session.
type Timeline struct {
	clips []models.Clip
}

func New() *Timeline {
	return &Timeline{}
}

// Clips returns the clips in insertion order. The slice is a copy; the
// collection owns its clips exclusively.
func (t *Timeline) Clips() []models.Clip {
	out := make([]models.Clip, len(t.clips))
	copy(out, t.clips)
	return out
}

func (t *Timeline) Len() int {
	return len(t.clips)
}

// Get returns the clip with the given id.
func (t *Timeline) Get(id string) (models.Clip, bool) {
	for _, c := range t.clips {
		if c.ID == id {
			return c, true
		}
	}
	return models.Clip{}, false
}

// IndexOf returns the insertion-order index of id, or -1.
func (t *Timeline) IndexOf(id string) int {
	for i, c := range t.clips {
		if c.ID == id {
			return i
		}
	}
	return -1
}

// First returns the earliest-inserted clip, if any.
func (t *Timeline) First() (models.Clip, bool) {
	if len(t.clips) == 0 {
		return models.Clip{}, false
	}
	return t.clips[0], true
}

// NextAfter returns the clip inserted immediately after id. Insertion
// order is the playback order; it is not filtered by track.
func (t *Timeline) NextAfter(id string) (models.Clip, bool) {
	idx := t.IndexOf(id)
	if idx == -1 || idx >= len(t.clips)-1 {
		return models.Clip{}, false
	}
	return t.clips[idx+1], true
}

// Append adds a fully-formed clip at the end of the insertion order.
func (t *Timeline) Append(c models.Clip) {
	t.clips = append(t.clips, c)
}

// Apply replaces the clip with id by op(clip). A missing id is a silent
// no-op: drags and async updates racing a deletion are expected.
func (t *Timeline) Apply(id string, op func(models.Clip) models.Clip) bool {
	for i, c := range t.clips {
		if c.ID == id {
			t.clips[i] = op(c)
			return true
		}
	}
	return false
}

// Delete removes the clip with id. Reports whether anything was removed.
func (t *Timeline) Delete(id string) bool {
	for i, c := range t.clips {
		if c.ID == id {
			t.clips = append(t.clips[:i], t.clips[i+1:]...)
			return true
		}
	}
	return false
}

// TotalDuration is the assembled length of the timeline: the video/image
// lane and the audio lane aggregate independently and the larger maximum
// end time wins.
func (t *Timeline) TotalDuration() float64 {
	var maxVisualEnd, maxAudioEnd float64
	for _, c := range t.clips {
		if c.IsVisual() {
			if c.EndTime > maxVisualEnd {
				maxVisualEnd = c.EndTime
			}
		} else if c.Kind == models.KindAudio {
			if c.EndTime > maxAudioEnd {
				maxAudioEnd = c.EndTime
			}
		}
	}
	if maxAudioEnd > maxVisualEnd {
		return maxAudioEnd
	}
	return maxVisualEnd
}

// Placement computes where a new clip of the given kind lands: appended
// after the current max end time of its media class, on that class's lane.
func (t *Timeline) Placement(kind models.ClipKind) (startTime float64, track int) {
	if kind == models.KindAudio {
		track = models.TrackAudio
	} else {
		track = models.TrackVideo
	}
	for _, c := range t.clips {
		sameClass := (kind == models.KindAudio && c.Kind == models.KindAudio) ||
			(kind != models.KindAudio && c.IsVisual())
		if sameClass && c.EndTime > startTime {
			startTime = c.EndTime
		}
	}
	return startTime, track
}
