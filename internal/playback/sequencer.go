// Package playback maps the global playhead onto the clip the playback
// surface should render, and stitches independently-trimmed clips into one
// continuous run by advancing selection when a clip ends.
package playback

import (
	"clipforge/internal/models"
	"clipforge/internal/timeline"
	"clipforge/internal/timescale"
)

// Sequencer owns the playback cursor for one session. The selected clip
// doubles as the active clip for playback.
type Sequencer struct {
	tl *timeline.Timeline

	selectedClipID string
	globalTime     float64
	isPlaying      bool
}

func NewSequencer(tl *timeline.Timeline) *Sequencer {
	return &Sequencer{tl: tl}
}

func (s *Sequencer) CurrentTime() float64   { return s.globalTime }
func (s *Sequencer) IsPlaying() bool        { return s.isPlaying }
func (s *Sequencer) SelectedClipID() string { return s.selectedClipID }

// Seek moves the playhead to target, clamped to [0, totalDuration].
// Seeking always pauses; playback never auto-resumes after a jump.
func (s *Sequencer) Seek(target float64) {
	s.globalTime = timescale.ClampTime(target, 0, s.tl.TotalDuration())
	s.isPlaying = false
}

// SelectClip makes the clip the active one and parks the playhead at its
// start, paused. A missing id is a silent no-op.
func (s *Sequencer) SelectClip(id string) bool {
	c, ok := s.tl.Get(id)
	if !ok {
		return false
	}
	s.selectedClipID = c.ID
	s.globalTime = c.StartTime
	s.isPlaying = false
	return true
}

// ClearSelection drops the active clip, used when it was deleted.
func (s *Sequencer) ClearSelection() {
	s.selectedClipID = ""
}

// EnsureSelection falls back to the first clip in insertion order when
// clips exist but nothing is selected.
func (s *Sequencer) EnsureSelection() {
	if s.selectedClipID != "" {
		return
	}
	if first, ok := s.tl.First(); ok {
		s.selectedClipID = first.ID
	}
}

// TogglePlayback flips the play/pause intent. The flag reflects intent
// only; whether media actually plays is the surface's concern.
func (s *Sequencer) TogglePlayback() {
	s.isPlaying = !s.isPlaying
}

// ActiveClip resolves the selected clip into what the playback surface
// should render. RelativeTime maps the global playhead into the clip's
// source: globalTime - startTime + trimStart while the playhead is inside
// the clip's span, 0 once it has drifted outside. Selection does not
// follow the playhead; it changes only via SelectClip or ClipEnded.
// Returns nil when the selected id no longer resolves to a clip.
func (s *Sequencer) ActiveClip() *models.ActiveClip {
	if s.selectedClipID == "" {
		return nil
	}
	c, ok := s.tl.Get(s.selectedClipID)
	if !ok {
		return nil
	}
	relative := 0.0
	if c.Contains(s.globalTime) {
		relative = s.globalTime - c.StartTime + c.TrimStart
	}
	return &models.ActiveClip{
		ID:           c.ID,
		URL:          c.URL,
		Kind:         c.Kind,
		StartTime:    c.StartTime,
		RelativeTime: relative,
	}
}

// ClipEnded advances to the next clip in insertion order and keeps
// playing, or stops on the last one. Insertion order is not filtered by
// track, so an audio clip inserted between two video clips takes part in
// the sequence; see the package tests.
func (s *Sequencer) ClipEnded() {
	next, ok := s.tl.NextAfter(s.selectedClipID)
	if !ok {
		s.isPlaying = false
		return
	}
	s.selectedClipID = next.ID
	s.globalTime = next.StartTime
	s.isPlaying = true
}

// TimeUpdate is the surface's periodic local-clock callback. The surface's
// clock is zero-based from the trimmed-in point, so the global playhead is
// simply the clip's start plus the elapsed local time; trimStart is not
// added back. Without an active clip the callback is ignored.
func (s *Sequencer) TimeUpdate(localElapsed float64) {
	c, ok := s.tl.Get(s.selectedClipID)
	if !ok {
		return
	}
	s.globalTime = c.StartTime + localElapsed
}
