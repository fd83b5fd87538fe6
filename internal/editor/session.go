// Package editor assembles the core into per-session editing state: one
// timeline, one playback sequencer, one drag machine. Every public method
// is one complete state transition, serialized by the session mutex so the
// engine behaves like the single-threaded event loop it models.
package editor

import (
	"context"
	"sync"

	"clipforge/internal/clipops"
	"clipforge/internal/drag"
	"clipforge/internal/logger"
	"clipforge/internal/media"
	"clipforge/internal/models"
	"clipforge/internal/playback"
	"clipforge/internal/timeline"
	"clipforge/internal/timescale"
)

// Key intents delivered by the keyboard surface.
const (
	KeyArrowLeft  = "ArrowLeft"
	KeyArrowRight = "ArrowRight"
	KeySpace      = "Space"
	KeyDelete     = "Delete"
)

// arrowSeekStep is how far one arrow press moves the playhead, seconds.
const arrowSeekStep = 1.0

// Session is one user's editing state.
type Session struct {
	mu sync.Mutex

	id       string
	scale    timescale.Scale
	tl       *timeline.Timeline
	seq      *playback.Sequencer
	drag     *drag.Machine
	resolver *media.Resolver
	log      *logger.Logger
}

func newSession(id string, scale timescale.Scale, resolver *media.Resolver, log *logger.Logger) *Session {
	tl := timeline.New()
	return &Session{
		id:       id,
		scale:    scale,
		tl:       tl,
		seq:      playback.NewSequencer(tl),
		drag:     drag.NewMachine(scale),
		resolver: resolver,
		log:      log.With("session_id", id),
	}
}

func (s *Session) ID() string { return s.id }

// AddMedia places a candidate on the timeline and, when its metadata is
// still unknown, kicks off an async probe whose result merges back through
// the same update path. The new clip is auto-selected only when nothing
// was selected.
func (s *Session) AddMedia(ctx context.Context, cand models.MediaCandidate) models.Clip {
	s.mu.Lock()
	clip := media.NewClip(s.tl, cand)
	s.tl.Append(clip)
	s.seq.EnsureSelection()
	s.mu.Unlock()

	s.log.Info("clip added",
		"clip_id", clip.ID, "kind", clip.Kind,
		"start", clip.StartTime, "duration", clip.Duration)

	if clip.Duration == 0 || (clip.Thumbnail == "" && clip.IsVisual()) {
		s.resolver.Resolve(ctx, clip.ID, clip.URL, clip.Kind, s.applyMetadata)
	}
	return clip
}

// applyMetadata is the resolver's re-entry point; it takes the session
// lock like any other transition.
func (s *Session) applyMetadata(clipID string, meta media.Metadata) {
	s.mu.Lock()
	merged := media.ApplyMetadata(s.tl, clipID, meta.Duration, meta.Thumbnail)
	s.mu.Unlock()
	if merged {
		s.log.Debug("clip metadata resolved", "clip_id", clipID, "duration", meta.Duration)
	}
}

// PatchClip applies raw move/trim values from the editing surface. Each
// value goes through its clamping operation; a missing clip is a no-op.
func (s *Session) PatchClip(clipID string, patch models.ClipPatch) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return applyPatch(s.tl, clipID, patch)
}

// DeleteClip removes a clip. Deleting the selected clip clears the
// selection; the playback surface is then told to render nothing.
func (s *Session) DeleteClip(clipID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.tl.Delete(clipID) {
		return false
	}
	if s.seq.SelectedClipID() == clipID {
		s.seq.ClearSelection()
	}
	return true
}

// SelectClip activates a clip and parks the playhead at its start.
func (s *Session) SelectClip(clipID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.seq.SelectClip(clipID)
}

// Seek moves the playhead, clamped to the assembled duration, and pauses.
func (s *Session) Seek(t float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seq.Seek(t)
}

// TogglePlayback flips the play/pause intent.
func (s *Session) TogglePlayback() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seq.TogglePlayback()
}

// PointerDown starts a drag on a clip, or, with no clip id, performs a
// background click-to-seek. Background clicks are ignored mid-drag so a
// release over empty timeline does not double as a seek.
func (s *Session) PointerDown(clipID string, mode drag.Mode, x float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if clipID == "" {
		if s.drag.Active() {
			return
		}
		s.seq.Seek(timescale.ClampTime(s.scale.PixelsToTime(x), 0, s.tl.TotalDuration()))
		return
	}
	if s.drag.Begin(s.tl, clipID, mode, x) {
		s.seq.SelectClip(clipID)
	}
}

// PointerMove feeds the drag machine one pointer position.
func (s *Session) PointerMove(x float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.drag.Move(s.tl, x)
}

// PointerUp ends the drag session wherever the pointer is.
func (s *Session) PointerUp() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.drag.End()
}

// TimeUpdate is the playback surface's periodic local-clock callback.
func (s *Session) TimeUpdate(localElapsed float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seq.TimeUpdate(localElapsed)
}

// ClipEnded is the playback surface's end-of-media callback.
func (s *Session) ClipEnded() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seq.ClipEnded()
}

// Key applies a keyboard intent. Unknown keys are ignored.
func (s *Session) Key(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	switch key {
	case KeyArrowLeft:
		s.seq.Seek(s.seq.CurrentTime() - arrowSeekStep)
	case KeyArrowRight:
		s.seq.Seek(s.seq.CurrentTime() + arrowSeekStep)
	case KeySpace:
		s.seq.TogglePlayback()
	case KeyDelete:
		selected := s.seq.SelectedClipID()
		if selected == "" {
			return
		}
		s.tl.Delete(selected)
		s.seq.ClearSelection()
	}
}

// applyPatch routes each raw field through its clamping operation.
func applyPatch(tl *timeline.Timeline, clipID string, patch models.ClipPatch) bool {
	found := false
	if patch.StartTime != nil {
		found = tl.Apply(clipID, func(c models.Clip) models.Clip {
			return clipops.MoveTo(c, *patch.StartTime)
		}) || found
	}
	if patch.TrimStart != nil {
		found = tl.Apply(clipID, func(c models.Clip) models.Clip {
			return clipops.TrimLeft(c, *patch.TrimStart)
		}) || found
	}
	if patch.TrimEnd != nil {
		found = tl.Apply(clipID, func(c models.Clip) models.Clip {
			return clipops.TrimRight(c, *patch.TrimEnd)
		}) || found
	}
	return found
}
