package api

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"clipforge/internal/drag"
	"clipforge/internal/editor"
	"clipforge/internal/models"
	"clipforge/internal/utils"
)

// SessionHandler exposes every core operation as a session-scoped intent.
type SessionHandler struct {
	store *editor.Store
}

func NewSessionHandler(store *editor.Store) *SessionHandler {
	return &SessionHandler{store: store}
}

type createSessionRequest struct {
	Seed *models.MediaCandidate `json:"seed,omitempty"`
}

type seekRequest struct {
	Time float64 `json:"time"`
}

type selectRequest struct {
	ClipID string `json:"clipId" binding:"required"`
}

type pointerDownRequest struct {
	ClipID string    `json:"clipId,omitempty"`
	Mode   drag.Mode `json:"mode,omitempty"`
	X      float64   `json:"x"`
}

type pointerMoveRequest struct {
	X float64 `json:"x"`
}

type playbackTimeRequest struct {
	Elapsed float64 `json:"elapsed"`
}

type keyRequest struct {
	Key string `json:"key" binding:"required"`
}

// session resolves the :id path param or responds 404.
func (h *SessionHandler) session(c *gin.Context) (*editor.Session, bool) {
	s, ok := h.store.Get(c.Param("id"))
	if !ok {
		respondError(c, http.StatusNotFound, "session_not_found", utils.ErrSessionNotFound)
		return nil, false
	}
	return s, true
}

// respondState snapshots the session back to the caller. Every intent
// returns the fresh state so the surface can redraw without a follow-up
// request.
func (h *SessionHandler) respondState(c *gin.Context, s *editor.Session) {
	state, err := s.State()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "state_invalid", err)
		return
	}
	respondOK(c, gin.H{"sessionId": s.ID(), "state": state})
}

// POST /sessions
func (h *SessionHandler) Create(c *gin.Context) {
	var req createSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		respondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	if req.Seed != nil && !validCandidate(*req.Seed) {
		respondError(c, http.StatusBadRequest, "invalid_request", utils.ErrInvalidInput)
		return
	}
	s := h.store.Create()
	if req.Seed != nil {
		s.AddMedia(c.Request.Context(), *req.Seed)
	}
	h.respondState(c, s)
}

// GET /sessions/:id/state
func (h *SessionHandler) State(c *gin.Context) {
	s, ok := h.session(c)
	if !ok {
		return
	}
	h.respondState(c, s)
}

// DELETE /sessions/:id
func (h *SessionHandler) Delete(c *gin.Context) {
	if !h.store.Delete(c.Param("id")) {
		respondError(c, http.StatusNotFound, "session_not_found", utils.ErrSessionNotFound)
		return
	}
	respondOK(c, gin.H{"deleted": true})
}

// POST /sessions/:id/media
func (h *SessionHandler) AddMedia(c *gin.Context) {
	s, ok := h.session(c)
	if !ok {
		return
	}
	var cand models.MediaCandidate
	if err := c.ShouldBindJSON(&cand); err != nil {
		respondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	if !validCandidate(cand) {
		respondError(c, http.StatusBadRequest, "invalid_request", utils.ErrInvalidInput)
		return
	}
	clip := s.AddMedia(c.Request.Context(), cand)
	state, err := s.State()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "state_invalid", err)
		return
	}
	respondOK(c, gin.H{"clip": clip, "state": state})
}

// PATCH /sessions/:id/clips/:clipId
func (h *SessionHandler) PatchClip(c *gin.Context) {
	s, ok := h.session(c)
	if !ok {
		return
	}
	var patch models.ClipPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		respondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	if !s.PatchClip(c.Param("clipId"), patch) {
		respondError(c, http.StatusNotFound, "clip_not_found", utils.ErrClipNotFound)
		return
	}
	h.respondState(c, s)
}

// DELETE /sessions/:id/clips/:clipId
func (h *SessionHandler) DeleteClip(c *gin.Context) {
	s, ok := h.session(c)
	if !ok {
		return
	}
	if !s.DeleteClip(c.Param("clipId")) {
		respondError(c, http.StatusNotFound, "clip_not_found", utils.ErrClipNotFound)
		return
	}
	h.respondState(c, s)
}

// POST /sessions/:id/select
func (h *SessionHandler) Select(c *gin.Context) {
	s, ok := h.session(c)
	if !ok {
		return
	}
	var req selectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	if !s.SelectClip(req.ClipID) {
		respondError(c, http.StatusNotFound, "clip_not_found", utils.ErrClipNotFound)
		return
	}
	h.respondState(c, s)
}

// POST /sessions/:id/seek
func (h *SessionHandler) Seek(c *gin.Context) {
	s, ok := h.session(c)
	if !ok {
		return
	}
	var req seekRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	s.Seek(req.Time)
	h.respondState(c, s)
}

// POST /sessions/:id/pointer/down
func (h *SessionHandler) PointerDown(c *gin.Context) {
	s, ok := h.session(c)
	if !ok {
		return
	}
	var req pointerDownRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	if req.ClipID != "" && !req.Mode.Valid() {
		respondError(c, http.StatusBadRequest, "invalid_request", utils.ErrInvalidInput)
		return
	}
	s.PointerDown(req.ClipID, req.Mode, req.X)
	h.respondState(c, s)
}

// POST /sessions/:id/pointer/move
func (h *SessionHandler) PointerMove(c *gin.Context) {
	s, ok := h.session(c)
	if !ok {
		return
	}
	var req pointerMoveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	s.PointerMove(req.X)
	h.respondState(c, s)
}

// POST /sessions/:id/pointer/up
func (h *SessionHandler) PointerUp(c *gin.Context) {
	s, ok := h.session(c)
	if !ok {
		return
	}
	s.PointerUp()
	h.respondState(c, s)
}

// POST /sessions/:id/playback/toggle
func (h *SessionHandler) TogglePlayback(c *gin.Context) {
	s, ok := h.session(c)
	if !ok {
		return
	}
	s.TogglePlayback()
	h.respondState(c, s)
}

// POST /sessions/:id/playback/time
func (h *SessionHandler) PlaybackTime(c *gin.Context) {
	s, ok := h.session(c)
	if !ok {
		return
	}
	var req playbackTimeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	s.TimeUpdate(req.Elapsed)
	h.respondState(c, s)
}

// POST /sessions/:id/playback/ended
func (h *SessionHandler) PlaybackEnded(c *gin.Context) {
	s, ok := h.session(c)
	if !ok {
		return
	}
	s.ClipEnded()
	h.respondState(c, s)
}

// POST /sessions/:id/key
func (h *SessionHandler) Key(c *gin.Context) {
	s, ok := h.session(c)
	if !ok {
		return
	}
	var req keyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	s.Key(req.Key)
	h.respondState(c, s)
}

func validKind(k models.ClipKind) bool {
	return k == models.KindVideo || k == models.KindAudio || k == models.KindImage
}

// validCandidate gates what ingestion will accept: a known kind, a source
// to point the player at, and a non-negative duration (0 means "resolve
// later", negative is garbage).
func validCandidate(cand models.MediaCandidate) bool {
	return validKind(cand.Kind) && cand.URL != "" && cand.Duration >= 0
}
