package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"clipforge/internal/editor"
	"clipforge/internal/logger"
	"clipforge/internal/media"
	"clipforge/internal/models"
	"clipforge/internal/timescale"
)

type stateEnvelope struct {
	SessionID string             `json:"sessionId"`
	State     models.EditorState `json:"state"`
	Clip      *models.Clip       `json:"clip"`
}

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	log := logger.NewNop()
	store := editor.NewStore(timescale.DefaultPixelsPerSecond, media.NewResolver(nil, log), log)
	return NewRouter(NewSessionHandler(store), log, []string{"http://localhost:3000"})
}

func do(t *testing.T, r *gin.Engine, method, path string, body any) (*httptest.ResponseRecorder, stateEnvelope) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var env stateEnvelope
	if w.Code == http.StatusOK && bytes.HasPrefix(bytes.TrimSpace(w.Body.Bytes()), []byte("{")) {
		if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
			t.Fatalf("decode %s %s: %v (%s)", method, path, err, w.Body.String())
		}
	}
	return w, env
}

func createSession(t *testing.T, r *gin.Engine, seed *models.MediaCandidate) (string, models.EditorState) {
	t.Helper()
	var body any
	if seed != nil {
		body = gin.H{"seed": seed}
	}
	w, env := do(t, r, http.MethodPost, "/sessions", body)
	if w.Code != http.StatusOK {
		t.Fatalf("create session: status %d (%s)", w.Code, w.Body.String())
	}
	if env.SessionID == "" {
		t.Fatalf("create session: empty id")
	}
	return env.SessionID, env.State
}

func TestHealth(t *testing.T) {
	r := newTestRouter()
	w, _ := do(t, r, http.MethodGet, "/health", nil)
	if w.Code != http.StatusOK || w.Body.String() != "ok" {
		t.Fatalf("health: status %d body %q", w.Code, w.Body.String())
	}
}

func TestCreateSessionWithSeedClip(t *testing.T) {
	r := newTestRouter()
	_, state := createSession(t, r, &models.MediaCandidate{
		Kind: models.KindVideo, URL: "/demo.mp4", Duration: 10,
	})
	if len(state.Clips) != 1 {
		t.Fatalf("clips: got %d, want 1", len(state.Clips))
	}
	c := state.Clips[0]
	if c.StartTime != 0 || c.EndTime != 10 || c.Track != models.TrackVideo {
		t.Fatalf("seed clip: %+v", c)
	}
	if state.SelectedClipID != c.ID {
		t.Fatalf("seed clip not selected")
	}
	if state.TotalDuration != 10 {
		t.Fatalf("total duration: got %v, want 10", state.TotalDuration)
	}
}

func TestUnknownSessionIs404(t *testing.T) {
	r := newTestRouter()
	w, _ := do(t, r, http.MethodGet, "/sessions/nope/state", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("status: got %d, want 404", w.Code)
	}
	var env ErrorEnvelope
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode error envelope: %v", err)
	}
	if env.Error.Code != "session_not_found" {
		t.Fatalf("code: got %q", env.Error.Code)
	}
}

func TestAddMediaPlacesAudioOnOwnLane(t *testing.T) {
	r := newTestRouter()
	id, _ := createSession(t, r, &models.MediaCandidate{
		Kind: models.KindVideo, URL: "/demo.mp4", Duration: 10,
	})

	w, env := do(t, r, http.MethodPost, "/sessions/"+id+"/media", models.MediaCandidate{
		Kind: models.KindAudio, URL: "blob:a", Duration: 5,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("add media: status %d (%s)", w.Code, w.Body.String())
	}
	if env.Clip == nil || env.Clip.StartTime != 0 || env.Clip.Track != models.TrackAudio {
		t.Fatalf("audio clip: %+v", env.Clip)
	}
	if env.State.TotalDuration != 10 {
		t.Fatalf("total duration: got %v, want 10", env.State.TotalDuration)
	}
}

func TestAddMediaRejectsBadKind(t *testing.T) {
	r := newTestRouter()
	id, _ := createSession(t, r, nil)
	w, _ := do(t, r, http.MethodPost, "/sessions/"+id+"/media", gin.H{
		"type": "gif", "url": "blob:x",
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status: got %d, want 400", w.Code)
	}
}

func TestAddMediaRejectsNegativeDuration(t *testing.T) {
	r := newTestRouter()
	id, _ := createSession(t, r, nil)

	w, _ := do(t, r, http.MethodPost, "/sessions/"+id+"/media", models.MediaCandidate{
		Kind: models.KindVideo, URL: "blob:x", Duration: -5,
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status: got %d, want 400", w.Code)
	}

	// The bad candidate must not have reached the timeline: the session's
	// state endpoint keeps working.
	w, env := do(t, r, http.MethodGet, "/sessions/"+id+"/state", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("state after rejected media: status %d (%s)", w.Code, w.Body.String())
	}
	if len(env.State.Clips) != 0 {
		t.Fatalf("rejected clip reached the timeline: %+v", env.State.Clips)
	}
}

func TestCreateSessionRejectsNegativeSeedDuration(t *testing.T) {
	r := newTestRouter()
	w, _ := do(t, r, http.MethodPost, "/sessions", gin.H{
		"seed": models.MediaCandidate{Kind: models.KindVideo, URL: "blob:x", Duration: -1},
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status: got %d, want 400", w.Code)
	}
}

func TestSessionUsableWhileSeedMetadataPending(t *testing.T) {
	r := newTestRouter()
	id, state := createSession(t, r, &models.MediaCandidate{
		Kind: models.KindVideo, URL: "blob:pending",
	})
	if len(state.Clips) != 1 || state.Clips[0].Duration != 0 {
		t.Fatalf("seed clip: %+v", state.Clips)
	}

	// No prober is wired in tests, so the duration never resolves; every
	// endpoint must still answer.
	w, env := do(t, r, http.MethodGet, "/sessions/"+id+"/state", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("state with pending metadata: status %d (%s)", w.Code, w.Body.String())
	}
	if c := env.State.Clips[0]; c.EndTime != c.StartTime {
		t.Fatalf("pending clip should be zero-length: %+v", c)
	}
}

func TestSeekClampsViaAPI(t *testing.T) {
	r := newTestRouter()
	id, _ := createSession(t, r, &models.MediaCandidate{
		Kind: models.KindVideo, URL: "/demo.mp4", Duration: 60,
	})

	w, env := do(t, r, http.MethodPost, "/sessions/"+id+"/seek", gin.H{"time": 150})
	if w.Code != http.StatusOK {
		t.Fatalf("seek: status %d", w.Code)
	}
	if env.State.CurrentTime != 60 || env.State.IsPlaying {
		t.Fatalf("got time=%v playing=%v, want 60, paused", env.State.CurrentTime, env.State.IsPlaying)
	}
}

func TestPointerDragFlow(t *testing.T) {
	r := newTestRouter()
	id, state := createSession(t, r, &models.MediaCandidate{
		Kind: models.KindVideo, URL: "/demo.mp4", Duration: 10,
	})
	clipID := state.Clips[0].ID

	do(t, r, http.MethodPost, "/sessions/"+id+"/pointer/down", gin.H{
		"clipId": clipID, "mode": "trim-right", "x": 1000,
	})
	_, env := do(t, r, http.MethodPost, "/sessions/"+id+"/pointer/move", gin.H{"x": 800})
	if got := env.State.Clips[0].TrimEnd; got != 2 {
		t.Fatalf("trimEnd after drag: got %v, want 2", got)
	}
	_, env = do(t, r, http.MethodPost, "/sessions/"+id+"/pointer/up", nil)
	if got := env.State.Clips[0].TrimEnd; got != 2 {
		t.Fatalf("trimEnd after release: got %v, want 2", got)
	}
}

func TestDeleteClipEndpoints(t *testing.T) {
	r := newTestRouter()
	id, state := createSession(t, r, &models.MediaCandidate{
		Kind: models.KindVideo, URL: "/demo.mp4", Duration: 10,
	})
	clipID := state.Clips[0].ID

	w, env := do(t, r, http.MethodDelete, fmt.Sprintf("/sessions/%s/clips/%s", id, clipID), nil)
	if w.Code != http.StatusOK {
		t.Fatalf("delete clip: status %d", w.Code)
	}
	if len(env.State.Clips) != 0 || env.State.SelectedClipID != "" || env.State.ActiveClip != nil {
		t.Fatalf("state after delete: %+v", env.State)
	}

	w, _ = do(t, r, http.MethodDelete, fmt.Sprintf("/sessions/%s/clips/%s", id, clipID), nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("second delete: status %d, want 404", w.Code)
	}
}

func TestPlaybackEndedAdvances(t *testing.T) {
	r := newTestRouter()
	id, _ := createSession(t, r, &models.MediaCandidate{
		Kind: models.KindVideo, URL: "/a.mp4", Duration: 10,
	})
	_, env := do(t, r, http.MethodPost, "/sessions/"+id+"/media", models.MediaCandidate{
		Kind: models.KindVideo, URL: "/b.mp4", Duration: 8,
	})
	secondID := env.Clip.ID

	_, env = do(t, r, http.MethodPost, "/sessions/"+id+"/playback/ended", nil)
	if env.State.SelectedClipID != secondID || !env.State.IsPlaying {
		t.Fatalf("after ended: selected=%q playing=%v", env.State.SelectedClipID, env.State.IsPlaying)
	}
	if env.State.ActiveClip == nil || env.State.ActiveClip.URL != "/b.mp4" {
		t.Fatalf("active clip: %+v", env.State.ActiveClip)
	}
}

func TestKeyEndpointDeletesSelection(t *testing.T) {
	r := newTestRouter()
	id, _ := createSession(t, r, &models.MediaCandidate{
		Kind: models.KindVideo, URL: "/demo.mp4", Duration: 10,
	})
	_, env := do(t, r, http.MethodPost, "/sessions/"+id+"/key", gin.H{"key": "Delete"})
	if len(env.State.Clips) != 0 {
		t.Fatalf("clips after Delete key: %d", len(env.State.Clips))
	}
}
