package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"clipforge/internal/logger"
)

// NewRouter wires the session handler's routes behind logging and CORS.
func NewRouter(h *SessionHandler, log *logger.Logger, corsOrigins []string) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), RequestLog(log), CORS(corsOrigins))

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	sessions := r.Group("/sessions")
	{
		sessions.POST("", h.Create)
		sessions.GET("/:id/state", h.State)
		sessions.DELETE("/:id", h.Delete)

		sessions.POST("/:id/media", h.AddMedia)
		sessions.PATCH("/:id/clips/:clipId", h.PatchClip)
		sessions.DELETE("/:id/clips/:clipId", h.DeleteClip)

		sessions.POST("/:id/select", h.Select)
		sessions.POST("/:id/seek", h.Seek)
		sessions.POST("/:id/key", h.Key)

		sessions.POST("/:id/pointer/down", h.PointerDown)
		sessions.POST("/:id/pointer/move", h.PointerMove)
		sessions.POST("/:id/pointer/up", h.PointerUp)

		sessions.POST("/:id/playback/toggle", h.TogglePlayback)
		sessions.POST("/:id/playback/time", h.PlaybackTime)
		sessions.POST("/:id/playback/ended", h.PlaybackEnded)
	}

	return r
}
