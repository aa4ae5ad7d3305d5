package video

import "github.com/gin-gonic/gin"

// RegisterRoutes wires the video endpoints under the protected group.
func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	videos := r.Group("/videos")
	{
		videos.POST("", h.Upload)
		videos.GET("", h.List)
		videos.GET("/:id", h.Get)
		videos.POST("/:id/transcode", h.Transcode)
		videos.GET("/:id/download", h.DownloadOriginal)
		videos.GET("/:id/download/transcoded", h.DownloadTranscoded)
	}
}
