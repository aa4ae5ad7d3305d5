package image

import "github.com/gin-gonic/gin"

// RegisterRoutes wires the image endpoints under the protected group.
func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	images := r.Group("/images")
	{
		images.POST("", h.Upload)
		images.GET("", h.List)
		images.GET("/:id/download", h.DownloadOriginal)
		images.GET("/:id/thumbnail", h.DownloadThumbnail)
	}
}
