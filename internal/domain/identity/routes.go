package identity

import "github.com/gin-gonic/gin"

// RegisterRoutes wires the public login route; RegisterProtectedRoutes
// takes the group behind the auth middleware.
func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	auth := r.Group("/auth")
	{
		auth.POST("/login", h.Login)
	}
}

func RegisterProtectedRoutes(r *gin.RouterGroup, h *Handler) {
	auth := r.Group("/auth")
	{
		auth.GET("/whoami", h.WhoAmI)
	}
}
