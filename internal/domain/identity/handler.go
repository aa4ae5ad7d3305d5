package identity

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"mediavault/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

type loginRequest struct {
	Username string `form:"username" json:"username" binding:"required"`
	Password string `form:"password" json:"password" binding:"required"`
}

// Login accepts form or JSON credentials and returns a bearer token.
func (h *Handler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBind(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "username and password are required")
		return
	}

	token, user, err := h.service.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "invalid credentials")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "login failed")
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"access_token": token,
		"token_type":   "bearer",
		"username":     user.Username,
		"role":         user.Role,
	})
}

// WhoAmI echoes the principal's identity back to the caller.
func (h *Handler) WhoAmI(c *gin.Context) {
	p, ok := PrincipalFromContext(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "authentication required")
		return
	}
	response.Success(c, http.StatusOK, gin.H{
		"user": p.Subject,
		"role": p.Role,
	})
}

// PrincipalFromContext reads the identity the auth middleware stored on
// the request context.
func PrincipalFromContext(c *gin.Context) (Principal, bool) {
	subject := c.GetString("subject")
	if subject == "" {
		return Principal{}, false
	}
	return Principal{Subject: subject, Role: c.GetString("role")}, true
}
