package image

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"mediavault/internal/domain/identity"
	"mediavault/internal/pkg/pagination"
	"mediavault/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) Upload(c *gin.Context) {
	p, ok := mustPrincipal(c)
	if !ok {
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "no file provided")
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "unreadable file")
		return
	}
	defer file.Close()

	img, err := h.service.Upload(c.Request.Context(), p, fileHeader.Filename, file)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "upload failed")
		return
	}

	response.Success(c, http.StatusCreated, gin.H{
		"id":    img.ID,
		"owner": img.Owner,
	})
}

func (h *Handler) List(c *gin.Context) {
	p, ok := mustPrincipal(c)
	if !ok {
		return
	}

	limit, offset, err := pagination.Parse(c)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid pagination parameters")
		return
	}

	images, err := h.service.List(c.Request.Context(), p, limit, offset)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "failed to list images")
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"items":  images,
		"limit":  limit,
		"offset": offset,
	})
}

func (h *Handler) DownloadOriginal(c *gin.Context) {
	p, ok := mustPrincipal(c)
	if !ok {
		return
	}
	id, ok := assetID(c)
	if !ok {
		return
	}

	path, name, err := h.service.OriginalFile(c.Request.Context(), p, id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.FileAttachment(path, name)
}

func (h *Handler) DownloadThumbnail(c *gin.Context) {
	p, ok := mustPrincipal(c)
	if !ok {
		return
	}
	id, ok := assetID(c)
	if !ok {
		return
	}

	path, name, err := h.service.ThumbnailFile(c.Request.Context(), p, id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.FileAttachment(path, name)
}

func writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrImageNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "image not found")
	case errors.Is(err, ErrForbidden):
		response.Error(c, http.StatusForbidden, "FORBIDDEN", "you do not own this image")
	case errors.Is(err, ErrFileMissing):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "file missing")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "request failed")
	}
}

func assetID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid image id")
		return 0, false
	}
	return id, true
}

func mustPrincipal(c *gin.Context) (identity.Principal, bool) {
	p, ok := identity.PrincipalFromContext(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "authentication required")
		return identity.Principal{}, false
	}
	return p, true
}
