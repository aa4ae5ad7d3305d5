package video

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

// Upload accepts a single multipart file and creates the asset row.
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

	v, err := h.service.Upload(c.Request.Context(), p, fileHeader.Filename, file)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "upload failed")
		return
	}

	response.Success(c, http.StatusCreated, gin.H{
		"id":     v.ID,
		"owner":  v.Owner,
		"status": v.Status,
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

	status := Status(c.Query("status"))
	if status != "" && !status.Valid() {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid status filter")
		return
	}

	videos, err := h.service.List(c.Request.Context(), p, status, limit, offset)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "failed to list videos")
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"items":  videos,
		"limit":  limit,
		"offset": offset,
	})
}

func (h *Handler) Get(c *gin.Context) {
	p, ok := mustPrincipal(c)
	if !ok {
		return
	}
	id, ok := assetID(c)
	if !ok {
		return
	}

	v, err := h.service.Get(c.Request.Context(), p, id)
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, v)
}

// Transcode converges repeated requests onto the same job: the caller that
// wins the claim blocks on the executor, everyone else gets the current
// state back.
func (h *Handler) Transcode(c *gin.Context) {
	p, ok := mustPrincipal(c)
	if !ok {
		return
	}
	id, ok := assetID(c)
	if !ok {
		return
	}

	v, err := h.service.RequestTranscode(c.Request.Context(), p, id)
	if err != nil {
		writeError(c, err)
		return
	}

	data := gin.H{"id": v.ID, "status": v.Status}
	if v.Status == StatusCompleted {
		data["output"] = v.OutputFilename
	}
	response.Success(c, http.StatusOK, data)
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

func (h *Handler) DownloadTranscoded(c *gin.Context) {
	p, ok := mustPrincipal(c)
	if !ok {
		return
	}
	id, ok := assetID(c)
	if !ok {
		return
	}

	path, name, err := h.service.TranscodedFile(c.Request.Context(), p, id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.FileAttachment(path, name)
}

func writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrVideoNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "video not found")
	case errors.Is(err, ErrForbidden):
		response.Error(c, http.StatusForbidden, "FORBIDDEN", "you do not own this video")
	case errors.Is(err, ErrSourceMissing):
		response.Error(c, http.StatusNotFound, "SOURCE_MISSING", "source file missing")
	case errors.Is(err, ErrNotReady):
		response.Error(c, http.StatusConflict, "NOT_READY", "transcoded rendition not ready")
	case errors.Is(err, ErrOutputMissing):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "transcoded file missing")
	case errors.Is(err, ErrTranscodeFailed):
		response.Error(c, http.StatusInternalServerError, "TRANSCODE_FAILED", "transcode failed")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "request failed")
	}
}

func assetID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid video id")
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
