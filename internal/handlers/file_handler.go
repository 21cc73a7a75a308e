package handlers

import (
	"io"
	"net/http"
	"strings"

	"recruivo_backend/internal/storage"
	"recruivo_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

// FileHandler streams stored files (resume downloads).
type FileHandler struct {
	*BaseHandler
	store storage.Storage
}

func NewFileHandler(base *BaseHandler, store storage.Storage) *FileHandler {
	return &FileHandler{
		BaseHandler: base,
		store:       store,
	}
}

func (h *FileHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/files/*filepath", h.Serve)
}

func (h *FileHandler) Serve(c *gin.Context) {
	path := strings.TrimPrefix(c.Param("filepath"), "/")
	if path == "" || strings.Contains(path, "..") {
		h.HandleServiceError(c, apperrors.NewBadRequestError("Invalid file path"))
		return
	}

	reader, err := h.store.Get(c.Request.Context(), path)
	if err != nil {
		h.HandleServiceError(c, apperrors.NewNotFoundError("file", "File not found"))
		return
	}
	defer reader.Close()

	c.Status(http.StatusOK)
	_, _ = io.Copy(c.Writer, reader)
}
