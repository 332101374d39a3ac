package handler

import (
	"errors"
	"io"

	"github.com/gin-gonic/gin"

	"github.com/fokanendapascal/internship-management-app/internal/storage"
	"github.com/fokanendapascal/internship-management-app/pkg/response"
)

// maxUploadSize caps uploaded documents at 20 MiB.
const maxUploadSize = 20 << 20

// FileHandler handles document upload and download
type FileHandler struct {
	files storage.FileStore
}

// NewFileHandler creates a new FileHandler
func NewFileHandler(files storage.FileStore) *FileHandler {
	return &FileHandler{files: files}
}

// Upload handles POST /files
func (h *FileHandler) Upload(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		response.BadRequest(c, "missing file")
		return
	}
	if file.Size > maxUploadSize {
		response.BadRequest(c, "file too large")
		return
	}

	src, err := file.Open()
	if err != nil {
		response.InternalError(c, err)
		return
	}
	defer src.Close()
	data, err := io.ReadAll(src)
	if err != nil {
		response.InternalError(c, err)
		return
	}

	url, err := h.files.Store(data, file.Filename)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.Created(c, gin.H{"url": url})
}

// Download handles GET /files/:name
func (h *FileHandler) Download(c *gin.Context) {
	path, err := h.files.Open(c.Param("name"))
	if err != nil {
		if errors.Is(err, storage.ErrFileNotFound) {
			response.NotFound(c, "file not found")
			return
		}
		response.InternalError(c, err)
		return
	}
	c.File(path)
}
