package handler

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"authorsite-backend/internal/domains/upload"
	"authorsite-backend/internal/shared/response"
)

type UploadHandler struct {
	service upload.Service
	maxSize int64
}

func NewUploadHandler(svc upload.Service, maxSize int64) *UploadHandler {
	return &UploadHandler{service: svc, maxSize: maxSize}
}

// Upload - POST /admin/upload (multipart field "file")
func (h *UploadHandler) Upload(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.ErrorResponse(c, http.StatusBadRequest, upload.ToErrorCode(upload.ErrMissingFile), upload.ErrMissingFile.Error())
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		response.InternalServerError(c, err.Error())
		return
	}
	defer file.Close()

	// Read one byte past the limit so oversize files are rejected by
	// size, not silently truncated.
	data, err := io.ReadAll(io.LimitReader(file, h.maxSize+1))
	if err != nil {
		response.InternalServerError(c, err.Error())
		return
	}

	result, err := h.service.Upload(c.Request.Context(), data)
	if err != nil {
		response.ErrorResponse(c, upload.ToHTTPStatus(err), upload.ToErrorCode(err), err.Error())
		return
	}

	response.Success(c, http.StatusCreated, result)
}
