package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"docqa/internal/loader"
	"docqa/internal/service"
	"docqa/internal/transport/http/response"
)

// Ingester replaces the indexed document.
type Ingester interface {
	Ingest(ctx context.Context, text string) (*service.IngestResult, error)
}

// multipartOverhead is the room left in the request body for boundaries and part headers.
const multipartOverhead = 64 << 10

type DocumentHandler struct {
	ingester Ingester
	maxBytes int64
}

type UploadResponse struct {
	Message string `json:"message"`
	*service.IngestResult
}

func NewDocumentHandler(ingester Ingester, maxBytes int64) *DocumentHandler {
	return &DocumentHandler{ingester: ingester, maxBytes: maxBytes}
}

// Upload accepts a multipart form with a "file" (.txt or .pdf), extracts its text and indexes it.
func (h *DocumentHandler) Upload(c *gin.Context) {
	bodyLimit := h.maxBytes + multipartOverhead
	if c.Request.ContentLength > bodyLimit {
		h.tooLarge(c)
		return
	}
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, bodyLimit)

	file, err := c.FormFile("file")
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			h.tooLarge(c)
			return
		}
		response.Error(c, http.StatusBadRequest, response.CodeBadRequest, "missing file")
		return
	}
	if file.Size > h.maxBytes {
		h.tooLarge(c)
		return
	}
	if !loader.Supported(file.Filename) {
		response.Error(c, http.StatusBadRequest, response.CodeUnsupportedFile, "only .txt and .pdf files are allowed")
		return
	}

	f, err := file.Open()
	if err != nil {
		response.Error(c, http.StatusInternalServerError, response.CodeInternalServer, "failed to read file")
		return
	}
	defer f.Close()

	text, err := loader.Read(file.Filename, f)
	if err != nil {
		if errors.Is(err, loader.ErrUnsupportedType) {
			response.Error(c, http.StatusBadRequest, response.CodeUnsupportedFile, err.Error())
			return
		}
		response.Error(c, http.StatusBadRequest, response.CodeBadRequest, "failed to extract text: "+err.Error())
		return
	}
	if strings.TrimSpace(text) == "" {
		response.Error(c, http.StatusBadRequest, response.CodeBadRequest, "file contains no extractable text")
		return
	}

	result, err := h.ingester.Ingest(c.Request.Context(), text)
	if err != nil {
		writeError(c, "ingest", err)
		return
	}
	response.OK(c, UploadResponse{Message: "File uploaded and processed successfully", IngestResult: result})
}

func (h *DocumentHandler) tooLarge(c *gin.Context) {
	response.Error(c, http.StatusBadRequest, response.CodeFileTooLarge, fmt.Sprintf("file too large (max %d bytes)", h.maxBytes))
}
