package handler

import (
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/docmind-ai/docmind-be/service"
	"github.com/docmind-ai/docmind-be/types"
)

const maxUploadSize = 10 << 20

type UploadHandler struct {
	qaService *service.QAService
}

func NewUploadHandler(qaService *service.QAService) *UploadHandler {
	return &UploadHandler{
		qaService: qaService,
	}
}

// HandleUpload accepts a multipart "file" field holding a PDF or plain-text
// document, runs it through the pipeline and responds with the generated
// summary.
func (h *UploadHandler) HandleUpload(c *gin.Context) {
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		h.sendError(c, http.StatusBadRequest, "No file provided")
		return
	}
	defer file.Close()

	ext := strings.ToLower(filepath.Ext(header.Filename))
	if ext != ".pdf" && ext != ".txt" {
		h.sendError(c, http.StatusBadRequest, "Only PDF and TXT files are supported")
		return
	}
	if header.Size > maxUploadSize {
		h.sendError(c, http.StatusBadRequest, "File too large")
		return
	}

	raw, err := io.ReadAll(file)
	if err != nil {
		h.sendError(c, http.StatusBadRequest, "Failed to read file")
		return
	}

	_, summary, err := h.qaService.Upload(c.Request.Context(), raw, ext == ".pdf")
	if err != nil {
		h.sendError(c, statusFromError(err), err.Error())
		return
	}

	c.JSON(http.StatusOK, types.DataResponse{
		Status: "success",
		Data: types.DocumentResponse{
			Filename: header.Filename,
			Summary:  summary,
			Success:  true,
		},
	})
}

func (h *UploadHandler) sendError(c *gin.Context, status int, message string) {
	c.JSON(status, types.DataResponse{
		Status:  "error",
		Message: message,
	})
}
