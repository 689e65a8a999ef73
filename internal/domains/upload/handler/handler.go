package handler

import (
	"fmt"
	"net/http"
	"strings"

	"bepl-backend/internal/domains/upload/service"
	"bepl-backend/internal/infrastructure/storage"
	"bepl-backend/internal/shared/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service  service.ServiceInterface
	maxBytes int64
	maxFiles int
}

func NewHandler(service service.ServiceInterface, maxBytes int64, maxFiles int) *Handler {
	return &Handler{service: service, maxBytes: maxBytes, maxFiles: maxFiles}
}

// UploadImage handles POST /upload/image
func (h *Handler) UploadImage(c *gin.Context) {
	fh, err := c.FormFile("image")
	if err != nil {
		response.BadRequest(c, "No image uploaded")
		return
	}

	file, err := storage.ReadFormFile(fh, h.maxBytes)
	if err != nil {
		response.BadRequest(c, storage.Message(err))
		return
	}

	img, err := h.service.UploadImage(c.Request.Context(), file, strings.TrimSpace(c.PostForm("folder")))
	if err != nil {
		response.HandleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "", img)
}

// UploadImages handles POST /upload/images
func (h *Handler) UploadImages(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil || len(form.File["images"]) == 0 {
		response.BadRequest(c, "No images uploaded")
		return
	}
	headers := form.File["images"]
	if h.maxFiles > 0 && len(headers) > h.maxFiles {
		response.BadRequest(c, fmt.Sprintf("Too many files. Maximum is %d", h.maxFiles))
		return
	}

	files := make([]storage.File, 0, len(headers))
	for _, fh := range headers {
		file, err := storage.ReadFormFile(fh, h.maxBytes)
		if err != nil {
			response.BadRequest(c, storage.Message(err))
			return
		}
		files = append(files, file)
	}

	images, err := h.service.UploadImages(c.Request.Context(), files, strings.TrimSpace(c.PostForm("folder")))
	if err != nil {
		response.HandleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "", images)
}
