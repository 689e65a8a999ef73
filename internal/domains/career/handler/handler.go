package handler

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"bepl-backend/internal/domains/career/model"
	"bepl-backend/internal/domains/career/service"
	"bepl-backend/internal/infrastructure/export"
	"bepl-backend/internal/infrastructure/storage"
	"bepl-backend/internal/shared/response"
	"bepl-backend/internal/shared/utils"

	"github.com/gin-gonic/gin"
)

// ObjectOpener streams a stored object by its storage key.
type ObjectOpener interface {
	Open(ctx context.Context, key string) (*storage.RemoteObject, error)
}

type Handler struct {
	service  service.ServiceInterface
	objects  ObjectOpener
	maxBytes int64
}

func NewHandler(service service.ServiceInterface, objects ObjectOpener, maxResumeBytes int64) *Handler {
	return &Handler{service: service, objects: objects, maxBytes: maxResumeBytes}
}

// SubmitApplication handles POST /careers (multipart/form-data)
func (h *Handler) SubmitApplication(c *gin.Context) {
	var req model.SubmitCareerRequest
	if err := c.ShouldBind(&req); err != nil {
		response.BadRequest(c, "Invalid request payload")
		return
	}

	var resume *storage.File
	if fh, err := c.FormFile("resume"); err == nil {
		file, err := storage.ReadFormFile(fh, h.maxBytes)
		if err != nil {
			response.BadRequest(c, storage.Message(err))
			return
		}
		resume = &file
	}

	result, err := h.service.Submit(c.Request.Context(), req, resume)
	if err != nil {
		response.HandleError(c, err)
		return
	}
	response.Success(c, http.StatusCreated,
		"Application submitted successfully. We will review your application and get back to you soon.", result)
}

// ListApplications handles GET /careers?status=&page=&limit=
func (h *Handler) ListApplications(c *gin.Context) {
	page, limit := utils.ParsePagination(c)
	filter := model.ListFilter{Status: c.Query("status"), Page: page, Limit: limit}

	careers, total, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		response.HandleError(c, err)
		return
	}
	response.SuccessWithPagination(c, careers, response.NewPagination(page, limit, total))
}

// ExportApplications handles GET /careers/export?status=
func (h *Handler) ExportApplications(c *gin.Context) {
	data, err := h.service.Export(c.Request.Context(), c.Query("status"))
	if err != nil {
		response.HandleError(c, err)
		return
	}

	filename := fmt.Sprintf("careers_%s.xlsx", time.Now().Format("20060102_150405"))
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK, export.ContentType, data)
}

// GetApplication handles GET /careers/:id
func (h *Handler) GetApplication(c *gin.Context) {
	career, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.HandleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "", career)
}

// UpdateApplicationStatus handles PATCH /careers/:id/status
func (h *Handler) UpdateApplicationStatus(c *gin.Context) {
	var req model.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request payload")
		return
	}

	career, err := h.service.UpdateStatus(c.Request.Context(), c.Param("id"), req.Status)
	if err != nil {
		response.HandleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Application status updated", career)
}

// DeleteApplication handles DELETE /careers/:id
func (h *Handler) DeleteApplication(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		response.HandleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Application deleted successfully", nil)
}
