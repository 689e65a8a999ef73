package handler

import (
	"fmt"
	"net/http"
	"time"

	"bepl-backend/internal/domains/contact/model"
	"bepl-backend/internal/domains/contact/service"
	"bepl-backend/internal/infrastructure/export"
	"bepl-backend/internal/shared/response"
	"bepl-backend/internal/shared/utils"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service service.ServiceInterface
}

func NewHandler(service service.ServiceInterface) *Handler {
	return &Handler{service: service}
}

// SubmitContact handles POST /contact
func (h *Handler) SubmitContact(c *gin.Context) {
	var req model.SubmitContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request payload")
		return
	}

	result, err := h.service.Submit(c.Request.Context(), req)
	if err != nil {
		response.HandleError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, "Contact form submitted successfully. We will get back to you soon.", result)
}

// ListContacts handles GET /contact?status=&page=&limit=
func (h *Handler) ListContacts(c *gin.Context) {
	page, limit := utils.ParsePagination(c)
	filter := model.ListFilter{Status: c.Query("status"), Page: page, Limit: limit}

	contacts, total, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		response.HandleError(c, err)
		return
	}
	response.SuccessWithPagination(c, contacts, response.NewPagination(page, limit, total))
}

// ExportContacts handles GET /contact/export?status=
func (h *Handler) ExportContacts(c *gin.Context) {
	data, err := h.service.Export(c.Request.Context(), c.Query("status"))
	if err != nil {
		response.HandleError(c, err)
		return
	}

	filename := fmt.Sprintf("contacts_%s.xlsx", time.Now().Format("20060102_150405"))
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK, export.ContentType, data)
}

// GetContact handles GET /contact/:id
func (h *Handler) GetContact(c *gin.Context) {
	contact, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.HandleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "", contact)
}

// UpdateContactStatus handles PATCH /contact/:id/status
func (h *Handler) UpdateContactStatus(c *gin.Context) {
	var req model.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request payload")
		return
	}

	contact, err := h.service.UpdateStatus(c.Request.Context(), c.Param("id"), req.Status)
	if err != nil {
		response.HandleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Contact status updated", contact)
}

// DeleteContact handles DELETE /contact/:id
func (h *Handler) DeleteContact(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		response.HandleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Contact deleted successfully", nil)
}
