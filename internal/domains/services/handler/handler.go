package handler

import (
	"net/http"
	"strconv"

	"bepl-backend/internal/domains/services/model"
	"bepl-backend/internal/domains/services/service"
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

// ListServices handles GET /services
func (h *Handler) ListServices(c *gin.Context) {
	services, err := h.service.ListPublic(c.Request.Context())
	if err != nil {
		response.HandleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "", services)
}

// ListAdminServices handles GET /admin/services
func (h *Handler) ListAdminServices(c *gin.Context) {
	page, limit := utils.ParsePagination(c)
	filter := model.ListFilter{Page: page, Limit: limit}
	if active, err := strconv.ParseBool(c.Query("active")); err == nil {
		filter.Active = &active
	}

	services, total, err := h.service.ListAdmin(c.Request.Context(), filter)
	if err != nil {
		response.HandleError(c, err)
		return
	}
	response.SuccessWithPagination(c, services, response.NewPagination(page, limit, total))
}

// GetService handles GET /services/:id (UUID or slug)
func (h *Handler) GetService(c *gin.Context) {
	svc, err := h.service.GetPublic(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.HandleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "", svc)
}

// CreateService handles POST /services
func (h *Handler) CreateService(c *gin.Context) {
	var req model.ServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request payload")
		return
	}

	svc, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.HandleError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, "Service created successfully", svc)
}

// UpdateService handles PUT /services/:id
func (h *Handler) UpdateService(c *gin.Context) {
	var req model.ServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request payload")
		return
	}

	svc, err := h.service.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		response.HandleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Service updated successfully", svc)
}

// DeleteService handles DELETE /services/:id
func (h *Handler) DeleteService(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		response.HandleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Service deleted successfully", nil)
}
