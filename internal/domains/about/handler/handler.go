package handler

import (
	"net/http"

	"bepl-backend/internal/domains/about/model"
	"bepl-backend/internal/domains/about/service"
	"bepl-backend/internal/shared/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service service.ServiceInterface
}

func NewHandler(service service.ServiceInterface) *Handler {
	return &Handler{service: service}
}

// GetAbout handles GET /about
func (h *Handler) GetAbout(c *gin.Context) {
	about, err := h.service.Get(c.Request.Context())
	if err != nil {
		response.HandleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "", about)
}

// UpdateAbout handles PUT /about
func (h *Handler) UpdateAbout(c *gin.Context) {
	var req model.UpdateAboutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request payload")
		return
	}

	about, err := h.service.Update(c.Request.Context(), req)
	if err != nil {
		response.HandleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "About content updated successfully", about)
}
