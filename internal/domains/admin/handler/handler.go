package handler

import (
	"net/http"

	"bepl-backend/internal/domains/admin/model"
	"bepl-backend/internal/domains/admin/service"
	"bepl-backend/internal/shared/apperror"
	"bepl-backend/internal/shared/middleware"
	"bepl-backend/internal/shared/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service service.ServiceInterface
}

func NewHandler(service service.ServiceInterface) *Handler {
	return &Handler{service: service}
}

// Login handles POST /auth/login
func (h *Handler) Login(c *gin.Context) {
	var req model.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request payload")
		return
	}

	result, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		response.HandleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Login successful", result)
}

// Me handles GET /auth/me
func (h *Handler) Me(c *gin.Context) {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		response.HandleError(c, apperror.Unauthorized("Access token required"))
		return
	}

	admin, err := h.service.Me(c.Request.Context(), identity.ID)
	if err != nil {
		response.HandleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "", admin)
}

// ListAdmins handles GET /admin/admins
func (h *Handler) ListAdmins(c *gin.Context) {
	admins, err := h.service.List(c.Request.Context())
	if err != nil {
		response.HandleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "", admins)
}

// CreateAdmin handles POST /admin/admins
func (h *Handler) CreateAdmin(c *gin.Context) {
	var req model.CreateAdminRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request payload")
		return
	}

	admin, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.HandleError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, "Admin created successfully", admin)
}
