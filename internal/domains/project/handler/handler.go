package handler

import (
	"net/http"
	"strconv"

	"bepl-backend/internal/domains/project/model"
	"bepl-backend/internal/domains/project/service"
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

// ListProjects handles GET /projects?category=
func (h *Handler) ListProjects(c *gin.Context) {
	projects, err := h.service.ListPublic(c.Request.Context(), c.Query("category"))
	if err != nil {
		response.HandleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "", projects)
}

// ListAdminProjects handles GET /admin/projects
func (h *Handler) ListAdminProjects(c *gin.Context) {
	page, limit := utils.ParsePagination(c)
	filter := model.ListFilter{Category: c.Query("category"), Page: page, Limit: limit}
	if active, err := strconv.ParseBool(c.Query("active")); err == nil {
		filter.Active = &active
	}

	projects, total, err := h.service.ListAdmin(c.Request.Context(), filter)
	if err != nil {
		response.HandleError(c, err)
		return
	}
	response.SuccessWithPagination(c, projects, response.NewPagination(page, limit, total))
}

// GetProject handles GET /projects/:id
func (h *Handler) GetProject(c *gin.Context) {
	project, err := h.service.GetPublic(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.HandleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "", project)
}

// CreateProject handles POST /projects
func (h *Handler) CreateProject(c *gin.Context) {
	var req model.ProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request payload")
		return
	}

	project, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.HandleError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, "Project created successfully", project)
}

// UpdateProject handles PUT /projects/:id
func (h *Handler) UpdateProject(c *gin.Context) {
	var req model.ProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request payload")
		return
	}

	project, err := h.service.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		response.HandleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Project updated successfully", project)
}

// DeleteProject handles DELETE /projects/:id
func (h *Handler) DeleteProject(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		response.HandleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Project deleted successfully", nil)
}
