package main

import (
	"context"
	"net/http"
	"time"

	"bepl-backend/internal/shared/middleware"
	"bepl-backend/internal/shared/response"
	"bepl-backend/pkg/container"

	"github.com/gin-gonic/gin"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()
	// Multipart parts above this spill to temp files.
	router.MaxMultipartMemory = c.Config.Upload.MaxBytes

	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.CORS(c.Config.CORS.AllowedOrigins, middleware.HasSuffix("/resume")),
		middleware.ClientIP(),
	)

	router.NoRoute(func(ctx *gin.Context) {
		response.NotFound(ctx, "Route not found")
	})

	api := router.Group("/api")
	api.GET("/health", healthCheckHandler(c))

	authed := c.Authenticate()
	admin := []gin.HandlerFunc{authed, middleware.Require(middleware.AnyAdmin)}
	superadmin := []gin.HandlerFunc{authed, middleware.Require(middleware.SuperAdminOnly)}

	setupAboutRoutes(api, c, admin)
	setupContactRoutes(api, c, admin)
	setupServiceRoutes(api, c, admin)
	setupProjectRoutes(api, c, admin)
	setupCareerRoutes(api, c, admin)
	setupAdminRoutes(api, c, admin, superadmin)
	setupAuthRoutes(api, c, authed)
	setupUploadRoutes(api, c, admin)

	return router
}

func setupAboutRoutes(api *gin.RouterGroup, c *container.Container, admin []gin.HandlerFunc) {
	about := api.Group("/about")
	about.GET("", c.AboutHandler.GetAbout)
	about.PUT("", chain(admin, c.AboutHandler.UpdateAbout)...)
}

func setupContactRoutes(api *gin.RouterGroup, c *container.Container, admin []gin.HandlerFunc) {
	contact := api.Group("/contact")
	contact.POST("", c.ContactHandler.SubmitContact)

	protected := contact.Group("", admin...)
	protected.GET("", c.ContactHandler.ListContacts)
	protected.GET("/export", c.ContactHandler.ExportContacts)
	protected.GET("/:id", c.ContactHandler.GetContact)
	protected.PATCH("/:id/status", c.ContactHandler.UpdateContactStatus)
	protected.DELETE("/:id", c.ContactHandler.DeleteContact)
}

func setupServiceRoutes(api *gin.RouterGroup, c *container.Container, admin []gin.HandlerFunc) {
	services := api.Group("/services")
	services.GET("", c.ServicesHandler.ListServices)
	services.GET("/:id", c.ServicesHandler.GetService)

	protected := services.Group("", admin...)
	protected.POST("", c.ServicesHandler.CreateService)
	protected.PUT("/:id", c.ServicesHandler.UpdateService)
	protected.DELETE("/:id", c.ServicesHandler.DeleteService)
}

func setupProjectRoutes(api *gin.RouterGroup, c *container.Container, admin []gin.HandlerFunc) {
	projects := api.Group("/projects")
	projects.GET("", c.ProjectHandler.ListProjects)
	projects.GET("/:id", c.ProjectHandler.GetProject)

	protected := projects.Group("", admin...)
	protected.POST("", c.ProjectHandler.CreateProject)
	protected.PUT("/:id", c.ProjectHandler.UpdateProject)
	protected.DELETE("/:id", c.ProjectHandler.DeleteProject)
}

func setupCareerRoutes(api *gin.RouterGroup, c *container.Container, admin []gin.HandlerFunc) {
	careers := api.Group("/careers")
	careers.POST("", c.CareerHandler.SubmitApplication)

	// The resume proxy sets its own CORS headers, also on auth failures.
	careers.OPTIONS("/:id/resume", c.CareerHandler.ResumeCORS, c.CareerHandler.ResumePreflight)
	careers.GET("/:id/resume", chain([]gin.HandlerFunc{c.CareerHandler.ResumeCORS}, chain(admin, c.CareerHandler.GetResume)...)...)

	protected := careers.Group("", admin...)
	protected.GET("", c.CareerHandler.ListApplications)
	protected.GET("/export", c.CareerHandler.ExportApplications)
	protected.GET("/:id", c.CareerHandler.GetApplication)
	protected.PATCH("/:id/status", c.CareerHandler.UpdateApplicationStatus)
	protected.DELETE("/:id", c.CareerHandler.DeleteApplication)
}

func setupAdminRoutes(api *gin.RouterGroup, c *container.Container, admin, superadmin []gin.HandlerFunc) {
	group := api.Group("/admin")

	content := group.Group("", admin...)
	content.GET("/services", c.ServicesHandler.ListAdminServices)
	content.GET("/projects", c.ProjectHandler.ListAdminProjects)

	roster := group.Group("/admins", superadmin...)
	roster.GET("", c.AdminHandler.ListAdmins)
	roster.POST("", c.AdminHandler.CreateAdmin)
}

func setupAuthRoutes(api *gin.RouterGroup, c *container.Container, authed gin.HandlerFunc) {
	auth := api.Group("/auth")
	auth.POST("/login", c.AdminHandler.Login)
	auth.GET("/me", authed, c.AdminHandler.Me)
}

func setupUploadRoutes(api *gin.RouterGroup, c *container.Container, admin []gin.HandlerFunc) {
	upload := api.Group("/upload", admin...)
	upload.POST("/image", c.UploadHandler.UploadImage)
	upload.POST("/images", c.UploadHandler.UploadImages)
}

// chain returns a fresh slice so route groups never share a backing array.
func chain(pre []gin.HandlerFunc, handlers ...gin.HandlerFunc) []gin.HandlerFunc {
	out := make([]gin.HandlerFunc, 0, len(pre)+len(handlers))
	out = append(out, pre...)
	return append(out, handlers...)
}

func healthCheckHandler(c *container.Container) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		checkCtx, cancel := context.WithTimeout(ctx.Request.Context(), 5*time.Second)
		defer cancel()

		deps := c.HealthCheck(checkCtx)
		status := http.StatusOK
		message := "BEPL API is running"
		if deps["database"] != "ok" {
			status = http.StatusServiceUnavailable
			message = "Database unavailable"
		}

		ctx.JSON(status, gin.H{
			"status":       http.StatusText(status),
			"message":      message,
			"environment":  c.Config.App.Environment,
			"version":      c.Config.App.Version,
			"dependencies": deps,
			"timestamp":    time.Now().UTC(),
		})
	}
}
