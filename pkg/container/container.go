package container

import (
	"context"
	"fmt"
	"time"

	"bepl-backend/internal/config"
	"bepl-backend/internal/infrastructure/cache"
	"bepl-backend/internal/infrastructure/database"
	"bepl-backend/internal/infrastructure/email"
	"bepl-backend/internal/infrastructure/storage"
	"bepl-backend/internal/shared/middleware"
	"bepl-backend/pkg/jwt"

	aboutHandler "bepl-backend/internal/domains/about/handler"
	aboutRepo "bepl-backend/internal/domains/about/repository"
	aboutService "bepl-backend/internal/domains/about/service"

	adminHandler "bepl-backend/internal/domains/admin/handler"
	adminRepo "bepl-backend/internal/domains/admin/repository"
	adminService "bepl-backend/internal/domains/admin/service"

	careerHandler "bepl-backend/internal/domains/career/handler"
	careerRepo "bepl-backend/internal/domains/career/repository"
	careerService "bepl-backend/internal/domains/career/service"

	contactHandler "bepl-backend/internal/domains/contact/handler"
	contactRepo "bepl-backend/internal/domains/contact/repository"
	contactService "bepl-backend/internal/domains/contact/service"

	projectHandler "bepl-backend/internal/domains/project/handler"
	projectRepo "bepl-backend/internal/domains/project/repository"
	projectService "bepl-backend/internal/domains/project/service"

	servicesHandler "bepl-backend/internal/domains/services/handler"
	servicesRepo "bepl-backend/internal/domains/services/repository"
	servicesService "bepl-backend/internal/domains/services/service"

	uploadHandler "bepl-backend/internal/domains/upload/handler"
	uploadService "bepl-backend/internal/domains/upload/service"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// Container holds every long-lived dependency of the API process.
// Initialization order: config, infrastructure, repositories, services, handlers.
type Container struct {
	Config *config.Config

	// Infrastructure
	DB         *database.PostgresDB
	Redis      *cache.RedisClient // nil when Redis is unreachable
	Storage    *storage.MinIOStorage
	Uploader   *storage.Uploader
	Mailer     *email.Dispatcher
	JWTManager *jwt.Manager
	Limiter    cache.LoginLimiter

	// Repositories
	AboutRepo    aboutRepo.Repository
	AdminRepo    adminRepo.Repository
	CareerRepo   careerRepo.Repository
	ContactRepo  contactRepo.Repository
	ProjectRepo  projectRepo.Repository
	ServicesRepo servicesRepo.Repository

	// Services
	AboutService    aboutService.ServiceInterface
	AdminService    adminService.ServiceInterface
	CareerService   careerService.ServiceInterface
	ContactService  contactService.ServiceInterface
	ProjectService  projectService.ServiceInterface
	ServicesService servicesService.ServiceInterface
	UploadService   uploadService.ServiceInterface

	// Handlers
	AboutHandler    *aboutHandler.Handler
	AdminHandler    *adminHandler.Handler
	CareerHandler   *careerHandler.Handler
	ContactHandler  *contactHandler.Handler
	ProjectHandler  *projectHandler.Handler
	ServicesHandler *servicesHandler.Handler
	UploadHandler   *uploadHandler.Handler
}

// NewContainer builds the full dependency graph. Postgres and MinIO are
// required; Redis is optional and only disables login lockout when absent.
func NewContainer(cfg *config.Config) (*Container, error) {
	log.Info().Msg("[CONTAINER] Initializing dependencies")

	c := &Container{Config: cfg}

	if err := c.initInfrastructure(); err != nil {
		c.Cleanup()
		return nil, err
	}
	c.initRepositories()
	c.initServices()
	c.initHandlers()

	log.Info().Msg("[CONTAINER] Ready")
	return c, nil
}

func (c *Container) initInfrastructure() error {
	cfg := c.Config

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	db := database.NewPostgresDB(cfg.Database)
	if err := db.Connect(ctx); err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	c.DB = db

	if _, err := db.Migrate(ctx); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	redisClient := cache.NewRedisClient(cfg.Redis)
	if err := redisClient.Connect(ctx); err != nil {
		log.Warn().Err(err).Msg("[REDIS] Unavailable, login lockout disabled")
		_ = redisClient.Close()
		c.Limiter = cache.NoopLoginLimiter{}
	} else {
		c.Redis = redisClient
		c.Limiter = cache.NewRedisLoginLimiter(redisClient.Client)
	}

	store, err := storage.NewMinIOStorage(ctx, cfg.MinIO)
	if err != nil {
		return fmt.Errorf("failed to init object storage: %w", err)
	}
	c.Storage = store
	c.Uploader = storage.NewUploader(store, storage.NewImageProcessor(cfg.Upload.MaxImageWidth), storage.UploaderConfig{
		RootFolder: cfg.Upload.RootFolder,
		MaxBytes:   cfg.Upload.MaxBytes,
		Timeout:    cfg.App.OutboundTimeout,
	})

	sender := email.NewSMTPSender(cfg.Email, cfg.App.OutboundTimeout)
	c.Mailer = email.NewDispatcher(sender, cfg.Email.CompanyEmail, cfg.Email.CompanyEmail)

	c.JWTManager = jwt.NewManager(cfg.JWT.Secret, cfg.JWT.Expiry)
	return nil
}

func (c *Container) initRepositories() {
	pool := c.DB.Pool

	c.AboutRepo = aboutRepo.NewRepository(pool)
	c.AdminRepo = adminRepo.NewRepository(pool)
	c.CareerRepo = careerRepo.NewRepository(pool)
	c.ContactRepo = contactRepo.NewRepository(pool)
	c.ProjectRepo = projectRepo.NewRepository(pool)
	c.ServicesRepo = servicesRepo.NewRepository(pool)
}

func (c *Container) initServices() {
	c.AboutService = aboutService.NewService(c.AboutRepo)
	c.AdminService = adminService.NewService(c.AdminRepo, c.JWTManager, c.Limiter, adminService.DefaultBcryptCost)
	c.CareerService = careerService.NewService(c.CareerRepo, c.Uploader, c.Mailer)
	c.ContactService = contactService.NewService(c.ContactRepo, c.Mailer)
	c.ProjectService = projectService.NewService(c.ProjectRepo)
	c.ServicesService = servicesService.NewService(c.ServicesRepo)
	c.UploadService = uploadService.NewService(c.Uploader)
}

func (c *Container) initHandlers() {
	c.AboutHandler = aboutHandler.NewHandler(c.AboutService)
	c.AdminHandler = adminHandler.NewHandler(c.AdminService)
	c.CareerHandler = careerHandler.NewHandler(c.CareerService, c.Storage, c.Uploader.MaxBytes())
	c.ContactHandler = contactHandler.NewHandler(c.ContactService)
	c.ProjectHandler = projectHandler.NewHandler(c.ProjectService)
	c.ServicesHandler = servicesHandler.NewHandler(c.ServicesService)
	c.UploadHandler = uploadHandler.NewHandler(c.UploadService, c.Uploader.MaxBytes(), c.Config.Upload.MaxFiles)
}

// Authenticate is the bearer-token middleware bound to this container.
func (c *Container) Authenticate() gin.HandlerFunc {
	return middleware.Authenticate(c.JWTManager, c.AdminService)
}

// HealthCheck reports the state of each backing service.
func (c *Container) HealthCheck(ctx context.Context) map[string]string {
	status := map[string]string{"database": "ok", "storage": "ok", "redis": "disabled"}

	if err := c.DB.HealthCheck(ctx); err != nil {
		status["database"] = err.Error()
	}
	if err := c.Storage.HealthCheck(ctx); err != nil {
		status["storage"] = err.Error()
	}
	if c.Redis != nil {
		status["redis"] = "ok"
		if err := c.Redis.HealthCheck(ctx); err != nil {
			status["redis"] = err.Error()
		}
	}
	return status
}

// Cleanup releases pools and connections.
func (c *Container) Cleanup() {
	if c.DB != nil {
		if err := c.DB.Close(); err != nil {
			log.Warn().Err(err).Msg("[DATABASE] Close failed")
		}
	}
	if c.Redis != nil {
		if err := c.Redis.Close(); err != nil {
			log.Warn().Err(err).Msg("[REDIS] Close failed")
		}
	}
	log.Info().Msg("[CONTAINER] Resources released")
}
