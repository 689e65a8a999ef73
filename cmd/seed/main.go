// Command seed loads the initial site content and bootstraps admin accounts.
//
//	seed                      # write the bundled services, projects and about content
//	seed -file content.yaml   # use another seed file
//	seed -admin -username admin -email admin@bepl.com
//
// The admin password is read from SEED_ADMIN_PASSWORD when -password is empty.
package main

import (
	"context"
	_ "embed"
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"bepl-backend/internal/config"
	adminModel "bepl-backend/internal/domains/admin/model"
	adminRepo "bepl-backend/internal/domains/admin/repository"
	adminService "bepl-backend/internal/domains/admin/service"
	"bepl-backend/internal/infrastructure/database"
	"bepl-backend/internal/infrastructure/storage"
	"bepl-backend/internal/shared/apperror"
	"bepl-backend/pkg/logger"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

//go:embed seed.yaml
var bundledSeed []byte

type options struct {
	file   string
	assets string

	admin    bool
	username string
	email    string
	password string
	role     string
}

func parseFlags() options {
	var o options
	flag.StringVar(&o.file, "file", "", "seed YAML file (defaults to the bundled content)")
	flag.StringVar(&o.assets, "assets", "assets", "directory holding images referenced by imageFile")
	flag.BoolVar(&o.admin, "admin", false, "create an admin account instead of seeding content")
	flag.StringVar(&o.username, "username", "admin", "admin username")
	flag.StringVar(&o.email, "email", "admin@bepl.com", "admin email")
	flag.StringVar(&o.password, "password", "", "admin password (or SEED_ADMIN_PASSWORD)")
	flag.StringVar(&o.role, "role", adminModel.RoleSuperAdmin, "admin role")
	flag.Parse()

	if o.password == "" {
		o.password = os.Getenv("SEED_ADMIN_PASSWORD")
	}
	return o
}

func main() {
	_ = godotenv.Load()
	opts := parseFlags()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}
	logger.Init(cfg.App.Environment, cfg.App.LogLevel)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	db := database.NewPostgresDB(cfg.Database)
	if err := db.Connect(ctx); err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to database")
	}
	defer db.Close()

	if _, err := db.Migrate(ctx); err != nil {
		log.Fatal().Err(err).Msg("Failed to migrate database")
	}

	if opts.admin {
		err = createAdmin(ctx, db, opts)
	} else {
		err = seedContent(ctx, cfg, db, opts)
	}
	if err != nil {
		log.Fatal().Err(err).Msg("Seeding failed")
	}
}

func seedContent(ctx context.Context, cfg *config.Config, db *database.PostgresDB, opts options) error {
	raw := bundledSeed
	if opts.file != "" {
		var err error
		if raw, err = os.ReadFile(opts.file); err != nil {
			return fmt.Errorf("read seed file: %w", err)
		}
	}

	data, err := ParseSeed(raw)
	if err != nil {
		return err
	}
	if data.empty() {
		return errNoSeed
	}

	if data.NeedsImages() {
		store, err := storage.NewMinIOStorage(ctx, cfg.MinIO)
		if err != nil {
			log.Warn().Err(err).Msg("Object storage unavailable, seeding without images")
		} else {
			uploader := storage.NewUploader(store, storage.NewImageProcessor(cfg.Upload.MaxImageWidth), storage.UploaderConfig{
				RootFolder: cfg.Upload.RootFolder,
				MaxBytes:   cfg.Upload.MaxBytes,
				Timeout:    cfg.App.OutboundTimeout,
			})
			data.UploadImages(ctx, uploader, opts.assets)
		}
	}

	sum, err := data.Apply(ctx, db.Pool)
	if err != nil {
		return err
	}

	log.Info().
		Int("services", sum.Services).
		Int("projects", sum.Projects).
		Bool("about", sum.About).
		Msg("All data seeded successfully")
	return nil
}

func createAdmin(ctx context.Context, db *database.PostgresDB, opts options) error {
	if opts.password == "" {
		return errors.New("admin password is required (-password or SEED_ADMIN_PASSWORD)")
	}

	svc := adminService.NewService(adminRepo.NewRepository(db.Pool), nil, nil, adminService.DefaultBcryptCost)
	admin, err := svc.Create(ctx, adminModel.CreateAdminRequest{
		Username: opts.username,
		Email:    opts.email,
		Password: opts.password,
		Role:     opts.role,
	})
	if apperror.Is(err, apperror.KindConflict) {
		log.Warn().Str("username", opts.username).Str("email", opts.email).Msg("Admin already exists")
		return nil
	}
	if err != nil {
		return err
	}

	log.Info().
		Str("admin_id", admin.ID.String()).
		Str("username", admin.Username).
		Str("role", admin.Role).
		Msg("Admin created")
	return nil
}
