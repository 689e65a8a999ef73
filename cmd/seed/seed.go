package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	aboutModel "bepl-backend/internal/domains/about/model"
	aboutRepo "bepl-backend/internal/domains/about/repository"
	projectModel "bepl-backend/internal/domains/project/model"
	projectRepo "bepl-backend/internal/domains/project/repository"
	servicesModel "bepl-backend/internal/domains/services/model"
	servicesRepo "bepl-backend/internal/domains/services/repository"
	"bepl-backend/internal/infrastructure/database"
	"bepl-backend/internal/infrastructure/storage"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"
)

type serviceSeed struct {
	servicesModel.ServiceRequest
	ImageFile string `json:"imageFile"`
}

type projectSeed struct {
	projectModel.ProjectRequest
	ImageFile string `json:"imageFile"`
}

// SeedData uses the same field names as the admin API.
type SeedData struct {
	Services []serviceSeed                  `json:"services"`
	Projects []projectSeed                  `json:"projects"`
	About    *aboutModel.UpdateAboutRequest `json:"about"`
}

// ParseSeed decodes YAML and validates every entry before anything is written.
func ParseSeed(raw []byte) (*SeedData, error) {
	var doc map[string]any
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("parse seed yaml: %w", err)
	}

	// Round-trip through JSON so the request DTOs' json tags apply.
	buf, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("convert seed yaml: %w", err)
	}
	var data SeedData
	if err := json.Unmarshal(buf, &data); err != nil {
		return nil, fmt.Errorf("decode seed: %w", err)
	}

	for i := range data.Services {
		s := &data.Services[i]
		s.Normalize()
		if err := s.Validate(); err != nil {
			return nil, fmt.Errorf("service %q: %w", s.Title, err)
		}
	}
	for i := range data.Projects {
		p := &data.Projects[i]
		p.Normalize()
		if err := p.Validate(); err != nil {
			return nil, fmt.Errorf("project %q: %w", p.Title, err)
		}
	}
	if data.About != nil {
		data.About.Normalize()
		if err := data.About.Validate(); err != nil {
			return nil, fmt.Errorf("about: %w", err)
		}
	}
	return &data, nil
}

// NeedsImages reports whether any entry references a local image file.
func (d *SeedData) NeedsImages() bool {
	for _, s := range d.Services {
		if s.ImageFile != "" {
			return true
		}
	}
	for _, p := range d.Projects {
		if p.ImageFile != "" {
			return true
		}
	}
	return false
}

// ImageUploader is satisfied by *storage.Uploader.
type ImageUploader interface {
	UploadImage(ctx context.Context, file storage.File, folder string) (*storage.UploadResult, error)
}

// UploadImages stores referenced local images and fills in their URLs.
// An entry whose image cannot be uploaded keeps whatever image is stored.
func (d *SeedData) UploadImages(ctx context.Context, uploader ImageUploader, assetsDir string) {
	upload := func(name, folder string) string {
		data, err := os.ReadFile(filepath.Join(assetsDir, name))
		if err != nil {
			log.Warn().Err(err).Str("file", name).Msg("Seed image not readable")
			return ""
		}
		res, err := uploader.UploadImage(ctx, storage.File{Name: name, Data: data}, folder)
		if err != nil {
			log.Warn().Err(err).Str("file", name).Msg("Seed image upload failed")
			return ""
		}
		return res.SecureURL
	}

	// The same asset is often shared between entries.
	uploaded := map[string]string{}
	resolve := func(name, folder string) *string {
		key := folder + "/" + name
		url, ok := uploaded[key]
		if !ok {
			url = upload(name, folder)
			uploaded[key] = url
		}
		if url == "" {
			return nil
		}
		return &url
	}

	for i := range d.Services {
		if f := d.Services[i].ImageFile; f != "" && d.Services[i].Image == nil {
			d.Services[i].Image = resolve(f, "services")
		}
	}
	for i := range d.Projects {
		if f := d.Projects[i].ImageFile; f != "" && d.Projects[i].Image == nil {
			d.Projects[i].Image = resolve(f, "projects")
		}
	}
}

// Summary counts what Apply wrote.
type Summary struct {
	Services int
	Projects int
	About    bool
}

// Apply writes the seed in a single transaction.
func (d *SeedData) Apply(ctx context.Context, db database.TxBeginner) (Summary, error) {
	var sum Summary
	err := database.WithTransaction(ctx, db, func(tx pgx.Tx) error {
		services := servicesRepo.NewRepository(tx)
		for _, s := range d.Services {
			if _, err := services.UpsertBySlug(ctx, s.ServiceRequest); err != nil {
				return fmt.Errorf("upsert service %q: %w", s.Slug, err)
			}
			sum.Services++
		}

		projects := projectRepo.NewRepository(tx)
		for _, p := range d.Projects {
			if _, err := projects.UpsertByTitleClient(ctx, p.ProjectRequest); err != nil {
				return fmt.Errorf("upsert project %q: %w", p.Title, err)
			}
			sum.Projects++
		}

		if d.About != nil && !d.About.Empty() {
			if _, err := aboutRepo.NewRepository(tx).Upsert(ctx, *d.About, aboutModel.Default()); err != nil {
				return fmt.Errorf("upsert about: %w", err)
			}
			sum.About = true
		}
		return nil
	})
	if err != nil {
		return Summary{}, err
	}
	return sum, nil
}

var errNoSeed = errors.New("seed file has nothing to write")

func (d *SeedData) empty() bool {
	return len(d.Services) == 0 && len(d.Projects) == 0 && (d.About == nil || d.About.Empty())
}
