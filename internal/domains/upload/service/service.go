package service

import (
	"context"
	"errors"

	"bepl-backend/internal/domains/upload/model"
	"bepl-backend/internal/infrastructure/storage"
	"bepl-backend/internal/shared/apperror"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

// parallelUploads bounds concurrent object-store writes per request.
const parallelUploads = 4

type ServiceInterface interface {
	UploadImage(ctx context.Context, file storage.File, folder string) (*model.Image, error)
	// UploadImages stores all files or none; partial successes are removed.
	UploadImages(ctx context.Context, files []storage.File, folder string) ([]model.Image, error)
}

// ImageStore is the subset of the uploader used here.
type ImageStore interface {
	UploadImage(ctx context.Context, file storage.File, folder string) (*storage.UploadResult, error)
	Delete(ctx context.Context, publicID string) error
}

type uploadService struct {
	store ImageStore
}

func NewService(store ImageStore) ServiceInterface {
	return &uploadService{store: store}
}

func (s *uploadService) UploadImage(ctx context.Context, file storage.File, folder string) (*model.Image, error) {
	res, err := s.store.UploadImage(ctx, file, folderOrDefault(folder))
	if err != nil {
		return nil, uploadError(err, "Failed to upload image")
	}
	img := toImage(res)
	return &img, nil
}

func (s *uploadService) UploadImages(ctx context.Context, files []storage.File, folder string) ([]model.Image, error) {
	folder = folderOrDefault(folder)
	results := make([]*storage.UploadResult, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(parallelUploads)
	for i, f := range files {
		g.Go(func() error {
			res, err := s.store.UploadImage(gctx, f, folder)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		cleanup := context.WithoutCancel(ctx)
		for _, res := range results {
			if res == nil {
				continue
			}
			if derr := s.store.Delete(cleanup, res.PublicID); derr != nil {
				log.Warn().Err(derr).Str("public_id", res.PublicID).Msg("Failed to remove partial upload")
			}
		}
		return nil, uploadError(err, "Failed to upload images")
	}

	images := make([]model.Image, len(results))
	for i, res := range results {
		images[i] = toImage(res)
	}
	return images, nil
}

func uploadError(err error, fallback string) error {
	switch {
	case errors.Is(err, storage.ErrNotImage), errors.Is(err, storage.ErrTooLarge), errors.Is(err, storage.ErrEmptyFile):
		return apperror.Validation(storage.Message(err))
	default:
		return apperror.Upstream(fallback, err)
	}
}

func folderOrDefault(folder string) string {
	if folder == "" {
		return model.DefaultFolder
	}
	return folder
}

func toImage(res *storage.UploadResult) model.Image {
	return model.Image{
		URL:       res.SecureURL,
		SecureURL: res.SecureURL,
		PublicID:  res.PublicID,
		Width:     res.Width,
		Height:    res.Height,
	}
}
