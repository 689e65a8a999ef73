package service

import (
	"context"

	"bepl-backend/internal/domains/about/model"
	"bepl-backend/internal/domains/about/repository"
	"bepl-backend/internal/shared/apperror"
)

type aboutService struct {
	repo repository.Repository
}

func NewService(repo repository.Repository) ServiceInterface {
	return &aboutService{repo: repo}
}

// Get never reports not-found: the first read creates the default document.
func (s *aboutService) Get(ctx context.Context) (*model.About, error) {
	about, err := s.repo.Get(ctx, model.Default())
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return about, nil
}

func (s *aboutService) Update(ctx context.Context, req model.UpdateAboutRequest) (*model.About, error) {
	if err := req.Validate(); err != nil {
		return nil, apperror.FromValidation(err)
	}
	req.Normalize()

	about, err := s.repo.Upsert(ctx, req, model.Default())
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return about, nil
}
