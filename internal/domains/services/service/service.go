package service

import (
	"context"
	"errors"

	"bepl-backend/internal/domains/services/model"
	"bepl-backend/internal/domains/services/repository"
	"bepl-backend/internal/shared/apperror"

	"github.com/google/uuid"
)

const notFoundMessage = "Service not found"

type catalogService struct {
	repo repository.Repository
}

func NewService(repo repository.Repository) ServiceInterface {
	return &catalogService{repo: repo}
}

func (s *catalogService) ListPublic(ctx context.Context) ([]model.Service, error) {
	services, err := s.repo.ListActive(ctx)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return services, nil
}

func (s *catalogService) ListAdmin(ctx context.Context, filter model.ListFilter) ([]model.Service, int64, error) {
	services, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, 0, apperror.Internal(err)
	}
	return services, total, nil
}

func (s *catalogService) GetPublic(ctx context.Context, id string) (*model.Service, error) {
	svc, err := s.repo.FindActive(ctx, id)
	if err != nil {
		return nil, mapError(err)
	}
	return svc, nil
}

func (s *catalogService) Create(ctx context.Context, req model.ServiceRequest) (*model.Service, error) {
	req.Normalize()
	if err := req.Validate(); err != nil {
		return nil, apperror.FromValidation(err)
	}

	svc, err := s.repo.Create(ctx, req)
	if err != nil {
		return nil, mapError(err)
	}
	return svc, nil
}

func (s *catalogService) Update(ctx context.Context, id string, req model.ServiceRequest) (*model.Service, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return nil, apperror.NotFound(notFoundMessage)
	}

	if req.Slug == "" {
		existing, err := s.repo.GetByID(ctx, uid)
		if err != nil {
			return nil, mapError(err)
		}
		req.Slug = existing.Slug
	}

	req.Normalize()
	if err := req.Validate(); err != nil {
		return nil, apperror.FromValidation(err)
	}

	svc, err := s.repo.Update(ctx, uid, req)
	if err != nil {
		return nil, mapError(err)
	}
	return svc, nil
}

func (s *catalogService) Delete(ctx context.Context, id string) error {
	uid, err := uuid.Parse(id)
	if err != nil {
		return apperror.NotFound(notFoundMessage)
	}
	if err := s.repo.Delete(ctx, uid); err != nil {
		return mapError(err)
	}
	return nil
}

func mapError(err error) error {
	switch {
	case errors.Is(err, model.ErrServiceNotFound):
		return apperror.NotFound(notFoundMessage)
	case errors.Is(err, model.ErrDuplicateSlug):
		return apperror.Conflict("Service with this ID already exists", err)
	default:
		return apperror.Internal(err)
	}
}
