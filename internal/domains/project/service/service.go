package service

import (
	"context"
	"errors"

	"bepl-backend/internal/domains/project/model"
	"bepl-backend/internal/domains/project/repository"
	"bepl-backend/internal/shared/apperror"

	"github.com/google/uuid"
)

const notFoundMessage = "Project not found"

type projectService struct {
	repo repository.Repository
}

func NewService(repo repository.Repository) ServiceInterface {
	return &projectService{repo: repo}
}

func (s *projectService) ListPublic(ctx context.Context, category string) ([]model.Project, error) {
	active := true
	projects, _, err := s.repo.List(ctx, model.ListFilter{Category: category, Active: &active})
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return projects, nil
}

func (s *projectService) ListAdmin(ctx context.Context, filter model.ListFilter) ([]model.Project, int64, error) {
	projects, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, 0, apperror.Internal(err)
	}
	return projects, total, nil
}

func (s *projectService) GetPublic(ctx context.Context, id string) (*model.Project, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return nil, apperror.NotFound(notFoundMessage)
	}
	p, err := s.repo.GetByID(ctx, uid, true)
	if err != nil {
		return nil, mapError(err)
	}
	return p, nil
}

func (s *projectService) Create(ctx context.Context, req model.ProjectRequest) (*model.Project, error) {
	req.Normalize()
	if err := req.Validate(); err != nil {
		return nil, apperror.FromValidation(err)
	}

	p, err := s.repo.Create(ctx, req)
	if err != nil {
		return nil, mapError(err)
	}
	return p, nil
}

func (s *projectService) Update(ctx context.Context, id string, req model.ProjectRequest) (*model.Project, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return nil, apperror.NotFound(notFoundMessage)
	}

	req.Normalize()
	if err := req.Validate(); err != nil {
		return nil, apperror.FromValidation(err)
	}

	p, err := s.repo.Update(ctx, uid, req)
	if err != nil {
		return nil, mapError(err)
	}
	return p, nil
}

func (s *projectService) Delete(ctx context.Context, id string) error {
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
	case errors.Is(err, model.ErrProjectNotFound):
		return apperror.NotFound(notFoundMessage)
	default:
		return apperror.Internal(err)
	}
}
