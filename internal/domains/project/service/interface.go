package service

import (
	"context"

	"bepl-backend/internal/domains/project/model"
)

type ServiceInterface interface {
	ListPublic(ctx context.Context, category string) ([]model.Project, error)
	ListAdmin(ctx context.Context, filter model.ListFilter) ([]model.Project, int64, error)
	GetPublic(ctx context.Context, id string) (*model.Project, error)
	Create(ctx context.Context, req model.ProjectRequest) (*model.Project, error)
	Update(ctx context.Context, id string, req model.ProjectRequest) (*model.Project, error)
	Delete(ctx context.Context, id string) error
}
