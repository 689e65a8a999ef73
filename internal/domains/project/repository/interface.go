package repository

import (
	"context"

	"bepl-backend/internal/domains/project/model"

	"github.com/google/uuid"
)

type Repository interface {
	List(ctx context.Context, filter model.ListFilter) ([]model.Project, int64, error)
	GetByID(ctx context.Context, id uuid.UUID, activeOnly bool) (*model.Project, error)
	Create(ctx context.Context, req model.ProjectRequest) (*model.Project, error)
	Update(ctx context.Context, id uuid.UUID, req model.ProjectRequest) (*model.Project, error)
	Delete(ctx context.Context, id uuid.UUID) error
	// UpsertByTitleClient is used by the seeder.
	UpsertByTitleClient(ctx context.Context, req model.ProjectRequest) (*model.Project, error)
}
