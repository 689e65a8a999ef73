package repository

import (
	"context"

	"bepl-backend/internal/domains/services/model"

	"github.com/google/uuid"
)

type Repository interface {
	ListActive(ctx context.Context) ([]model.Service, error)
	List(ctx context.Context, filter model.ListFilter) ([]model.Service, int64, error)
	// FindActive resolves id as a UUID first, then as a slug.
	FindActive(ctx context.Context, id string) (*model.Service, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.Service, error)
	Create(ctx context.Context, req model.ServiceRequest) (*model.Service, error)
	Update(ctx context.Context, id uuid.UUID, req model.ServiceRequest) (*model.Service, error)
	Delete(ctx context.Context, id uuid.UUID) error
	// UpsertBySlug is used by the seeder.
	UpsertBySlug(ctx context.Context, req model.ServiceRequest) (*model.Service, error)
}
