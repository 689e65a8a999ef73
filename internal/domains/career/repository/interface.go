package repository

import (
	"context"

	"bepl-backend/internal/domains/career/model"

	"github.com/google/uuid"
)

type Repository interface {
	Create(ctx context.Context, c model.NewCareer) (*model.Career, error)
	MarkEmailSent(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, filter model.ListFilter) ([]model.Career, int64, error)
	ListAll(ctx context.Context, status string) ([]model.Career, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.Career, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) (*model.Career, error)
	// Delete removes the application and returns it so its resume can be cleaned up.
	Delete(ctx context.Context, id uuid.UUID) (*model.Career, error)
}
