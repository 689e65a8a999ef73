package repository

import (
	"context"

	"bepl-backend/internal/domains/admin/model"

	"github.com/google/uuid"
)

type Repository interface {
	// FindByLogin matches the email when login is an email address, otherwise the username.
	FindByLogin(ctx context.Context, login string) (*model.Admin, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.Admin, error)
	List(ctx context.Context) ([]model.Admin, error)
	Create(ctx context.Context, admin model.NewAdmin) (*model.Admin, error)
	UpdateLastLogin(ctx context.Context, id uuid.UUID) error
}
