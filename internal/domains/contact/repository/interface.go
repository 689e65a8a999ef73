package repository

import (
	"context"

	"bepl-backend/internal/domains/contact/model"

	"github.com/google/uuid"
)

type Repository interface {
	Create(ctx context.Context, req model.SubmitContactRequest) (*model.Contact, error)
	MarkEmailSent(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, filter model.ListFilter) ([]model.Contact, int64, error)
	// ListAll returns every contact matching status (all when empty), newest first.
	ListAll(ctx context.Context, status string) ([]model.Contact, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.Contact, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) (*model.Contact, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
