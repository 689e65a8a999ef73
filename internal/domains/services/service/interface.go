package service

import (
	"context"

	"bepl-backend/internal/domains/services/model"
)

type ServiceInterface interface {
	ListPublic(ctx context.Context) ([]model.Service, error)
	ListAdmin(ctx context.Context, filter model.ListFilter) ([]model.Service, int64, error)
	GetPublic(ctx context.Context, id string) (*model.Service, error)
	Create(ctx context.Context, req model.ServiceRequest) (*model.Service, error)
	Update(ctx context.Context, id string, req model.ServiceRequest) (*model.Service, error)
	Delete(ctx context.Context, id string) error
}
