package service

import (
	"context"

	"bepl-backend/internal/domains/about/model"
)

type ServiceInterface interface {
	Get(ctx context.Context) (*model.About, error)
	Update(ctx context.Context, req model.UpdateAboutRequest) (*model.About, error)
}
