package service

import (
	"context"
	"time"

	"bepl-backend/internal/domains/admin/model"
	"bepl-backend/internal/shared/middleware"
)

type ServiceInterface interface {
	Login(ctx context.Context, req model.LoginRequest) (*model.LoginResponse, error)
	Me(ctx context.Context, adminID string) (*model.Admin, error)
	List(ctx context.Context) ([]model.Admin, error)
	Create(ctx context.Context, req model.CreateAdminRequest) (*model.Admin, error)

	// LoadIdentity backs the authentication middleware.
	LoadIdentity(ctx context.Context, adminID string) (*middleware.Identity, error)
}

// TokenIssuer is satisfied by *jwt.Manager.
type TokenIssuer interface {
	GenerateAccessToken(adminID, username, role string) (string, time.Time, error)
}
