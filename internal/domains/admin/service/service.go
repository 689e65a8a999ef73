package service

import (
	"context"
	"errors"
	"fmt"

	"bepl-backend/internal/domains/admin/model"
	"bepl-backend/internal/domains/admin/repository"
	"bepl-backend/internal/infrastructure/cache"
	"bepl-backend/internal/shared/apperror"
	"bepl-backend/internal/shared/middleware"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
)

const (
	DefaultBcryptCost = 12

	invalidCredentials = "Invalid credentials"
	lockedOut          = "Too many failed login attempts. Try again later."
)

type adminService struct {
	repo    repository.Repository
	tokens  TokenIssuer
	limiter cache.LoginLimiter
	cost    int
	// dummyHash keeps unknown-user logins as slow as wrong-password ones.
	dummyHash []byte
}

func NewService(repo repository.Repository, tokens TokenIssuer, limiter cache.LoginLimiter, cost int) ServiceInterface {
	if cost < bcrypt.MinCost {
		cost = DefaultBcryptCost
	}
	if limiter == nil {
		limiter = cache.NoopLoginLimiter{}
	}
	dummy, _ := bcrypt.GenerateFromPassword([]byte("not-a-real-password"), cost)
	return &adminService{repo: repo, tokens: tokens, limiter: limiter, cost: cost, dummyHash: dummy}
}

// HashPassword is shared with the bootstrap command.
func HashPassword(password string, cost int) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

func (s *adminService) Login(ctx context.Context, req model.LoginRequest) (*model.LoginResponse, error) {
	req.Normalize()
	if err := req.Validate(); err != nil {
		return nil, apperror.FromValidation(err)
	}

	// The limiter fails open: a Redis outage must not lock everyone out.
	locked, err := s.limiter.IsLocked(ctx, req.Username)
	if err != nil {
		log.Warn().Err(err).Msg("Login limiter unavailable")
	}
	if locked {
		return nil, apperror.TooManyRequests(lockedOut)
	}

	admin, err := s.repo.FindByLogin(ctx, req.Username)
	if err != nil && !errors.Is(err, model.ErrAdminNotFound) {
		return nil, apperror.Internal(err)
	}

	hash := s.dummyHash
	if admin != nil {
		hash = []byte(admin.PasswordHash)
	}
	if bcrypt.CompareHashAndPassword(hash, []byte(req.Password)) != nil || admin == nil {
		return nil, s.loginFailed(ctx, req.Username)
	}

	if err := s.limiter.Reset(ctx, req.Username); err != nil {
		log.Warn().Err(err).Msg("Failed to reset login counter")
	}

	token, expiresAt, err := s.tokens.GenerateAccessToken(admin.ID.String(), admin.Username, admin.Role)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	if err := s.repo.UpdateLastLogin(context.WithoutCancel(ctx), admin.ID); err != nil {
		log.Warn().Err(err).Str("admin_id", admin.ID.String()).Msg("Failed to record last login")
	}

	log.Info().Str("admin_id", admin.ID.String()).Str("role", admin.Role).Msg("Admin logged in")
	return &model.LoginResponse{Token: token, ExpiresAt: expiresAt, Admin: admin}, nil
}

func (s *adminService) loginFailed(ctx context.Context, login string) error {
	locked, err := s.limiter.RegisterFailure(ctx, login)
	if err != nil {
		log.Warn().Err(err).Msg("Failed to register login failure")
	}
	if locked {
		log.Warn().Str("login", login).Msg("Account locked after repeated failed logins")
		return apperror.TooManyRequests(lockedOut)
	}
	return apperror.Unauthorized(invalidCredentials)
}

func (s *adminService) Me(ctx context.Context, adminID string) (*model.Admin, error) {
	id, err := uuid.Parse(adminID)
	if err != nil {
		return nil, apperror.NotFound("Admin not found")
	}
	admin, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, model.ErrAdminNotFound) {
			return nil, apperror.NotFound("Admin not found")
		}
		return nil, apperror.Internal(err)
	}
	return admin, nil
}

func (s *adminService) List(ctx context.Context) ([]model.Admin, error) {
	admins, err := s.repo.List(ctx)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return admins, nil
}

func (s *adminService) Create(ctx context.Context, req model.CreateAdminRequest) (*model.Admin, error) {
	req.Normalize()
	if err := req.Validate(); err != nil {
		return nil, apperror.FromValidation(err)
	}

	hash, err := HashPassword(req.Password, s.cost)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	admin, err := s.repo.Create(ctx, model.NewAdmin{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: hash,
		Role:         req.Role,
	})
	if err != nil {
		if errors.Is(err, model.ErrDuplicateAdmin) {
			return nil, apperror.Conflict("Username or email already exists", err)
		}
		return nil, apperror.Internal(err)
	}

	log.Info().Str("admin_id", admin.ID.String()).Str("role", admin.Role).Msg("Admin created")
	return admin, nil
}

func (s *adminService) LoadIdentity(ctx context.Context, adminID string) (*middleware.Identity, error) {
	id, err := uuid.Parse(adminID)
	if err != nil {
		return nil, middleware.ErrIdentityNotFound
	}
	admin, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, model.ErrAdminNotFound) {
			return nil, middleware.ErrIdentityNotFound
		}
		return nil, err
	}
	return &middleware.Identity{
		ID:       admin.ID.String(),
		Username: admin.Username,
		Email:    admin.Email,
		Role:     admin.Role,
	}, nil
}
