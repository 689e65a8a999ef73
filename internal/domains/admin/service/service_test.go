package service

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"bepl-backend/internal/domains/admin/model"
	"bepl-backend/internal/shared/apperror"
	"bepl-backend/internal/shared/middleware"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type memRepo struct {
	mu         sync.Mutex
	admins     []model.Admin
	lastLogins map[uuid.UUID]int
}

func newMemRepo() *memRepo { return &memRepo{lastLogins: map[uuid.UUID]int{}} }

func (m *memRepo) FindByLogin(_ context.Context, login string) (*model.Admin, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	byEmail := model.LoginIsEmail(login)
	for _, a := range m.admins {
		if (byEmail && a.Email == login) || (!byEmail && a.Username == login) {
			out := a
			return &out, nil
		}
	}
	return nil, model.ErrAdminNotFound
}

func (m *memRepo) GetByID(_ context.Context, id uuid.UUID) (*model.Admin, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, a := range m.admins {
		if a.ID == id {
			out := a
			return &out, nil
		}
	}
	return nil, model.ErrAdminNotFound
}

func (m *memRepo) List(context.Context) ([]model.Admin, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]model.Admin{}, m.admins...), nil
}

func (m *memRepo) Create(_ context.Context, n model.NewAdmin) (*model.Admin, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, a := range m.admins {
		if a.Username == n.Username || a.Email == n.Email {
			return nil, model.ErrDuplicateAdmin
		}
	}
	a := model.Admin{ID: uuid.New(), Username: n.Username, Email: n.Email,
		PasswordHash: n.PasswordHash, Role: n.Role, CreatedAt: time.Now()}
	m.admins = append(m.admins, a)
	return &a, nil
}

func (m *memRepo) UpdateLastLogin(_ context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lastLogins[id]++
	return nil
}

type fakeTokens struct{}

func (fakeTokens) GenerateAccessToken(adminID, username, role string) (string, time.Time, error) {
	return "token-" + username + "-" + role, time.Now().Add(time.Hour), nil
}

// countingLimiter locks after max failures.
type countingLimiter struct {
	max      int
	failures map[string]int
	err      error
}

func (l *countingLimiter) IsLocked(_ context.Context, key string) (bool, error) {
	if l.err != nil {
		return false, l.err
	}
	return l.failures[key] >= l.max, nil
}

func (l *countingLimiter) RegisterFailure(_ context.Context, key string) (bool, error) {
	if l.err != nil {
		return false, l.err
	}
	l.failures[key]++
	return l.failures[key] >= l.max, nil
}

func (l *countingLimiter) Reset(_ context.Context, key string) error {
	delete(l.failures, key)
	return l.err
}

func newTestService(t *testing.T, limiter *countingLimiter) (ServiceInterface, *memRepo, *model.Admin) {
	t.Helper()
	repo := newMemRepo()
	svc := NewService(repo, fakeTokens{}, limiter, bcrypt.MinCost)
	admin, err := svc.Create(context.Background(), model.CreateAdminRequest{
		Username: " Root ", Email: "Root@BEPL.example", Password: "secret1", Role: model.RoleSuperAdmin,
	})
	require.NoError(t, err)
	return svc, repo, admin
}

func TestLogin(t *testing.T) {
	tests := []struct {
		name     string
		username string
		password string
		wantKind apperror.Kind
		wantOK   bool
	}{
		{"by username", "ROOT", "secret1", 0, true},
		{"by email", "root@bepl.example", "secret1", 0, true},
		{"wrong password", "root", "nope", apperror.KindUnauthorized, false},
		{"unknown user", "ghost", "secret1", apperror.KindUnauthorized, false},
		{"missing password", "root", "", apperror.KindValidation, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo, admin := newTestService(t, &countingLimiter{max: 5, failures: map[string]int{}})

			res, err := svc.Login(context.Background(), model.LoginRequest{Username: tt.username, Password: tt.password})
			if !tt.wantOK {
				assert.True(t, apperror.Is(err, tt.wantKind))
				if tt.wantKind == apperror.KindUnauthorized {
					assert.Equal(t, "Invalid credentials", apperror.From(err).Message)
				}
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "token-root-superadmin", res.Token)
			assert.Equal(t, admin.ID, res.Admin.ID)
			assert.Equal(t, 1, repo.lastLogins[admin.ID])
		})
	}
}

func TestLogin_LocksAfterRepeatedFailures(t *testing.T) {
	limiter := &countingLimiter{max: 3, failures: map[string]int{}}
	svc, _, _ := newTestService(t, limiter)
	ctx := context.Background()
	bad := model.LoginRequest{Username: "root", Password: "wrong"}

	for i := 0; i < 2; i++ {
		_, err := svc.Login(ctx, bad)
		assert.True(t, apperror.Is(err, apperror.KindUnauthorized))
	}
	_, err := svc.Login(ctx, bad)
	assert.True(t, apperror.Is(err, apperror.KindTooManyRequests))

	_, err = svc.Login(ctx, model.LoginRequest{Username: "root", Password: "secret1"})
	appErr := apperror.From(err)
	assert.Equal(t, apperror.KindTooManyRequests, appErr.Kind)
	assert.Equal(t, "Too many failed login attempts. Try again later.", appErr.Message)
}

func TestLogin_LimiterFailsOpen(t *testing.T) {
	svc, _, _ := newTestService(t, &countingLimiter{max: 1, failures: map[string]int{}, err: errors.New("redis down")})

	_, err := svc.Login(context.Background(), model.LoginRequest{Username: "root", Password: "secret1"})
	assert.NoError(t, err)
}

func TestCreate(t *testing.T) {
	svc, repo, admin := newTestService(t, &countingLimiter{max: 5, failures: map[string]int{}})
	ctx := context.Background()

	assert.Equal(t, "root", admin.Username)
	assert.Equal(t, "root@bepl.example", admin.Email)
	assert.NotEqual(t, "secret1", repo.admins[0].PasswordHash)
	assert.True(t, strings.HasPrefix(repo.admins[0].PasswordHash, "$2"))

	_, err := svc.Create(ctx, model.CreateAdminRequest{Username: "root", Email: "other@bepl.example", Password: "secret1"})
	appErr := apperror.From(err)
	assert.Equal(t, 400, appErr.Status())
	assert.Equal(t, "Username or email already exists", appErr.Message)

	invalid := []struct {
		name     string
		username string
		password string
		field    string
	}{
		{"short password", "editor", "12345", "password"},
		{"password over bcrypt limit", "editor", strings.Repeat("a", model.MaxPasswordBytes+8), "password"},
		{"multibyte password over byte limit", "editor", strings.Repeat("é", 40), "password"},
		{"username shaped like an email", "ed@bepl.example", "secret1", "username"},
	}
	for _, tt := range invalid {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(ctx, model.CreateAdminRequest{Username: tt.username, Email: "editor@bepl.example", Password: tt.password})
			appErr := apperror.From(err)
			require.Equal(t, apperror.KindValidation, appErr.Kind)
			assert.Equal(t, 400, appErr.Status())
			require.Len(t, appErr.Errors, 1)
			assert.Equal(t, tt.field, appErr.Errors[0].Field)
		})
	}

	longest, err := svc.Create(ctx, model.CreateAdminRequest{
		Username: "longest", Email: "longest@bepl.example", Password: strings.Repeat("a", model.MaxPasswordBytes),
	})
	require.NoError(t, err)
	assert.Equal(t, "longest", longest.Username)

	editor, err := svc.Create(ctx, model.CreateAdminRequest{Username: "editor", Email: "editor@bepl.example", Password: "123456"})
	require.NoError(t, err)
	assert.Equal(t, model.RoleAdmin, editor.Role)
}

func TestLoadIdentity(t *testing.T) {
	svc, _, admin := newTestService(t, &countingLimiter{max: 5, failures: map[string]int{}})
	ctx := context.Background()

	identity, err := svc.LoadIdentity(ctx, admin.ID.String())
	require.NoError(t, err)
	assert.Equal(t, middleware.RoleSuperAdmin, identity.Role)

	_, err = svc.LoadIdentity(ctx, uuid.NewString())
	assert.ErrorIs(t, err, middleware.ErrIdentityNotFound)
	_, err = svc.LoadIdentity(ctx, "garbage")
	assert.ErrorIs(t, err, middleware.ErrIdentityNotFound)
}
