package middleware

import (
	"context"
	"errors"
	"strings"

	"bepl-backend/internal/shared/apperror"
	"bepl-backend/internal/shared/response"
	"bepl-backend/pkg/jwt"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

const identityKey = "identity"

// Roles
const (
	RoleAdmin      = "admin"
	RoleSuperAdmin = "superadmin"
)

// Identity is the authenticated admin attached to the request.
type Identity struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

// ErrIdentityNotFound is returned by a loader when the token subject no longer exists.
var ErrIdentityNotFound = errors.New("identity not found")

// IdentityLoader resolves a token subject into the current admin record.
type IdentityLoader interface {
	LoadIdentity(ctx context.Context, adminID string) (*Identity, error)
}

// IdentityLoaderFunc adapts a function to IdentityLoader.
type IdentityLoaderFunc func(ctx context.Context, adminID string) (*Identity, error)

func (f IdentityLoaderFunc) LoadIdentity(ctx context.Context, adminID string) (*Identity, error) {
	return f(ctx, adminID)
}

// TokenValidator is satisfied by *jwt.Manager.
type TokenValidator interface {
	ValidateToken(token string) (*jwt.Claims, error)
}

// Authenticate verifies the bearer token and attaches the admin identity.
// The admin is re-read on every request so deleted accounts and role
// changes take effect before the token expires.
func Authenticate(tokens TokenValidator, loader IdentityLoader) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c.GetHeader("Authorization"))
		if !ok {
			response.HandleError(c, apperror.Unauthorized("Access token required"))
			c.Abort()
			return
		}

		claims, err := tokens.ValidateToken(token)
		if err != nil {
			response.HandleError(c, apperror.Unauthorized("Invalid or expired token"))
			c.Abort()
			return
		}

		identity, err := loader.LoadIdentity(c.Request.Context(), claims.AdminID)
		if err != nil {
			if errors.Is(err, ErrIdentityNotFound) {
				response.HandleError(c, apperror.Unauthorized("Invalid or expired token"))
			} else {
				log.Error().Err(err).Str("admin_id", claims.AdminID).Msg("load identity")
				response.HandleError(c, apperror.Internal(err))
			}
			c.Abort()
			return
		}

		c.Set(identityKey, identity)
		c.Next()
	}
}

func bearerToken(header string) (string, bool) {
	parts := strings.Fields(header)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}
	return parts[1], true
}

// GetIdentity returns the identity set by Authenticate.
func GetIdentity(c *gin.Context) (*Identity, bool) {
	v, ok := c.Get(identityKey)
	if !ok {
		return nil, false
	}
	identity, ok := v.(*Identity)
	return identity, ok && identity != nil
}
