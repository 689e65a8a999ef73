package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"bepl-backend/pkg/jwt"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return env
}

func newAuthRouter(t *testing.T, loader IdentityLoader, gates ...Gate) (*gin.Engine, *jwt.Manager) {
	t.Helper()
	tokens := jwt.NewManager("test-secret", time.Hour)

	r := gin.New()
	handlers := []gin.HandlerFunc{Authenticate(tokens, loader)}
	if len(gates) > 0 {
		handlers = append(handlers, Require(gates...))
	}
	handlers = append(handlers, func(c *gin.Context) {
		identity, _ := GetIdentity(c)
		c.JSON(http.StatusOK, gin.H{"success": true, "message": identity.Username})
	})
	r.GET("/protected", handlers...)
	return r, tokens
}

func staticLoader(identities map[string]*Identity) IdentityLoader {
	return IdentityLoaderFunc(func(_ context.Context, id string) (*Identity, error) {
		if identity, ok := identities[id]; ok {
			return identity, nil
		}
		return nil, ErrIdentityNotFound
	})
}

func TestAuthenticate(t *testing.T) {
	loader := staticLoader(map[string]*Identity{
		"a1": {ID: "a1", Username: "editor", Role: RoleAdmin},
	})
	r, tokens := newAuthRouter(t, loader)

	valid, _, err := tokens.GenerateAccessToken("a1", "editor", RoleAdmin)
	require.NoError(t, err)
	orphan, _, err := tokens.GenerateAccessToken("gone", "ghost", RoleAdmin)
	require.NoError(t, err)

	tests := []struct {
		name       string
		header     string
		wantStatus int
		wantMsg    string
	}{
		{"missing header", "", http.StatusUnauthorized, "Access token required"},
		{"wrong scheme", "Basic " + valid, http.StatusUnauthorized, "Access token required"},
		{"bad token", "Bearer nope", http.StatusUnauthorized, "Invalid or expired token"},
		{"deleted admin", "Bearer " + orphan, http.StatusUnauthorized, "Invalid or expired token"},
		{"ok", "Bearer " + valid, http.StatusOK, "editor"},
		{"lowercase scheme", "bearer " + valid, http.StatusOK, "editor"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantMsg, decode(t, rec).Message)
		})
	}
}

func TestAuthenticate_LoaderFailureIs500(t *testing.T) {
	loader := IdentityLoaderFunc(func(context.Context, string) (*Identity, error) {
		return nil, errors.New("db down")
	})
	r, tokens := newAuthRouter(t, loader)
	token, _, err := tokens.GenerateAccessToken("a1", "editor", RoleAdmin)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestRequire_Gates(t *testing.T) {
	loader := staticLoader(map[string]*Identity{
		"a1": {ID: "a1", Username: "editor", Role: RoleAdmin},
		"s1": {ID: "s1", Username: "root", Role: RoleSuperAdmin},
	})

	getOnly := Gate{
		Allow:   func(_ Identity, r Resource) bool { return r.Method == http.MethodGet && r.Route == "/protected" },
		Message: "read only",
	}

	tests := []struct {
		name       string
		gates      []Gate
		subject    string
		wantStatus int
		wantMsg    string
	}{
		{"admin passes any admin", []Gate{AnyAdmin}, "a1", http.StatusOK, "editor"},
		{"admin blocked from superadmin", []Gate{SuperAdminOnly}, "a1", http.StatusForbidden, "Superadmin access required"},
		{"superadmin passes", []Gate{AnyAdmin, SuperAdminOnly}, "s1", http.StatusOK, "root"},
		{"resource predicate", []Gate{AnyAdmin, getOnly}, "a1", http.StatusOK, "editor"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, tokens := newAuthRouter(t, loader, tt.gates...)
			token, _, err := tokens.GenerateAccessToken(tt.subject, "", "")
			require.NoError(t, err)

			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			req.Header.Set("Authorization", "Bearer "+token)
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantMsg, decode(t, rec).Message)
		})
	}
}

func TestRequire_WithoutAuthenticate(t *testing.T) {
	r := gin.New()
	r.GET("/x", Require(AnyAdmin), func(c *gin.Context) { c.Status(http.StatusOK) })

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/x", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequestIDAndRecovery(t *testing.T) {
	r := gin.New()
	r.Use(Recovery(), RequestID(), ClientIP(), Logger())
	r.GET("/panic", func(c *gin.Context) { panic("boom") })
	r.GET("/ok", func(c *gin.Context) { c.String(http.StatusOK, c.GetString("request_id")) })

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/panic", nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.False(t, decode(t, rec).Success)
	assert.NotEmpty(t, rec.Header().Get(RequestIDHeader))

	req := httptest.NewRequest(http.MethodGet, "/ok", nil)
	req.Header.Set(RequestIDHeader, "req-123")
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, "req-123", rec.Body.String())
	assert.Equal(t, "req-123", rec.Header().Get(RequestIDHeader))
}

func TestCORS(t *testing.T) {
	r := gin.New()
	r.Use(CORS([]string{"https://bepl.example"}, HasSuffix("/resume")))
	r.GET("/api/services", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.GET("/api/careers/:id/resume", func(c *gin.Context) { c.Status(http.StatusOK) })

	t.Run("allowed origin", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/services", nil)
		req.Header.Set("Origin", "https://bepl.example")
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)
		assert.Equal(t, "https://bepl.example", rec.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("foreign origin", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/services", nil)
		req.Header.Set("Origin", "https://evil.example")
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)
		assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("preflight answered", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/api/services", nil)
		req.Header.Set("Origin", "https://bepl.example")
		req.Header.Set("Access-Control-Request-Method", http.MethodPost)
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)
		assert.Less(t, rec.Code, 300)
		assert.Equal(t, "https://bepl.example", rec.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("skipped path", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/careers/1/resume", nil)
		req.Header.Set("Origin", "https://evil.example")
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
	})
}
