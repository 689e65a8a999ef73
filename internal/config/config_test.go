package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("APP_ENV", "development")
	t.Setenv("PORT", "")
	t.Setenv("EMAIL_USER", "mailer@example.com")
	t.Setenv("COMPANY_EMAIL", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "5000", cfg.App.Port)
	assert.Equal(t, "http://localhost:8080", cfg.App.FrontendURL)
	assert.Equal(t, "smtp.gmail.com", cfg.Email.Host)
	assert.Equal(t, 587, cfg.Email.Port)
	assert.Equal(t, "mailer@example.com", cfg.Email.CompanyEmail)
	assert.Equal(t, int64(10<<20), cfg.Upload.MaxBytes)
	assert.Equal(t, 10, cfg.Upload.MaxFiles)
	assert.Equal(t, 30*time.Second, cfg.App.OutboundTimeout)
	assert.Equal(t, []string{"*"}, cfg.CORS.AllowedOrigins)
	assert.False(t, cfg.IsProduction())
}

func TestLoad_ProductionRequiresSecrets(t *testing.T) {
	tests := []struct {
		name    string
		secret  string
		dbPass  string
		wantErr string
	}{
		{"missing jwt secret", "", "pw", "JWT_SECRET"},
		{"missing db password", "s3cret", "", "DB_PASSWORD"},
		{"all set", "s3cret", "pw", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("APP_ENV", "production")
			t.Setenv("JWT_SECRET", tt.secret)
			t.Setenv("DB_PASSWORD", tt.dbPass)
			t.Setenv("EMAIL_USER", "mailer@example.com")

			_, err := Load()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestGetEnvHelpers(t *testing.T) {
	t.Setenv("X_INT", "nope")
	t.Setenv("X_BOOL", "true")
	t.Setenv("X_DUR", "90s")
	t.Setenv("X_LIST", " https://a.example , ,https://b.example")

	assert.Equal(t, 7, getEnvInt("X_INT", 7))
	assert.True(t, getEnvBool("X_BOOL", false))
	assert.Equal(t, 90*time.Second, getEnvDuration("X_DUR", time.Second))
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, getEnvList("X_LIST", nil))
}

func TestLoadDatabaseConfig(t *testing.T) {
	t.Setenv("DB_PORT", "6543")
	t.Setenv("DB_CONNECT_TIMEOUT", "3s")

	cfg, err := LoadDatabaseConfig()
	require.NoError(t, err)
	assert.Equal(t, 6543, cfg.Port)
	assert.Equal(t, 3*time.Second, cfg.ConnectTimeout)
	assert.Equal(t, 30*time.Minute, cfg.MaxConnLifetime)

	t.Setenv("DB_RETRY_DELAY", "soon")
	_, err = LoadDatabaseConfig()
	assert.ErrorContains(t, err, "DB_RETRY_DELAY")
}
