package jwt

import (
	"testing"
	"time"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidate(t *testing.T) {
	m := NewManager("secret", time.Hour)

	token, exp, err := m.GenerateAccessToken("a1", "root", "superadmin")
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), exp, 5*time.Second)

	claims, err := m.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "a1", claims.AdminID)
	assert.Equal(t, "root", claims.Username)
	assert.Equal(t, "superadmin", claims.Role)
}

func TestValidateToken_Rejects(t *testing.T) {
	m := NewManager("secret", time.Hour)
	good, _, err := m.GenerateAccessToken("a1", "root", "admin")
	require.NoError(t, err)

	expired := NewManager("secret", time.Minute)
	expired.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	old, _, err := expired.GenerateAccessToken("a1", "root", "admin")
	require.NoError(t, err)

	none := gojwt.NewWithClaims(gojwt.SigningMethodNone, Claims{AdminID: "a1"})
	unsigned, err := none.SignedString(gojwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{"wrong secret", mustSign(t, NewManager("other", time.Hour))},
		{"expired", old},
		{"alg none", unsigned},
		{"garbage", "not.a.token"},
		{"tampered", good + "x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := m.ValidateToken(tt.token)
			assert.ErrorIs(t, err, ErrInvalidToken)
		})
	}
}

func mustSign(t *testing.T, m *Manager) string {
	t.Helper()
	token, _, err := m.GenerateAccessToken("a1", "root", "admin")
	require.NoError(t, err)
	return token
}
