package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoginIsEmail(t *testing.T) {
	tests := []struct {
		login string
		want  bool
	}{
		{"admin@bepl.com", true},
		{"admin", false},
		{"admin@", false},
		{"", false},
	}
	for _, tt := range tests {
		t.Run(tt.login, func(t *testing.T) {
			assert.Equal(t, tt.want, LoginIsEmail(tt.login))
		})
	}
}
