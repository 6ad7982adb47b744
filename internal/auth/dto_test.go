// AngelaMos | 2026
// dto_test.go

package auth

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterRequest_PasswordLength(t *testing.T) {
	v := validator.New(validator.WithRequiredStructEnabled())

	tests := []struct {
		name     string
		password string
		wantErr  bool
	}{
		{"five chars rejected", "12345", true},
		{"six chars accepted", "123456", false},
		{"empty rejected", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := RegisterRequest{
				Email:    "founder@example.com",
				Password: tt.password,
			}

			err := v.Struct(req)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRegisterRequest_UsernameIsOptional(t *testing.T) {
	v := validator.New(validator.WithRequiredStructEnabled())

	req := RegisterRequest{
		Email:    "founder@example.com",
		Password: "secret1",
	}
	require.NoError(t, v.Struct(req))
}

func TestLoginRequest_RequiresValidEmail(t *testing.T) {
	v := validator.New(validator.WithRequiredStructEnabled())

	err := v.Struct(LoginRequest{Email: "not-an-email", Password: "secret1"})
	assert.Error(t, err)

	err = v.Struct(LoginRequest{Email: "ok@example.com", Password: "secret1"})
	assert.NoError(t, err)
}
