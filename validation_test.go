package allauth_test

import (
	"testing"

	allauth "github.com/goliatone/go-allauth"
	"github.com/stretchr/testify/assert"
)

func TestLoginRequestValidate(t *testing.T) {
	tests := []struct {
		name    string
		payload allauth.LoginRequest
		wantErr bool
	}{
		{
			name:    "email and password",
			payload: allauth.LoginRequest{Email: "tst@example.com", Password: "hunter22"},
		},
		{
			name:    "username instead of email",
			payload: allauth.LoginRequest{Username: "tst", Password: "hunter22"},
		},
		{
			name:    "neither identifier",
			payload: allauth.LoginRequest{Password: "hunter22"},
			wantErr: true,
		},
		{
			name:    "missing password",
			payload: allauth.LoginRequest{Email: "tst@example.com"},
			wantErr: true,
		},
		{
			name:    "malformed email",
			payload: allauth.LoginRequest{Email: "not-an-email", Password: "hunter22"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.payload.Validate()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestSignupRequestValidate(t *testing.T) {
	tests := []struct {
		name    string
		payload allauth.SignupRequest
		wantErr bool
	}{
		{
			name:    "valid",
			payload: allauth.SignupRequest{Email: "tst@example.com", Password: "hunter2222"},
		},
		{
			name:    "valid with phone",
			payload: allauth.SignupRequest{Email: "tst@example.com", Password: "hunter2222", Phone: "+14155552671"},
		},
		{
			name:    "short password",
			payload: allauth.SignupRequest{Email: "tst@example.com", Password: "short"},
			wantErr: true,
		},
		{
			name:    "phone without country code",
			payload: allauth.SignupRequest{Email: "tst@example.com", Password: "hunter2222", Phone: "4155552671"},
			wantErr: true,
		},
		{
			name:    "missing email",
			payload: allauth.SignupRequest{Password: "hunter2222"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.payload.Validate()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestChangePasswordRequestValidate(t *testing.T) {
	assert.Error(t, allauth.ChangePasswordRequest{NewPassword: "short"}.Validate())
	assert.NoError(t, allauth.ChangePasswordRequest{
		CurrentPassword: "hunter2222",
		NewPassword:     "hunter3333",
	}.Validate())
}

func TestProviderTokenRequestValidate(t *testing.T) {
	assert.Error(t, allauth.ProviderTokenRequest{Provider: "google"}.Validate())
	assert.NoError(t, allauth.ProviderTokenRequest{
		Provider: "google",
		Token:    "id-token",
		Process:  allauth.ProcessLogin,
	}.Validate())
}
