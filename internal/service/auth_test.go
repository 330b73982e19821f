package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bilgiteknoresmi-prog/3d-baski-studio/internal/apperr"
)

type countingLimiter struct {
	limit int
	seen  map[string]int
}

func (l *countingLimiter) Allow(_ context.Context, key string) bool {
	if l.seen == nil {
		l.seen = map[string]int{}
	}
	l.seen[key]++
	return l.seen[key] <= l.limit
}

func TestAuthService_Authenticate(t *testing.T) {
	ctx := context.Background()
	svc := NewAuthService("s3cret", nil)
	require.True(t, svc.Enabled())

	tests := []struct {
		name     string
		username string
		password string
		wantErr  error
	}{
		{name: "ok", username: "admin", password: "s3cret"},
		{name: "username trimmed", username: "  admin ", password: "s3cret"},
		{name: "password not trimmed", username: "admin", password: " s3cret", wantErr: apperr.InvalidCredentialsErr},
		{name: "wrong user", username: "root", password: "s3cret", wantErr: apperr.InvalidCredentialsErr},
		{name: "wrong password", username: "admin", password: "nope", wantErr: apperr.InvalidCredentialsErr},
		{name: "case sensitive user", username: "Admin", password: "s3cret", wantErr: apperr.InvalidCredentialsErr},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := svc.Authenticate(ctx, AuthenticateParams{Username: tt.username, Password: tt.password})
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestAuthService_Disabled(t *testing.T) {
	svc := NewAuthService("", nil)
	assert.False(t, svc.Enabled())

	err := svc.Authenticate(context.Background(), AuthenticateParams{Username: "admin", Password: ""})
	require.ErrorIs(t, err, apperr.LoginDisabledErr)
}

func TestAuthService_RateLimited(t *testing.T) {
	ctx := context.Background()
	limiter := &countingLimiter{limit: 2}
	svc := NewAuthService("s3cret", limiter)

	params := AuthenticateParams{Username: "admin", Password: "wrong", ClientKey: "10.0.0.1"}
	require.ErrorIs(t, svc.Authenticate(ctx, params), apperr.InvalidCredentialsErr)
	require.ErrorIs(t, svc.Authenticate(ctx, params), apperr.InvalidCredentialsErr)

	params.Password = "s3cret"
	require.ErrorIs(t, svc.Authenticate(ctx, params), apperr.TooManyLoginAttemptsErr)

	params.ClientKey = "10.0.0.2"
	require.NoError(t, svc.Authenticate(ctx, params))
	assert.Equal(t, 3, limiter.seen["login:10.0.0.1"])
}
