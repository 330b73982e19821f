package service

import (
	"context"
	"crypto/subtle"
	"strings"

	"github.com/bilgiteknoresmi-prog/3d-baski-studio/internal/apperr"
)

// AdminUsername is the only account that can sign in to the panel.
const AdminUsername = "admin"

// Limiter decides whether another attempt for key is allowed right now.
type Limiter interface {
	Allow(ctx context.Context, key string) bool
}

type AuthenticateParams struct {
	Username string
	Password string
	// ClientKey identifies the caller for rate limiting, usually its IP.
	ClientKey string
}

type AuthService interface {
	// Authenticate returns nil when the credentials match the admin account.
	Authenticate(ctx context.Context, params AuthenticateParams) error
	// Enabled reports whether an admin password is configured.
	Enabled() bool
}

type authService struct {
	password string
	limiter  Limiter
}

// NewAuthService creates the admin login check. limiter may be nil to disable
// rate limiting. An empty password disables login entirely.
func NewAuthService(password string, limiter Limiter) AuthService {
	return &authService{
		password: password,
		limiter:  limiter,
	}
}

func (s *authService) Enabled() bool {
	return s.password != ""
}

func (s *authService) Authenticate(ctx context.Context, params AuthenticateParams) error {
	if s.limiter != nil && !s.limiter.Allow(ctx, "login:"+params.ClientKey) {
		return apperr.TooManyLoginAttemptsErr
	}

	if !s.Enabled() {
		return apperr.LoginDisabledErr
	}

	userOK := strings.TrimSpace(params.Username) == AdminUsername
	passOK := subtle.ConstantTimeCompare([]byte(params.Password), []byte(s.password)) == 1
	if !userOK || !passOK {
		return apperr.InvalidCredentialsErr
	}

	return nil
}
