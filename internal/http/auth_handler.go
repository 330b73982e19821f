package http

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/bilgiteknoresmi-prog/3d-baski-studio/internal/apperr"
	"github.com/bilgiteknoresmi-prog/3d-baski-studio/internal/http/view"
	"github.com/bilgiteknoresmi-prog/3d-baski-studio/internal/service"
	"github.com/bilgiteknoresmi-prog/3d-baski-studio/internal/session"
	"github.com/bilgiteknoresmi-prog/3d-baski-studio/pkg/zerror"
)

type authHandler struct {
	*responder
	authSvc  service.AuthService
	sessions *session.Manager
}

func newAuthHandler(rs *responder, authSvc service.AuthService, sessions *session.Manager) *authHandler {
	return &authHandler{
		responder: rs,
		authSvc:   authSvc,
		sessions:  sessions,
	}
}

func (h *authHandler) LoginForm(w http.ResponseWriter, r *http.Request, sess session.Session) {
	h.render(w, r, http.StatusOK, view.PageLogin, view.Page{
		Title:   "Giriş",
		IsAdmin: sess.IsAdmin,
		Data:    view.LoginData{},
	})
}

func (h *authHandler) Login(w http.ResponseWriter, r *http.Request, sess session.Session) {
	ctx := r.Context()
	username := r.PostFormValue("username")

	err := h.authSvc.Authenticate(ctx, service.AuthenticateParams{
		Username:  username,
		Password:  r.PostFormValue("password"),
		ClientKey: clientKey(r),
	})
	if err != nil {
		var zErr zerror.ZError
		if !errors.As(err, &zErr) {
			h.handleError(w, r, sess, fmt.Errorf("auth service authenticate: %w", err))
			return
		}

		status := http.StatusOK
		if errors.Is(err, apperr.TooManyLoginAttemptsErr) {
			status = http.StatusTooManyRequests
		}
		h.logger.WarnContext(ctx, "admin login rejected",
			slog.String("code", zErr.Code()),
			slog.String("client", clientKey(r)))

		h.render(w, r, status, view.PageLogin, view.Page{
			Title:   "Giriş",
			IsAdmin: sess.IsAdmin,
			Data:    view.LoginData{Error: zErr.Msg(), Username: username},
		})
		return
	}

	if _, err := h.sessions.Renew(ctx, w, sess, session.Data{IsAdmin: true}); err != nil {
		h.handleError(w, r, sess, fmt.Errorf("session renew: %w", err))
		return
	}

	h.logger.InfoContext(ctx, "admin logged in", slog.String("client", clientKey(r)))
	redirect(w, r, "/admin")
}

func (h *authHandler) Logout(w http.ResponseWriter, r *http.Request, sess session.Session) {
	if err := h.sessions.Destroy(r.Context(), w, sess); err != nil {
		h.handleError(w, r, sess, fmt.Errorf("session destroy: %w", err))
		return
	}
	redirect(w, r, "/")
}
