package http

import (
	"fmt"
	"net/http"

	"github.com/bilgiteknoresmi-prog/3d-baski-studio/internal/session"
)

// sessionHandlerFunc is a handler that receives the caller's session
// explicitly.
type sessionHandlerFunc func(w http.ResponseWriter, r *http.Request, sess session.Session)

type gate struct {
	*responder
	sessions *session.Manager
}

func (g *gate) withSession(fn sessionHandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, err := g.sessions.Load(r)
		if err != nil {
			g.handleError(w, r, session.Session{}, fmt.Errorf("session load: %w", err))
			return
		}
		fn(w, r, sess)
	}
}

// adminOnly redirects callers without an admin session to the login page.
func (g *gate) adminOnly(fn sessionHandlerFunc) http.HandlerFunc {
	return g.withSession(func(w http.ResponseWriter, r *http.Request, sess session.Session) {
		if !sess.IsAdmin {
			redirect(w, r, "/login")
			return
		}
		fn(w, r, sess)
	})
}
