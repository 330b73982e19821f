package middleware

import (
	"log/slog"
	"net/http"
	"runtime/debug"
)

const internalErrorPage = `<!doctype html>
<html lang="tr"><head><meta charset="utf-8"><title>Hata</title></head>
<body><h1>Hata 500</h1><p>Beklenmeyen bir hata oluştu.</p><a href="/">Ana sayfaya dön</a></body></html>`

// Recoverer is a middleware that recovers from panics, logs the panic (and a
// backtrace), and returns a HTTP 500 (Internal Server Error) page if
// possible.
func Recoverer(log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rvr := recover(); rvr != nil {
					if rvr == http.ErrAbortHandler {
						// we don't recover http.ErrAbortHandler so the response
						// to the client is aborted, this should not be logged
						panic(rvr)
					}

					log.ErrorContext(r.Context(), "panic", slog.Any("recover", rvr),
						slog.String("stack", string(debug.Stack())))

					if r.Header.Get("Connection") != "Upgrade" {
						w.Header().Set("Content-Type", "text/html; charset=utf-8")
						w.WriteHeader(http.StatusInternalServerError)
						//nolint:errcheck
						w.Write([]byte(internalErrorPage))
					}
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}
