package http

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel"

	"github.com/bilgiteknoresmi-prog/3d-baski-studio/internal/config"
	"github.com/bilgiteknoresmi-prog/3d-baski-studio/internal/http/apierr"
	"github.com/bilgiteknoresmi-prog/3d-baski-studio/internal/http/metric"
	"github.com/bilgiteknoresmi-prog/3d-baski-studio/internal/http/middleware"
	"github.com/bilgiteknoresmi-prog/3d-baski-studio/internal/http/view"
	"github.com/bilgiteknoresmi-prog/3d-baski-studio/internal/service"
	"github.com/bilgiteknoresmi-prog/3d-baski-studio/internal/session"
	"github.com/bilgiteknoresmi-prog/3d-baski-studio/internal/storage/db"
	"github.com/bilgiteknoresmi-prog/3d-baski-studio/internal/whatsapp"
)

var tracer = otel.Tracer("internal/http")

// Deps are the collaborators the handlers need.
type Deps struct {
	View     *view.Renderer
	Sessions *session.Manager
	WhatsApp whatsapp.Linker
	Health   db.HealthChecker

	ProductSvc service.ProductService
	MessageSvc service.MessageService
	AuthSvc    service.AuthService
}

// Service represents the HTTP service.
type Service struct {
	cfg     config.HTTP
	logger  *slog.Logger
	metrics *metric.Metrics
	deps    Deps
}

type CleanupFunc func(ctx context.Context) error

func New(
	cfg config.HTTP,
	log *slog.Logger,
	deps Deps,
) *Service {
	return &Service{
		cfg:     cfg,
		logger:  log.With(slog.String("service", "http")),
		metrics: metric.New(),
		deps:    deps,
	}
}

// Handler builds the full router.
func (s *Service) Handler() http.Handler {
	r := chi.NewRouter()
	s.RegisterMiddlewares(r)
	s.RegisterHandlers(r)
	return r
}

func (s *Service) Run(ctx context.Context) (CleanupFunc, error) {
	return s.RunWithServer(ctx, s.Handler())
}

func (s *Service) RunWithServer(ctx context.Context, handler http.Handler) (CleanupFunc, error) {
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", s.cfg.Port),
		Handler:           handler,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       120 * time.Second,
		MaxHeaderBytes:    1 << 16, // 64 KB
		BaseContext: func(_ net.Listener) context.Context {
			return ctx
		},
	}

	ln, err := net.Listen("tcp", srv.Addr)
	if err != nil {
		return nil, fmt.Errorf("listen %s: %w", srv.Addr, err)
	}

	go func() {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error("http server stopped", slog.Any("error", err))
		}
	}()

	s.logger.InfoContext(ctx, "http server listening", slog.String("addr", ln.Addr().String()))

	return func(ctx context.Context) error {
		ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		return srv.Shutdown(ctx)
	}, nil
}

func (s *Service) RegisterMiddlewares(r chi.Router) {
	if s.cfg.TrustProxy {
		r.Use(chimiddleware.RealIP)
	}
	r.Use(
		middleware.Recoverer(s.logger),
		middleware.Trace(tracer),
		middleware.Metrics(s.metrics),
		middleware.CorrelationID(),
		middleware.Cors(s.cfg.CORSAllowedOrigins),
		middleware.SecureHeaders(),
		middleware.Logging(s.logger),
	)
}

func (s *Service) RegisterHandlers(r chi.Router) {
	rs := &responder{logger: s.logger, view: s.deps.View}
	g := &gate{responder: rs, sessions: s.deps.Sessions}

	catalog := newCatalogHandler(rs, s.deps.ProductSvc, s.deps.MessageSvc, s.deps.WhatsApp)
	auth := newAuthHandler(rs, s.deps.AuthSvc, s.deps.Sessions)
	admin := newAdminHandler(rs, s.deps.ProductSvc, s.deps.MessageSvc, s.deps.WhatsApp)
	health := newHealthHandler(s.deps.Health)

	r.Get("/", g.withSession(catalog.Home))
	r.Get("/products", g.withSession(catalog.Products))
	r.Get("/vision", g.withSession(catalog.Vision))
	r.Get("/contact", g.withSession(catalog.Contact))
	r.Post("/contact/send", g.withSession(catalog.ContactSend))

	r.Get("/login", g.withSession(auth.LoginForm))
	r.Post("/login", g.withSession(auth.Login))
	r.Get("/logout", g.withSession(auth.Logout))

	r.Route("/admin", func(r chi.Router) {
		r.Get("/", g.adminOnly(admin.Dashboard))
		r.Get("/products", g.adminOnly(admin.Products))
		r.Post("/add", g.adminOnly(admin.AddProduct))
		r.Post("/delete", g.adminOnly(admin.DeleteProduct))
		r.Get("/edit/{id:[0-9]+}", g.adminOnly(admin.EditProductForm))
		r.Post("/edit/{id:[0-9]+}", g.adminOnly(admin.EditProduct))
		r.Get("/messages", g.adminOnly(admin.Messages))
		r.Post("/messages/read", g.adminOnly(admin.MarkMessageRead))
		r.Post("/messages/delete", g.adminOnly(admin.DeleteMessage))
		r.NotFound(g.adminOnly(func(w http.ResponseWriter, r *http.Request, sess session.Session) {
			rs.renderError(w, r, sess, apierr.NotFoundErr)
		}))
		r.MethodNotAllowed(g.adminOnly(func(w http.ResponseWriter, r *http.Request, sess session.Session) {
			rs.renderError(w, r, sess, apierr.MethodNotAllowedErr)
		}))
	})

	r.Get("/healthz", health.Healthz)

	if s.cfg.Metrics {
		r.Handle(middleware.MetricsPath, promhttp.HandlerFor(s.metrics.Registry, promhttp.HandlerOpts{
			ErrorLog: log.Default(),
		}))
	}

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		rs.renderError(w, r, session.Session{}, apierr.NotFoundErr)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		rs.renderError(w, r, session.Session{}, apierr.MethodNotAllowedErr)
	})
}

// responder renders pages and error pages.
type responder struct {
	logger *slog.Logger
	view   *view.Renderer
}

func (rs *responder) render(w http.ResponseWriter, r *http.Request, status int, name string, page view.Page) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")

	var buf bytes.Buffer
	if err := rs.view.Render(&buf, name, page); err != nil {
		rs.logger.ErrorContext(r.Context(), "render page", slog.String("page", name), slog.Any("error", err))
		http.Error(w, apierr.InternalServerErr.Message, http.StatusInternalServerError)
		return
	}

	w.WriteHeader(status)
	//nolint:errcheck
	buf.WriteTo(w)
}

// handleError logs err and renders the error page with the mapped status.
func (rs *responder) handleError(w http.ResponseWriter, r *http.Request, sess session.Session, err error) {
	res := apierr.New(err)

	logLevel := slog.LevelInfo
	if res.StatusCode >= 500 {
		logLevel = slog.LevelError
	} else if res.StatusCode >= 400 {
		logLevel = slog.LevelWarn
	}
	rs.logger.Log(r.Context(), logLevel, "http response error", slog.Any("error", err))

	rs.renderError(w, r, sess, res)
}

func (rs *responder) renderError(w http.ResponseWriter, r *http.Request, sess session.Session, res apierr.ErrorResponse) {
	rs.render(w, r, res.StatusCode, view.PageError, view.Page{
		Title:   "Hata",
		IsAdmin: sess.IsAdmin,
		Data:    view.ErrorData{StatusCode: res.StatusCode, Message: res.Message},
	})
}

func redirect(w http.ResponseWriter, r *http.Request, url string) {
	http.Redirect(w, r, url, http.StatusFound)
}
