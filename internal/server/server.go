// Package server exposes the HTTP API: token-authenticated JSON endpoints
// for content management, subscriptions, and the reader feed.
package server

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"newsroom/internal/service"
)

type Server struct {
	users   *service.UserService
	content *service.ContentService
	router  chi.Router
	logger  *slog.Logger
}

func New(users *service.UserService, content *service.ContentService, logger *slog.Logger) *Server {
	s := &Server{
		users:   users,
		content: content,
		logger:  logger.With("component", "http"),
	}
	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Route("/api", func(r chi.Router) {
		r.Post("/register", s.handleRegister)

		// Everything else requires an identity.
		r.Group(func(r chi.Router) {
			r.Use(s.authenticate)

			r.Get("/subscribed-articles", s.handleSubscribedArticles)

			r.Route("/articles", func(r chi.Router) {
				r.Get("/", s.handleListArticles)
				r.Post("/", s.handleCreateArticle)
				r.Get("/pending", s.handlePendingArticles)
				r.Get("/{articleID}", s.handleGetArticle)
				r.Put("/{articleID}", s.handleUpdateArticle)
				r.Delete("/{articleID}", s.handleDeleteArticle)
				r.Post("/{articleID}/approve", s.handleApproveArticle)
				r.Post("/{articleID}/share", s.handleShareArticle)
			})

			r.Route("/newsletters", func(r chi.Router) {
				r.Get("/", s.handleListNewsletters)
				r.Post("/", s.handleCreateNewsletter)
				r.Get("/{newsletterID}", s.handleGetNewsletter)
				r.Put("/{newsletterID}", s.handleUpdateNewsletter)
				r.Delete("/{newsletterID}", s.handleDeleteNewsletter)
			})

			r.Route("/publishers", func(r chi.Router) {
				r.Get("/", s.handleListPublishers)
				r.Post("/", s.handleCreatePublisher)
				r.Delete("/{publisherID}", s.handleDeletePublisher)
				r.Post("/{publisherID}/subscribe", s.handleSubscribePublisher)
			})

			r.Post("/journalists/{journalistID}/subscribe", s.handleSubscribeJournalist)
			r.Post("/users/{userID}/role", s.handleChangeRole)
		})
	})

	s.router = r
}

// Router exposes the handler for tests and embedding.
func (s *Server) Router() http.Handler {
	return s.router
}

// Start serves until ctx is canceled, then drains in-flight requests.
func (s *Server) Start(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:    addr,
		Handler: s.router,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("http server starting", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}
