// Package web serves the reader-facing pages. Handlers call the backend
// client, hand the result to templates, and report failures as toasts.
package web

import (
	"context"
	"embed"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/nguyenedu/truyen-fe/internal/backend"
	"github.com/nguyenedu/truyen-fe/internal/config"
	"github.com/nguyenedu/truyen-fe/internal/guard"
	"github.com/nguyenedu/truyen-fe/internal/middleware"
	"github.com/nguyenedu/truyen-fe/internal/session"
	tmpl "github.com/nguyenedu/truyen-fe/internal/template"
)

//go:embed static
var staticFiles embed.FS

type Server struct {
	log      *zap.Logger
	sessions *session.Manager
	store    *session.Store
	api      *backend.Client
	renderer *tmpl.Renderer
	server   *http.Server
}

type Params struct {
	fx.In

	Log      *zap.Logger
	Config   *config.Config
	Sessions *session.Manager
	Store    *session.Store
	API      *backend.Client
	Guard    *guard.Guard
	Renderer *tmpl.Renderer
}

func New(p Params) (*Server, error) {
	s := &Server{
		log:      p.Log,
		sessions: p.Sessions,
		store:    p.Store,
		api:      p.API,
		renderer: p.Renderer,
	}

	root := chi.NewRouter()
	root.Use(middleware.RequestID)
	root.Use(middleware.Logger(p.Log))
	root.Use(p.Sessions.Wrap)

	// Guest-only
	root.Group(func(r chi.Router) {
		r.Use(p.Guard.RequireGuest)
		r.Get("/login", s.loginForm)
		r.Post("/login", s.login)
		r.Get("/register", s.registerForm)
		r.Post("/register", s.register)
		r.Get("/forgot-password", s.forgotPasswordForm)
		r.Post("/forgot-password", s.forgotPassword)
		r.Get("/reset-password", s.resetPasswordForm)
		r.Post("/reset-password", s.resetPassword)
	})

	// Auth required
	root.Group(func(r chi.Router) {
		r.Use(p.Guard.RequireAuth)
		r.Get("/profile", s.profile)
		r.Post("/profile", s.updateProfile)
		r.Post("/logout", s.logout)
		r.Get("/favorites", s.favorites)
		r.Post("/story/{id}/favorite", s.toggleFavorite)
		r.Post("/story/{id}/rating", s.rateStory)
		r.Post("/story/{id}/rating/delete", s.deleteRating)
		r.Get("/history", s.history)
		r.Post("/history/{storyID}/delete", s.deleteStoryHistory)
		r.Post("/history/clear", s.clearHistory)
		r.Post("/comments", s.createComment)
		r.Post("/comments/{id}/edit", s.updateComment)
		r.Post("/comments/{id}/delete", s.deleteComment)
	})

	// Public
	root.Group(func(r chi.Router) {
		r.Get("/", s.home)
		r.Get("/story/{id}", s.story)
		r.Get("/story/{storyID}/chapter/{chapterID}", s.chapter)
		r.Get("/browse", s.browse)
		r.Get("/search", s.search)
		r.Get("/search/suggest", s.suggest)
		r.Get("/category/{id}", s.category)
		r.Get("/author/{id}", s.author)
		r.Post("/theme", s.toggleTheme)

		r.Handle("/static/*", http.FileServer(http.FS(staticFiles)))
	})

	s.server = &http.Server{
		Addr:    p.Config.Server.Addr,
		Handler: root,
	}

	return s, nil
}

// Handler exposes the routing tree, mostly for tests.
func (s *Server) Handler() http.Handler {
	return s.server.Handler
}

func RegisterHooks(lc fx.Lifecycle, s *Server) {
	lc.Append(fx.Hook{
		OnStart: s.Start,
		OnStop:  s.server.Shutdown,
	})
}

func (s *Server) Start(_ context.Context) error {
	s.log.Info("listening", zap.String("addr", s.server.Addr))
	go func() {
		if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			s.log.Error("server stopped", zap.Error(err))
		}
	}()
	return nil
}
