package main

import (
	"flag"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/nguyenedu/truyen-fe/internal/backend"
	"github.com/nguyenedu/truyen-fe/internal/config"
	"github.com/nguyenedu/truyen-fe/internal/guard"
	"github.com/nguyenedu/truyen-fe/internal/session"
	"github.com/nguyenedu/truyen-fe/internal/template"
	"github.com/nguyenedu/truyen-fe/internal/web"
)

func main() {
	var configPath = flag.String("config", "config.yaml", "path to the config file")
	flag.Parse()

	newConfig := func() (*config.Config, error) {
		return config.Load(*configPath)
	}

	app := fx.New(
		fx.Provide(
			zap.NewDevelopment,
			newConfig,
			session.NewManager,
			session.NewStore,
			newBackendClient,
			newAuthState,
			guard.New,
			template.New,
			web.New,
		),
		fx.Invoke(web.RegisterHooks),
	)

	app.Run()
}

func newBackendClient(cfg *config.Config, sessions *session.Manager, log *zap.Logger) *backend.Client {
	return backend.New(backend.Options{
		BaseURL:        cfg.Backend.BaseURL,
		Tokens:         sessions,
		OnUnauthorized: sessions.Invalidate,
		Log:            log,
	})
}

func newAuthState(store *session.Store) guard.AuthState {
	return store
}
