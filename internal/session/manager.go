// Package session owns the browser session: the bearer token and user
// record mirrored into the scs-backed store, and the login/logout
// lifecycle around them.
package session

import (
	"context"
	"encoding/gob"
	"net/http"

	"github.com/alexedwards/scs/goredisstore"
	"github.com/alexedwards/scs/v2"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/nguyenedu/truyen-fe/internal/config"
	"github.com/nguyenedu/truyen-fe/internal/model"
)

// Durable keys carried per browser session.
const (
	keyToken = "token"
	keyUser  = "user"
	keyTheme = "theme"
	keyFlash = "flash"
)

// Manager wraps scs and exposes only the typed accesses the rest of the
// app needs. It is the durable mirror; callers hold no session state of
// their own.
type Manager struct {
	impl *scs.SessionManager
	log  *zap.Logger
}

type ManagerParams struct {
	fx.In

	Config *config.Config
	Log    *zap.Logger
}

func NewManager(p ManagerParams) (*Manager, error) {
	gob.Register([]model.Toast{})

	impl := scs.New()
	impl.Lifetime = p.Config.Session.Lifetime
	impl.Cookie.HttpOnly = true

	if p.Config.Session.Store == "redis" {
		client := redis.NewClient(&redis.Options{
			Addr:     p.Config.Session.Redis.Addr,
			Password: p.Config.Session.Redis.Password,
			DB:       p.Config.Session.Redis.DB,
		})
		impl.Store = goredisstore.New(client)
	}

	return &Manager{
		impl: impl,
		log:  p.Log,
	}, nil
}

func (m *Manager) Wrap(next http.Handler) http.Handler {
	return m.impl.LoadAndSave(next)
}

// Token returns the bearer token for this session, or "" when absent.
// It implements backend.TokenSource.
func (m *Manager) Token(ctx context.Context) string {
	token := m.impl.GetString(ctx, keyToken)
	if isSentinel(token) {
		return ""
	}
	return token
}

func (m *Manager) PutSession(ctx context.Context, token, userRecord string) {
	m.impl.Put(ctx, keyToken, token)
	m.impl.Put(ctx, keyUser, userRecord)
}

func (m *Manager) UserRecord(ctx context.Context) string {
	return m.impl.GetString(ctx, keyUser)
}

func (m *Manager) PutUserRecord(ctx context.Context, userRecord string) {
	m.impl.Put(ctx, keyUser, userRecord)
}

// Invalidate clears both durable keys. It is the single transition to
// the anonymous state, shared by logout and the 401 hook.
func (m *Manager) Invalidate(ctx context.Context) {
	m.impl.Remove(ctx, keyToken)
	m.impl.Remove(ctx, keyUser)
}

func (m *Manager) Theme(ctx context.Context) string {
	if m.impl.GetString(ctx, keyTheme) == "dark" {
		return "dark"
	}
	return "light"
}

// ToggleTheme flips the persisted theme and returns the new value.
func (m *Manager) ToggleTheme(ctx context.Context) string {
	next := "dark"
	if m.Theme(ctx) == "dark" {
		next = "light"
	}
	m.impl.Put(ctx, keyTheme, next)
	return next
}

// Flash queues a toast to be shown on the next rendered page.
func (m *Manager) Flash(ctx context.Context, toast model.Toast) {
	toasts, _ := m.impl.Get(ctx, keyFlash).([]model.Toast)
	m.impl.Put(ctx, keyFlash, append(toasts, toast))
}

func (m *Manager) PopToasts(ctx context.Context) []model.Toast {
	toasts, _ := m.impl.Pop(ctx, keyFlash).([]model.Toast)
	return toasts
}
