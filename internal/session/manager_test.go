package session

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/nguyenedu/truyen-fe/internal/config"
	"github.com/nguyenedu/truyen-fe/internal/model"
)

func newTestManager(t *testing.T, cfg config.Session) *Manager {
	t.Helper()

	m, err := NewManager(ManagerParams{
		Config: &config.Config{Session: cfg},
		Log:    zap.NewNop(),
	})
	require.New(t).Nil(err)
	return m
}

// do runs fn in a session-loaded context, carrying cookies in, and
// returns the response so the caller can carry them forward.
func do(t *testing.T, m *Manager, cookies []*http.Cookie, fn func(ctx context.Context)) *http.Response {
	t.Helper()

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}

	m.Wrap(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fn(r.Context())
	})).ServeHTTP(rr, req)

	return rr.Result()
}

func Test_SessionSurvivesAcrossRequests(t *testing.T) {
	assert := assert.New(t)

	m := newTestManager(t, config.Session{Store: "memory", Lifetime: time.Hour})

	resp := do(t, m, nil, func(ctx context.Context) {
		m.PutSession(ctx, "tok-1", `{"id":7,"username":"an"}`)
	})

	do(t, m, resp.Cookies(), func(ctx context.Context) {
		assert.Equal("tok-1", m.Token(ctx))
		assert.Equal(`{"id":7,"username":"an"}`, m.UserRecord(ctx))
	})
}

func Test_RedisStoreRoundTrip(t *testing.T) {
	assert := assert.New(t)

	rdb := miniredis.RunT(t)
	m := newTestManager(t, config.Session{
		Store:    "redis",
		Lifetime: time.Hour,
		Redis:    config.Redis{Addr: rdb.Addr()},
	})

	resp := do(t, m, nil, func(ctx context.Context) {
		m.PutSession(ctx, "tok-redis", `{"id":3,"username":"chi"}`)
	})

	do(t, m, resp.Cookies(), func(ctx context.Context) {
		assert.Equal("tok-redis", m.Token(ctx))
	})
}

func Test_InvalidateRemovesBothKeys(t *testing.T) {
	assert := assert.New(t)

	m := newTestManager(t, config.Session{Store: "memory", Lifetime: time.Hour})

	resp := do(t, m, nil, func(ctx context.Context) {
		m.PutSession(ctx, "tok-1", `{"id":7}`)
		m.Invalidate(ctx)
	})

	do(t, m, resp.Cookies(), func(ctx context.Context) {
		assert.Equal("", m.Token(ctx))
		assert.Equal("", m.UserRecord(ctx))
	})
}

func Test_ThemeToggle(t *testing.T) {
	assert := assert.New(t)

	m := newTestManager(t, config.Session{Store: "memory", Lifetime: time.Hour})

	resp := do(t, m, nil, func(ctx context.Context) {
		assert.Equal("light", m.Theme(ctx))
		assert.Equal("dark", m.ToggleTheme(ctx))
	})

	do(t, m, resp.Cookies(), func(ctx context.Context) {
		assert.Equal("dark", m.Theme(ctx))
		assert.Equal("light", m.ToggleTheme(ctx))
		assert.Equal("light", m.Theme(ctx))
	})
}

func Test_FlashPopsOnce(t *testing.T) {
	assert := assert.New(t)

	m := newTestManager(t, config.Session{Store: "memory", Lifetime: time.Hour})

	resp := do(t, m, nil, func(ctx context.Context) {
		m.Flash(ctx, model.Toast{Severity: "error", Summary: "Lỗi", Detail: "Đăng nhập thất bại"})
		m.Flash(ctx, model.Toast{Severity: "success", Summary: "Thành công"})
	})

	resp = do(t, m, resp.Cookies(), func(ctx context.Context) {
		toasts := m.PopToasts(ctx)
		assert.Len(toasts, 2)
		assert.Equal("error", toasts[0].Severity)
		assert.Equal("success", toasts[1].Severity)
	})

	do(t, m, resp.Cookies(), func(ctx context.Context) {
		assert.Empty(m.PopToasts(ctx))
	})
}
