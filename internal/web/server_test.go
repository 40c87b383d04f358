package web

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/nguyenedu/truyen-fe/internal/backend"
	"github.com/nguyenedu/truyen-fe/internal/config"
	"github.com/nguyenedu/truyen-fe/internal/guard"
	"github.com/nguyenedu/truyen-fe/internal/session"
	tmpl "github.com/nguyenedu/truyen-fe/internal/template"
)

// newTestServer wires the full stack against a fake backend, the same
// way main does it.
func newTestServer(t *testing.T, api http.Handler) http.Handler {
	t.Helper()
	require := require.New(t)

	backendSrv := httptest.NewServer(api)
	t.Cleanup(backendSrv.Close)

	log := zap.NewNop()
	cfg := &config.Config{
		Server:  config.Server{Addr: ":0"},
		Backend: config.Backend{BaseURL: backendSrv.URL},
		Session: config.Session{Store: "memory", Lifetime: time.Hour},
	}

	sessions, err := session.NewManager(session.ManagerParams{Config: cfg, Log: log})
	require.Nil(err)

	client := backend.New(backend.Options{
		BaseURL:        cfg.Backend.BaseURL,
		Tokens:         sessions,
		OnUnauthorized: sessions.Invalidate,
		Log:            log,
	})
	store := session.NewStore(session.StoreParams{Sessions: sessions, API: client, Log: log})

	renderer, err := tmpl.New()
	require.Nil(err)

	srv, err := New(Params{
		Log:      log,
		Config:   cfg,
		Sessions: sessions,
		Store:    store,
		API:      client,
		Guard:    guard.New(guard.Params{Auth: store}),
		Renderer: renderer,
	})
	require.Nil(err)

	return srv.Handler()
}

func postForm(h http.Handler, path string, form url.Values, cookies []*http.Cookie) *http.Response {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr.Result()
}

func get(h http.Handler, path string, cookies []*http.Cookie) *http.Response {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr.Result()
}

// login posts valid credentials and returns the session cookies.
func login(t *testing.T, h http.Handler) []*http.Cookie {
	t.Helper()

	resp := postForm(h, "/login", url.Values{
		"username": {"an"},
		"password": {"secret"},
	}, nil)
	require.New(t).Equal(http.StatusSeeOther, resp.StatusCode)
	return resp.Cookies()
}

func loginBackend() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/auth/login", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data":{"token":"tok-1","user":{"id":7,"username":"an","role":"USER"}}}`))
	})
	return mux
}

func Test_ProfileRequiresLogin(t *testing.T) {
	assert := assert.New(t)

	h := newTestServer(t, http.NewServeMux())

	resp := get(h, "/profile", nil)
	assert.Equal(http.StatusSeeOther, resp.StatusCode)
	assert.Equal("/login?redirect=%2Fprofile", resp.Header.Get("Location"))
}

func Test_GuardPreservesQueryString(t *testing.T) {
	assert := assert.New(t)

	h := newTestServer(t, http.NewServeMux())

	resp := get(h, "/history?page=2", nil)
	assert.Equal(http.StatusSeeOther, resp.StatusCode)
	assert.Equal("/login?redirect=%2Fhistory%3Fpage%3D2", resp.Header.Get("Location"))
}

func Test_LoginPageRedirectsAuthenticated(t *testing.T) {
	assert := assert.New(t)

	h := newTestServer(t, loginBackend())
	cookies := login(t, h)

	resp := get(h, "/login", cookies)
	assert.Equal(http.StatusSeeOther, resp.StatusCode)
	assert.Equal("/", resp.Header.Get("Location"))
}

func Test_LoginRedirectTarget(t *testing.T) {
	assert := assert.New(t)

	h := newTestServer(t, loginBackend())

	resp := postForm(h, "/login", url.Values{
		"username": {"an"},
		"password": {"secret"},
		"redirect": {"/favorites"},
	}, nil)
	assert.Equal(http.StatusSeeOther, resp.StatusCode)
	assert.Equal("/favorites", resp.Header.Get("Location"))
}

func Test_LoginRejectsOffsiteRedirect(t *testing.T) {
	assert := assert.New(t)

	h := newTestServer(t, loginBackend())

	resp := postForm(h, "/login", url.Values{
		"username": {"an"},
		"password": {"secret"},
		"redirect": {"//evil.example"},
	}, nil)
	assert.Equal(http.StatusSeeOther, resp.StatusCode)
	assert.Equal("/", resp.Header.Get("Location"))
}

func Test_LoginFailureRedirectsBack(t *testing.T) {
	assert := assert.New(t)

	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/auth/login", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"message":"Sai mật khẩu"}`))
	})
	h := newTestServer(t, mux)

	resp := postForm(h, "/login", url.Values{
		"username": {"an"},
		"password": {"bad"},
	}, nil)
	assert.Equal(http.StatusSeeOther, resp.StatusCode)
	assert.Equal("/login?redirect=%2F", resp.Header.Get("Location"))
}

func Test_BackendUnauthorizedClearsSession(t *testing.T) {
	assert := assert.New(t)

	mux := loginBackend()
	mux.HandleFunc("GET /api/favorites", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})
	h := newTestServer(t, mux)
	cookies := login(t, h)

	resp := get(h, "/favorites", cookies)
	assert.Equal(http.StatusSeeOther, resp.StatusCode)
	assert.Equal("/login?redirect=%2Ffavorites", resp.Header.Get("Location"))

	// The same cookie is anonymous now: the guard bounces it.
	resp = get(h, "/profile", cookies)
	assert.Equal(http.StatusSeeOther, resp.StatusCode)
	assert.Equal("/login?redirect=%2Fprofile", resp.Header.Get("Location"))
}

func Test_HomeRendersWhenBackendDown(t *testing.T) {
	assert := assert.New(t)

	// Every section load fails; the page still renders.
	h := newTestServer(t, http.NewServeMux())

	resp := get(h, "/", nil)
	assert.Equal(http.StatusOK, resp.StatusCode)
}

func Test_LogoutEndsSession(t *testing.T) {
	assert := assert.New(t)

	mux := loginBackend()
	mux.HandleFunc("POST /api/auth/logout", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"message":"ok"}`))
	})
	h := newTestServer(t, mux)
	cookies := login(t, h)

	resp := postForm(h, "/logout", nil, cookies)
	assert.Equal(http.StatusSeeOther, resp.StatusCode)
	assert.Equal("/", resp.Header.Get("Location"))

	resp = get(h, "/profile", cookies)
	assert.Equal(http.StatusSeeOther, resp.StatusCode)
	assert.Equal("/login?redirect=%2Fprofile", resp.Header.Get("Location"))
}

func Test_ThemeToggleRedirectsBack(t *testing.T) {
	assert := assert.New(t)

	h := newTestServer(t, http.NewServeMux())

	req := httptest.NewRequest(http.MethodPost, "/theme", nil)
	req.Header.Set("Referer", "/browse")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	resp := rr.Result()
	assert.Equal(http.StatusSeeOther, resp.StatusCode)
	assert.Equal("/browse", resp.Header.Get("Location"))
}

func Test_BrowseDefaultSort(t *testing.T) {
	assert := assert.New(t)

	var sort string
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/stories/filter", func(w http.ResponseWriter, r *http.Request) {
		sort = r.URL.Query().Get("sort")
		w.Write([]byte(`{"data":{"content":[],"totalElements":0}}`))
	})
	h := newTestServer(t, mux)

	// A bare browse orders by the form's first sort option.
	resp := get(h, "/browse", nil)
	assert.Equal(http.StatusOK, resp.StatusCode)
	assert.Equal("createdAt,desc", sort)

	resp = get(h, "/browse?sort=totalViews%2Cdesc", nil)
	assert.Equal(http.StatusOK, resp.StatusCode)
	assert.Equal("totalViews,desc", sort)
}

func Test_ActionUnauthorizedKeepsReturnPath(t *testing.T) {
	assert := assert.New(t)

	mux := loginBackend()
	mux.HandleFunc("GET /api/favorites/check/5", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})
	h := newTestServer(t, mux)
	cookies := login(t, h)

	req := httptest.NewRequest(http.MethodPost, "/story/5/favorite", nil)
	req.Header.Set("Referer", "http://storyweb.test/story/5")
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	resp := rr.Result()
	assert.Equal(http.StatusSeeOther, resp.StatusCode)
	assert.Equal("/login?redirect=%2Fstory%2F5", resp.Header.Get("Location"))
}

func Test_StoryPageRenders(t *testing.T) {
	assert := assert.New(t)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/stories/5", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data":{"id":5,"title":"Dế Mèn Phiêu Lưu Ký","status":"COMPLETED"}}`))
	})
	h := newTestServer(t, mux)

	resp := get(h, "/story/5", nil)
	assert.Equal(http.StatusOK, resp.StatusCode)
}

func Test_StoryPageMissing(t *testing.T) {
	assert := assert.New(t)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/stories/404", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"message":"Không tìm thấy truyện"}`))
	})
	h := newTestServer(t, mux)

	// A missing story is a toast on the home page, not a dead end.
	resp := get(h, "/story/404", nil)
	assert.Equal(http.StatusSeeOther, resp.StatusCode)
	assert.Equal("/", resp.Header.Get("Location"))
}
