package guard

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

type staticAuth bool

func (a staticAuth) IsAuthenticated(_ context.Context) bool { return bool(a) }

func Test_RequireAuth(t *testing.T) {
	assert := assert.New(t)

	g := New(Params{Auth: staticAuth(false)})

	rr := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/profile", nil)

	calledNext := false
	handler := g.RequireAuth(http.HandlerFunc(func(_ http.ResponseWriter, _ *http.Request) {
		calledNext = true
	}))

	handler.ServeHTTP(rr, req)
	assert.False(calledNext)
	assert.Equal(http.StatusSeeOther, rr.Code)
	assert.Equal("/login?redirect=%2Fprofile", rr.Result().Header.Get("Location"))
}

func Test_RequireAuth2(t *testing.T) {
	assert := assert.New(t)

	g := New(Params{Auth: staticAuth(true)})

	rr := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/profile", nil)

	calledNext := false
	handler := g.RequireAuth(http.HandlerFunc(func(_ http.ResponseWriter, _ *http.Request) {
		calledNext = true
	}))

	handler.ServeHTTP(rr, req)
	assert.True(calledNext)
	assert.Equal(http.StatusOK, rr.Code)
}

func Test_RequireGuest(t *testing.T) {
	assert := assert.New(t)

	g := New(Params{Auth: staticAuth(true)})

	rr := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/login", nil)

	calledNext := false
	handler := g.RequireGuest(http.HandlerFunc(func(_ http.ResponseWriter, _ *http.Request) {
		calledNext = true
	}))

	handler.ServeHTTP(rr, req)
	assert.False(calledNext)
	assert.Equal(http.StatusSeeOther, rr.Code)
	assert.Equal("/", rr.Result().Header.Get("Location"))
}
