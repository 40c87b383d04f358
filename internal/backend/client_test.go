package backend

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_ErrorCarriesEnvelopeMessage(t *testing.T) {
	require := require.New(t)
	assert := assert.New(t)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		fmt.Fprint(w, `{"message":"tên đăng nhập đã tồn tại"}`)
	}))
	defer srv.Close()

	c := New(Options{BaseURL: srv.URL})
	_, err := c.Register(context.Background(), RegisterInput{Username: "x"})
	require.NotNil(err)

	var apiErr *Error
	require.True(errors.As(err, &apiErr))
	assert.Equal(http.StatusBadRequest, apiErr.Status)
	assert.Equal("tên đăng nhập đã tồn tại", apiErr.Message)

	assert.Equal("tên đăng nhập đã tồn tại", Message(err, "fallback"))
}

func Test_MessageFallback(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("fallback", Message(errors.New("connection refused"), "fallback"))
	assert.Equal("fallback", Message(&Error{Status: 500}, "fallback"))
	assert.Equal("fallback", Message(nil, "fallback"))
}

func Test_ErrorBodyNotJSON(t *testing.T) {
	require := require.New(t)
	assert := assert.New(t)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		fmt.Fprint(w, "<html>upstream error</html>")
	}))
	defer srv.Close()

	c := New(Options{BaseURL: srv.URL})
	_, err := c.Story(context.Background(), 1)
	require.NotNil(err)

	var apiErr *Error
	require.True(errors.As(err, &apiErr))
	assert.Equal(http.StatusBadGateway, apiErr.Status)
	assert.Empty(apiErr.Message)
}

func Test_ContextCancellationAborts(t *testing.T) {
	require := require.New(t)

	started := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		close(started)
		<-r.Context().Done()
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		<-started
		cancel()
	}()

	c := New(Options{BaseURL: srv.URL})
	_, err := c.Story(ctx, 1)
	require.NotNil(err)
	require.ErrorIs(err, context.Canceled)
}
