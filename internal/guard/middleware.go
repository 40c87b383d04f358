package guard

import (
	"context"
	"net/http"

	"go.uber.org/fx"
)

// AuthState reports whether the request's session is authenticated.
type AuthState interface {
	IsAuthenticated(ctx context.Context) bool
}

// Guard applies Decide as middleware around route groups.
type Guard struct {
	auth AuthState
}

type Params struct {
	fx.In

	Auth AuthState
}

func New(p Params) *Guard {
	return &Guard{auth: p.Auth}
}

func (g *Guard) RequireAuth(next http.Handler) http.Handler {
	return g.apply(RouteMeta{RequiresAuth: true}, next)
}

func (g *Guard) RequireGuest(next http.Handler) http.Handler {
	return g.apply(RouteMeta{RequiresGuest: true}, next)
}

func (g *Guard) apply(meta RouteMeta, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		decision := Decide(meta, g.auth.IsAuthenticated(r.Context()), r.URL.RequestURI())
		if decision.Action != Allow {
			http.Redirect(w, r, decision.Location, http.StatusSeeOther)
			return
		}

		next.ServeHTTP(w, r)
	})
}
