// Package guard decides, before every navigation, whether the request
// may proceed or must be redirected.
package guard

import "net/url"

// RouteMeta is the access metadata attached to a route.
type RouteMeta struct {
	RequiresAuth  bool
	RequiresGuest bool
}

type Action int

const (
	Allow Action = iota
	RedirectLogin
	RedirectHome
)

type Decision struct {
	Action   Action
	Location string
}

// Decide is a pure function of the route's metadata and the session
// state. RequiresAuth is evaluated before RequiresGuest; no route should
// set both, but if one did, the auth requirement wins.
func Decide(meta RouteMeta, authenticated bool, target string) Decision {
	if meta.RequiresAuth && !authenticated {
		location := "/login"
		if target != "" {
			location += "?redirect=" + url.QueryEscape(target)
		}
		return Decision{Action: RedirectLogin, Location: location}
	}

	if meta.RequiresGuest && authenticated {
		return Decision{Action: RedirectHome, Location: "/"}
	}

	return Decision{Action: Allow}
}
