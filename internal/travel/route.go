// Package travel turns an origin/destination query into display-ready routes,
// either from fixed sample data or from a flight-offers provider.
package travel

import (
	"context"
	"strings"
)

// Separator joins the places of a route path.
const Separator = " → "

// Route is a request-scoped display record. It has no identity beyond its
// position in the list it was returned in.
type Route struct {
	Path string `json:"path"`
	Time string `json:"time"`
	Cost string `json:"cost"`
}

// Query is the validated form input. Values are carried verbatim.
type Query struct {
	Source      string `json:"source"`
	Destination string `json:"destination"`
}

// Finder produces routes for a query. Implementations never fail: any
// problem reaching their data yields an empty list.
type Finder interface {
	Find(ctx context.Context, q Query) []Route
	Mode() string
}

func joinPath(places ...string) string {
	return strings.Join(places, Separator)
}
