// Package routes defines the declarative route types shared by HTTP handlers.
package routes

import "net/http"

// Route represents an HTTP route with method, pattern, and handler.
type Route struct {
	Method  string
	Pattern string
	Handler http.HandlerFunc
}

// Group represents a collection of routes under a common URL prefix.
// Groups can contain child groups for hierarchical route organization.
type Group struct {
	Prefix   string
	Routes   []Route
	Children []Group
}

// Mount attaches a self-routing handler under a ServeMux pattern.
type Mount struct {
	Pattern string
	Handler http.Handler
}

// System defines the interface for route registration and HTTP handler building.
// Implementations handle the actual registration and multiplexer construction.
type System interface {
	RegisterGroup(group Group)
	RegisterRoute(route Route)
	RegisterMount(mount Mount)
	Build() http.Handler
	Groups() []Group
	Routes() []Route
}
