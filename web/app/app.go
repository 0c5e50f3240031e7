// Package app serves the route search form and its results page.
package app

import (
	"embed"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/JaimeStill/route-finder/internal/travel"
	"github.com/JaimeStill/route-finder/pkg/web"
)

//go:embed server/layouts/*
var layoutFS embed.FS

//go:embed server/views/*
var viewFS embed.FS

const layout = "app.html"

var (
	searchView  = web.ViewDef{Route: "/{$}", Template: "search.html", Title: "Flight Search"}
	resultsView = web.ViewDef{Route: "/results", Template: "results.html", Title: "Results"}
	errorView   = web.ViewDef{Template: "error.html", Title: "Error"}
	notFound    = web.ViewDef{Template: "404.html", Title: "Not Found"}
)

// Config holds what the app needs to build its handler.
type Config struct {
	BasePath    string
	MaxFormSize int64
	Service     *travel.Service
	Logger      *slog.Logger
}

// App is the server-rendered search front end.
type App struct {
	ts          *web.TemplateSet
	svc         *travel.Service
	maxFormSize int64
	logger      *slog.Logger
	router      *web.Router
}

type results struct {
	Source      string
	Destination string
	Routes      []travel.Route
}

// New parses the embedded templates and wires the page routes.
func New(cfg Config) (*App, error) {
	ts, err := web.NewTemplateSet(
		layoutFS,
		viewFS,
		"server/layouts/*.html",
		"server/views",
		cfg.BasePath,
		[]web.ViewDef{searchView, resultsView, errorView, notFound},
	)
	if err != nil {
		return nil, fmt.Errorf("load templates: %w", err)
	}

	a := &App{
		ts:          ts,
		svc:         cfg.Service,
		maxFormSize: cfg.MaxFormSize,
		logger:      cfg.Logger.With("system", "app"),
	}
	a.router = a.buildRouter()
	return a, nil
}

// Handler returns the app router. Unmatched requests render the 404 page.
func (a *App) Handler() http.Handler {
	return a.router
}

func (a *App) buildRouter() *web.Router {
	r := web.NewRouter()
	r.SetFallback(a.ts.ErrorHandler(layout, notFound, http.StatusNotFound))
	r.HandleFunc("GET "+searchView.Route, a.ts.PageHandler(layout, searchView))
	r.HandleFunc("POST "+resultsView.Route, a.results)
	return r
}

// results handles POST /results.
func (a *App) results(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, a.maxFormSize)

	if err := r.ParseForm(); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			// Wrapped writers hide the hook MaxBytesReader uses to close the
			// connection, and the unread body must not be parsed as a request.
			w.Header().Set("Connection", "close")
			a.fail(w, http.StatusRequestEntityTooLarge, "Request Too Large", "The submitted form is too large.", err)
			return
		}
		a.fail(w, http.StatusBadRequest, "Bad Request", "The form could not be read.", err)
		return
	}

	q, err := travel.ParseQuery(r.PostForm)
	if err != nil {
		a.fail(w, http.StatusBadRequest, "Bad Request", err.Error(), err)
		return
	}

	data := web.ViewData{
		Title: resultsView.Title,
		Data: results{
			Source:      q.Source,
			Destination: q.Destination,
			Routes:      a.svc.Search(r.Context(), q),
		},
	}

	if err := a.ts.Render(w, layout, resultsView.Template, data); err != nil {
		a.logger.Error("render results", "error", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}

func (a *App) fail(w http.ResponseWriter, status int, title, message string, cause error) {
	a.logger.Warn("request rejected", "status", status, "error", cause)

	data := web.ViewData{Title: title, Data: message}
	if err := a.ts.RenderStatus(w, status, layout, errorView.Template, data); err != nil {
		http.Error(w, message, status)
	}
}
