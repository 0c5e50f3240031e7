// Package web serves server-rendered pages from pre-parsed html/template sets.
package web

import (
	"bytes"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
)

// ViewDef declares a page: the route it answers, its template file, and its title.
type ViewDef struct {
	Route    string
	Template string
	Title    string
}

// ViewData is passed to every layout. Templates build links from {{ .BasePath }}.
type ViewData struct {
	Title    string
	BasePath string
	Data     any
}

// TemplateSet holds one parsed template tree per view, each a clone of the
// shared layouts. Parsing happens once at construction.
type TemplateSet struct {
	views    map[string]*template.Template
	basePath string
}

func NewTemplateSet(layoutFS, viewFS fs.FS, layoutGlob, viewDir, basePath string, views []ViewDef) (*TemplateSet, error) {
	layouts, err := template.ParseFS(layoutFS, layoutGlob)
	if err != nil {
		return nil, fmt.Errorf("parse layouts: %w", err)
	}

	sub, err := fs.Sub(viewFS, viewDir)
	if err != nil {
		return nil, fmt.Errorf("open view dir %s: %w", viewDir, err)
	}

	parsed := make(map[string]*template.Template, len(views))
	for _, v := range views {
		t, err := layouts.Clone()
		if err != nil {
			return nil, fmt.Errorf("clone layouts for %s: %w", v.Template, err)
		}
		if _, err := t.ParseFS(sub, v.Template); err != nil {
			return nil, fmt.Errorf("parse view %s: %w", v.Template, err)
		}
		parsed[v.Template] = t
	}

	return &TemplateSet{views: parsed, basePath: basePath}, nil
}

// Render writes view inside layout with a 200 status.
func (ts *TemplateSet) Render(w http.ResponseWriter, layout, view string, data ViewData) error {
	return ts.RenderStatus(w, http.StatusOK, layout, view, data)
}

// RenderStatus executes into a buffer first so a template failure never
// leaves a partial page behind. BasePath is filled in when empty.
func (ts *TemplateSet) RenderStatus(w http.ResponseWriter, status int, layout, view string, data ViewData) error {
	t, ok := ts.views[view]
	if !ok {
		return fmt.Errorf("template not found: %s", view)
	}
	if data.BasePath == "" {
		data.BasePath = ts.basePath
	}

	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, layout, data); err != nil {
		return fmt.Errorf("execute %s: %w", view, err)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, err := buf.WriteTo(w)
	return err
}

// PageHandler renders a static view.
func (ts *TemplateSet) PageHandler(layout string, view ViewDef) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		data := ViewData{Title: view.Title, BasePath: ts.basePath}
		if err := ts.Render(w, layout, view.Template, data); err != nil {
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		}
	}
}

// ErrorHandler renders view with the given status.
func (ts *TemplateSet) ErrorHandler(layout string, view ViewDef, status int) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		data := ViewData{Title: view.Title, BasePath: ts.basePath}
		if err := ts.RenderStatus(w, status, layout, view.Template, data); err != nil {
			http.Error(w, http.StatusText(status), status)
		}
	}
}
