package app_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/JaimeStill/route-finder/internal/middleware"
	"github.com/JaimeStill/route-finder/internal/travel"
	"github.com/JaimeStill/route-finder/pkg/logging"
	"github.com/JaimeStill/route-finder/web/app"
)

type fixedFinder struct {
	routes []travel.Route
}

func (f fixedFinder) Find(context.Context, travel.Query) []travel.Route { return f.routes }
func (f fixedFinder) Mode() string                                      { return "fixed" }

func newApp(t *testing.T, finder travel.Finder) http.Handler {
	t.Helper()
	a, err := app.New(app.Config{
		MaxFormSize: 1024,
		Service:     travel.NewService(finder, nil, logging.Discard()),
		Logger:      logging.Discard(),
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return a.Handler()
}

func post(h http.Handler, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/results", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestSearchForm(t *testing.T) {
	h := newApp(t, travel.NewMock())

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	body := rec.Body.String()
	for _, want := range []string{
		"Fastest Paths Finder ✈️",
		`action="/results"`,
		`method="post"`,
		`name="source" required`,
		`name="destination" required`,
	} {
		if !strings.Contains(body, want) {
			t.Errorf("form missing %q", want)
		}
	}
}

func TestResults_Mock(t *testing.T) {
	h := newApp(t, travel.NewMock())

	rec := post(h, url.Values{"source": {"DEL"}, "destination": {"LHR"}})

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	body := rec.Body.String()

	if !strings.Contains(body, "From: DEL") || !strings.Contains(body, "To: LHR") {
		t.Error("header does not echo the query")
	}
	if n := strings.Count(body, `<tr class="route">`); n != 3 {
		t.Errorf("rows = %d, want 3", n)
	}

	paths := []string{"DEL → Dubai → LHR", "DEL → Mumbai → London → LHR", "DEL → Delhi → Paris → LHR"}
	last := -1
	for _, p := range paths {
		i := strings.Index(body, p)
		if i < 0 {
			t.Fatalf("missing route %q", p)
		}
		if i < last {
			t.Errorf("route %q out of order", p)
		}
		last = i
	}
	for _, cost := range []string{"₹45,000", "₹38,000", "₹41,000"} {
		if !strings.Contains(body, cost) {
			t.Errorf("missing cost %q", cost)
		}
	}
	if strings.Contains(body, "No routes found") {
		t.Error("empty message shown alongside routes")
	}
}

func TestResults_Empty(t *testing.T) {
	h := newApp(t, fixedFinder{})

	rec := post(h, url.Values{"source": {"XXX"}, "destination": {"YYY"}})

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "No routes found") {
		t.Error("missing empty message")
	}
	if strings.Contains(body, `<tr class="route">`) {
		t.Error("empty result rendered route rows")
	}
}

func TestResults_MissingField(t *testing.T) {
	h := newApp(t, travel.NewMock())

	tests := []url.Values{
		{"destination": {"LHR"}},
		{"source": {"DEL"}},
		{},
	}

	for _, form := range tests {
		rec := post(h, form)
		if rec.Code != http.StatusBadRequest {
			t.Errorf("form %v: status = %d, want 400", form, rec.Code)
		}
	}
}

func TestResults_EmptyValuesAccepted(t *testing.T) {
	h := newApp(t, travel.NewMock())

	rec := post(h, url.Values{"source": {""}, "destination": {""}})
	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rec.Code)
	}
}

func TestResults_Escaping(t *testing.T) {
	h := newApp(t, travel.NewMock())

	rec := post(h, url.Values{"source": {"<script>alert(1)</script>"}, "destination": {"LHR"}})
	body := rec.Body.String()

	if strings.Contains(body, "<script>alert(1)</script>") {
		t.Error("input rendered without escaping")
	}
	if !strings.Contains(body, "&lt;script&gt;") {
		t.Error("escaped input not found")
	}
}

func TestResults_FormTooLarge(t *testing.T) {
	h := newApp(t, travel.NewMock())

	rec := post(h, url.Values{"source": {strings.Repeat("A", 4096)}, "destination": {"LHR"}})
	if rec.Code != http.StatusRequestEntityTooLarge {
		t.Errorf("status = %d, want 413", rec.Code)
	}
}

func TestResults_FormTooLargeClosesConnection(t *testing.T) {
	h := middleware.Logger(logging.Discard())(newApp(t, travel.NewMock()))

	rec := post(h, url.Values{"source": {strings.Repeat("A", 4096)}, "destination": {"LHR"}})
	if rec.Code != http.StatusRequestEntityTooLarge {
		t.Fatalf("status = %d, want 413", rec.Code)
	}
	if got := rec.Header().Get("Connection"); got != "close" {
		t.Errorf("Connection = %q, want close", got)
	}
}

func TestNotFound(t *testing.T) {
	h := newApp(t, travel.NewMock())

	for _, tt := range []struct{ method, path string }{
		{http.MethodGet, "/missing"},
		{http.MethodGet, "/results"},
	} {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.path, nil))

		if rec.Code != http.StatusNotFound {
			t.Errorf("%s %s: status = %d, want 404", tt.method, tt.path, rec.Code)
		}
		if !strings.Contains(rec.Body.String(), "Page not found") {
			t.Errorf("%s %s: missing 404 page", tt.method, tt.path)
		}
	}
}
