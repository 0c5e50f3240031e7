package main

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/JaimeStill/route-finder/internal/config"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	t.Setenv(config.EnvServiceEnv, "")

	cfg, err := config.Load(t.TempDir())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if err := cfg.Finalize(); err != nil {
		t.Fatalf("Finalize: %v", err)
	}
	cfg.Server.Host = "127.0.0.1"
	cfg.Server.Port = 0
	return cfg
}

func newTestServer(t *testing.T) *Server {
	t.Helper()
	srv, err := NewServer(testConfig(t), io.Discard)
	if err != nil {
		t.Fatalf("NewServer: %v", err)
	}
	return srv
}

func serve(h http.Handler, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestServer_Probes(t *testing.T) {
	srv := newTestServer(t)

	if rec := serve(srv.handler, httptest.NewRequest("GET", "/healthz", nil)); rec.Code != http.StatusOK {
		t.Errorf("healthz = %d, want 200", rec.Code)
	}
	if rec := serve(srv.handler, httptest.NewRequest("GET", "/readyz", nil)); rec.Code != http.StatusServiceUnavailable {
		t.Errorf("readyz before start = %d, want 503", rec.Code)
	}
}

func TestServer_FormFlow(t *testing.T) {
	srv := newTestServer(t)

	rec := serve(srv.handler, httptest.NewRequest("GET", "/", nil))
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), "<form") {
		t.Fatalf("GET / = %d", rec.Code)
	}

	form := url.Values{"source": {"DEL"}, "destination": {"LHR"}}
	req := httptest.NewRequest("POST", "/results", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	rec = serve(srv.handler, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("POST /results = %d", rec.Code)
	}
	if n := strings.Count(rec.Body.String(), `<tr class="route">`); n != 3 {
		t.Errorf("rows = %d, want 3", n)
	}
}

func TestServer_MissingFieldIs400(t *testing.T) {
	srv := newTestServer(t)

	req := httptest.NewRequest("POST", "/results", strings.NewReader("source=DEL"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	if rec := serve(srv.handler, req); rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestServer_API(t *testing.T) {
	srv := newTestServer(t)

	rec := serve(srv.handler, httptest.NewRequest("GET", "/api/routes?source=DEL&destination=LHR", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var body struct {
		Mode   string `json:"mode"`
		Routes []struct {
			Path string `json:"path"`
		} `json:"routes"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Mode != "mock" || len(body.Routes) != 3 {
		t.Errorf("body = %+v", body)
	}
}

func TestServer_UnknownPaths(t *testing.T) {
	srv := newTestServer(t)

	for _, path := range []string{"/nope", "/api/searches"} {
		if rec := serve(srv.handler, httptest.NewRequest("GET", path, nil)); rec.Code != http.StatusNotFound {
			t.Errorf("GET %s = %d, want 404", path, rec.Code)
		}
	}
}

func TestServer_StartShutdown(t *testing.T) {
	srv := newTestServer(t)

	if err := srv.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}

	deadline := time.Now().Add(5 * time.Second)
	for !srv.infra.Lifecycle.Ready() {
		if time.Now().After(deadline) {
			t.Fatal("server never became ready")
		}
		time.Sleep(10 * time.Millisecond)
	}

	resp, err := http.Get("http://" + srv.http.Addr() + "/readyz")
	if err != nil {
		t.Fatalf("GET /readyz: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("readyz = %d, want 200", resp.StatusCode)
	}

	if err := srv.Shutdown(5 * time.Second); err != nil {
		t.Errorf("Shutdown: %v", err)
	}
}
