package server_test

import (
	"io"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/JaimeStill/route-finder/internal/config"
	"github.com/JaimeStill/route-finder/internal/server"
	"github.com/JaimeStill/route-finder/pkg/lifecycle"
	"github.com/JaimeStill/route-finder/pkg/logging"
)

func testConfig() *config.ServerConfig {
	return &config.ServerConfig{
		Host:            "127.0.0.1",
		Port:            0,
		ReadTimeout:     "5s",
		WriteTimeout:    "5s",
		ShutdownTimeout: "5s",
	}
}

func TestStart_ServesAndShutsDown(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, "pong")
	})

	lc := lifecycle.New()
	sys := server.New(testConfig(), handler, logging.Discard())

	if err := sys.Start(lc); err != nil {
		t.Fatalf("Start: %v", err)
	}

	resp, err := http.Get("http://" + sys.Addr() + "/")
	if err != nil {
		t.Fatalf("GET: %v", err)
	}
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()

	if string(body) != "pong" {
		t.Errorf("body = %q, want pong", body)
	}

	if err := lc.Shutdown(5 * time.Second); err != nil {
		t.Fatalf("Shutdown: %v", err)
	}

	if _, err := http.Get("http://" + sys.Addr() + "/"); err == nil {
		t.Error("expected request to fail after shutdown")
	}
}

func TestStart_AddressInUse(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	defer ln.Close()

	cfg := testConfig()
	cfg.Port = ln.Addr().(*net.TCPAddr).Port

	lc := lifecycle.New()
	defer lc.Shutdown(time.Second)

	sys := server.New(cfg, http.NotFoundHandler(), logging.Discard())
	if err := sys.Start(lc); err == nil {
		t.Error("expected error when port is taken")
	}
}
