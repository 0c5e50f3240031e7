package main

import (
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/JaimeStill/route-finder/internal/config"
	"github.com/JaimeStill/route-finder/internal/infrastructure"
	"github.com/JaimeStill/route-finder/internal/routes"
	"github.com/JaimeStill/route-finder/internal/server"
)

// Server coordinates the lifecycle of all subsystems.
type Server struct {
	infra   *infrastructure.Infrastructure
	domain  *Domain
	handler http.Handler
	http    server.System
}

// NewServer wires every subsystem without starting any of them.
func NewServer(cfg *config.Config, logOut io.Writer) (*Server, error) {
	infra, err := infrastructure.New(cfg, logOut)
	if err != nil {
		return nil, err
	}

	domain := NewDomain(infra, cfg)

	routeSys := routes.New(infra.Logger)
	if err := registerRoutes(routeSys, infra, domain, cfg); err != nil {
		return nil, fmt.Errorf("register routes: %w", err)
	}

	handler := buildMiddleware(infra.Logger, cfg).Apply(routeSys.Build())

	infra.Logger.Info("server initialized",
		"addr", cfg.Server.Addr(),
		"finder", domain.Service.Mode(),
		"history", domain.History != nil,
	)

	return &Server{
		infra:   infra,
		domain:  domain,
		handler: handler,
		http:    server.New(&cfg.Server, handler, infra.Logger),
	}, nil
}

// Start brings up infrastructure, then domain jobs, then the listener.
func (s *Server) Start() error {
	s.infra.Logger.Info("starting server")

	if err := s.infra.Start(); err != nil {
		return err
	}
	if err := s.domain.Start(s.infra); err != nil {
		return err
	}
	if err := s.http.Start(s.infra.Lifecycle); err != nil {
		return err
	}

	go func() {
		s.infra.Lifecycle.WaitForStartup()
		s.infra.Logger.Info("all subsystems ready")
	}()

	return nil
}

// Shutdown stops all subsystems, waiting at most timeout.
func (s *Server) Shutdown(timeout time.Duration) error {
	s.infra.Logger.Info("initiating shutdown")
	return s.infra.Lifecycle.Shutdown(timeout)
}
