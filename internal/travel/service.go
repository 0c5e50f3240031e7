package travel

import (
	"context"
	"log/slog"

	"github.com/JaimeStill/route-finder/internal/history"
)

// Recorder stores a summary of each search. history.System satisfies it.
type Recorder interface {
	Record(ctx context.Context, cmd history.RecordCommand) (*history.Search, error)
}

// Service runs the configured finder and records searches when a Recorder is set.
type Service struct {
	finder   Finder
	recorder Recorder
	logger   *slog.Logger
}

// NewService creates a Service. recorder may be nil.
func NewService(finder Finder, recorder Recorder, logger *slog.Logger) *Service {
	return &Service{
		finder:   finder,
		recorder: recorder,
		logger:   logger.With("system", "travel"),
	}
}

func (s *Service) Mode() string {
	return s.finder.Mode()
}

// Search returns the finder's routes. Recording failures are logged and do
// not change the result.
func (s *Service) Search(ctx context.Context, q Query) []Route {
	routes := s.finder.Find(ctx, q)

	if s.recorder != nil {
		cmd := history.RecordCommand{
			Source:      q.Source,
			Destination: q.Destination,
			Mode:        s.finder.Mode(),
			RouteCount:  len(routes),
		}
		if _, err := s.recorder.Record(ctx, cmd); err != nil {
			s.logger.Warn("search not recorded", "error", err)
		}
	}

	return routes
}
