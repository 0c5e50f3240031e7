package travel

import (
	"log/slog"
	"net/http"

	"github.com/JaimeStill/route-finder/pkg/handlers"
	"github.com/JaimeStill/route-finder/pkg/routes"
)

// Result is the JSON body returned by the routes endpoint.
type Result struct {
	Source      string  `json:"source"`
	Destination string  `json:"destination"`
	Mode        string  `json:"mode"`
	Routes      []Route `json:"routes"`
}

// Handler serves route lookups as JSON.
type Handler struct {
	svc    *Service
	logger *slog.Logger
}

func NewHandler(svc *Service, logger *slog.Logger) *Handler {
	return &Handler{
		svc:    svc,
		logger: logger.With("system", "travel.handler"),
	}
}

func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix: "/routes",
		Routes: []routes.Route{
			{Method: "GET", Pattern: "", Handler: h.Find},
		},
	}
}

// Find handles GET /api/routes?source=&destination=.
func (h *Handler) Find(w http.ResponseWriter, r *http.Request) {
	q, err := ParseQuery(r.URL.Query())
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, Result{
		Source:      q.Source,
		Destination: q.Destination,
		Mode:        h.svc.Mode(),
		Routes:      h.svc.Search(r.Context(), q),
	})
}
