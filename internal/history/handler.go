package history

import (
	"bytes"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/JaimeStill/route-finder/pkg/handlers"
	"github.com/JaimeStill/route-finder/pkg/pagination"
	"github.com/JaimeStill/route-finder/pkg/routes"
	"github.com/gocarina/gocsv"
)

// Handler serves the search history API.
type Handler struct {
	sys         System
	logger      *slog.Logger
	pagination  pagination.Config
	exportLimit int
}

func NewHandler(sys System, logger *slog.Logger, pagination pagination.Config, exportLimit int) *Handler {
	return &Handler{
		sys:         sys,
		logger:      logger.With("system", "history.handler"),
		pagination:  pagination,
		exportLimit: exportLimit,
	}
}

// Routes returns the history endpoints, relative to the API prefix.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix: "/searches",
		Routes: []routes.Route{
			{Method: "GET", Pattern: "", Handler: h.List},
			{Method: "GET", Pattern: "/export", Handler: h.Export},
		},
	}
}

// List handles GET /api/searches.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	page := pagination.PageRequestFromQuery(r.URL.Query(), h.pagination)

	result, err := h.sys.List(r.Context(), page)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// Export handles GET /api/searches/export, writing recent searches as CSV.
// An optional limit parameter lowers the configured export limit.
func (h *Handler) Export(w http.ResponseWriter, r *http.Request) {
	limit, err := h.limit(r)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	searches, err := h.sys.Export(r.Context(), limit)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	var body bytes.Buffer
	if err := gocsv.Marshal(toExportRows(searches), &body); err != nil {
		handlers.RespondError(w, h.logger, http.StatusInternalServerError, fmt.Errorf("encode csv: %w", err))
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="searches.csv"`)
	w.WriteHeader(http.StatusOK)
	w.Write(body.Bytes())
}

func (h *Handler) limit(r *http.Request) (int, error) {
	raw := r.URL.Query().Get("limit")
	if raw == "" {
		return h.exportLimit, nil
	}

	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidLimit, raw)
	}
	return min(n, h.exportLimit), nil
}
