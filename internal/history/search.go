// Package history keeps an optional log of submitted searches. Only the query
// and the number of routes shown are kept; routes themselves are not stored.
package history

import (
	"time"

	"github.com/google/uuid"
)

// Search is one recorded form submission.
type Search struct {
	ID          uuid.UUID `json:"id"`
	Source      string    `json:"source"`
	Destination string    `json:"destination"`
	Mode        string    `json:"mode"`
	RouteCount  int       `json:"route_count"`
	CreatedAt   time.Time `json:"created_at"`
}

// RecordCommand contains the data captured for a new search.
type RecordCommand struct {
	Source      string
	Destination string
	Mode        string
	RouteCount  int
}

// ExportRow is the CSV projection of a Search.
type ExportRow struct {
	ID          string `csv:"id"`
	Source      string `csv:"source"`
	Destination string `csv:"destination"`
	Mode        string `csv:"mode"`
	RouteCount  int    `csv:"route_count"`
	CreatedAt   string `csv:"created_at"`
}

func toExportRows(searches []Search) []*ExportRow {
	rows := make([]*ExportRow, 0, len(searches))
	for _, s := range searches {
		rows = append(rows, &ExportRow{
			ID:          s.ID.String(),
			Source:      s.Source,
			Destination: s.Destination,
			Mode:        s.Mode,
			RouteCount:  s.RouteCount,
			CreatedAt:   s.CreatedAt.UTC().Format(time.RFC3339),
		})
	}
	return rows
}
