package history

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/JaimeStill/route-finder/pkg/pagination"
	"github.com/JaimeStill/route-finder/pkg/repository"
	"github.com/google/uuid"
)

const columns = "id, source, destination, mode, route_count, created_at"

type repo struct {
	db         *sql.DB
	logger     *slog.Logger
	pagination pagination.Config
}

// New creates a PostgreSQL-backed history System.
func New(db *sql.DB, logger *slog.Logger, pagination pagination.Config) System {
	return &repo{
		db:         db,
		logger:     logger.With("system", "history"),
		pagination: pagination,
	}
}

func (r *repo) Record(ctx context.Context, cmd RecordCommand) (*Search, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("generate search id: %w", err)
	}

	q := `
		INSERT INTO searches (id, source, destination, mode, route_count)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + columns

	args := []any{id, cmd.Source, cmd.Destination, cmd.Mode, cmd.RouteCount}
	s, err := repository.QueryOne(ctx, r.db, q, args, scanSearch)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Debug("search recorded", "id", s.ID, "mode", s.Mode, "routes", s.RouteCount)
	return &s, nil
}

func (r *repo) List(ctx context.Context, page pagination.PageRequest) (*pagination.PageResult[Search], error) {
	page.Normalize(r.pagination)

	var total int
	if err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM searches").Scan(&total); err != nil {
		return nil, fmt.Errorf("count searches: %w", err)
	}

	q := `SELECT ` + columns + ` FROM searches ORDER BY created_at DESC, id DESC LIMIT $1 OFFSET $2`
	searches, err := repository.QueryMany(ctx, r.db, q, []any{page.PageSize, page.Offset()}, scanSearch)
	if err != nil {
		return nil, fmt.Errorf("query searches: %w", err)
	}

	result := pagination.NewPageResult(searches, total, page.Page, page.PageSize)
	return &result, nil
}

func (r *repo) Export(ctx context.Context, limit int) ([]Search, error) {
	if limit < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidLimit, limit)
	}

	q := `SELECT ` + columns + ` FROM searches ORDER BY created_at DESC, id DESC LIMIT $1`
	searches, err := repository.QueryMany(ctx, r.db, q, []any{limit}, scanSearch)
	if err != nil {
		return nil, fmt.Errorf("export searches: %w", err)
	}
	return searches, nil
}

func (r *repo) Purge(ctx context.Context, cutoff time.Time) (int64, error) {
	res, err := r.db.ExecContext(ctx, "DELETE FROM searches WHERE created_at < $1", cutoff)
	if err != nil {
		return 0, fmt.Errorf("purge searches: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("purge searches: %w", err)
	}

	r.logger.Info("searches purged", "count", n, "cutoff", cutoff)
	return n, nil
}
