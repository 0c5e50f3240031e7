package history

import (
	"context"
	"time"

	"github.com/JaimeStill/route-finder/pkg/pagination"
)

// System defines search history storage operations.
type System interface {
	Record(ctx context.Context, cmd RecordCommand) (*Search, error)
	List(ctx context.Context, page pagination.PageRequest) (*pagination.PageResult[Search], error)
	// Export returns the most recent searches, newest first, up to limit.
	Export(ctx context.Context, limit int) ([]Search, error)
	// Purge removes searches created before cutoff and reports how many were removed.
	Purge(ctx context.Context, cutoff time.Time) (int64, error)
}
