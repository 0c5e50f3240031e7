package travel

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/JaimeStill/route-finder/internal/config"
	"github.com/JaimeStill/route-finder/internal/offers"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const ModeLive = "live"

// defaultLeadTime is how far ahead the departure date falls when none is configured.
const defaultLeadTime = 7 * 24 * time.Hour

// Searcher fetches raw flight offers. *offers.Client satisfies it.
type Searcher interface {
	Search(ctx context.Context, req offers.SearchRequest) (*offers.Response, error)
}

// LiveFinder maps provider offers onto routes.
type LiveFinder struct {
	searcher      Searcher
	departureDate string
	adults        int
	maxOffers     int
	symbol        string
	now           func() time.Time
	logger        *slog.Logger
}

type LiveOption func(*LiveFinder)

// WithClock overrides the time source used to derive the default departure date.
func WithClock(now func() time.Time) LiveOption {
	return func(f *LiveFinder) { f.now = now }
}

func NewLive(searcher Searcher, cfg *config.ProviderConfig, logger *slog.Logger, opts ...LiveOption) *LiveFinder {
	f := &LiveFinder{
		searcher:      searcher,
		departureDate: cfg.DepartureDate,
		adults:        cfg.Adults,
		maxOffers:     cfg.MaxOffers,
		symbol:        cfg.CurrencySymbol,
		now:           time.Now,
		logger:        logger.With("system", "travel.live"),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

func (f *LiveFinder) Mode() string { return ModeLive }

// Find queries the provider and converts each offer's first itinerary into a
// route. Provider failures are logged and produce an empty list.
func (f *LiveFinder) Find(ctx context.Context, q Query) []Route {
	upper := cases.Upper(language.Und)
	req := offers.SearchRequest{
		Origin:        upper.String(q.Source),
		Destination:   upper.String(q.Destination),
		DepartureDate: f.departure(),
		Adults:        f.adults,
		Max:           f.maxOffers,
	}

	resp, err := f.searcher.Search(ctx, req)
	if err != nil {
		f.logger.Error("flight offer search failed",
			"origin", req.Origin,
			"destination", req.Destination,
			"error", err,
		)
		return []Route{}
	}

	routes := make([]Route, 0, len(resp.Data))
	for i, offer := range resp.Data {
		route, ok := f.toRoute(offer)
		if !ok {
			f.logger.Warn("skipping offer without segments", "index", i)
			continue
		}
		routes = append(routes, route)
	}
	return routes
}

func (f *LiveFinder) toRoute(offer offers.Offer) (Route, bool) {
	if len(offer.Itineraries) == 0 {
		return Route{}, false
	}
	itin := offer.Itineraries[0]
	if len(itin.Segments) == 0 {
		return Route{}, false
	}

	places := make([]string, 0, len(itin.Segments)+1)
	for _, seg := range itin.Segments {
		places = append(places, seg.Departure.IATACode)
	}
	places = append(places, itin.Segments[len(itin.Segments)-1].Arrival.IATACode)

	return Route{
		Path: joinPath(places...),
		Time: formatDuration(itin.Duration),
		Cost: f.symbol + offer.Price.Total,
	}, true
}

func (f *LiveFinder) departure() string {
	if f.departureDate != "" {
		return f.departureDate
	}
	return f.now().Add(defaultLeadTime).Format(config.DateLayout)
}

// formatDuration turns "PT15H30M" into "15h30m".
func formatDuration(d string) string {
	return cases.Lower(language.Und).String(strings.TrimPrefix(d, "PT"))
}
