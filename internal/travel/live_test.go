package travel_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"reflect"
	"sync/atomic"
	"testing"
	"time"

	"github.com/JaimeStill/route-finder/internal/config"
	"github.com/JaimeStill/route-finder/internal/offers"
	"github.com/JaimeStill/route-finder/internal/travel"
	"github.com/JaimeStill/route-finder/pkg/logging"
)

type stubSearcher struct {
	resp *offers.Response
	err  error
	got  offers.SearchRequest
}

func (s *stubSearcher) Search(_ context.Context, req offers.SearchRequest) (*offers.Response, error) {
	s.got = req
	return s.resp, s.err
}

func providerConfig() *config.ProviderConfig {
	return &config.ProviderConfig{
		DepartureDate:  "2026-11-01",
		Adults:         1,
		MaxOffers:      3,
		CurrencySymbol: "₹",
	}
}

func offer(duration, total string, hops ...string) offers.Offer {
	segs := make([]offers.Segment, 0, len(hops)-1)
	for i := 0; i+1 < len(hops); i++ {
		segs = append(segs, offers.Segment{
			Departure: offers.Endpoint{IATACode: hops[i]},
			Arrival:   offers.Endpoint{IATACode: hops[i+1]},
		})
	}
	return offers.Offer{
		Itineraries: []offers.Itinerary{{Duration: duration, Segments: segs}},
		Price:       offers.Price{Total: total},
	}
}

func TestLiveFinder_Find(t *testing.T) {
	stub := &stubSearcher{resp: &offers.Response{Data: []offers.Offer{
		offer("PT15H30M", "45000.00", "DEL", "DXB", "LHR"),
		offer("PT9H", "52000.00", "DEL", "LHR"),
	}}}

	f := travel.NewLive(stub, providerConfig(), logging.Discard())
	routes := f.Find(context.Background(), travel.Query{Source: "del", Destination: "lhr"})

	want := []travel.Route{
		{Path: "DEL → DXB → LHR", Time: "15h30m", Cost: "₹45000.00"},
		{Path: "DEL → LHR", Time: "9h", Cost: "₹52000.00"},
	}
	if !reflect.DeepEqual(routes, want) {
		t.Errorf("routes = %#v\nwant %#v", routes, want)
	}

	wantReq := offers.SearchRequest{
		Origin:        "DEL",
		Destination:   "LHR",
		DepartureDate: "2026-11-01",
		Adults:        1,
		Max:           3,
	}
	if stub.got != wantReq {
		t.Errorf("request = %+v, want %+v", stub.got, wantReq)
	}
}

func TestLiveFinder_OneRoutePerOffer(t *testing.T) {
	for n := 0; n <= 3; n++ {
		data := make([]offers.Offer, n)
		for i := range data {
			data[i] = offer("PT1H", "100", "AAA", "BBB")
		}
		stub := &stubSearcher{resp: &offers.Response{Data: data}}

		routes := travel.NewLive(stub, providerConfig(), logging.Discard()).
			Find(context.Background(), travel.Query{Source: "AAA", Destination: "BBB"})

		if len(routes) != n {
			t.Errorf("offers = %d, routes = %d", n, len(routes))
		}
	}
}

func TestLiveFinder_SearchErrorYieldsEmpty(t *testing.T) {
	stub := &stubSearcher{err: errors.New("boom")}

	routes := travel.NewLive(stub, providerConfig(), logging.Discard()).
		Find(context.Background(), travel.Query{Source: "XXX", Destination: "YYY"})

	if routes == nil || len(routes) != 0 {
		t.Errorf("routes = %#v, want empty non-nil", routes)
	}
}

func TestLiveFinder_SkipsOffersWithoutSegments(t *testing.T) {
	stub := &stubSearcher{resp: &offers.Response{Data: []offers.Offer{
		{Price: offers.Price{Total: "1"}},
		{Itineraries: []offers.Itinerary{{Duration: "PT2H"}}},
		offer("PT3H", "300", "DEL", "BOM"),
	}}}

	routes := travel.NewLive(stub, providerConfig(), logging.Discard()).
		Find(context.Background(), travel.Query{Source: "DEL", Destination: "BOM"})

	if len(routes) != 1 || routes[0].Path != "DEL → BOM" {
		t.Errorf("routes = %#v", routes)
	}
}

func TestLiveFinder_DefaultDepartureDate(t *testing.T) {
	cfg := providerConfig()
	cfg.DepartureDate = ""

	stub := &stubSearcher{resp: &offers.Response{}}
	now := func() time.Time { return time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC) }

	travel.NewLive(stub, cfg, logging.Discard(), travel.WithClock(now)).
		Find(context.Background(), travel.Query{Source: "DEL", Destination: "LHR"})

	if stub.got.DepartureDate != "2026-10-26" {
		t.Errorf("departure = %q, want 2026-10-26", stub.got.DepartureDate)
	}
}

func TestLiveFinder_Mode(t *testing.T) {
	f := travel.NewLive(&stubSearcher{}, providerConfig(), logging.Discard())
	if f.Mode() != travel.ModeLive {
		t.Errorf("Mode() = %q, want %q", f.Mode(), travel.ModeLive)
	}
}

// providerServer serves a token endpoint and an offers endpoint with fixed behavior.
func providerServer(t *testing.T, token string, offerStatus int, offerCalls *atomic.Int32) *config.ProviderConfig {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("POST /token", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{"access_token": token, "token_type": "Bearer"})
	})
	mux.HandleFunc("GET /offers", func(w http.ResponseWriter, r *http.Request) {
		offerCalls.Add(1)
		if offerStatus != http.StatusOK {
			w.WriteHeader(offerStatus)
			return
		}
		w.Write([]byte(`{"data":[{"itineraries":[{"duration":"PT5H","segments":[{"departure":{"iataCode":"DEL"},"arrival":{"iataCode":"LHR"}}]}],"price":{"total":"900.00"}}]}`))
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	cfg := providerConfig()
	cfg.BaseURL = srv.URL
	cfg.TokenPath = "/token"
	cfg.OffersPath = "/offers"
	cfg.ClientID = "id"
	cfg.ClientSecret = "secret"
	cfg.Timeout = "5s"
	return cfg
}

func TestLiveFinder_Provider(t *testing.T) {
	tests := []struct {
		name       string
		token      string
		status     int
		wantRoutes int
		wantCalls  int32
	}{
		{"success", "abc", http.StatusOK, 1, 1},
		{"upstream failure", "abc", http.StatusInternalServerError, 0, 1},
		{"missing token skips lookup", "", http.StatusOK, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var calls atomic.Int32
			cfg := providerServer(t, tt.token, tt.status, &calls)

			client := offers.New(cfg, nil, logging.Discard())
			routes := travel.NewLive(client, cfg, logging.Discard()).
				Find(context.Background(), travel.Query{Source: "DEL", Destination: "LHR"})

			if len(routes) != tt.wantRoutes {
				t.Errorf("routes = %d, want %d", len(routes), tt.wantRoutes)
			}
			if got := calls.Load(); got != tt.wantCalls {
				t.Errorf("offer calls = %d, want %d", got, tt.wantCalls)
			}
		})
	}
}

func TestLiveFinder_DurationFormat(t *testing.T) {
	tests := []struct {
		duration string
		want     string
	}{
		{"PT15H30M", "15h30m"},
		{"PT45M", "45m"},
		{"P1DT2H", "p1dt2h"},
		{"2H", "2h"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.duration, func(t *testing.T) {
			stub := &stubSearcher{resp: &offers.Response{Data: []offers.Offer{
				offer(tt.duration, "100", "DEL", "LHR"),
			}}}

			routes := travel.NewLive(stub, providerConfig(), logging.Discard()).
				Find(context.Background(), travel.Query{Source: "DEL", Destination: "LHR"})
			if len(routes) != 1 {
				t.Fatalf("routes = %d, want 1", len(routes))
			}
			if routes[0].Time != tt.want {
				t.Errorf("Time = %q, want %q", routes[0].Time, tt.want)
			}
		})
	}
}
