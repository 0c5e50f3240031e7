package travel

import (
	"context"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const ModeMock = "mock"

type sampleRoute struct {
	stops  []string
	time   string
	amount int
}

var samples = []sampleRoute{
	{stops: []string{"Dubai"}, time: "15h", amount: 45000},
	{stops: []string{"Mumbai", "London"}, time: "18h", amount: 38000},
	{stops: []string{"Delhi", "Paris"}, time: "20h", amount: 41000},
}

// MockFinder returns three fixed routes built around the query's endpoints.
type MockFinder struct {
	symbol string
}

func NewMock() *MockFinder {
	return &MockFinder{symbol: "₹"}
}

func (f *MockFinder) Mode() string { return ModeMock }

// Find is pure: the same query always yields the same routes.
func (f *MockFinder) Find(_ context.Context, q Query) []Route {
	p := message.NewPrinter(language.English)

	routes := make([]Route, 0, len(samples))
	for _, s := range samples {
		places := make([]string, 0, len(s.stops)+2)
		places = append(places, q.Source)
		places = append(places, s.stops...)
		places = append(places, q.Destination)

		routes = append(routes, Route{
			Path: joinPath(places...),
			Time: s.time,
			Cost: f.symbol + p.Sprintf("%d", s.amount),
		})
	}
	return routes
}
