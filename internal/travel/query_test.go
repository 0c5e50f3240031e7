package travel_test

import (
	"errors"
	"net/url"
	"strings"
	"testing"

	"github.com/JaimeStill/route-finder/internal/travel"
)

func TestParseQuery(t *testing.T) {
	tests := []struct {
		name    string
		values  url.Values
		want    travel.Query
		missing string
	}{
		{
			name:   "both present",
			values: url.Values{"source": {"DEL"}, "destination": {"LHR"}},
			want:   travel.Query{Source: "DEL", Destination: "LHR"},
		},
		{
			name:   "verbatim values",
			values: url.Values{"source": {" new delhi "}, "destination": {"<b>LHR</b>"}},
			want:   travel.Query{Source: " new delhi ", Destination: "<b>LHR</b>"},
		},
		{
			name:   "empty values accepted",
			values: url.Values{"source": {""}, "destination": {""}},
			want:   travel.Query{},
		},
		{
			name:    "missing source",
			values:  url.Values{"destination": {"LHR"}},
			missing: "source",
		},
		{
			name:    "missing destination",
			values:  url.Values{"source": {"DEL"}},
			missing: "destination",
		},
		{
			name:    "missing both",
			values:  url.Values{},
			missing: "source",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := travel.ParseQuery(tt.values)

			if tt.missing != "" {
				if !errors.Is(err, travel.ErrMissingField) {
					t.Fatalf("err = %v, want ErrMissingField", err)
				}
				if !strings.Contains(err.Error(), tt.missing) {
					t.Errorf("err = %v, want mention of %s", err, tt.missing)
				}
				return
			}

			if err != nil {
				t.Fatalf("ParseQuery: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %+v, want %+v", got, tt.want)
			}
		})
	}
}
