package travel

import (
	"errors"
	"fmt"
	"net/url"
)

const (
	FieldSource      = "source"
	FieldDestination = "destination"
)

// ErrMissingField indicates a required form field was not submitted.
var ErrMissingField = errors.New("missing required field")

// ParseQuery reads source and destination from submitted form values. Both
// keys must be present; empty values are accepted as-is.
func ParseQuery(values url.Values) (Query, error) {
	source, ok := lookup(values, FieldSource)
	if !ok {
		return Query{}, fmt.Errorf("%w: %s", ErrMissingField, FieldSource)
	}

	destination, ok := lookup(values, FieldDestination)
	if !ok {
		return Query{}, fmt.Errorf("%w: %s", ErrMissingField, FieldDestination)
	}

	return Query{Source: source, Destination: destination}, nil
}

func lookup(values url.Values, key string) (string, bool) {
	v, ok := values[key]
	if !ok || len(v) == 0 {
		return "", false
	}
	return v[0], true
}
