package offers

import (
	"errors"
	"fmt"
)

// Provider errors returned by Client.
var (
	// ErrNoToken indicates the credential exchange produced no access token.
	ErrNoToken = errors.New("offers: no access token")

	// ErrTokenRejected indicates the token endpoint answered with a non-success status.
	ErrTokenRejected = errors.New("offers: token request rejected")

	// ErrUpstreamStatus indicates the flight-offers endpoint answered with a non-success status.
	ErrUpstreamStatus = errors.New("offers: upstream status")
)

// StatusError carries a non-success flight-offers response. It matches
// ErrUpstreamStatus with errors.Is.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("offers: unexpected status %d: %s", e.StatusCode, e.Body)
}

func (e *StatusError) Unwrap() error {
	return ErrUpstreamStatus
}
