package history

import (
	"errors"
	"net/http"
)

var (
	ErrNotFound     = errors.New("search not found")
	ErrDuplicate    = errors.New("search already recorded")
	ErrInvalidLimit = errors.New("invalid export limit")
)

// MapHTTPStatus maps history errors to HTTP status codes.
func MapHTTPStatus(err error) int {
	if errors.Is(err, ErrNotFound) {
		return http.StatusNotFound
	}
	if errors.Is(err, ErrDuplicate) {
		return http.StatusConflict
	}
	if errors.Is(err, ErrInvalidLimit) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
