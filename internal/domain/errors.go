package domain

import (
	"errors"
	"fmt"
)

var (
	ErrClickNotFound      = errors.New("click record not found")
	ErrBindingNotFound    = errors.New("sender binding not found")
	ErrDuplicateOrder     = errors.New("order already recorded for transaction")
	ErrMissingClickID     = errors.New("unique_click_id is required")
	ErrMissingTimestamp   = errors.New("timestamp is required")
	ErrInvalidClickID     = errors.New("unique_click_id must start with click-")
	ErrNullAmount         = errors.New("valor must not be null when present")
)

// UpstreamError is a non-2xx response from the attribution API.
type UpstreamError struct {
	StatusCode int
	Body       string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("upstream returned status %d: %s", e.StatusCode, e.Body)
}
