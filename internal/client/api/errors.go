package api

import (
	"fmt"
	"net/http"

	"github.com/dmitrijs2005/storefront/internal/common"
)

// Error is a server-reported failure: a non-2xx response with the backend's
// "detail" message when the error body provided one.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("request failed with status %d", e.Status)
}

// Unwrap lets errors.Is match auth failures against common.ErrUnauthorized.
func (e *Error) Unwrap() error {
	switch e.Status {
	case http.StatusUnauthorized, http.StatusForbidden:
		return common.ErrUnauthorized
	}
	return nil
}
