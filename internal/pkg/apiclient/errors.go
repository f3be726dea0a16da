package apiclient

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/takeuforward/portal/internal/app/models/dto"
)

// StatusError is a non-2xx API response
type StatusError struct {
	StatusCode int
	Detail     *dto.ErrorDetail
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("api status %d: %s", e.StatusCode, e.Detail.Error())
}

func (e *StatusError) Unwrap() error { return e.Detail }

// IsUnauthorized reports a 401; callers send the user to /api/login.
func IsUnauthorized(err error) bool {
	return hasStatus(err, http.StatusUnauthorized)
}

// IsNotFound reports a 404
func IsNotFound(err error) bool {
	return hasStatus(err, http.StatusNotFound)
}

func hasStatus(err error, status int) bool {
	var se *StatusError
	return errors.As(err, &se) && se.StatusCode == status
}
