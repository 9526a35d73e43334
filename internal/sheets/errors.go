package sheets

import "errors"

var (
	// ErrNotConfigured is returned by every gateway operation when the
	// remote endpoint is missing, disabled, or malformed.
	ErrNotConfigured = errors.New("remote script endpoint not configured")

	// ErrRejected is returned when the script answered with success=false.
	ErrRejected = errors.New("remote script rejected the request")

	ErrBadRequest          = errors.New("bad request")
	ErrNotFound            = errors.New("not found")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")
)
