package adapter

import "errors"

var (
	ErrEndpointNotConfigured = errors.New("endpoint not configured")
	ErrBadRequest            = errors.New("bad request")
	ErrUnauthorized          = errors.New("client unauthorized")
	ErrForbidden             = errors.New("forbidden")
	ErrNotFound              = errors.New("not found")
	ErrInternalServerError   = errors.New("internal server error")
)
