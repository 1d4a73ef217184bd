package services

import "errors"

// Error taxonomy surfaced to callers. Controllers map these onto HTTP status
// codes; services wrap them with context via fmt.Errorf("...: %w", ...).
var (
	ErrUnauthorized    = errors.New("unauthorized")
	ErrPaymentRequired = errors.New("payment required")
	ErrInvalidTarget   = errors.New("cannot like yourself")
	ErrBadRequest      = errors.New("invalid identifier")
	ErrForbidden       = errors.New("not allowed")
	ErrNotFound        = errors.New("not found")
)
