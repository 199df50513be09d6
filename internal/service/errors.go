package service

import "errors"

var (
	// ErrInvalidDataProvided is returned when an inbound quote request fails
	// structural validation. Deliberately carries no field-level detail.
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrTokenIsInvalid is returned when the bearer token is missing or the
	// identity provider rejects it (expired, malformed, revoked).
	ErrTokenIsInvalid = errors.New("token is invalid or expired")
)
