package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrNoUserWasFound is returned when the user collection holds no
	// document for the requested identity.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrExecutingQuery is returned (wrapped) when a Firestore read fails
	// for any reason other than a missing document.
	ErrExecutingQuery = errors.New("error executing firestore query")

	// ErrQuoteNotSaved is returned (wrapped) when persisting a new quote
	// request document fails.
	ErrQuoteNotSaved = errors.New("quote request was not saved")
)
