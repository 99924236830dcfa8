package domain

import "errors"

// Sentinel errors for domain-level error discrimination.
// Services wrap these so handlers can map to HTTP status codes without leaking infrastructure details.
var (
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
	ErrBadRequest   = errors.New("bad request")

	// ErrAccountNotFound means a friend target could not be resolved to a
	// registered dealer, neither by exact company name nor by substring match.
	ErrAccountNotFound = errors.New("account not found")

	// ErrDuplicateFriend means the owner already holds an edge to the target company.
	ErrDuplicateFriend = errors.New("friend already in list")
)
