package claim

import "errors"

var (
	// ErrUnauthenticated is returned when the caller identity could not be established.
	ErrUnauthenticated = errors.New("unauthenticated")
	// ErrAlreadyClaimed is returned when creating a claim for a fingerprint that is already claimed.
	ErrAlreadyClaimed = errors.New("fingerprint already claimed")
	// ErrNotFound is returned when a fingerprint has no claim.
	ErrNotFound = errors.New("claim not found")
	// ErrNotOwner is returned when a claim is mutated by an identity that does not own it.
	ErrNotOwner = errors.New("caller is not the claim owner")
)
