package domain

import "errors"

var (
	// ErrMalformedID is returned when a candidate ID fails the format check.
	ErrMalformedID = errors.New("malformed DataLab ID")
	// ErrIdentityNotFound is returned when an ID is absent from the registry.
	ErrIdentityNotFound = errors.New("identity not found")
	// ErrInvalidCredentials is the generic login failure shown to callers.
	ErrInvalidCredentials = errors.New("invalid ID or password")
	ErrUnknownAccessLevel = errors.New("unknown access level")
	ErrSampleNotFound     = errors.New("sample not found")

	// ErrNoSession means the session slot is empty.
	ErrNoSession = errors.New("no session")
	// ErrCorruptSession means the slot holds data that is not a valid Identity.
	ErrCorruptSession = errors.New("corrupt session")
)
