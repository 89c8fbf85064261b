package domain

import "errors"

// Sentinel errors shared across repositories, services and handlers. The
// handler layer translates these to HTTP status codes; everything else is a
// 500 with details redacted outside development.
var (
	// ErrNotFound is returned when a resource is absent or deliberately
	// hidden (an unpublished article read through a public path).
	ErrNotFound = errors.New("resource not found")

	// ErrDuplicateEmail is returned when a unique-email constraint is
	// violated, including the race where two registrations collide and the
	// store rejects the second writer.
	ErrDuplicateEmail = errors.New("email already registered")

	// ErrInvalidCredentials covers both unknown email and wrong password so
	// the login response does not reveal which one failed.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrUserDeactivated is returned when credentials verify but the account
	// has been deactivated.
	ErrUserDeactivated = errors.New("user is deactivated")

	// ErrWrongPassword is returned by the change-password flow when the
	// current password does not verify.
	ErrWrongPassword = errors.New("current password is incorrect")

	// ErrInvalidToken is returned for malformed tokens or bad signatures.
	ErrInvalidToken = errors.New("invalid token")

	// ErrExpiredToken is returned for well-formed tokens past their TTL.
	ErrExpiredToken = errors.New("token expired")

	// ErrForbidden is returned when an authenticated caller lacks the role
	// or the ownership required for an action.
	ErrForbidden = errors.New("forbidden")
)
