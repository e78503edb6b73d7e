package errors

import "errors"

var (
	// ErrAuthenticationRequired - an unauthenticated actor attempted a
	// gated operation (booking, rating, history).
	ErrAuthenticationRequired = errors.New("authentication required")

	// ErrAuthorizationDenied - a non-admin attempted an admin-only operation.
	ErrAuthorizationDenied = errors.New("operation requires admin role")

	// ErrNotFound - the referenced movie or booking does not exist.
	ErrNotFound = errors.New("record not found")

	// ErrUsernameTaken - duplicate username at registration.
	ErrUsernameTaken = errors.New("username already taken")

	// ErrInvalidCredentials - login with a wrong username or password.
	ErrInvalidCredentials = errors.New("invalid username or password")

	// ErrMovieNotShowing - tickets for a coming-soon movie cannot be booked.
	ErrMovieNotShowing = errors.New("movie is not showing yet")

	// ErrInvalidScore - rating score outside the accepted 1..5 range.
	ErrInvalidScore = errors.New("score must be between 1 and 5")
)
