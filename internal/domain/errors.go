package domain

import "errors"

// ErrNotFound is returned by repo and service functions when the requested
// resource does not exist in the database.
// Handlers should map this to HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrValidation is returned by service functions when input fails business
// rule validation (e.g. missing required field, empty postal code).
// Handlers should map this to HTTP 422 Unprocessable Entity.
var ErrValidation = errors.New("validation error")

// ErrDuplicateUser is returned by registration when the username is already
// taken. The unique constraint on users.username is the source of truth, so
// two concurrent registrations can never both succeed.
// Handlers should map this to HTTP 409 Conflict.
var ErrDuplicateUser = errors.New("username already taken")

// ErrInvalidCredentials is returned by authentication for both an unknown
// username and a wrong password. Callers must not be able to tell the two
// apart. Handlers should map this to HTTP 401.
var ErrInvalidCredentials = errors.New("invalid credentials")

// ErrLookupFailed is returned when the geocoder cannot resolve a postal code,
// either because it found no match or because it was unreachable. Retryable
// input error; the user should try a different postal code.
var ErrLookupFailed = errors.New("postal code lookup failed")

// ErrFetchFailed is returned when the place fetcher is unreachable or returns
// a malformed response. Retryable service error; never fatal to the process.
var ErrFetchFailed = errors.New("place fetch failed")
