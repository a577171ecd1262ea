package custom_err

import "errors"

var (
	// Storage errors
	ErrNotFound         = errors.New("resource not found")
	ErrDuplicateRequest = errors.New("duplicate request")
	ErrConcurrentUpdate = errors.New("concurrent update")

	// Analysis errors
	ErrMissingLabel         = errors.New("transaction has no ground-truth label")
	ErrInvalidMode          = errors.New("invalid analysis mode")
	ErrExplainerUnavailable = errors.New("explanation service unavailable")

	// User errors
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrForbidden          = errors.New("forbidden")
	ErrTokenExpired       = errors.New("token has expired")
	ErrTokenNotActive     = errors.New("token not active yet")

	// Validation errors
	ErrInvalidInput  = errors.New("invalid input")
	ErrInvalidAmount = errors.New("invalid amount")
)
