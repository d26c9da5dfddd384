package esports_errors

import "errors"

// Common errors
var (
	ErrNotFound            = errors.New("not found")
	ErrUnsupportedGame     = errors.New("unsupported game")
	ErrUnsupportedEndpoint = errors.New("unsupported endpoint")
	ErrUnauthorized        = errors.New("unauthorized")
	ErrRateLimited         = errors.New("rate limited")
)
