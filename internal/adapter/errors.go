package adapter

import "errors"

var (
	// ErrNotFound is returned when the service reports 404 for a vault,
	// archive, job, or multipart session.
	ErrNotFound = errors.New("remote resource not found")

	// ErrUnauthorized is returned when the service rejects the configured
	// API token.
	ErrUnauthorized = errors.New("client unauthorized")
)
