package constants

import "errors"

// Configuration errors.
var (
	ErrNoAPIConfigured  = errors.New("no API address configured, use --api or 'brig login --api <address>'")
	ErrNotAuthenticated = errors.New("not authenticated, use 'brig login' first")
)

// Validation errors.
var (
	ErrFileRequired        = errors.New("--file flag is required")
	ErrProjectRequired     = errors.New("--project flag is required")
	ErrSourceRequired      = errors.New("--source flag is required")
	ErrTypeRequired        = errors.New("--type flag is required")
	ErrUnsupportedFormat   = errors.New("unsupported output format")
	ErrEmptyPassword       = errors.New("password must not be empty")
	ErrManifestKindInvalid = errors.New("manifest kind does not match resource")
)
