package riftseed

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownBackend indicates an unsupported document store backend.
	ErrUnknownBackend = errors.New("unknown storage backend")

	// ErrMissingDBPath indicates the badger backend was chosen without a directory.
	ErrMissingDBPath = errors.New("database path is required for the badger backend")
)

// Initialization stages reported by InitializationError.
const (
	StageConfig    = "config"
	StageSecret    = "secret"
	StageStore     = "store"
	StageGenerator = "generator"
	StageArchive   = "archive"
)

// InitializationError indicates a client could not be built. No generation
// request has been sent when it is returned.
type InitializationError struct {
	Stage string
	Err   error
}

func (e *InitializationError) Error() string {
	return fmt.Sprintf("initialization failed at %s: %v", e.Stage, e.Err)
}

func (e *InitializationError) Unwrap() error {
	return e.Err
}
