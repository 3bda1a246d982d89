package seeding

import (
	"errors"
	"fmt"
)

var (
	// ErrStoreRequired is returned when a document store is not provided.
	ErrStoreRequired = errors.New("document store required")

	// ErrGeneratorRequired is returned when a text generator is not provided.
	ErrGeneratorRequired = errors.New("text generator required")

	// ErrGenerationFailed wraps errors returned by the text generator.
	ErrGenerationFailed = errors.New("generation failed")
)

// CommitError indicates the store rejected the batch. Nothing from the run
// can be assumed written.
type CommitError struct {
	Collection string
	Staged     int // writes that were in the rejected batch
	Err        error
}

func (e *CommitError) Error() string {
	return fmt.Sprintf("commit of %d writes to %q failed: %v", e.Staged, e.Collection, e.Err)
}

func (e *CommitError) Unwrap() error {
	return e.Err
}
