package trivia

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound       = errors.New("not found")
	ErrMissingField   = errors.New("missing required field")
	ErrInvalidRequest = errors.New("invalid request")
	ErrRepository     = errors.New("repository failure")

	// ErrCategoryNotFound means a quiz category resolved to no questions.
	ErrCategoryNotFound = fmt.Errorf("category has no questions: %w", ErrNotFound)
	// ErrPageEmpty means the requested page lies past the end of the listing.
	ErrPageEmpty = fmt.Errorf("page has no questions: %w", ErrNotFound)
)

// MissingFieldError names the create field that was absent or null.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("missing required field %q", e.Field)
}

func (e *MissingFieldError) Is(target error) bool {
	return target == ErrMissingField
}

// RepositoryError wraps a failure of the backing store.
type RepositoryError struct {
	Op  string
	Err error
}

// NewRepositoryError returns nil when err is nil.
func NewRepositoryError(op string, err error) error {
	if err == nil {
		return nil
	}
	return &RepositoryError{Op: op, Err: err}
}

func (e *RepositoryError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *RepositoryError) Unwrap() error {
	return e.Err
}

func (e *RepositoryError) Is(target error) bool {
	return target == ErrRepository
}
