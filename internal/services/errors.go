package services

import (
	"errors"
	"strings"

	"github.com/google/uuid"
)

// Outcome errors returned by the service layer. Handlers translate them into
// status codes and envelopes; anything else is treated as an internal failure.
var (
	// ErrNotFound means the primary target id did not resolve. A malformed
	// id string reports the same outcome as a well-formed unknown one.
	ErrNotFound = errors.New("not found")

	// ErrCategoryNotFound means a product's category reference did not
	// resolve. Distinct from ErrNotFound: the primary target may exist.
	ErrCategoryNotFound = errors.New("category not found")

	// ErrEmailTaken means another user already holds the email.
	ErrEmailTaken = errors.New("email already has taken")
)

// errNegativeAmount marks a parseable but negative price or stock value.
var errNegativeAmount = errors.New("amount must not be negative")

// ValidationError carries every violation found in a request, not just the
// first one.
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Messages, "; ")
}

// parseID parses an entity id. The uuid shape is part of the lookup: a
// malformed id can never resolve, so callers fold the error into ErrNotFound.
func parseID(s string) (uuid.UUID, error) {
	return uuid.Parse(strings.TrimSpace(s))
}
