package directory

import (
	"errors"
	"fmt"
)

// Domain error taxonomy. Handlers map these onto HTTP statuses; the domain
// layer never speaks HTTP.
var (
	// ErrNotAuthenticated means no caller identity was presented.
	ErrNotAuthenticated = errors.New("not authenticated")

	// ErrNotAuthorized means a caller identity is present but lacks
	// ownership or the required role.
	ErrNotAuthorized = errors.New("not authorized")

	// ErrUpstreamUnavailable marks a metadata proxy failure. Callers must
	// fail open to stored values and never block the primary operation.
	ErrUpstreamUnavailable = errors.New("upstream metadata service unavailable")
)

// InsufficientCreditsError is a business-rule violation carrying the
// amounts so the caller can present a specific message.
type InsufficientCreditsError struct {
	Required  int64
	Available int64
}

func (e *InsufficientCreditsError) Error() string {
	return fmt.Sprintf("Not enough credits. Need %d, have %d", e.Required, e.Available)
}

// IsInsufficientCredits checks if an error is an InsufficientCreditsError.
func IsInsufficientCredits(err error) bool {
	var ice *InsufficientCreditsError
	return errors.As(err, &ice)
}

// ItemInactiveError means a shop item exists but is not purchasable.
type ItemInactiveError struct {
	ItemID string
}

func (e *ItemInactiveError) Error() string {
	return fmt.Sprintf("shop item %s is not available for purchase", e.ItemID)
}
