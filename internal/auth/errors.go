package auth

import (
	"errors"
	"fmt"
)

var (
	// ErrRefreshInProgress is returned when another refresh is already running.
	// Callers should not retry on this path.
	ErrRefreshInProgress = errors.New("token refresh already in progress")
	// ErrNoRefreshToken means no refresh token is stored; the session is
	// effectively logged out.
	ErrNoRefreshToken = errors.New("no refresh token available")
	// ErrRefreshFailed matches every *RefreshError.
	ErrRefreshFailed = errors.New("token refresh failed")
)

// RefreshError wraps a transport, status or decode failure from the refresh
// endpoint, or a failure to persist the new pair.
type RefreshError struct {
	Err error
}

func (e *RefreshError) Error() string {
	return fmt.Sprintf("%s: %v", ErrRefreshFailed, e.Err)
}

func (e *RefreshError) Unwrap() error {
	return e.Err
}

// Is lets errors.Is(err, ErrRefreshFailed) match.
func (e *RefreshError) Is(target error) bool {
	return target == ErrRefreshFailed
}
