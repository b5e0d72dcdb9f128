// Package auth owns the client session: the stored token pair and the
// single-flight refresh that renews it.
//
// Refresh semantics:
//   - one refresh at a time; concurrent callers get ErrRefreshInProgress
//     immediately instead of waiting
//   - ErrNoRefreshToken when nothing is stored
//   - every endpoint or persistence failure is a *RefreshError
//     (errors.Is(err, ErrRefreshFailed))
//   - the in-progress flag is released on every path, including a panicking
//     endpoint
//
// The Manager is constructed once per session and handed to the transport
// layer and to anything that needs CurrentToken.
package auth
