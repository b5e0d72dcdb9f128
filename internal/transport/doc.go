// Package transport holds the HTTP plumbing that keeps requests
// authenticated.
//
// Authenticator sits in the http.RoundTripper chain. On a 401 for a path
// outside its excluded set it asks the session for one refresh and, if that
// succeeds, replays the request once with the new bearer token. Any refresh
// failure returns the original 401 untouched, so a request never loops.
//
// The resty middlewares stamp the bearer token, a request id and the device
// id before a request is sent.
package transport
