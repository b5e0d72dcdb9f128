// Package apistub runs an in-memory gin implementation of the
// shopping-list API for tests.
//
// Access tokens are HS256 JWTs tracked server-side, so tests can expire
// them (ExpireAccessTokens) to drive the client's refresh path, count
// refresh calls, or park a refresh with OnRefresh.
package apistub
