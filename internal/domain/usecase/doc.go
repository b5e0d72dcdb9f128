// Package usecase holds the client's application logic: input validation,
// defaults and the orchestration of repositories, preferences and the
// session tokens. It knows nothing about HTTP.
package usecase
