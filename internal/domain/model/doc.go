// Package model defines the domain types shared by the use cases, the API
// repositories and the CLI.
package model
