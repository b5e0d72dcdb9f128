// Package cmd implements the shoplist command tree on cobra. Each command
// runs against an app.App assembled from the environment before it starts
// and closed when it returns.
package cmd
