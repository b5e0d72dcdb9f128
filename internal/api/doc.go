// Package api implements the repositories for the remote shopping-list
// service on top of package client.
//
// Users and ShoppingLists run on the session client, whose transport
// refreshes tokens on 401. RefreshEndpoint runs on a plain client and is the
// auth.Endpoint the session manager calls. Non-2xx answers surface as
// *StatusError.
package api
