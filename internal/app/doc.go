// Package app is the composition root of the shopping-list client.
//
// New assembles, in order: the settings store, preferences, the base
// retrying transport, the refresh endpoint on a plain client, the session
// manager, the Authenticator-wrapped API client with its middlewares, the
// repositories and the use cases. Nothing is resolved from globals; every
// dependency is passed explicitly.
//
// Example Usage:
//
//	cfg := config.LoadOrDefault()
//	a, err := app.New(cfg, logger.Logger)
//	if err != nil {
//	    return err
//	}
//	defer a.Close()
//	lists, err := a.Shopping.GetShoppingLists(ctx)
package app
