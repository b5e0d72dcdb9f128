// Command shoplist is a terminal client for the shopping-list service.
//
// Usage:
//
//	shoplist check-user ana@example.com
//	shoplist login ana@example.com
//	shoplist lists -o json
//	shoplist create "Groceries"
//	shoplist add 12 Milk --quantity 2
//	shoplist status
//	shoplist logout
//
// Configuration comes from SHOPLIST_* environment variables; see package
// config. The session is kept in ~/.shoplist/settings.toml by default.
package main
