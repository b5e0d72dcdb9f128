// Package paths locates the client's local state on disk.
//
//	~/.shoplist/
//	  └── settings.toml   (tokens, auth data, device id)
//
// SHOPLIST_HOME moves the whole directory; SHOPLIST_STORE_PATH (see
// package config) points at a single settings file instead.
package paths
