// Package preferences persists the signed-in user's profile and the device
// id in the settings store. Tokens live alongside under the keys owned by
// auth.TokenStore.
package preferences
