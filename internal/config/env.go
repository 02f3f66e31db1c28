// Package config reads process configuration from the environment.
// Game-specific variables live under the REEFCATCH_ prefix; plain lookups
// remain for conventional names like SSH_HOST.
package config

import "os"

// envPrefix namespaces the game's own variables so they do not collide
// with whatever else is set in a player's shell.
const envPrefix = "REEFCATCH_"

// GetEnv returns the value of the environment variable named by the key,
// or fallback if the variable is not set.
func GetEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

// GetGameEnv is GetEnv for a game variable; the key is looked up with the
// REEFCATCH_ prefix prepended.
func GetGameEnv(key, fallback string) string {
	return GetEnv(envPrefix+key, fallback)
}
