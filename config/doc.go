// Package config handles application configuration loading and validation.
//
// Configuration is loaded from config.yml and validated using struct tags.
// It names the upstream GTFS-Realtime feeds, the provider's API-key style and
// the stop monitors the service answers for.
package config
