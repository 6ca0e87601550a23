package config

import "time"

// ServerConfig contains server configuration
type ServerConfig struct {
	Port int `yaml:"port" validate:"gt=0"`
}

// FeedConfig describes the upstream GTFS-Realtime endpoints and how to
// authenticate against them. Providers disagree on where the API key goes, so
// three common header styles are supported next to a free-form header map; at
// most one style may be set.
type FeedConfig struct {
	TripUpdatesURL      string `yaml:"tripUpdatesURL" validate:"required,url"`
	VehiclePositionsURL string `yaml:"vehiclePositionsURL" validate:"omitempty,url"`

	APIKey  string            `yaml:"api_key"`   // sent as Authorization
	Apikey  string            `yaml:"apikey"`    // sent as apikey
	XAPIKey string            `yaml:"x_api_key"` // sent as x-api-key
	Headers map[string]string `yaml:"headers"`   // free-form alternative

	ReadIntervalMS int `yaml:"readIntervalMS" validate:"gte=0"`
	TimeoutMS      int `yaml:"timeoutMS" validate:"gte=0"`
}

// StopConfig names one queryable (route, stop) pair.
type StopConfig struct {
	Name    string `yaml:"name"`
	RouteID string `yaml:"routeID" validate:"required"`
	StopID  string `yaml:"stopID" validate:"required"`
}

// AppConfig is the root configuration structure
type AppConfig struct {
	Server ServerConfig `yaml:"server"`
	Feed   FeedConfig   `yaml:"feed"`
	Stops  []StopConfig `yaml:"stops" validate:"dive"`
}

// AuthHeaders returns the outgoing request headers for the configured
// authentication style, or nil when the feed is open.
func (f FeedConfig) AuthHeaders() map[string]string {
	switch {
	case f.APIKey != "":
		return map[string]string{"Authorization": f.APIKey}
	case f.Apikey != "":
		return map[string]string{"apikey": f.Apikey}
	case f.XAPIKey != "":
		return map[string]string{"x-api-key": f.XAPIKey}
	case len(f.Headers) > 0:
		return f.Headers
	}
	return nil
}

// ReadInterval returns the minimum spacing between upstream refreshes.
// Unset defaults to a minute, the smallest interval public feeds tolerate.
func (f FeedConfig) ReadInterval() time.Duration {
	if f.ReadIntervalMS <= 0 {
		return time.Minute
	}
	return time.Duration(f.ReadIntervalMS) * time.Millisecond
}

// Timeout returns the per-request HTTP timeout. Unset defaults to 30s.
func (f FeedConfig) Timeout() time.Duration {
	if f.TimeoutMS <= 0 {
		return 30 * time.Second
	}
	return time.Duration(f.TimeoutMS) * time.Millisecond
}
