package gtfsrtarrivals

import (
	"context"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/rs/zerolog/log"

	"github.com/theoremus-urban-solutions/gtfsrt-arrivals/arrivals"
	"github.com/theoremus-urban-solutions/gtfsrt-arrivals/config"
	"github.com/theoremus-urban-solutions/gtfsrt-arrivals/gtfsrt"
)

// Service ties the configured feeds to the prediction store and answers
// board queries for the HTTP handlers and the CLI.
type Service struct {
	cfg   *config.AppConfig
	store *arrivals.Store
}

// Board is one stop monitor's answer: the monitor's identity plus the
// presented next/following arrivals.
type Board struct {
	Name    string `json:"name,omitempty"`
	RouteID string `json:"route_id"`
	StopID  string `json:"stop_id"`
	arrivals.StopBoard
}

// NewService wires a store over the configured feed endpoints.
func NewService(cfg *config.AppConfig) *Service {
	client := gtfsrt.NewClient(cfg.Feed.AuthHeaders(), cfg.Feed.Timeout())

	tripURL := cfg.Feed.TripUpdatesURL
	fetchTrips := func(ctx context.Context) ([]byte, error) {
		return client.Fetch(ctx, tripURL)
	}

	var fetchVehicles arrivals.FeedSource
	if cfg.Feed.VehiclePositionsURL != "" {
		vehicleURL := cfg.Feed.VehiclePositionsURL
		fetchVehicles = func(ctx context.Context) ([]byte, error) {
			return client.Fetch(ctx, vehicleURL)
		}
	}

	return NewServiceWithSources(cfg, fetchTrips, fetchVehicles)
}

// NewServiceWithSources wires a store over caller-supplied feed sources. The
// CLI uses it to replay feeds from local protobuf dumps; fetchVehicles may be
// nil when there is no vehicle feed.
func NewServiceWithSources(cfg *config.AppConfig, fetchTrips, fetchVehicles arrivals.FeedSource) *Service {
	return &Service{
		cfg:   cfg,
		store: arrivals.NewStore(fetchTrips, fetchVehicles, cfg.Feed.ReadInterval()),
	}
}

// Refresh asks the store for fresh predictions; rate limiting and coalescing
// happen inside the store.
func (s *Service) Refresh(ctx context.Context) error {
	return s.store.Refresh(ctx)
}

// Stats exposes the store's snapshot state for health reporting.
func (s *Service) Stats() arrivals.Stats {
	return s.store.Stats()
}

// BoardFor answers one (route, stop) query. A refresh is attempted first; if
// the upstream is down the previous predictions are served and the failure is
// only logged, queries never fail because a provider does.
func (s *Service) BoardFor(ctx context.Context, name, routeID, stopID string) Board {
	if err := s.store.Refresh(ctx); err != nil {
		log.Error().Err(err).Msg("Feed refresh failed; serving previous predictions")
	}
	list := s.store.Lookup(routeID, stopID)
	return Board{
		Name:      name,
		RouteID:   routeID,
		StopID:    stopID,
		StopBoard: arrivals.Present(list, time.Now()),
	}
}

// ConfiguredBoards answers every stop monitor named in the configuration.
func (s *Service) ConfiguredBoards(ctx context.Context) []Board {
	boards := make([]Board, 0, len(s.cfg.Stops))
	for _, stop := range s.cfg.Stops {
		boards = append(boards, s.BoardFor(ctx, stop.Name, stop.RouteID, stop.StopID))
	}
	return boards
}

// RunRefreshLoop keeps the table warm so queries never wait on the upstream.
// Successful cycles tick at the configured read interval; failing cycles back
// off exponentially up to five minutes and recover on the next success. The
// loop returns when ctx is cancelled.
func (s *Service) RunRefreshLoop(ctx context.Context) {
	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = s.cfg.Feed.ReadInterval()
	bo.MaxInterval = 5 * time.Minute
	bo.MaxElapsedTime = 0

	for {
		if err := s.store.Refresh(ctx); err != nil {
			log.Error().Err(err).Msg("Feed refresh failed; will retry")
		} else {
			bo.Reset()
		}

		select {
		case <-ctx.Done():
			return
		case <-time.After(bo.NextBackOff()):
		}
	}
}
