package arrivals

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/theoremus-urban-solutions/gtfsrt-arrivals/gtfsrt"
)

// DefaultMinInterval is the smallest spacing between upstream refresh
// attempts when the configuration does not pick one.
const DefaultMinInterval = time.Minute

// FeedSource fetches one GTFS-RT feed and returns its raw protobuf bytes.
type FeedSource func(ctx context.Context) ([]byte, error)

// Store owns the latest prediction table. Any number of readers may call
// Lookup while a refresh is computing its replacement; readers always see a
// complete table, either the previous one or the new one.
type Store struct {
	fetchTrips    FeedSource
	fetchVehicles FeedSource // nil when no vehicle feed is configured
	minInterval   time.Duration
	now           func() time.Time

	refreshMu   sync.Mutex // serializes refreshes; TryLock coalesces overlap
	lastAttempt time.Time  // guarded by refreshMu

	mu          sync.RWMutex // guards the fields below
	table       PredictionTable
	refreshedAt time.Time
	snapshotID  string
}

// Stats describes the store's current snapshot for health reporting.
type Stats struct {
	SnapshotID  string
	RefreshedAt time.Time
	Routes      int
	Stops       int
	Arrivals    int
	Loaded      bool
}

// NewStore creates a store over the given feed sources. fetchVehicles may be
// nil; arrivals then carry no position or occupancy. A non-positive
// minInterval falls back to DefaultMinInterval.
func NewStore(fetchTrips, fetchVehicles FeedSource, minInterval time.Duration) *Store {
	if minInterval <= 0 {
		minInterval = DefaultMinInterval
	}
	return &Store{
		fetchTrips:    fetchTrips,
		fetchVehicles: fetchVehicles,
		minInterval:   minInterval,
		now:           time.Now,
		table:         PredictionTable{},
	}
}

// Refresh fetches both feeds and installs a freshly projected table. A call
// within minInterval of the previous attempt (successful or not) is a no-op,
// as is a call arriving while another refresh is in flight; both coalesce so
// the upstream is polled at a bounded rate no matter how many consumers ask.
//
// On any fetch or decode failure the previous table stays installed unchanged
// and the error is returned; a partial table is never visible.
func (s *Store) Refresh(ctx context.Context) error {
	if !s.refreshMu.TryLock() {
		return nil
	}
	defer s.refreshMu.Unlock()

	started := s.now()
	if !s.lastAttempt.IsZero() && started.Sub(s.lastAttempt) < s.minInterval {
		return nil
	}
	s.lastAttempt = started

	// Vehicle feed first: its index feeds the projection, and a dead vehicle
	// feed aborts the cycle before the trip feed is touched.
	var idx *VehicleIndex
	if s.fetchVehicles != nil {
		feed, err := fetchAndDecode(ctx, s.fetchVehicles)
		if err != nil {
			return err
		}
		var anomalies []EntityAnomaly
		idx, anomalies = BuildVehicleIndex(feed.Vehicles())
		for _, a := range anomalies {
			log.Warn().
				Str("vehicle", a.VehicleID).
				Str("trip", a.TripID).
				Str("reason", a.Reason).
				Msg("Skipped vehicle entity")
		}
	}

	feed, err := fetchAndDecode(ctx, s.fetchTrips)
	if err != nil {
		return err
	}
	table := Project(feed.TripUpdates(), idx, started)

	s.mu.Lock()
	s.table = table
	s.refreshedAt = started
	s.snapshotID = uuid.New().String()
	snapshot := s.snapshotID
	s.mu.Unlock()

	stops, arrivals := table.Size()
	log.Debug().
		Str("snapshot", snapshot).
		Int("routes", len(table)).
		Int("stops", stops).
		Int("arrivals", arrivals).
		Int("vehicles", idx.Len()).
		Msg("Prediction table refreshed")
	return nil
}

func fetchAndDecode(ctx context.Context, src FeedSource) (*gtfsrt.Feed, error) {
	b, err := src(ctx)
	if err != nil {
		return nil, err
	}
	return gtfsrt.Decode(b)
}

// Lookup returns the upcoming arrivals for one (route, stop) pair, soonest
// first. The returned slice is a snapshot view: refreshes replace tables
// rather than mutating them, so it never changes under the caller.
func (s *Store) Lookup(routeID, stopID string) []Arrival {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.table.Lookup(routeID, stopID)
}

// Stats reports on the installed snapshot. Loaded is false until the first
// successful refresh.
func (s *Store) Stats() Stats {
	s.mu.RLock()
	defer s.mu.RUnlock()
	stops, arrivals := s.table.Size()
	return Stats{
		SnapshotID:  s.snapshotID,
		RefreshedAt: s.refreshedAt,
		Routes:      len(s.table),
		Stops:       stops,
		Arrivals:    arrivals,
		Loaded:      !s.refreshedAt.IsZero(),
	}
}
