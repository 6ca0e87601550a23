package arrivals

import "time"

// Position is a vehicle's last reported WGS84 location.
type Position struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Arrival is one predicted stop visit. Position and Occupancy are nil when no
// vehicle could be correlated with the trip (or the vehicle feed is not
// configured). Arrivals are never mutated after construction; a refresh
// replaces whole tables instead.
type Arrival struct {
	Time      time.Time
	Position  *Position
	Occupancy *OccupancyStatus
}

// PredictionTable maps route id -> stop id -> arrivals sorted ascending by
// arrival time. Route and stop ids are used exactly as the feed spells them;
// an empty route id is a legal, if unusual, key.
type PredictionTable map[string]map[string][]Arrival

// Lookup returns the arrivals for one (route, stop) pair, soonest first.
// Unknown pairs yield an empty list, never an error.
func (t PredictionTable) Lookup(routeID, stopID string) []Arrival {
	return t[routeID][stopID]
}

func (t PredictionTable) add(routeID, stopID string, a Arrival) {
	stops, ok := t[routeID]
	if !ok {
		stops = map[string][]Arrival{}
		t[routeID] = stops
	}
	stops[stopID] = append(stops[stopID], a)
}

// Size returns the number of stop lists and the total number of arrivals in
// the table.
func (t PredictionTable) Size() (stops, arrivals int) {
	for _, byStop := range t {
		stops += len(byStop)
		for _, list := range byStop {
			arrivals += len(list)
		}
	}
	return stops, arrivals
}
