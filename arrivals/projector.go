package arrivals

import (
	"sort"
	"time"

	gtfsrtpb "github.com/MobilityData/gtfs-realtime-bindings/golang/gtfs"
)

// Project builds the route -> stop -> upcoming-arrivals table for one refresh
// cycle. Stop-time updates at or before now are dropped: live feeds routinely
// carry rows the vehicle has already served, and those would render as zero
// or negative waits.
//
// Vehicle resolution prefers the trip update's own vehicle id and falls back
// to the index's trip->vehicle link. A trip that resolves to no vehicle still
// contributes arrivals, just without position or occupancy. idx may be nil
// when no vehicle feed is configured.
func Project(updates []*gtfsrtpb.TripUpdate, idx *VehicleIndex, now time.Time) PredictionTable {
	table := PredictionTable{}
	cutoff := now.Unix()

	for _, tu := range updates {
		routeID := tu.GetTrip().GetRouteId()
		tripID := tu.GetTrip().GetTripId()

		vehicleID := tu.GetVehicle().GetId()
		if vehicleID == "" {
			vehicleID = idx.VehicleFor(tripID)
		}
		// One copy per trip; arrivals of the same trip share it.
		pos := idx.PositionOf(vehicleID)
		occ := idx.OccupancyOf(vehicleID)

		for _, stu := range tu.GetStopTimeUpdate() {
			arrivalEpoch := stu.GetArrival().GetTime()
			if arrivalEpoch <= cutoff {
				continue
			}
			table.add(routeID, stu.GetStopId(), Arrival{
				Time:      time.Unix(arrivalEpoch, 0),
				Position:  pos,
				Occupancy: occ,
			})
		}
	}

	// Ascending per stop; stable so ties keep feed order.
	for _, byStop := range table {
		for _, list := range byStop {
			sort.SliceStable(list, func(i, j int) bool {
				return list[i].Time.Before(list[j].Time)
			})
		}
	}

	return table
}
