package arrivals

import (
	gtfsrtpb "github.com/MobilityData/gtfs-realtime-bindings/golang/gtfs"
)

// VehicleIndex holds one refresh cycle's view of the vehicle-position feed:
// last reported position and occupancy per vehicle, plus the trip->vehicle
// links used when a trip update does not name its vehicle.
type VehicleIndex struct {
	positions   map[string]Position
	occupancies map[string]OccupancyStatus
	tripVehicle map[string]string
}

// EntityAnomaly records a feed entity that was skipped during indexing.
// Anomalies are non-fatal: the batch continues without the offending entity.
type EntityAnomaly struct {
	VehicleID string
	TripID    string
	Reason    string
}

// BuildVehicleIndex indexes one vehicle-position snapshot. Vehicles whose
// trip carries no route id are not in revenue service and are ignored
// outright. A vehicle without an id, or with an occupancy code outside the
// enumeration, is reported as an anomaly and excluded; one bad entity never
// fails the batch.
//
// When a trip appears on several vehicles the last one in feed order wins
// the trip->vehicle link, matching how providers emit reassignments.
func BuildVehicleIndex(vehicles []*gtfsrtpb.VehiclePosition) (*VehicleIndex, []EntityAnomaly) {
	idx := &VehicleIndex{
		positions:   map[string]Position{},
		occupancies: map[string]OccupancyStatus{},
		tripVehicle: map[string]string{},
	}
	var anomalies []EntityAnomaly

	for _, v := range vehicles {
		tripID := v.GetTrip().GetTripId()
		if v.GetTrip().GetRouteId() == "" {
			// Not in revenue service.
			continue
		}

		vehicleID := v.GetVehicle().GetId()
		if vehicleID == "" {
			anomalies = append(anomalies, EntityAnomaly{
				TripID: tripID,
				Reason: "vehicle entity without a vehicle id",
			})
			continue
		}

		// The getter defaults an absent occupancy_status to EMPTY, the same
		// reading proto2 consumers have always applied to this feed.
		occ, err := OccupancyFromCode(int32(v.GetOccupancyStatus()))
		if err != nil {
			anomalies = append(anomalies, EntityAnomaly{
				VehicleID: vehicleID,
				TripID:    tripID,
				Reason:    err.Error(),
			})
			continue
		}

		if p := v.GetPosition(); p != nil {
			idx.positions[vehicleID] = Position{
				Latitude:  float64(p.GetLatitude()),
				Longitude: float64(p.GetLongitude()),
			}
		}
		idx.occupancies[vehicleID] = occ
		if tripID != "" {
			idx.tripVehicle[tripID] = vehicleID
		}
	}

	return idx, anomalies
}

// VehicleFor returns the vehicle serving tripID, or "" when the feed never
// linked one. Safe on a nil index.
func (idx *VehicleIndex) VehicleFor(tripID string) string {
	if idx == nil || tripID == "" {
		return ""
	}
	return idx.tripVehicle[tripID]
}

// PositionOf returns a copy of the vehicle's last reported position, or nil
// when the feed carried none. Safe on a nil index.
func (idx *VehicleIndex) PositionOf(vehicleID string) *Position {
	if idx == nil || vehicleID == "" {
		return nil
	}
	p, ok := idx.positions[vehicleID]
	if !ok {
		return nil
	}
	return &p
}

// OccupancyOf returns the vehicle's occupancy, or nil when the vehicle is
// unknown. Safe on a nil index.
func (idx *VehicleIndex) OccupancyOf(vehicleID string) *OccupancyStatus {
	if idx == nil || vehicleID == "" {
		return nil
	}
	o, ok := idx.occupancies[vehicleID]
	if !ok {
		return nil
	}
	return &o
}

// Len returns the number of indexed vehicles.
func (idx *VehicleIndex) Len() int {
	if idx == nil {
		return 0
	}
	return len(idx.occupancies)
}
