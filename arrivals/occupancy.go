package arrivals

import "fmt"

// OccupancyStatus is the GTFS-Realtime coarse passenger-load indicator
// reported per vehicle. The enumeration is closed: codes outside it are a
// feed defect, not a value to carry forward.
type OccupancyStatus int32

const (
	OccupancyEmpty OccupancyStatus = iota
	OccupancyManySeatsAvailable
	OccupancyFewSeatsAvailable
	OccupancyStandingRoomOnly
	OccupancyCrushedStandingRoomOnly
	OccupancyFull
	OccupancyNotAcceptingPassengers
	OccupancyNoDataAvailable
	OccupancyNotBoardable
)

var occupancyNames = map[OccupancyStatus]string{
	OccupancyEmpty:                   "EMPTY",
	OccupancyManySeatsAvailable:      "MANY_SEATS_AVAILABLE",
	OccupancyFewSeatsAvailable:       "FEW_SEATS_AVAILABLE",
	OccupancyStandingRoomOnly:        "STANDING_ROOM_ONLY",
	OccupancyCrushedStandingRoomOnly: "CRUSHED_STANDING_ROOM_ONLY",
	OccupancyFull:                    "FULL",
	OccupancyNotAcceptingPassengers:  "NOT_ACCEPTING_PASSENGERS",
	OccupancyNoDataAvailable:         "NO_DATA_AVAILABLE",
	OccupancyNotBoardable:            "NOT_BOARDABLE",
}

// OccupancyFromCode maps a feed's integer code onto the enumeration. An
// out-of-range code returns an error so the caller can flag the entity.
func OccupancyFromCode(code int32) (OccupancyStatus, error) {
	s := OccupancyStatus(code)
	if _, ok := occupancyNames[s]; !ok {
		return 0, fmt.Errorf("occupancy code %d out of range", code)
	}
	return s, nil
}

// String returns the GTFS-Realtime enum name, e.g. "FEW_SEATS_AVAILABLE".
func (s OccupancyStatus) String() string {
	if name, ok := occupancyNames[s]; ok {
		return name
	}
	return fmt.Sprintf("OCCUPANCY_%d", int32(s))
}
