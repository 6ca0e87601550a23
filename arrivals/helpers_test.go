package arrivals

import (
	"testing"

	gtfsrtpb "github.com/MobilityData/gtfs-realtime-bindings/golang/gtfs"
	"google.golang.org/protobuf/proto"
)

// stopTime pairs a stop id with a predicted arrival in epoch seconds.
type stopTime struct {
	stopID string
	epoch  int64
}

func tripUpdate(tripID, routeID, vehicleID string, stops ...stopTime) *gtfsrtpb.TripUpdate {
	tu := &gtfsrtpb.TripUpdate{
		Trip: &gtfsrtpb.TripDescriptor{
			TripId:  proto.String(tripID),
			RouteId: proto.String(routeID),
		},
	}
	if vehicleID != "" {
		tu.Vehicle = &gtfsrtpb.VehicleDescriptor{Id: proto.String(vehicleID)}
	}
	for _, st := range stops {
		tu.StopTimeUpdate = append(tu.StopTimeUpdate, &gtfsrtpb.TripUpdate_StopTimeUpdate{
			StopId:  proto.String(st.stopID),
			Arrival: &gtfsrtpb.TripUpdate_StopTimeEvent{Time: proto.Int64(st.epoch)},
		})
	}
	return tu
}

func vehiclePosition(vehicleID, tripID, routeID string, lat, lon float32, occupancyCode int32) *gtfsrtpb.VehiclePosition {
	v := &gtfsrtpb.VehiclePosition{
		Trip: &gtfsrtpb.TripDescriptor{
			TripId:  proto.String(tripID),
			RouteId: proto.String(routeID),
		},
		Position: &gtfsrtpb.Position{
			Latitude:  proto.Float32(lat),
			Longitude: proto.Float32(lon),
		},
	}
	if vehicleID != "" {
		v.Vehicle = &gtfsrtpb.VehicleDescriptor{Id: proto.String(vehicleID)}
	}
	if occupancyCode >= 0 {
		occ := gtfsrtpb.VehiclePosition_OccupancyStatus(occupancyCode)
		v.OccupancyStatus = &occ
	}
	return v
}

func tripFeedBytes(t *testing.T, updates ...*gtfsrtpb.TripUpdate) []byte {
	t.Helper()
	msg := &gtfsrtpb.FeedMessage{
		Header: &gtfsrtpb.FeedHeader{GtfsRealtimeVersion: proto.String("2.0")},
	}
	for i, tu := range updates {
		msg.Entity = append(msg.Entity, &gtfsrtpb.FeedEntity{
			Id:         proto.String(tu.GetTrip().GetTripId() + "-" + string(rune('a'+i))),
			TripUpdate: tu,
		})
	}
	b, err := proto.Marshal(msg)
	if err != nil {
		t.Fatalf("marshal trip feed: %v", err)
	}
	return b
}

func vehicleFeedBytes(t *testing.T, vehicles ...*gtfsrtpb.VehiclePosition) []byte {
	t.Helper()
	msg := &gtfsrtpb.FeedMessage{
		Header: &gtfsrtpb.FeedHeader{GtfsRealtimeVersion: proto.String("2.0")},
	}
	for i, v := range vehicles {
		msg.Entity = append(msg.Entity, &gtfsrtpb.FeedEntity{
			Id:      proto.String("veh-" + string(rune('a'+i))),
			Vehicle: v,
		})
	}
	b, err := proto.Marshal(msg)
	if err != nil {
		t.Fatalf("marshal vehicle feed: %v", err)
	}
	return b
}
