package gtfsrt

import (
	gtfsrtpb "github.com/MobilityData/gtfs-realtime-bindings/golang/gtfs"
	"google.golang.org/protobuf/proto"
)

// Feed is a decoded GTFS-Realtime FeedMessage. Entity order is preserved from
// the wire, which keeps downstream grouping and tie-breaking deterministic.
type Feed struct {
	msg *gtfsrtpb.FeedMessage
}

// Decode parses a raw protobuf buffer into a Feed. A buffer that does not
// unmarshal as a FeedMessage yields a *DecodeError.
func Decode(b []byte) (*Feed, error) {
	msg := &gtfsrtpb.FeedMessage{}
	if err := proto.Unmarshal(b, msg); err != nil {
		return nil, &DecodeError{Err: err}
	}
	return &Feed{msg: msg}, nil
}

// Timestamp returns the feed header timestamp in epoch seconds, or 0 when the
// header carries none.
func (f *Feed) Timestamp() int64 {
	if f.msg.GetHeader() != nil {
		return int64(f.msg.GetHeader().GetTimestamp())
	}
	return 0
}

// Entities returns every feed entity in wire order, including entities that
// carry neither a trip update nor a vehicle.
func (f *Feed) Entities() []*gtfsrtpb.FeedEntity {
	return f.msg.GetEntity()
}

// TripUpdates returns the trip-update payloads in wire order; entities
// without one are skipped.
func (f *Feed) TripUpdates() []*gtfsrtpb.TripUpdate {
	out := make([]*gtfsrtpb.TripUpdate, 0, len(f.msg.GetEntity()))
	for _, e := range f.msg.GetEntity() {
		if e.GetTripUpdate() != nil {
			out = append(out, e.GetTripUpdate())
		}
	}
	return out
}

// Vehicles returns the vehicle-position payloads in wire order; entities
// without one are skipped.
func (f *Feed) Vehicles() []*gtfsrtpb.VehiclePosition {
	out := make([]*gtfsrtpb.VehiclePosition, 0, len(f.msg.GetEntity()))
	for _, e := range f.msg.GetEntity() {
		if e.GetVehicle() != nil {
			out = append(out, e.GetVehicle())
		}
	}
	return out
}
