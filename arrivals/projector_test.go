package arrivals

import (
	"testing"
	"time"

	gtfsrtpb "github.com/MobilityData/gtfs-realtime-bindings/golang/gtfs"
	"google.golang.org/protobuf/proto"
)

var projectorNow = time.Unix(1700000000, 0)

func TestProjectDropsPastArrivals(t *testing.T) {
	now := projectorNow
	updates := []*gtfsrtpb.TripUpdate{
		tripUpdate("T1", "R1", "",
			stopTime{"S1", now.Unix() - 120}, // already served
			stopTime{"S1", now.Unix()},       // boundary: not upcoming
			stopTime{"S1", now.Unix() + 1},   // barely upcoming
			stopTime{"S1", now.Unix() + 300},
		),
	}

	table := Project(updates, nil, now)
	list := table.Lookup("R1", "S1")
	if len(list) != 2 {
		t.Fatalf("expected 2 upcoming arrivals, got %d", len(list))
	}
	if got := list[0].Time.Unix(); got != now.Unix()+1 {
		t.Errorf("first arrival: expected now+1, got now%+d", got-now.Unix())
	}
	if got := list[1].Time.Unix(); got != now.Unix()+300 {
		t.Errorf("second arrival: expected now+300, got now%+d", got-now.Unix())
	}
}

func TestProjectSkipsStopTimesWithoutArrival(t *testing.T) {
	tu := tripUpdate("T1", "R1", "")
	tu.StopTimeUpdate = append(tu.StopTimeUpdate, &gtfsrtpb.TripUpdate_StopTimeUpdate{
		StopId: proto.String("S1"),
		// Departure only; nothing to project an arrival from.
		Departure: &gtfsrtpb.TripUpdate_StopTimeEvent{Time: proto.Int64(projectorNow.Unix() + 60)},
	})

	table := Project([]*gtfsrtpb.TripUpdate{tu}, nil, projectorNow)
	if len(table.Lookup("R1", "S1")) != 0 {
		t.Error("expected no arrivals from a departure-only stop time")
	}
}

func TestProjectGroupsAndSorts(t *testing.T) {
	now := projectorNow
	updates := []*gtfsrtpb.TripUpdate{
		tripUpdate("T1", "R1", "",
			stopTime{"S1", now.Unix() + 600},
			stopTime{"S2", now.Unix() + 700},
		),
		tripUpdate("T2", "R1", "",
			stopTime{"S1", now.Unix() + 120},
		),
		tripUpdate("T3", "R2", "",
			stopTime{"S1", now.Unix() + 60},
		),
	}

	table := Project(updates, nil, now)

	s1 := table.Lookup("R1", "S1")
	if len(s1) != 2 {
		t.Fatalf("R1/S1: expected 2 arrivals, got %d", len(s1))
	}
	// Later trip in feed order but earlier arrival must sort first.
	if s1[0].Time.Unix() != now.Unix()+120 || s1[1].Time.Unix() != now.Unix()+600 {
		t.Errorf("R1/S1 not sorted ascending: %v", []int64{s1[0].Time.Unix(), s1[1].Time.Unix()})
	}

	if len(table.Lookup("R1", "S2")) != 1 {
		t.Error("R1/S2: expected 1 arrival")
	}
	if len(table.Lookup("R2", "S1")) != 1 {
		t.Error("R2/S1: expected 1 arrival")
	}
	// Same stop id under a different route is a different key.
	if len(table.Lookup("R2", "S2")) != 0 {
		t.Error("R2/S2: expected no arrivals")
	}

	stops, arrivals := table.Size()
	if stops != 3 || arrivals != 4 {
		t.Errorf("size: expected 3 stops / 4 arrivals, got %d / %d", stops, arrivals)
	}
}

func TestProjectStableOnEqualTimes(t *testing.T) {
	now := projectorNow
	epoch := now.Unix() + 180
	idx, _ := BuildVehicleIndex([]*gtfsrtpb.VehiclePosition{
		vehiclePosition("V1", "T1", "R1", 53.3, -6.2, 1),
		vehiclePosition("V2", "T2", "R1", 53.4, -6.3, 5),
	})
	updates := []*gtfsrtpb.TripUpdate{
		tripUpdate("T1", "R1", "V1", stopTime{"S1", epoch}),
		tripUpdate("T2", "R1", "V2", stopTime{"S1", epoch}),
	}

	table := Project(updates, idx, now)
	list := table.Lookup("R1", "S1")
	if len(list) != 2 {
		t.Fatalf("expected 2 arrivals, got %d", len(list))
	}
	// Feed order breaks the tie: T1's vehicle first.
	if list[0].Occupancy == nil || *list[0].Occupancy != OccupancyManySeatsAvailable {
		t.Errorf("tie order changed: first arrival occupancy = %v", list[0].Occupancy)
	}
}

func TestProjectVehicleCorrelation(t *testing.T) {
	now := projectorNow
	idx, _ := BuildVehicleIndex([]*gtfsrtpb.VehiclePosition{
		vehiclePosition("V1", "T1", "R1", 53.30, -6.20, 2),
		vehiclePosition("V2", "T2", "R1", 53.40, -6.30, 4),
	})

	cases := []struct {
		name        string
		update      *gtfsrtpb.TripUpdate
		wantOcc     *OccupancyStatus
		wantHasPos  bool
		wantLatNear float64
	}{
		{
			name:        "explicit vehicle id wins",
			update:      tripUpdate("T2", "R1", "V1", stopTime{"S1", now.Unix() + 60}),
			wantOcc:     occPtr(OccupancyFewSeatsAvailable),
			wantHasPos:  true,
			wantLatNear: 53.30,
		},
		{
			name:        "trip link fallback",
			update:      tripUpdate("T2", "R1", "", stopTime{"S1", now.Unix() + 60}),
			wantOcc:     occPtr(OccupancyCrushedStandingRoomOnly),
			wantHasPos:  true,
			wantLatNear: 53.40,
		},
		{
			name:       "no vehicle resolves",
			update:     tripUpdate("T9", "R1", "", stopTime{"S1", now.Unix() + 60}),
			wantOcc:    nil,
			wantHasPos: false,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			table := Project([]*gtfsrtpb.TripUpdate{tc.update}, idx, now)
			list := table.Lookup("R1", "S1")
			if len(list) != 1 {
				t.Fatalf("expected 1 arrival, got %d", len(list))
			}
			a := list[0]
			if tc.wantOcc == nil {
				if a.Occupancy != nil {
					t.Errorf("expected no occupancy, got %v", *a.Occupancy)
				}
			} else if a.Occupancy == nil || *a.Occupancy != *tc.wantOcc {
				t.Errorf("occupancy: expected %v, got %v", *tc.wantOcc, a.Occupancy)
			}
			if tc.wantHasPos {
				if a.Position == nil {
					t.Fatal("expected a position")
				}
				if a.Position.Latitude < tc.wantLatNear-0.01 || a.Position.Latitude > tc.wantLatNear+0.01 {
					t.Errorf("latitude: expected ~%v, got %v", tc.wantLatNear, a.Position.Latitude)
				}
			} else if a.Position != nil {
				t.Errorf("expected no position, got %+v", *a.Position)
			}
		})
	}
}

func TestProjectWithoutVehicleIndex(t *testing.T) {
	now := projectorNow
	updates := []*gtfsrtpb.TripUpdate{
		tripUpdate("T1", "R1", "V1", stopTime{"S1", now.Unix() + 60}),
	}
	table := Project(updates, nil, now)
	list := table.Lookup("R1", "S1")
	if len(list) != 1 {
		t.Fatalf("expected 1 arrival, got %d", len(list))
	}
	if list[0].Position != nil || list[0].Occupancy != nil {
		t.Error("expected bare arrivals when no vehicle feed is configured")
	}
}

func TestProjectKeepsEmptyRouteKey(t *testing.T) {
	now := projectorNow
	updates := []*gtfsrtpb.TripUpdate{
		tripUpdate("T1", "", "", stopTime{"S1", now.Unix() + 60}),
	}
	table := Project(updates, nil, now)
	if len(table.Lookup("", "S1")) != 1 {
		t.Error("expected the empty route id to be a usable key")
	}
}

func occPtr(s OccupancyStatus) *OccupancyStatus { return &s }
