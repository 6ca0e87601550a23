// Package arrivals turns GTFS-Realtime trip updates and vehicle positions
// into per-route, per-stop boards of upcoming arrivals.
//
// BuildVehicleIndex indexes one vehicle-position snapshot by vehicle and by
// trip; Project joins trip updates against that index into a PredictionTable;
// Store owns the latest table and refreshes it from the upstream feeds at a
// bounded rate; Present derives the user-facing view of one stop's arrivals.
package arrivals
