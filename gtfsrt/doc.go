// Package gtfsrt handles fetching and decoding GTFS-Realtime protobuf feeds.
//
// It consumes two feed types:
//   - Trip Updates: real-time arrival/departure predictions (required)
//   - Vehicle Positions: current vehicle locations and occupancy (optional)
//
// Client downloads raw feeds over HTTP with the provider's API-key header
// applied; Decode turns a buffer into a Feed with typed access to its
// entities.
package gtfsrt
