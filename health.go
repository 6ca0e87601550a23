package gtfsrtarrivals

import (
	"encoding/json"
	"net/http"
)

type healthResponse struct {
	Status           string `json:"status"`
	SnapshotID       string `json:"snapshot_id,omitempty"`
	LastRefreshEpoch int64  `json:"last_refresh_epoch"`
	LastRefresh      string `json:"last_refresh,omitempty"`
	Routes           int    `json:"routes"`
	Stops            int    `json:"stops"`
	Arrivals         int    `json:"arrivals"`
	ConfiguredStops  int    `json:"configured_stops"`
}

func (s *Service) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	stats := s.Stats()

	resp := healthResponse{
		Status:          "ok",
		SnapshotID:      stats.SnapshotID,
		Routes:          stats.Routes,
		Stops:           stats.Stops,
		Arrivals:        stats.Arrivals,
		ConfiguredStops: len(s.cfg.Stops),
	}
	if stats.Loaded {
		resp.LastRefreshEpoch = stats.RefreshedAt.Unix()
		resp.LastRefresh = iso8601FromUnixSeconds(stats.RefreshedAt.Unix())
	} else {
		resp.Status = "waiting for first refresh"
	}
	_ = json.NewEncoder(w).Encode(resp)
}
