package gtfsrtarrivals

import (
	"encoding/json"
	"net/http"
)

func (s *Service) handleArrivals(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	routeID, stopID, err := parseBoardQuery(r.URL.Query())
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write(buildErrorPayload(err.Error()))
		return
	}

	board := s.BoardFor(r.Context(), "", routeID, stopID)
	_ = json.NewEncoder(w).Encode(board)
}

func (s *Service) handleStops(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	boards := s.ConfiguredBoards(r.Context())
	_ = json.NewEncoder(w).Encode(struct {
		Stops []Board `json:"stops"`
	}{Stops: boards})
}
