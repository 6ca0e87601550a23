package gtfsrtarrivals

import (
	"encoding/json"
	"net/url"
)

type QueryError struct{ Msg string }

func (e *QueryError) Error() string { return e.Msg }

// parseBoardQuery validates the arrivals query surface. Both parameters must
// be present; empty values are accepted because an empty route id is a legal,
// if unusual, grouping key in live feeds.
func parseBoardQuery(q url.Values) (routeID, stopID string, err error) {
	if !q.Has("routeID") {
		return "", "", &QueryError{Msg: "You must provide a routeID."}
	}
	if !q.Has("stopID") {
		return "", "", &QueryError{Msg: "You must provide a stopID."}
	}
	return q.Get("routeID"), q.Get("stopID"), nil
}

func buildErrorPayload(msg string) []byte {
	b, _ := json.Marshal(map[string]string{"error": msg})
	return b
}
