package gtfsrt

import "fmt"

// FetchError reports a failed feed download: a transport-level failure or a
// non-2xx response from the provider.
type FetchError struct {
	URL        string
	StatusCode int    // 0 when the request never produced a response
	Body       string // response body excerpt for non-2xx responses
	Err        error  // underlying transport error, if any
}

func (e *FetchError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("fetch %s: %v", e.URL, e.Err)
	}
	return fmt.Sprintf("fetch %s: HTTP %d: %s", e.URL, e.StatusCode, e.Body)
}

func (e *FetchError) Unwrap() error { return e.Err }

// DecodeError reports a buffer that does not parse as a GTFS-Realtime
// FeedMessage.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string { return fmt.Sprintf("decode feed: %v", e.Err) }

func (e *DecodeError) Unwrap() error { return e.Err }
