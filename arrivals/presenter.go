package arrivals

import "time"

// ClockFormat is the wall-clock layout used for board times.
const ClockFormat = "15:04"

// BoardEntry is the user-facing view of one upcoming arrival.
type BoardEntry struct {
	DueInMinutes int       `json:"due_in_min"`
	DueAt        string    `json:"due_at"`
	Occupancy    string    `json:"occupancy,omitempty"`
	Position     *Position `json:"position,omitempty"`
}

// StopBoard is the user-facing view of one stop's arrival list: the next
// arrival and the one after it. A nil entry means no such arrival is known;
// display layers render a placeholder for it.
type StopBoard struct {
	Next      *BoardEntry `json:"next"`
	Following *BoardEntry `json:"following"`
}

// Present derives the board for one stop's arrival sequence at the given
// instant. Only the lead arrival carries a position: boards show where the
// approaching vehicle is, not the one behind it.
func Present(list []Arrival, now time.Time) StopBoard {
	var b StopBoard
	if len(list) > 0 {
		b.Next = boardEntry(list[0], now, true)
	}
	if len(list) > 1 {
		b.Following = boardEntry(list[1], now, false)
	}
	return b
}

func boardEntry(a Arrival, now time.Time, withPosition bool) *BoardEntry {
	e := &BoardEntry{
		DueInMinutes: DueInMinutes(a.Time, now),
		DueAt:        a.Time.Format(ClockFormat),
	}
	if a.Occupancy != nil {
		e.Occupancy = a.Occupancy.String()
	}
	if withPosition {
		e.Position = a.Position
	}
	return e
}

// DueInMinutes converts the remaining wait until t into whole minutes,
// truncating partial minutes.
func DueInMinutes(t, now time.Time) int {
	return int(t.Sub(now).Seconds() / 60)
}
