package formatter

import (
	"fmt"
	"strings"

	gtfsrtarrivals "github.com/theoremus-urban-solutions/gtfsrt-arrivals"
	"github.com/theoremus-urban-solutions/gtfsrt-arrivals/arrivals"
)

// BuildText renders boards as plain terminal text, one block per board.
// Unknown values render as "-".
func (rb *responseBuilder) BuildText(boards []gtfsrtarrivals.Board) []byte {
	var b strings.Builder
	for i, board := range boards {
		if i > 0 {
			b.WriteString("\n")
		}
		writeBoardText(&b, board)
	}
	return []byte(b.String())
}

func writeBoardText(b *strings.Builder, board gtfsrtarrivals.Board) {
	if board.Name != "" {
		fmt.Fprintf(b, "%s (route %s, stop %s)\n", board.Name, board.RouteID, board.StopID)
	} else {
		fmt.Fprintf(b, "route %s, stop %s\n", board.RouteID, board.StopID)
	}
	b.WriteString("  next:      ")
	writeEntryText(b, board.Next)
	b.WriteString("  following: ")
	writeEntryText(b, board.Following)
}

func writeEntryText(b *strings.Builder, e *arrivals.BoardEntry) {
	if e == nil {
		b.WriteString("-\n")
		return
	}
	fmt.Fprintf(b, "%d min (%s)", e.DueInMinutes, e.DueAt)
	if e.Occupancy != "" {
		b.WriteString("  ")
		b.WriteString(e.Occupancy)
	}
	if e.Position != nil {
		fmt.Fprintf(b, "  vehicle at %.5f,%.5f", e.Position.Latitude, e.Position.Longitude)
	}
	b.WriteString("\n")
}
