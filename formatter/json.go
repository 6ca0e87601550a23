package formatter

import (
	"encoding/json"

	gtfsrtarrivals "github.com/theoremus-urban-solutions/gtfsrt-arrivals"
)

type responseBuilder struct{}

func newResponseBuilder() *responseBuilder { return &responseBuilder{} }

// NewResponseBuilder creates a new response builder for formatting boards
func NewResponseBuilder() *responseBuilder {
	return newResponseBuilder()
}

// BuildJSON serializes boards to indented JSON
func (rb *responseBuilder) BuildJSON(boards []gtfsrtarrivals.Board) []byte {
	b, _ := json.MarshalIndent(boards, "", "  ")
	return b
}
