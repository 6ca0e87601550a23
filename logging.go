package gtfsrtarrivals

import (
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// InitLogging configures the global zerolog logger. Output is human-readable
// console text unless GTFSRT_ARRIVALS_LOG_FORMAT=JSON; setting
// GTFSRT_ARRIVALS_DEBUG=YES lowers the level to debug.
func InitLogging() {
	if os.Getenv("GTFSRT_ARRIVALS_LOG_FORMAT") != "JSON" {
		output := zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
		log.Logger = zerolog.New(output).With().Timestamp().Logger()
	}

	if os.Getenv("GTFSRT_ARRIVALS_DEBUG") == "YES" {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
}
