package gtfsrtarrivals

import (
	"net/http"
	"time"

	"github.com/go-chi/cors"
	"github.com/klauspost/compress/gzhttp"
	"github.com/rs/zerolog/log"
)

// withMiddleware wraps the mux with CORS, gzip compression and request
// logging. Boards are polled by browser widgets on other origins, so CORS
// stays wide open for GETs.
func withMiddleware(next http.Handler) http.Handler {
	c := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	})

	gz, _ := gzhttp.NewWrapper(
		gzhttp.MinSize(1024),
		gzhttp.CompressionLevel(6),
	)

	return requestLogger(c.Handler(gz(next)))
}

func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		log.Debug().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Dur("took", time.Since(start)).
			Msg("Request served")
	})
}
