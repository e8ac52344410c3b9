package middleware

import (
	"log"
	"net/http"
	"time"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

// statusRecorder captures the status code written by the wrapped handler.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (rec *statusRecorder) WriteHeader(code int) {
	rec.status = code
	rec.ResponseWriter.WriteHeader(code)
}

// RequestLogger tags each request with a short ID (echoed in X-Request-ID)
// and logs method, path, status and duration.
func RequestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID, err := gonanoid.New(10)
		if err != nil {
			requestID = "unknown"
		}
		w.Header().Set("X-Request-ID", requestID)

		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		start := time.Now()
		next.ServeHTTP(rec, r)
		log.Printf("%s %s %s -> %d (%s)", requestID, r.Method, r.URL.Path, rec.status, time.Since(start))
	})
}
