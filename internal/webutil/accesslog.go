package webutil

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/lmoreau/intranet/internal/logutil"
)

type (
	statusWriter struct {
		http.ResponseWriter
		status int
	}
)

func (s *statusWriter) WriteHeader(code int) {
	s.status = code
	s.ResponseWriter.WriteHeader(code)
}

// AccessLog tags every request with an id, injects the tagged logger into
// the request context and logs the outcome once the handler returns.
func AccessLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logutil.GetOrDefault(r.Context()).With().Str("request.id", uuid.NewString()).Logger()
		r = r.WithContext(logutil.WithLogger(r.Context(), log))
		sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
		start := time.Now()
		next.ServeHTTP(sw, r)
		log.Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", sw.status).
			Dur("elapsed", time.Since(start)).
			Msg("request")
	})
}
