package middleware

import (
	"io"
	"net/http"

	log "github.com/sirupsen/logrus"
)

// DefaultDrainLimit matches the largest JSON body the api decodes.
const DefaultDrainLimit int64 = 1 << 20

// DrainAndCloseRequest drains what the handler left unread, up to limit bytes,
// so the connection can be reused, then closes the body. Rejected requests
// (401, 403, 425) never read their body; an oversized one is closed instead
// of being read to the end.
func DrainAndCloseRequest(limit int64) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r)
			if r.Body == nil || r.Body == http.NoBody {
				return
			}
			if _, err := io.Copy(io.Discard, io.LimitReader(r.Body, limit)); err != nil {
				log.Debugf("drain request body [%s %s]: %s", r.Method, r.URL.Path, err)
			}
			_ = r.Body.Close()
		})
	}
}
