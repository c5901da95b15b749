package middleware

import (
	"net/http"

	"github.com/2beens/forgezone/pkg"
	log "github.com/sirupsen/logrus"
)

func LogRequest() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if log.IsLevelEnabled(log.DebugLevel) {
				ip, _ := pkg.ReadUserIP(r)
				log.Debugf(" ====> request [%s] path: [%s] [ip: %s] [UA: %s]", r.Method, r.URL.Path, ip, r.UserAgent())
			}
			next.ServeHTTP(w, r)
		})
	}
}
