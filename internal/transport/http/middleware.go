package http

import (
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strings"

	"github.com/gorilla/mux"
)

// AllowedHosts rejects requests whose Host header is not listed. An entry
// starting with "." also matches its subdomains. An empty list allows every
// host. Requests to the exempt paths always pass.
func AllowedHosts(hosts []string, exempt ...string) mux.MiddlewareFunc {
	allowed := make([]string, 0, len(hosts))
	for _, h := range hosts {
		if h = strings.ToLower(strings.TrimSpace(h)); h != "" {
			allowed = append(allowed, h)
		}
	}

	return func(next http.Handler) http.Handler {
		if len(allowed) == 0 {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			for _, p := range exempt {
				if r.URL.Path == p {
					next.ServeHTTP(w, r)
					return
				}
			}

			host := hostname(r.Host)
			if hostAllowed(allowed, host) {
				next.ServeHTTP(w, r)
				return
			}

			slog.Warn("Blocked request from unlisted host", "host", host, "path", r.URL.Path)
			w.Header().Set("Content-Type", "text/plain; charset=utf-8")
			w.WriteHeader(http.StatusForbidden)
			if _, err := fmt.Fprintf(w, "Blocked request. This host (%q) is not allowed.", host); err != nil {
				slog.Debug("Failed to write blocked response", "error", err)
			}
		})
	}
}

func hostname(hostport string) string {
	host, _, err := net.SplitHostPort(hostport)
	if err != nil {
		host = hostport
	}
	return strings.ToLower(strings.Trim(host, "[]"))
}

func hostAllowed(allowed []string, host string) bool {
	for _, a := range allowed {
		if a == host {
			return true
		}
		if strings.HasPrefix(a, ".") && (host == a[1:] || strings.HasSuffix(host, a)) {
			return true
		}
	}
	return false
}
