package explorer

import (
	"net/http"
	"slices"
	"strconv"
)

// CORSConfig configures cross-origin access to the explorer API.
type CORSConfig struct {
	// AllowOrigins lists the origins browser frontends may call the API from.
	// A list containing "*" allows any origin. Default: ["*"].
	AllowOrigins []string

	// MaxAge is how long, in seconds, browsers may cache preflight results.
	// Default: 0 (not set).
	MaxAge int
}

// CORS returns an HTTP middleware that answers preflight requests and sets
// CORS headers for browser-based explorer frontends. The API is read-only,
// so only GET and OPTIONS are advertised.
func CORS(cfg CORSConfig) func(http.Handler) http.Handler {
	origins := cfg.AllowOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	wildcard := slices.Contains(origins, "*")

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")
			switch {
			case wildcard:
				w.Header().Set("Access-Control-Allow-Origin", "*")
			case origin != "" && slices.Contains(origins, origin):
				// Specific origins configured: echo back the matched origin.
				w.Header().Set("Access-Control-Allow-Origin", origin)
			}

			if r.Method == http.MethodOptions {
				w.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
				w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
				if cfg.MaxAge > 0 {
					w.Header().Set("Access-Control-Max-Age", strconv.Itoa(cfg.MaxAge))
				}
				w.WriteHeader(http.StatusNoContent)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
