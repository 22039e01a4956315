package middleware

import (
	"io"
	"net/http"
)

// plan bodies are a few KB; anything bigger is not worth reading just to reuse the conn
const maxDrainBytes = 256 << 10

// DrainAndCloseRequest discards up to maxDrainBytes of whatever body the handler left unread, then closes it.
func DrainAndCloseRequest() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r)
			if r.Body == nil || r.Body == http.NoBody {
				return
			}
			_, _ = io.CopyN(io.Discard, r.Body, maxDrainBytes)
			_ = r.Body.Close()
		})
	}
}
