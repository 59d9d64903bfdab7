package http

import (
	"context"
	"net/http"

	"github.com/timursarsembai/crochet-shop/pkg/httputil"
)

// SessionHeader carries the browser session identifier on every
// session-scoped request.
const SessionHeader = "X-Session-ID"

type sessionKey struct{}

// RequireSession rejects requests without a session header and stores the
// session ID in the request context.
func RequireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sessionID := r.Header.Get(SessionHeader)
		if sessionID == "" {
			httputil.WriteJSON(w, http.StatusBadRequest, httputil.Response{
				Error: &httputil.ErrorResponse{
					Code:    "MISSING_SESSION",
					Message: "the " + SessionHeader + " header is required",
				},
			})
			return
		}

		ctx := context.WithValue(r.Context(), sessionKey{}, sessionID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// SessionID returns the session identifier stored by RequireSession.
func SessionID(ctx context.Context) string {
	if id, ok := ctx.Value(sessionKey{}).(string); ok {
		return id
	}
	return ""
}
