package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/osse101/StarSailors_Go/internal/domain"
	"github.com/osse101/StarSailors_Go/internal/logger"
)

type ctxKey struct{}

// WithSession stores session on ctx
func WithSession(ctx context.Context, session domain.Session) context.Context {
	return context.WithValue(ctx, ctxKey{}, session)
}

// SessionFromContext returns the request's session, or the zero Session when the caller is anonymous
func SessionFromContext(ctx context.Context) domain.Session {
	if s, ok := ctx.Value(ctxKey{}).(domain.Session); ok {
		return s
	}
	return domain.Session{}
}

// Middleware attaches the bearer token's session to the request context.
// Requests without a token pass through anonymously; services decide whether they need a session.
// A token that is present but invalid is rejected outright; onReject, when set, sees those requests.
func Middleware(secret []byte, onReject func(r *http.Request)) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" {
				next.ServeHTTP(w, r)
				return
			}

			raw, ok := strings.CutPrefix(header, bearerPrefix)
			if !ok {
				raw = header
			}
			session, err := ParseToken(strings.TrimSpace(raw), secret)
			if err != nil {
				logger.FromContext(r.Context()).Warn(LogMsgInvalidToken, "error", err, "path", r.URL.Path)
				if onReject != nil {
					onReject(r)
				}
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusUnauthorized)
				_, _ = w.Write([]byte(`{"error":"Invalid session token"}` + "\n"))
				return
			}

			ctx := WithSession(r.Context(), session)
			ctx = logger.WithUser(ctx, session.UserID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
