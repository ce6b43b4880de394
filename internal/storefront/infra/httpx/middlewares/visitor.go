package middlewares

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
)

type contextKey string

const visitorIDKey contextKey = "visitor_id"

// Visitor ensures every request carries a visitor ID. The ID lives in a
// cookie named cookieName; a fresh UUID is issued when the cookie is missing
// or malformed.
func Visitor(cookieName string, maxAge time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := ""
			if c, err := r.Cookie(cookieName); err == nil {
				if parsed, err := uuid.Parse(c.Value); err == nil {
					id = parsed.String()
				}
			}
			if id == "" {
				id = uuid.NewString()
			}

			http.SetCookie(w, &http.Cookie{
				Name:     cookieName,
				Value:    id,
				Path:     "/",
				MaxAge:   int(maxAge.Seconds()),
				HttpOnly: true,
				SameSite: http.SameSiteLaxMode,
			})

			next.ServeHTTP(w, r.WithContext(WithVisitorID(r.Context(), id)))
		})
	}
}

func WithVisitorID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, visitorIDKey, id)
}

// VisitorID returns the ID set by Visitor, or "" outside that middleware.
func VisitorID(ctx context.Context) string {
	id, _ := ctx.Value(visitorIDKey).(string)
	return id
}
