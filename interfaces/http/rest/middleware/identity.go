package middleware

import (
	"context"
	"net/http"
	"strings"
)

// UsernameHeader carries the caller's username on the local HTTP surface,
// standing in for the Cognito identity AppSync would attach
const UsernameHeader = "X-Username"

type usernameKey struct{}

// Identity copies the caller's username from UsernameHeader into the request
// context
func Identity(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if username := strings.TrimSpace(r.Header.Get(UsernameHeader)); username != "" {
			r = r.WithContext(WithUsername(r.Context(), username))
		}
		next.ServeHTTP(w, r)
	})
}

// WithUsername stores the caller's username in ctx
func WithUsername(ctx context.Context, username string) context.Context {
	return context.WithValue(ctx, usernameKey{}, username)
}

// GetUsername returns the username stored by Identity
func GetUsername(ctx context.Context) (string, bool) {
	username, ok := ctx.Value(usernameKey{}).(string)
	return username, ok && username != ""
}
