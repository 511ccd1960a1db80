package auth

import (
	"context"
	"net/http"
	"strings"
)

const isAdminKey contextKey = "is_admin"

// WithIsAdmin stores the admin flag in the context.
func WithIsAdmin(ctx context.Context, isAdmin bool) context.Context {
	return context.WithValue(ctx, isAdminKey, isAdmin)
}

// IsAdminFromContext returns whether the authenticated user is an admin.
// Returns false when not set.
func IsAdminFromContext(ctx context.Context) bool {
	v, _ := ctx.Value(isAdminKey).(bool)
	return v
}

// ParseAdminEmails splits a comma separated list, trimming and lowercasing entries.
func ParseAdminEmails(raw string) []string {
	var out []string
	for _, e := range strings.Split(raw, ",") {
		e = strings.ToLower(strings.TrimSpace(e))
		if e != "" {
			out = append(out, e)
		}
	}
	return out
}

// AdminMiddleware marks the request as admin when the session subject (an
// email) is in adminEmails. It must run after RequireAuth.
func AdminMiddleware(adminEmails []string) func(http.Handler) http.Handler {
	set := make(map[string]struct{}, len(adminEmails))
	for _, e := range adminEmails {
		set[strings.ToLower(e)] = struct{}{}
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			isAdmin := false
			if userID, ok := UserIDFromContext(r.Context()); ok {
				_, isAdmin = set[strings.ToLower(userID)]
			}
			next.ServeHTTP(w, r.WithContext(WithIsAdmin(r.Context(), isAdmin)))
		})
	}
}
