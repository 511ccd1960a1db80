package auth

import (
	"context"
	"encoding/json"
	"net/http"
)

type contextKey string

const userIDKey contextKey = "user_id"

// UserIDFromContext returns the authenticated user id (the admin email).
func UserIDFromContext(ctx context.Context) (string, bool) {
	v, ok := ctx.Value(userIDKey).(string)
	return v, ok
}

// WithUserID stores userID in the context.
func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

// RequireAuth validates the session cookie and stores the user id in the
// context. Requests without a valid session get a JSON 401.
func RequireAuth(sessionSecret []byte) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID, code := sessionUser(r, sessionSecret)
			if code != "" {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusUnauthorized)
				_ = json.NewEncoder(w).Encode(map[string]string{"error": code})
				return
			}
			next.ServeHTTP(w, r.WithContext(WithUserID(r.Context(), userID)))
		})
	}
}

// RequireAuthRedirect is RequireAuth for HTML pages: requests without a valid
// session are redirected to loginPath.
func RequireAuthRedirect(sessionSecret []byte, loginPath string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID, code := sessionUser(r, sessionSecret)
			if code != "" {
				http.Redirect(w, r, loginPath, http.StatusSeeOther)
				return
			}
			next.ServeHTTP(w, r.WithContext(WithUserID(r.Context(), userID)))
		})
	}
}

func sessionUser(r *http.Request, secret []byte) (string, string) {
	cookie, err := r.Cookie(SessionCookieName())
	if err != nil {
		return "", "unauthorized"
	}
	userID, err := VerifySessionToken(cookie.Value, secret)
	if err != nil {
		return "", "invalid_session"
	}
	return userID, ""
}

// DevUserID is the fake user id used when AUTH_REQUIRED=false.
const DevUserID = "dev-admin@localhost"

// DevAuth is development middleware that stores DevUserID in the context.
func DevAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := WithUserID(r.Context(), DevUserID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
