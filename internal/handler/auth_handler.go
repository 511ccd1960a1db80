package handler

import (
	"errors"
	"log/slog"
	"mime"
	"net/http"
	"time"

	"github.com/lumenstudio/backend/internal/dashboard"
	"github.com/lumenstudio/backend/internal/service"
	"github.com/lumenstudio/backend/pkg/auth"
)

const (
	LoginPath    = "/admin/login"
	afterLoginTo = "/admin/appointments"
)

// AuthHandler signs the administrator in and out.
type AuthHandler struct {
	authService  service.AdminAuthService
	pages        *PageHandler
	ttl          time.Duration
	secureCookie bool
}

// AuthConfig は AuthHandler の設定
type AuthConfig struct {
	SessionTTL   time.Duration
	SecureCookie bool
}

func NewAuthHandler(authService service.AdminAuthService, pages *PageHandler, cfg AuthConfig) *AuthHandler {
	ttl := cfg.SessionTTL
	if ttl <= 0 {
		ttl = auth.DefaultSessionTTL
	}
	return &AuthHandler{
		authService:  authService,
		pages:        pages,
		ttl:          ttl,
		secureCookie: cfg.SecureCookie,
	}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func isJSON(r *http.Request) bool {
	mt, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	return mt == "application/json"
}

// Login handles POST /admin/login. A JSON body gets a JSON reply; a form post
// is redirected to the dashboard or shown the login page again.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	jsonReq := isJSON(r)

	var req loginRequest
	if jsonReq {
		if err := decodeJSON(w, r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid_json")
			return
		}
	} else {
		req.Email = r.PostFormValue("email")
		req.Password = r.PostFormValue("password")
	}

	token, err := h.authService.Login(req.Email, req.Password)
	if err != nil {
		if !errors.Is(err, service.ErrInvalidCredentials) {
			slog.Error("admin login failed", "error", err)
		}
		if jsonReq {
			writeError(w, http.StatusUnauthorized, "invalid_credentials")
			return
		}
		h.pages.renderLogin(w, r, http.StatusUnauthorized, dashboard.LoginView{
			Email: req.Email,
			Error: "Invalid email or password.",
		})
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     auth.SessionCookieName(),
		Value:    token,
		Path:     "/",
		MaxAge:   int(h.ttl.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   h.secureCookie,
	})

	if jsonReq {
		writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
		return
	}
	http.Redirect(w, r, afterLoginTo, http.StatusSeeOther)
}

// Logout handles POST /admin/logout by expiring the session cookie.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     auth.SessionCookieName(),
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Expires:  time.Unix(0, 0),
		SameSite: http.SameSiteLaxMode,
		Secure:   h.secureCookie,
	})
	http.Redirect(w, r, LoginPath, http.StatusSeeOther)
}
