package session

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
)

const (
	CookieName         = "bajet_session"
	SaleTypeCookieName = "sale_type"
	cookieMaxAge       = 30 * 24 * time.Hour
)

type ContextKey string

const IDKey ContextKey = "sessionID"

// Middleware assigns every visitor a session id cookie so guests can carry a
// sale type and cart before authenticating.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var id string
		if cookie, err := r.Cookie(CookieName); err == nil && cookie.Value != "" {
			id = cookie.Value
		} else {
			id = uuid.NewString()
			http.SetCookie(w, &http.Cookie{
				Name:     CookieName,
				Value:    id,
				Path:     "/",
				Expires:  time.Now().Add(cookieMaxAge),
				HttpOnly: true,
			})
		}
		ctx := context.WithValue(r.Context(), IDKey, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func IDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(IDKey).(string)
	return id
}

// SetSaleTypeCookie mirrors the selected sale type into the durable cookie.
func SetSaleTypeCookie(w http.ResponseWriter, value string) {
	http.SetCookie(w, &http.Cookie{
		Name:    SaleTypeCookieName,
		Value:   value,
		Path:    "/",
		Expires: time.Now().Add(cookieMaxAge),
	})
}

// SaleTypeCookie returns the raw cookie value, empty when absent.
func SaleTypeCookie(r *http.Request) string {
	cookie, err := r.Cookie(SaleTypeCookieName)
	if err != nil {
		return ""
	}
	return cookie.Value
}
