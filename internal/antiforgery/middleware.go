package antiforgery

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

const (
	CookieName = "catalog_session"
	FormField  = "__RequestVerificationToken"
	HeaderName = "X-CSRF-Token"
)

type contextKey string

const tokenKey = contextKey("antiforgery_token")

// Token returns the token issued for the current request, for embedding in forms.
func Token(ctx context.Context) string {
	if val, ok := ctx.Value(tokenKey).(string); ok {
		return val
	}
	return ""
}

func isSafeMethod(method string) bool {
	switch method {
	case http.MethodGet, http.MethodHead, http.MethodOptions, http.MethodTrace:
		return true
	}
	return false
}

// Middleware makes sure every client carries a session cookie and rejects
// unsafe requests whose token does not belong to that session.
func (p *Protector) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sessionID := ""
		if c, err := r.Cookie(CookieName); err == nil {
			if _, err := uuid.Parse(c.Value); err == nil {
				sessionID = c.Value
			}
		}

		if !isSafeMethod(r.Method) {
			submitted := r.Header.Get(HeaderName)
			if submitted == "" {
				submitted = r.PostFormValue(FormField)
			}
			if err := p.ValidateToken(submitted, sessionID); err != nil {
				http.Error(w, "invalid anti-forgery token", http.StatusBadRequest)
				return
			}
		}

		if sessionID == "" {
			sessionID = uuid.NewString()
			http.SetCookie(w, &http.Cookie{
				Name:     CookieName,
				Value:    sessionID,
				Path:     "/",
				HttpOnly: true,
				Secure:   p.secure,
				SameSite: http.SameSiteLaxMode,
			})
		}

		token, err := p.GenerateToken(sessionID)
		if err != nil {
			http.Error(w, "could not issue anti-forgery token", http.StatusInternalServerError)
			return
		}

		ctx := context.WithValue(r.Context(), tokenKey, token)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
