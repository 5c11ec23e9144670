package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"

	"github.com/msomdec/youth-portal/internal/session"
)

type contextKey string

const clientContextKey contextKey = "client"

// ClientIDFromContext returns the browser id set by ClientIdentity, or ""
// when the request did not pass through it.
func ClientIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(clientContextKey).(string)
	return id
}

// ClientIdentity makes sure every request carries a client id. A valid
// portal_client cookie is reused; otherwise a new id is issued and the
// cookie is set on the response.
func ClientIdentity(tokens *session.Tokens, secure bool, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var clientID string
		if cookie, err := r.Cookie(session.CookieName); err == nil {
			clientID, _ = tokens.Validate(cookie.Value)
		}

		if clientID == "" {
			id, token, err := tokens.Issue()
			if err != nil {
				slog.Error("issue client token", "error", err)
				http.Error(w, "Internal Server Error", http.StatusInternalServerError)
				return
			}
			clientID = id
			http.SetCookie(w, &http.Cookie{
				Name:     session.CookieName,
				Value:    token,
				Path:     "/",
				MaxAge:   int(tokens.TTL().Seconds()),
				HttpOnly: true,
				Secure:   secure,
				SameSite: http.SameSiteLaxMode,
			})
		}

		ctx := context.WithValue(r.Context(), clientContextKey, clientID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequestLogger logs one record per request once the response is written.
// It expects middleware.RequestID to run first.
func RequestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		level := slog.LevelInfo
		switch {
		case status >= 500:
			level = slog.LevelError
		case status >= 400:
			level = slog.LevelWarn
		}
		slog.Log(r.Context(), level, "request completed",
			"method", r.Method,
			"path", r.URL.Path,
			"status", status,
			"bytes", ww.BytesWritten(),
			"duration", time.Since(start),
			"request_id", middleware.GetReqID(r.Context()),
		)
	})
}

// SecurityHeaders adds standard security headers to every response.
func SecurityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("X-Frame-Options", "DENY")
		w.Header().Set("Referrer-Policy", "strict-origin-when-cross-origin")
		// datastar evaluates expressions, which needs 'unsafe-eval'.
		w.Header().Set("Content-Security-Policy",
			"default-src 'self'; script-src 'self' https://cdn.jsdelivr.net 'unsafe-eval'; style-src 'self' 'unsafe-inline'; img-src 'self' data:; connect-src 'self'")
		next.ServeHTTP(w, r)
	})
}
