package api

import (
	"context"
	"database/sql"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/jcanett1/Mar-de-Cortez/internal/auth"
	"github.com/jcanett1/Mar-de-Cortez/internal/config"
	"github.com/jcanett1/Mar-de-Cortez/internal/model"
	"github.com/jcanett1/Mar-de-Cortez/internal/policy"
	"github.com/jcanett1/Mar-de-Cortez/internal/store"
)

type contextKey string

const accountKey contextKey = "account"

// AuthMiddleware validates the bearer token and loads the account from
// storage into the request context. The role inside the token is only a
// hint; the stored account is authoritative, so a deleted account is
// rejected even while its token is still unexpired.
func AuthMiddleware(secret string, db *sql.DB) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if !strings.HasPrefix(header, "Bearer ") {
				jsonError(w, http.StatusUnauthorized, "missing or invalid authorization header")
				return
			}

			tokenStr := strings.TrimPrefix(header, "Bearer ")
			claims, err := auth.ValidateToken(secret, tokenStr)
			if err != nil {
				jsonError(w, http.StatusUnauthorized, "invalid token")
				return
			}

			account, err := store.GetAccount(r.Context(), db, claims.AccountID())
			if err != nil {
				jsonError(w, http.StatusInternalServerError, "internal error")
				return
			}
			if account == nil {
				jsonError(w, http.StatusUnauthorized, "account no longer exists")
				return
			}

			ctx := context.WithValue(r.Context(), accountKey, account)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// Require returns middleware rejecting roles the policy table does not
// grant the operation to. Resource ownership is checked by handlers
// afterwards, so missing resources still surface as 404 first.
func Require(op policy.Operation) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			account := CurrentAccount(r.Context())
			if account == nil {
				jsonError(w, http.StatusUnauthorized, "not authenticated")
				return
			}
			if !policy.Allows(account.Role, op) {
				jsonError(w, http.StatusForbidden, "insufficient permissions")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// CurrentAccount retrieves the authenticated account from the context.
func CurrentAccount(ctx context.Context) *model.Account {
	account, _ := ctx.Value(accountKey).(*model.Account)
	return account
}

// statusRecorder wraps http.ResponseWriter to capture the status code.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// LoggingMiddleware logs requests with method, path, status and duration.
func LoggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		slog.Info("request",
			"method", r.Method,
			"path", r.URL.RequestURI(),
			"status", rec.status,
			"duration", time.Since(start).Round(time.Millisecond),
		)
	})
}

// CORSMiddleware answers preflight requests and stamps CORS headers for
// the browser frontend.
func CORSMiddleware(cfg config.CORSConfig) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Access-Control-Allow-Origin", cfg.AllowedOrigins)
			w.Header().Set("Access-Control-Allow-Methods", cfg.AllowedMethods)
			w.Header().Set("Access-Control-Allow-Headers", cfg.AllowedHeaders)
			w.Header().Set("Access-Control-Max-Age", strconv.Itoa(cfg.MaxAge))

			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
