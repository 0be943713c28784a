package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"github.com/crucial707/hci-inventory/internal/actor"
)

// ActorHeader is the gateway header naming the acting user when no bearer
// token is sent.
const ActorHeader = "X-User-Id"

// Actor records who is performing the request for the audit trail. A bearer
// token is verified with secret (HS256) and its "sub" claim becomes the actor;
// an invalid token is rejected with 401. Without a token the X-User-Id header
// is used. Requests with neither proceed anonymously.
func Actor(secret []byte) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				ctx := actor.With(r.Context(), strings.TrimSpace(r.Header.Get(ActorHeader)))
				next.ServeHTTP(w, r.WithContext(ctx))
				return
			}

			tokenStr, ok := strings.CutPrefix(authHeader, "Bearer ")
			if !ok {
				writeError(w, http.StatusUnauthorized, "UNAUTHORIZED", "invalid authorization header")
				return
			}

			token, err := jwt.Parse(tokenStr, func(token *jwt.Token) (interface{}, error) {
				return secret, nil
			}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
			if err != nil || !token.Valid {
				writeError(w, http.StatusUnauthorized, "UNAUTHORIZED", "invalid token")
				return
			}

			sub, err := token.Claims.GetSubject()
			if err != nil || sub == "" {
				writeError(w, http.StatusUnauthorized, "UNAUTHORIZED", "invalid token claims")
				return
			}
			next.ServeHTTP(w, r.WithContext(actor.With(r.Context(), sub)))
		})
	}
}

// ActorFromContext returns the actor recorded by Actor, or "".
func ActorFromContext(ctx context.Context) string {
	if a := actor.From(ctx); a != nil {
		return *a
	}
	return ""
}
