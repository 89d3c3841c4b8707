package auth

import (
	"context"
	"net/http"
	"strings"
)

type contextKey string

const OperatorKey contextKey = "operator"

// Middleware rejects requests without a valid bearer token and injects the
// operator name into the request context.
func Middleware(tokens *Tokens, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		tokenStr, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || tokenStr == "" {
			http.Error(w, "authorization token is missing", http.StatusUnauthorized)
			return
		}

		claims, err := tokens.Validate(tokenStr)
		if err != nil {
			http.Error(w, "invalid or expired token", http.StatusUnauthorized)
			return
		}

		ctx := context.WithValue(r.Context(), OperatorKey, claims.Operator)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// OperatorFromContext returns the operator injected by Middleware.
func OperatorFromContext(ctx context.Context) (string, bool) {
	operator, ok := ctx.Value(OperatorKey).(string)
	return operator, ok
}
