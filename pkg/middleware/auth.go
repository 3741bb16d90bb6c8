package middleware

import (
	"net/http"
	"strings"

	"github.com/shashiranjanraj/freshbasket/pkg/auth"
	"github.com/shashiranjanraj/freshbasket/pkg/response"
)

// Auth validates the Bearer token and stores the claims in the request
// context for downstream handlers (auth.ClaimsFromCtx).
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")

		if token == "" {
			response.Unauthorized(w)
			return
		}

		claims, err := auth.ValidateToken(token)
		if err != nil {
			response.Unauthorized(w)
			return
		}

		next.ServeHTTP(w, r.WithContext(auth.WithClaims(r.Context(), claims)))
	})
}
