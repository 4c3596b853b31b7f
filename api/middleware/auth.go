package middleware

import (
	"net/http"
	"strings"

	"github.com/espressolab/storefront-backend/api/responses"
	pkgAuth "github.com/espressolab/storefront-backend/pkg/auth"
	"github.com/espressolab/storefront-backend/pkg/config"
	pkgerrors "github.com/espressolab/storefront-backend/pkg/errors"
	"github.com/espressolab/storefront-backend/pkg/logger"
)

// CallerAuth requires a valid bearer token signed with the project secret.
// With no secret configured it passes requests through untouched.
func CallerAuth(cfg config.AuthConfig, logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if !cfg.Enabled() {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := bearerToken(r.Header.Get("Authorization"))
			if token == "" {
				responses.WriteError(r.Context(), nil, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "missing credentials"))
				return
			}

			claims, err := pkgAuth.ParseCallerToken(cfg, token)
			if err != nil {
				if logg != nil {
					logg.Warn(logg.WithField(r.Context(), "reason", err.Error()), "auth.token_rejected")
				}
				responses.WriteError(r.Context(), nil, w, pkgerrors.Wrap(pkgerrors.CodeUnauthorized, err, "invalid token"))
				return
			}

			ctx := withCaller(r.Context(), claims.Role, claims.Subject)
			if logg != nil {
				ctx = logg.WithCaller(ctx, claims.Role, claims.Subject)
			}
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func bearerToken(header string) string {
	token := strings.TrimSpace(header)
	if len(token) >= 7 && strings.EqualFold(token[:7], "bearer ") {
		token = strings.TrimSpace(token[7:])
	}
	return token
}
