package middleware

import (
	"net/http"
	"strings"

	"github.com/qawafel/crm-backend/api/responses"
	"github.com/qawafel/crm-backend/api/validators"
	pkgAuth "github.com/qawafel/crm-backend/pkg/auth"
	"github.com/qawafel/crm-backend/pkg/config"
	pkgerrors "github.com/qawafel/crm-backend/pkg/errors"
	"github.com/qawafel/crm-backend/pkg/logger"
)

// OperatorAuth validates the operator bearer token on CRM routes. With no
// signing secret configured it passes every request through.
func OperatorAuth(cfg config.JWTConfig, logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if !cfg.Enabled() {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := validators.BearerToken(r.Header.Get("Authorization"))
			if token == "" {
				responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "missing credentials"))
				return
			}

			claims, err := pkgAuth.ParseOperatorToken(cfg, token)
			if err != nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeUnauthorized, err, "invalid token"))
				return
			}
			operator := strings.TrimSpace(claims.Operator)
			if operator == "" {
				responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "missing operator"))
				return
			}

			ctx := WithOperator(r.Context(), operator)
			if logg != nil {
				ctx = logg.WithOperator(ctx, operator)
			}
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
