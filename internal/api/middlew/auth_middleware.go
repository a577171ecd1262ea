package middlew

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"slices"
	"strings"

	"gw-fraud-scoring/internal/custom_err"
	"gw-fraud-scoring/internal/models"
	"gw-fraud-scoring/pkg/response"
)

type TokenValidator interface {
	ValidateToken(tokenString string) (*models.JWTClaims, error)
}

func RequireAuth(validator TokenValidator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			log := GetLogger(r.Context())

			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				response.WriteJSONError(w, log, http.StatusUnauthorized, "unauthorized", "Authorization header is required")
				return
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				log.Warn("invalid authorization header format")
				response.WriteJSONError(w, log, http.StatusUnauthorized, "unauthorized", "Invalid authorization header format")
				return
			}

			claims, err := validator.ValidateToken(parts[1])
			if err != nil {
				switch {
				case errors.Is(err, custom_err.ErrTokenExpired):
					response.WriteJSONError(w, log, http.StatusUnauthorized, "token_expired", "Token has expired")
				case errors.Is(err, custom_err.ErrTokenNotActive):
					response.WriteJSONError(w, log, http.StatusUnauthorized, "token_not_active", "Token not yet active")
				case errors.Is(err, custom_err.ErrInvalidToken):
					response.WriteJSONError(w, log, http.StatusUnauthorized, "invalid_token", "Invalid token")
				default:
					log.Error("failed to validate token", slog.String("error", err.Error()))
					response.WriteJSONError(w, log, http.StatusInternalServerError, "internal_error", "Internal error")
				}
				return
			}

			ctx := context.WithValue(r.Context(), claimsKey, claims)

			loggerWithUser := log.With(
				slog.String("user_id", claims.UserID.String()),
				slog.String("role", string(claims.Role)))
			ctx = context.WithValue(ctx, loggerKey, loggerWithUser)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireRole пропускает только перечисленные роли. Ставится после RequireAuth.
func RequireRole(roles ...models.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			log := GetLogger(r.Context())

			claims, ok := GetClaims(r.Context())
			if !ok {
				response.WriteJSONError(w, log, http.StatusUnauthorized, "unauthorized", "Authentication required")
				return
			}

			if !slices.Contains(roles, claims.Role) {
				log.Warn("access denied", slog.String("path", r.URL.Path))
				response.WriteJSONError(w, log, http.StatusForbidden, "forbidden", custom_err.ErrForbidden.Error())
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func GetClaims(ctx context.Context) (*models.JWTClaims, bool) {
	claims, ok := ctx.Value(claimsKey).(*models.JWTClaims)
	return claims, ok
}
