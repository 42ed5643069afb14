package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"vocab_forge/internal/config"
	"vocab_forge/internal/model"
	"vocab_forge/internal/webutil"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// UserResolver loads the account behind a verified token subject.
type UserResolver interface {
	ResolveUser(ctx context.Context, userID uuid.UUID) (*model.User, error)
}

// RequireAuth validates the Bearer token in the Authorization header, loads the
// account it belongs to and stores it in the request context.
func RequireAuth(cfg *config.Config, resolver UserResolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			logger := GetLogger(r.Context())

			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				logger.Warn("Auth failed: Authorization header missing")
				appErr := model.NewAppError("UNAUTHORIZED", "Authorization header is required.", "", model.ErrUnauthorized)
				webutil.HandleError(w, logger, appErr)
				return
			}

			headerParts := strings.Split(authHeader, " ")
			if len(headerParts) != 2 || strings.ToLower(headerParts[0]) != "bearer" {
				logger.Warn("Auth failed: Invalid Authorization header format")
				appErr := model.NewAppError("UNAUTHORIZED", "Authorization header format must be 'Bearer {token}'.", "", model.ErrUnauthorized)
				webutil.HandleError(w, logger, appErr)
				return
			}
			tokenString := headerParts[1]

			claims := &model.TokenClaims{}
			token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
				if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, errors.New("unexpected signing method")
				}
				return []byte(cfg.JWT.SecretKey), nil
			})
			if err != nil || !token.Valid {
				logger.Warn("Auth failed: Invalid token", "error", err)
				appErr := model.NewAppError("INVALID_TOKEN", "The token is invalid or has expired.", "", model.ErrUnauthorized)
				webutil.HandleError(w, logger, appErr)
				return
			}

			// Setup tokens issued during federated onboarding must not grant
			// access to the API proper.
			if claims.Purpose != model.TokenPurposeAccess {
				logger.Warn("Auth failed: Wrong token purpose", "purpose", claims.Purpose)
				appErr := model.NewAppError("INVALID_TOKEN", "The token is not valid for this operation.", "", model.ErrUnauthorized)
				webutil.HandleError(w, logger, appErr)
				return
			}

			subject, err := claims.GetSubject()
			if err != nil {
				logger.Warn("Auth failed: Subject (sub) claim missing", "error", err)
				appErr := model.NewAppError("INVALID_TOKEN", "The token carries no account identity.", "", model.ErrUnauthorized)
				webutil.HandleError(w, logger, appErr)
				return
			}

			userID, err := uuid.Parse(subject)
			if err != nil {
				logger.Warn("Auth failed: Invalid subject (sub) format", "subject", subject, "error", err)
				appErr := model.NewAppError("INVALID_TOKEN", "The token carries a malformed account identity.", "", model.ErrUnauthorized)
				webutil.HandleError(w, logger, appErr)
				return
			}

			user, err := resolver.ResolveUser(r.Context(), userID)
			if err != nil {
				logger.Warn("Auth failed: Account not found", "user_id", userID, "error", err)
				appErr := model.NewAppError("UNAUTHORIZED", "The account behind this token no longer exists.", "", model.ErrUnauthorized)
				webutil.HandleError(w, logger, appErr)
				return
			}
			if user.IsBlocked {
				logger.Warn("Auth failed: Account is blocked", "user_id", userID)
				appErr := model.NewAppError("FORBIDDEN", "This account has been blocked.", "", model.ErrForbidden)
				webutil.HandleError(w, logger, appErr)
				return
			}

			ctx := context.WithValue(r.Context(), model.UserContextKey, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireAdmin rejects requests whose authenticated account is not an
// administrator. It must run after RequireAuth.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := GetLogger(r.Context())

		user, err := GetUserFromContext(r.Context())
		if err != nil {
			webutil.HandleError(w, logger, err)
			return
		}
		if !user.IsAdmin {
			logger.Warn("Admin check failed", "user_id", user.UserID)
			appErr := model.NewAppError("FORBIDDEN", "Administrator privileges are required.", "", model.ErrForbidden)
			webutil.HandleError(w, logger, appErr)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// GetUserFromContext returns the authenticated account stored by RequireAuth.
func GetUserFromContext(ctx context.Context) (*model.User, error) {
	user, ok := ctx.Value(model.UserContextKey).(*model.User)
	if !ok || user == nil {
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "Could not resolve the authenticated account.", "", model.ErrInternalServer)
	}
	return user, nil
}
