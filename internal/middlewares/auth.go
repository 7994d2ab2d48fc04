package middlewares

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"adboard/internal/jwt"
	"adboard/internal/logger"
)

// Tokener defines the minimal token operations needed by the middleware
type Tokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetUserID(ctx context.Context, tokenString string) (int64, error)
}

// authErrorResponse is the JSON body for rejected requests
type authErrorResponse struct {
	Error string `json:"error"`
}

// AuthMiddleware returns a middleware that authenticates the request via
// its bearer token and stores the user id in the request context.
// A missing Authorization header and a bad or expired token produce
// different messages; all token decode failures collapse into the latter.
func AuthMiddleware(tokener Tokener) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			tokenString, err := tokener.GetTokenFromRequest(ctx, r)
			if errors.Is(err, jwt.ErrAuthHeaderMissing) {
				logger.Log.Infow("authorization failed", "err", err)
				writeAuthError(w, "Authorization required")
				return
			}
			if err != nil {
				logger.Log.Infow("authorization failed", "err", err)
				writeAuthError(w, "Invalid or expired token")
				return
			}

			userID, err := tokener.GetUserID(ctx, tokenString)
			if err != nil {
				logger.Log.Infow("authorization failed", "err", err)
				writeAuthError(w, "Invalid or expired token")
				return
			}

			next.ServeHTTP(w, r.WithContext(SetUserIDToContext(ctx, userID)))
		})
	}
}

func writeAuthError(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(authErrorResponse{Error: message})
}

// userIDKey is an unexported type for the authenticated user id context key
type userIDKey struct{}

// SetUserIDToContext stores the authenticated user id in the context
func SetUserIDToContext(ctx context.Context, userID int64) context.Context {
	return context.WithValue(ctx, userIDKey{}, userID)
}

// GetUserIDFromContext retrieves the authenticated user id from the context.
// The second return value is false when the request was not authenticated.
func GetUserIDFromContext(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(userIDKey{}).(int64)
	return userID, ok
}
