package jwt

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Errors returned when extracting a bearer token from a request.
// The two cases map to different client-facing messages, so they stay distinct.
var (
	ErrAuthHeaderMissing   = errors.New("authorization header missing")
	ErrAuthHeaderMalformed = errors.New("invalid authorization header format")
)

// JWT issues and validates HS256-signed access tokens.
// The signing secret is fixed for the process lifetime.
type JWT struct {
	SecretKey string        // Secret key for signing tokens
	Exp       time.Duration // Token expiration duration
}

// New creates a new JWT instance
func New(secretKey string, expiration time.Duration) *JWT {
	return &JWT{
		SecretKey: secretKey,
		Exp:       expiration,
	}
}

// Generate creates a token for the given user id. Claims are kept minimal:
// "sub" carries the stringified id and "exp" the expiry in epoch seconds.
func (j *JWT) Generate(ctx context.Context, userID int64) (string, error) {
	claims := jwt.MapClaims{
		"sub": strconv.FormatInt(userID, 10),
		"exp": time.Now().Add(j.Exp).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(j.SecretKey))
}

// GetUserID parses the token string and returns the user id if the token
// is well-formed, correctly signed and not expired. Any other input,
// including arbitrary byte strings, yields an error.
func (j *JWT) GetUserID(ctx context.Context, tokenString string) (int64, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(j.SecretKey), nil
	})
	if err != nil {
		return 0, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return 0, errors.New("invalid token")
	}

	sub, ok := claims["sub"].(string)
	if !ok {
		return 0, errors.New("subject not found in token")
	}
	userID, err := strconv.ParseInt(sub, 10, 64)
	if err != nil {
		return 0, errors.New("invalid subject format")
	}
	return userID, nil
}

// GetTokenFromRequest extracts the bearer token from the Authorization header.
// Returns ErrAuthHeaderMissing when the header is absent and
// ErrAuthHeaderMalformed when it does not carry a bearer token.
func (j *JWT) GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return "", ErrAuthHeaderMissing
	}

	parts := strings.Fields(authHeader)
	if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
		return "", ErrAuthHeaderMalformed
	}

	return parts[1], nil
}
