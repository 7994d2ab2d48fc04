package services

import (
	"context"
	"errors"

	"adboard/internal/logger"
	"adboard/internal/models"
	"adboard/internal/repositories"
)

// Error variables
var (
	ErrEmailAlreadyExists = errors.New("user with this email already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByEmail(ctx context.Context, email string) (*models.UserDB, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Save(ctx context.Context, email, passwordHash string) (int64, error)
}

// PasswordHasher defines password hashing and verification.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(hash, password string) bool
}

// TokenGenerator defines an interface for issuing access tokens.
type TokenGenerator interface {
	Generate(ctx context.Context, userID int64) (string, error)
}

// AuthService handles registration and login.
type AuthService struct {
	reader UserReader
	writer UserWriter
	hasher PasswordHasher
	jwt    TokenGenerator
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(reader UserReader, writer UserWriter, hasher PasswordHasher, jwt TokenGenerator) *AuthService {
	return &AuthService{
		reader: reader,
		writer: writer,
		hasher: hasher,
		jwt:    jwt,
	}
}

// Register creates a new user and returns its id.
// The email lookup is only a fast path: the unique constraint on email is
// what actually guards against concurrent duplicates, so a unique-violation
// on insert maps to the same ErrEmailAlreadyExists.
func (svc *AuthService) Register(ctx context.Context, email, password string) (int64, error) {
	user, err := svc.reader.GetByEmail(ctx, email)
	if err != nil {
		logger.Log.Errorw("failed to check user exists", "err", err)
		return 0, err
	}
	if user != nil {
		logger.Log.Infow("user already exists", "email", email)
		return 0, ErrEmailAlreadyExists
	}

	hashedPassword, err := svc.hasher.Hash(password)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return 0, err
	}

	id, err := svc.writer.Save(ctx, email, hashedPassword)
	if errors.Is(err, repositories.ErrUniqueViolation) {
		logger.Log.Infow("user already exists", "email", email)
		return 0, ErrEmailAlreadyExists
	}
	if err != nil {
		logger.Log.Errorw("failed to save user", "err", err)
		return 0, err
	}

	return id, nil
}

// Login authenticates a user and returns an access token.
// An unknown email and a wrong password are indistinguishable to the caller.
func (svc *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	user, err := svc.reader.GetByEmail(ctx, email)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return "", err
	}

	if user == nil || !svc.hasher.Verify(user.PasswordHash, password) {
		logger.Log.Infow("invalid credentials", "email", email)
		return "", ErrInvalidCredentials
	}

	token, err := svc.jwt.Generate(ctx, user.ID)
	if err != nil {
		logger.Log.Errorw("failed to generate token", "err", err)
		return "", err
	}

	return token, nil
}
