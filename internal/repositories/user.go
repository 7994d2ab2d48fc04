package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"

	"adboard/internal/logger"
	"adboard/internal/models"
)

// ErrUniqueViolation is returned when an insert breaks a unique constraint,
// e.g. two concurrent registrations racing on the same email.
var ErrUniqueViolation = errors.New("unique constraint violation")

type UserReadRepository struct {
	db *sqlx.DB
}

func NewUserReadRepository(db *sqlx.DB) *UserReadRepository {
	return &UserReadRepository{db: db}
}

// GetByEmail returns the user with the given email, or nil when none exists.
func (r *UserReadRepository) GetByEmail(ctx context.Context, email string) (*models.UserDB, error) {
	const query = `
		SELECT id, email, password_hash
		FROM users
		WHERE email = $1
	`

	var user models.UserDB
	err := r.db.GetContext(ctx, &user, query, email)

	logger.Log.Debugw("user select",
		"query", strings.Join(strings.Fields(query), " "),
		"email", email,
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &user, nil
}

type UserWriteRepository struct {
	db *sqlx.DB
}

func NewUserWriteRepository(db *sqlx.DB) *UserWriteRepository {
	return &UserWriteRepository{db: db}
}

// Save inserts a new user and returns the store-assigned id.
// A duplicate email surfaces as ErrUniqueViolation.
func (r *UserWriteRepository) Save(ctx context.Context, email, passwordHash string) (int64, error) {
	const query = `
		INSERT INTO users (email, password_hash)
		VALUES ($1, $2)
		RETURNING id
	`

	var id int64
	err := r.db.GetContext(ctx, &id, query, email, passwordHash)

	// The hash is deliberately kept out of the log.
	logger.Log.Debugw("user insert",
		"query", strings.Join(strings.Fields(query), " "),
		"email", email,
		"id", id,
		"error", err,
	)

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
		return 0, ErrUniqueViolation
	}
	if err != nil {
		return 0, err
	}

	return id, nil
}
