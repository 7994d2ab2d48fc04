package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/jmoiron/sqlx"

	"adboard/internal/logger"
	"adboard/internal/models"
)

// AdReadRepository handles ad read operations
type AdReadRepository struct {
	db *sqlx.DB
}

func NewAdReadRepository(db *sqlx.DB) *AdReadRepository {
	return &AdReadRepository{db: db}
}

// GetByID returns the ad with the given id, or nil when none exists.
func (r *AdReadRepository) GetByID(ctx context.Context, adID int64) (*models.AdDB, error) {
	const query = `
		SELECT id, title, description, created_at, owner_id
		FROM ads
		WHERE id = $1
	`

	var ad models.AdDB
	err := r.db.GetContext(ctx, &ad, query, adID)

	logger.Log.Debugw("ad select",
		"query", strings.Join(strings.Fields(query), " "),
		"ad_id", adID,
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &ad, nil
}

// AdWriteRepository handles ad write operations
type AdWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

// NewAdWriteRepository creates a repository writing through the transaction
// found in the request context when txGetter yields one, and through the
// pool otherwise.
func NewAdWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *AdWriteRepository {
	return &AdWriteRepository{db: db, txGetter: txGetter}
}

func (r *AdWriteRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// Save inserts a new ad owned by ownerID and returns the stored row,
// including the id and creation timestamp assigned by the store.
func (r *AdWriteRepository) Save(ctx context.Context, title, description string, ownerID int64) (*models.AdDB, error) {
	const query = `
		INSERT INTO ads (title, description, owner_id)
		VALUES ($1, $2, $3)
		RETURNING id, title, description, created_at, owner_id
	`

	var ad models.AdDB
	err := sqlx.GetContext(ctx, r.executor(ctx), &ad, query, title, description, ownerID)

	logger.Log.Debugw("ad insert",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{title, description, ownerID},
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return &ad, nil
}

// Delete removes the ad only when both id and owner match, in a single
// statement, and reports whether a row was actually deleted. Not matching
// does not reveal whether the ad exists at all.
func (r *AdWriteRepository) Delete(ctx context.Context, adID, ownerID int64) (bool, error) {
	const query = `
		DELETE FROM ads
		WHERE id = $1 AND owner_id = $2
	`

	res, err := r.executor(ctx).ExecContext(ctx, query, adID, ownerID)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Debugw("ad delete",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{adID, ownerID},
		"rows_affected", rowsAffected,
		"error", err,
	)

	if err != nil {
		return false, err
	}

	return rowsAffected > 0, nil
}
