package services

import (
	"context"
	"errors"

	"adboard/internal/logger"
	"adboard/internal/models"
)

// Error variables
var (
	ErrAdNotFound     = errors.New("ad not found")
	ErrAdAccessDenied = errors.New("ad not found or not owned by user")
)

// AdReader defines read-only operations for ads.
type AdReader interface {
	GetByID(ctx context.Context, adID int64) (*models.AdDB, error)
}

// AdWriter defines write operations for ads.
type AdWriter interface {
	Save(ctx context.Context, title, description string, ownerID int64) (*models.AdDB, error)
	Delete(ctx context.Context, adID, ownerID int64) (bool, error)
}

// AdService handles ad creation, lookup and deletion.
type AdService struct {
	reader AdReader
	writer AdWriter
}

// NewAdService creates a new AdService instance.
func NewAdService(reader AdReader, writer AdWriter) *AdService {
	return &AdService{
		reader: reader,
		writer: writer,
	}
}

// Create persists a new ad owned by ownerID and returns the stored row.
func (svc *AdService) Create(ctx context.Context, ownerID int64, title, description string) (*models.AdDB, error) {
	ad, err := svc.writer.Save(ctx, title, description, ownerID)
	if err != nil {
		logger.Log.Errorw("failed to save ad", "owner_id", ownerID, "err", err)
		return nil, err
	}

	return ad, nil
}

// Get returns the ad with the given id. Ads are public listings, so no
// authentication is involved.
func (svc *AdService) Get(ctx context.Context, adID int64) (*models.AdDB, error) {
	ad, err := svc.reader.GetByID(ctx, adID)
	if err != nil {
		logger.Log.Errorw("failed to get ad", "ad_id", adID, "err", err)
		return nil, err
	}
	if ad == nil {
		return nil, ErrAdNotFound
	}

	return ad, nil
}

// Delete removes the ad when ownerID owns it. The ownership check is fused
// into the delete statement itself; a miss returns ErrAdAccessDenied without
// revealing whether the ad exists.
func (svc *AdService) Delete(ctx context.Context, adID, ownerID int64) error {
	deleted, err := svc.writer.Delete(ctx, adID, ownerID)
	if err != nil {
		logger.Log.Errorw("failed to delete ad", "ad_id", adID, "owner_id", ownerID, "err", err)
		return err
	}
	if !deleted {
		logger.Log.Infow("ad delete denied", "ad_id", adID, "owner_id", ownerID)
		return ErrAdAccessDenied
	}

	return nil
}
