package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"adboard/internal/logger"
	"adboard/internal/models"
	"adboard/internal/services"
)

// AdGetter defines the interface that the service must implement.
type AdGetter interface {
	Get(ctx context.Context, adID int64) (*models.AdDB, error)
}

// NewGetAdHandler returns an HTTP handler for fetching a single ad.
// Ads are public listings, so the endpoint requires no authentication.
// @Summary Get an ad by id
// @Description Returns all fields of the ad, including the owner id
// @Tags ads
// @Produce json
// @Param id path int true "Ad id"
// @Success 200 {object} handlers.AdPayload "Ad found"
// @Failure 404 {object} handlers.AdErrorResponse "Ad not found"
// @Router /ads/{id} [get]
func NewGetAdHandler(svc AdGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		adID, err := strconv.ParseInt(chi.URLParam(r, "adID"), 10, 64)
		if err != nil {
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(AdErrorResponse{
				Error: "Ad not found",
			})
			return
		}

		ad, err := svc.Get(r.Context(), adID)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrAdNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(AdErrorResponse{
					Error: "Ad not found",
				})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(AdErrorResponse{
					Error: "Internal server error",
				})
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(newAdPayload(ad))
	}
}
