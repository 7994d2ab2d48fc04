package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"adboard/internal/logger"
	"adboard/internal/middlewares"
	"adboard/internal/services"
)

// AdDeleter defines the interface that the service must implement.
type AdDeleter interface {
	Delete(ctx context.Context, adID, ownerID int64) error
}

// DeleteAdResponse represents a successful ad deletion response
// swagger:model DeleteAdResponse
type DeleteAdResponse struct {
	// Success message
	// default: Ad deleted
	Message string `json:"message"`
}

// NewDeleteAdHandler returns an HTTP handler for ad deletion.
// Only the owner may delete an ad; a miss does not reveal whether the
// ad exists at all.
// @Summary Delete an ad
// @Description Deletes the ad when the authenticated user owns it
// @Tags ads
// @Produce json
// @Param id path int true "Ad id"
// @Success 200 {object} handlers.DeleteAdResponse "Ad deleted"
// @Failure 401 {object} handlers.AdErrorResponse "Unauthorized"
// @Failure 403 {object} handlers.AdErrorResponse "Not the owner or no such ad"
// @Router /ads/{id} [delete]
// @Security BearerAuth
func NewDeleteAdHandler(svc AdDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		ownerID, ok := middlewares.GetUserIDFromContext(r.Context())
		if !ok {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(AdErrorResponse{
				Error: "Authorization required",
			})
			return
		}

		adID, err := strconv.ParseInt(chi.URLParam(r, "adID"), 10, 64)
		if err != nil {
			w.WriteHeader(http.StatusForbidden)
			json.NewEncoder(w).Encode(AdErrorResponse{
				Error: "Ad not found or you are not the owner",
			})
			return
		}

		if err := svc.Delete(r.Context(), adID, ownerID); err != nil {
			switch {
			case errors.Is(err, services.ErrAdAccessDenied):
				w.WriteHeader(http.StatusForbidden)
				json.NewEncoder(w).Encode(AdErrorResponse{
					Error: "Ad not found or you are not the owner",
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
		json.NewEncoder(w).Encode(DeleteAdResponse{
			Message: "Ad deleted",
		})
	}
}
