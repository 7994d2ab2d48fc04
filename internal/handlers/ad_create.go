package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"adboard/internal/logger"
	"adboard/internal/middlewares"
	"adboard/internal/models"
)

// AdCreator defines the interface that the service must implement.
type AdCreator interface {
	Create(ctx context.Context, ownerID int64, title, description string) (*models.AdDB, error)
}

// AdPayload represents an ad in API responses
// swagger:model AdPayload
type AdPayload struct {
	// Ad id
	// default: 1
	ID int64 `json:"id"`

	// Title
	// default: Bicycle for sale
	Title string `json:"title"`

	// Description
	// default: Almost new, blue frame
	Description string `json:"description"`

	// Creation timestamp, RFC 3339
	CreatedAt time.Time `json:"created_at"`

	// Id of the user that created the ad
	// default: 1
	OwnerID int64 `json:"owner_id"`
}

func newAdPayload(ad *models.AdDB) AdPayload {
	return AdPayload{
		ID:          ad.ID,
		Title:       ad.Title,
		Description: ad.Description,
		CreatedAt:   ad.CreatedAt,
		OwnerID:     ad.OwnerID,
	}
}

// CreateAdRequest represents the JSON body for ad creation
// swagger:model CreateAdRequest
type CreateAdRequest struct {
	// Title
	// required: true
	// default: Bicycle for sale
	Title string `json:"title" validate:"required"`

	// Description
	// required: true
	// default: Almost new, blue frame
	Description string `json:"description" validate:"required"`
}

// CreateAdResponse represents a successful ad creation response
// swagger:model CreateAdResponse
type CreateAdResponse struct {
	// Success message
	// default: Ad created
	Message string `json:"message"`

	// Created ad
	Ad AdPayload `json:"ad"`
}

// AdErrorResponse represents an error response for ad endpoints
// swagger:model AdErrorResponse
type AdErrorResponse struct {
	// Error message
	// default: Title and description are required
	Error string `json:"error"`
}

// NewCreateAdHandler returns an HTTP handler for ad creation.
// @Summary Create a new ad
// @Description Creates an ad owned by the authenticated user. Creation timestamp is set server-side.
// @Tags ads
// @Accept json
// @Produce json
// @Param createAdRequest body handlers.CreateAdRequest true "Ad creation request"
// @Success 201 {object} handlers.CreateAdResponse "Ad created"
// @Failure 400 {object} handlers.AdErrorResponse "Missing fields / invalid request body"
// @Failure 401 {object} handlers.AdErrorResponse "Unauthorized"
// @Router /ads [post]
// @Security BearerAuth
func NewCreateAdHandler(svc AdCreator) http.HandlerFunc {
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

		var req CreateAdRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(AdErrorResponse{
				Error: "Invalid request body",
			})
			return
		}

		if err := validate.Struct(req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(AdErrorResponse{
				Error: "Title and description are required",
			})
			return
		}

		ad, err := svc.Create(r.Context(), ownerID, req.Title, req.Description)
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(AdErrorResponse{
				Error: "Internal server error",
			})
			return
		}

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(CreateAdResponse{
			Message: "Ad created",
			Ad:      newAdPayload(ad),
		})
	}
}
