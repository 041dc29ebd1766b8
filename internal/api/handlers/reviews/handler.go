package reviews

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-AppointmentService/internal/api/handlers"
	reviewsService "github.com/m04kA/SMC-AppointmentService/internal/service/reviews"
)

const (
	msgInvalidProviderID  = "некорректный ID провайдера"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgProviderNotFound   = "провайдер не найден"
)

type Handler struct {
	service ReviewsService
	logger  Logger
}

func NewHandler(service ReviewsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// ListByProvider GET /api/providers/{providerId}/reviews
func (h *Handler) ListByProvider(w http.ResponseWriter, r *http.Request) {
	providerID, err := handlers.PathID(r, "providerId")
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidProviderID)
		return
	}

	list, err := h.service.ListByProvider(r.Context(), providerID)
	if err != nil {
		h.logger.Error("GET /providers/{id}/reviews - Failed to list reviews: provider_id=%d, error=%v", providerID, err)
		handlers.RespondInternalError(w)
		return
	}

	result := make([]*ReviewResponse, 0, len(list))
	for _, rv := range list {
		result = append(result, FromDomain(rv))
	}
	handlers.RespondJSON(w, http.StatusOK, result)
}

// Create POST /api/reviews
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateReviewRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /reviews - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	created, err := h.service.Create(r.Context(), req.ToServiceRequest())
	if err != nil {
		if verr, ok := handlers.AsValidationError(err); ok {
			h.logger.Warn("POST /reviews - Validation failed: %v", err)
			handlers.RespondValidationError(w, verr)
			return
		}
		h.logger.Error("POST /reviews - Failed to create review: provider_id=%d, error=%v", req.ProviderID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /reviews - Review created: review_id=%d, provider_id=%d", created.ID, created.ProviderID)
	handlers.RespondJSON(w, http.StatusCreated, FromDomain(created))
}

// UpdateRating POST /api/providers/{providerId}/update-rating
func (h *Handler) UpdateRating(w http.ResponseWriter, r *http.Request) {
	providerID, err := handlers.PathID(r, "providerId")
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidProviderID)
		return
	}

	summary, err := h.service.UpdateRating(r.Context(), providerID)
	if err != nil {
		if errors.Is(err, reviewsService.ErrProviderNotFound) {
			handlers.RespondNotFound(w, msgProviderNotFound)
			return
		}
		h.logger.Error("POST /providers/{id}/update-rating - Failed to update rating: provider_id=%d, error=%v", providerID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, RatingResponse{Rating: summary.Rating, ReviewCount: summary.ReviewCount})
}
