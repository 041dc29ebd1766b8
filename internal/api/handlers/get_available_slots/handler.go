package get_available_slots

import (
	"net/http"

	"github.com/m04kA/SMC-AppointmentService/internal/api/handlers"
)

const (
	msgInvalidProviderID = "некорректный ID провайдера"
	msgMissingDate       = "дата обязательна"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/providers/{providerId}/available-slots?date=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	providerID, err := handlers.PathID(r, "providerId")
	if err != nil {
		h.logger.Warn("GET /providers/{id}/available-slots - Invalid provider ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidProviderID)
		return
	}

	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /providers/{id}/available-slots - Missing date: provider_id=%d", providerID)
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), ToUseCaseRequest(providerID, dateStr))
	if err != nil {
		if verr, ok := handlers.AsValidationError(err); ok {
			h.logger.Warn("GET /providers/{id}/available-slots - Validation failed: provider_id=%d, error=%v", providerID, err)
			handlers.RespondValidationError(w, verr)
			return
		}
		h.logger.Error("GET /providers/{id}/available-slots - Failed to get slots: provider_id=%d, date=%s, error=%v",
			providerID, dateStr, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /providers/{id}/available-slots - Slots retrieved: provider_id=%d, date=%s, slots_count=%d, cached=%t",
		providerID, dateStr, len(result.Slots), result.FromCache)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
