package check_slot

import (
	"net/http"

	"github.com/m04kA/SMC-AppointmentService/internal/api/handlers"
)

const msgInvalidProviderID = "некорректный ID провайдера"

type Handler struct {
	useCase CheckSlotUseCase
	logger  Logger
}

func NewHandler(useCase CheckSlotUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/providers/{providerId}/slot-availability?date=&startTime=&endTime=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	providerID, err := handlers.PathID(r, "providerId")
	if err != nil {
		h.logger.Warn("GET /providers/{id}/slot-availability - Invalid provider ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidProviderID)
		return
	}

	q := r.URL.Query()
	result, err := h.useCase.Execute(r.Context(), ToUseCaseRequest(providerID, q.Get("date"), q.Get("startTime"), q.Get("endTime")))
	if err != nil {
		if verr, ok := handlers.AsValidationError(err); ok {
			h.logger.Warn("GET /providers/{id}/slot-availability - Validation failed: provider_id=%d, error=%v", providerID, err)
			handlers.RespondValidationError(w, verr)
			return
		}
		h.logger.Error("GET /providers/{id}/slot-availability - Failed to check slot: provider_id=%d, error=%v", providerID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, SlotAvailabilityResponse{Available: result.Available})
}
