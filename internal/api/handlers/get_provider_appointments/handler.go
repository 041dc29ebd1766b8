package get_provider_appointments

import (
	"net/http"

	"github.com/m04kA/SMC-AppointmentService/internal/api/handlers"
)

const msgInvalidProviderID = "некорректный ID провайдера"

type Handler struct {
	service AppointmentsService
	logger  Logger
}

func NewHandler(service AppointmentsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/providers/{providerId}/appointments[?date=YYYY-MM-DD]
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	providerID, err := handlers.PathID(r, "providerId")
	if err != nil {
		h.logger.Warn("GET /providers/{id}/appointments - Invalid provider ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidProviderID)
		return
	}

	list, err := h.service.ListByProvider(r.Context(), providerID, handlers.QueryDate(r, "date"))
	if err != nil {
		if verr, ok := handlers.AsValidationError(err); ok {
			handlers.RespondValidationError(w, verr)
			return
		}
		h.logger.Error("GET /providers/{id}/appointments - Failed to list appointments: provider_id=%d, error=%v", providerID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /providers/{id}/appointments - Appointments retrieved: provider_id=%d, count=%d", providerID, len(list))
	handlers.RespondJSON(w, http.StatusOK, handlers.NewAppointmentsResponse(list))
}
