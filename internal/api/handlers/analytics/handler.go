package analytics

import (
	"net/http"

	"github.com/m04kA/SMC-AppointmentService/internal/api/handlers"
)

const msgInvalidProviderID = "некорректный ID провайдера"

type Handler struct {
	service AnalyticsService
	logger  Logger
}

func NewHandler(service AnalyticsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/analytics/{providerId}[?date=YYYY-MM-DD]
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	providerID, err := handlers.PathID(r, "providerId")
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidProviderID)
		return
	}

	result, err := h.service.Get(r.Context(), providerID, handlers.QueryDate(r, "date"))
	if err != nil {
		if verr, ok := handlers.AsValidationError(err); ok {
			handlers.RespondValidationError(w, verr)
			return
		}
		h.logger.Error("GET /analytics/{id} - Failed to compute analytics: provider_id=%d, error=%v", providerID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromDomain(result))
}
