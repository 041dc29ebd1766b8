package timeslots

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-AppointmentService/internal/api/handlers"
	timeslotsService "github.com/m04kA/SMC-AppointmentService/internal/service/timeslots"
)

const (
	msgInvalidProviderID  = "некорректный ID провайдера"
	msgInvalidTimeSlotID  = "некорректный ID слота"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgTimeSlotNotFound   = "слот не найден"
)

type Handler struct {
	service TimeSlotsService
	logger  Logger
}

func NewHandler(service TimeSlotsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// ListByProvider GET /api/providers/{providerId}/timeslots
func (h *Handler) ListByProvider(w http.ResponseWriter, r *http.Request) {
	providerID, err := handlers.PathID(r, "providerId")
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidProviderID)
		return
	}

	list, err := h.service.ListByProvider(r.Context(), providerID)
	if err != nil {
		h.logger.Error("GET /providers/{id}/timeslots - Failed to list time slots: provider_id=%d, error=%v", providerID, err)
		handlers.RespondInternalError(w)
		return
	}

	result := make([]*TimeSlotResponse, 0, len(list))
	for _, s := range list {
		result = append(result, FromDomain(s))
	}
	handlers.RespondJSON(w, http.StatusOK, result)
}

// Create POST /api/timeslots
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateTimeSlotRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /timeslots - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	created, err := h.service.Create(r.Context(), req.ToServiceRequest())
	if err != nil {
		h.respondError(w, "POST /timeslots", 0, err)
		return
	}

	h.logger.Info("POST /timeslots - Time slot created: time_slot_id=%d, provider_id=%d", created.ID, created.ProviderID)
	handlers.RespondJSON(w, http.StatusCreated, FromDomain(created))
}

// Update PATCH /api/timeslots/{timeSlotId}
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := handlers.PathID(r, "timeSlotId")
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidTimeSlotID)
		return
	}

	var req UpdateTimeSlotRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /timeslots/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	updated, err := h.service.Update(r.Context(), id, req.ToDomainUpdate())
	if err != nil {
		h.respondError(w, "PATCH /timeslots/{id}", id, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromDomain(updated))
}

// Delete DELETE /api/timeslots/{timeSlotId}
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := handlers.PathID(r, "timeSlotId")
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidTimeSlotID)
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		h.respondError(w, "DELETE /timeslots/{id}", id, err)
		return
	}

	h.logger.Info("DELETE /timeslots/{id} - Time slot deactivated: time_slot_id=%d", id)
	handlers.RespondNoContent(w)
}

func (h *Handler) respondError(w http.ResponseWriter, op string, id int64, err error) {
	if verr, ok := handlers.AsValidationError(err); ok {
		h.logger.Warn("%s - Validation failed: %v", op, err)
		handlers.RespondValidationError(w, verr)
		return
	}
	if errors.Is(err, timeslotsService.ErrTimeSlotNotFound) {
		handlers.RespondNotFound(w, msgTimeSlotNotFound)
		return
	}
	h.logger.Error("%s - Failed: time_slot_id=%d, error=%v", op, id, err)
	handlers.RespondInternalError(w)
}
