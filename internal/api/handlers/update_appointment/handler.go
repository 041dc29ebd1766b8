package update_appointment

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-AppointmentService/internal/api/handlers"
	updateAppointment "github.com/m04kA/SMC-AppointmentService/internal/usecase/update_appointment"
)

const (
	msgInvalidAppointmentID = "некорректный ID записи"
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgAppointmentNotFound  = "запись не найдена"
	msgSlotNotAvailable     = "выбранное время уже занято"
	msgConcurrentUpdate     = "запись была изменена параллельным запросом"
)

type Handler struct {
	useCase UpdateAppointmentUseCase
	logger  Logger
}

func NewHandler(useCase UpdateAppointmentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PATCH /api/appointments/{appointmentId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id, err := handlers.PathID(r, "appointmentId")
	if err != nil {
		h.logger.Warn("PATCH /appointments/{id} - Invalid appointment ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidAppointmentID)
		return
	}

	var req UpdateAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /appointments/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(id))
	if err != nil {
		if verr, ok := handlers.AsValidationError(err); ok {
			h.logger.Warn("PATCH /appointments/{id} - Validation failed: appointment_id=%d, error=%v", id, err)
			handlers.RespondValidationError(w, verr)
			return
		}

		switch {
		case errors.Is(err, updateAppointment.ErrAppointmentNotFound):
			h.logger.Warn("PATCH /appointments/{id} - Appointment not found: appointment_id=%d", id)
			handlers.RespondNotFound(w, msgAppointmentNotFound)

		case errors.Is(err, updateAppointment.ErrSlotNotAvailable):
			h.logger.Warn("PATCH /appointments/{id} - Slot not available: appointment_id=%d", id)
			handlers.RespondConflict(w, msgSlotNotAvailable)

		case errors.Is(err, updateAppointment.ErrConcurrentUpdate):
			h.logger.Warn("PATCH /appointments/{id} - Concurrent update: appointment_id=%d", id)
			handlers.RespondConflict(w, msgConcurrentUpdate)

		default:
			h.logger.Error("PATCH /appointments/{id} - Failed to update appointment: appointment_id=%d, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /appointments/{id} - Appointment updated: appointment_id=%d", id)
	handlers.RespondJSON(w, http.StatusOK, handlers.NewAppointmentResponse(result.Appointment))
}
