package tasks

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-AppointmentService/internal/api/handlers"
	tasksService "github.com/m04kA/SMC-AppointmentService/internal/service/tasks"
)

const (
	msgInvalidProviderID  = "некорректный ID провайдера"
	msgInvalidTaskID      = "некорректный ID задачи"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgTaskNotFound       = "задача не найдена"
)

type Handler struct {
	service TasksService
	logger  Logger
}

func NewHandler(service TasksService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// ListByProvider GET /api/providers/{providerId}/tasks
func (h *Handler) ListByProvider(w http.ResponseWriter, r *http.Request) {
	providerID, err := handlers.PathID(r, "providerId")
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidProviderID)
		return
	}

	list, err := h.service.ListByProvider(r.Context(), providerID)
	if err != nil {
		h.logger.Error("GET /providers/{id}/tasks - Failed to list tasks: provider_id=%d, error=%v", providerID, err)
		handlers.RespondInternalError(w)
		return
	}

	result := make([]*TaskResponse, 0, len(list))
	for _, s := range list {
		result = append(result, FromDomain(s))
	}
	handlers.RespondJSON(w, http.StatusOK, result)
}

// Create POST /api/tasks
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateTaskRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /tasks - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	created, err := h.service.Create(r.Context(), req.ToServiceRequest())
	if err != nil {
		h.respondError(w, "POST /tasks", 0, err)
		return
	}

	h.logger.Info("POST /tasks - Task created: task_id=%d, provider_id=%d", created.ID, created.ProviderID)
	handlers.RespondJSON(w, http.StatusCreated, FromDomain(created))
}

// Update PATCH /api/tasks/{taskId}
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := handlers.PathID(r, "taskId")
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidTaskID)
		return
	}

	var req UpdateTaskRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /tasks/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	updated, err := h.service.Update(r.Context(), id, req.ToDomainUpdate())
	if err != nil {
		h.respondError(w, "PATCH /tasks/{id}", id, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromDomain(updated))
}

// Delete DELETE /api/tasks/{taskId}
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := handlers.PathID(r, "taskId")
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidTaskID)
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		h.respondError(w, "DELETE /tasks/{id}", id, err)
		return
	}

	h.logger.Info("DELETE /tasks/{id} - Task deleted: task_id=%d", id)
	handlers.RespondNoContent(w)
}

func (h *Handler) respondError(w http.ResponseWriter, op string, id int64, err error) {
	if verr, ok := handlers.AsValidationError(err); ok {
		h.logger.Warn("%s - Validation failed: %v", op, err)
		handlers.RespondValidationError(w, verr)
		return
	}
	if errors.Is(err, tasksService.ErrTaskNotFound) {
		handlers.RespondNotFound(w, msgTaskNotFound)
		return
	}
	h.logger.Error("%s - Failed: task_id=%d, error=%v", op, id, err)
	handlers.RespondInternalError(w)
}
