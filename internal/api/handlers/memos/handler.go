package memos

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-AppointmentService/internal/api/handlers"
	memosService "github.com/m04kA/SMC-AppointmentService/internal/service/memos"
)

const (
	msgInvalidProviderID  = "некорректный ID провайдера"
	msgInvalidMemoID      = "некорректный ID заметки"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMemoNotFound       = "заметка не найдена"
)

type Handler struct {
	service MemosService
	logger  Logger
}

func NewHandler(service MemosService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// ListByProvider GET /api/providers/{providerId}/memos
func (h *Handler) ListByProvider(w http.ResponseWriter, r *http.Request) {
	providerID, err := handlers.PathID(r, "providerId")
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidProviderID)
		return
	}

	list, err := h.service.ListByProvider(r.Context(), providerID)
	if err != nil {
		h.logger.Error("GET /providers/{id}/memos - Failed to list memos: provider_id=%d, error=%v", providerID, err)
		handlers.RespondInternalError(w)
		return
	}

	result := make([]*MemoResponse, 0, len(list))
	for _, s := range list {
		result = append(result, FromDomain(s))
	}
	handlers.RespondJSON(w, http.StatusOK, result)
}

// Create POST /api/memos
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateMemoRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /memos - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	created, err := h.service.Create(r.Context(), req.ToServiceRequest())
	if err != nil {
		h.respondError(w, "POST /memos", 0, err)
		return
	}

	h.logger.Info("POST /memos - Memo created: memo_id=%d, provider_id=%d", created.ID, created.ProviderID)
	handlers.RespondJSON(w, http.StatusCreated, FromDomain(created))
}

// Update PATCH /api/memos/{memoId}
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := handlers.PathID(r, "memoId")
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidMemoID)
		return
	}

	var req UpdateMemoRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /memos/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	updated, err := h.service.Update(r.Context(), id, req.ToDomainUpdate())
	if err != nil {
		h.respondError(w, "PATCH /memos/{id}", id, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromDomain(updated))
}

// Delete DELETE /api/memos/{memoId}
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := handlers.PathID(r, "memoId")
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidMemoID)
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		h.respondError(w, "DELETE /memos/{id}", id, err)
		return
	}

	h.logger.Info("DELETE /memos/{id} - Memo deleted: memo_id=%d", id)
	handlers.RespondNoContent(w)
}

func (h *Handler) respondError(w http.ResponseWriter, op string, id int64, err error) {
	if verr, ok := handlers.AsValidationError(err); ok {
		h.logger.Warn("%s - Validation failed: %v", op, err)
		handlers.RespondValidationError(w, verr)
		return
	}
	if errors.Is(err, memosService.ErrMemoNotFound) {
		handlers.RespondNotFound(w, msgMemoNotFound)
		return
	}
	h.logger.Error("%s - Failed: memo_id=%d, error=%v", op, id, err)
	handlers.RespondInternalError(w)
}
