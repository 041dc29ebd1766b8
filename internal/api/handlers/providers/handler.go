package providers

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-AppointmentService/internal/api/handlers"
	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	providersService "github.com/m04kA/SMC-AppointmentService/internal/service/providers"
)

const (
	msgInvalidProviderID  = "некорректный ID провайдера"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgProviderNotFound   = "провайдер не найден"
	msgEmailTaken         = "провайдер с таким email уже существует"
)

type Handler struct {
	service ProvidersService
	logger  Logger
}

func NewHandler(service ProvidersService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// List GET /api/providers[?q=&specialty=]
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	list, err := h.service.List(r.Context(), domain.ProvidersFilter{
		Query:     q.Get("q"),
		Specialty: q.Get("specialty"),
	})
	if err != nil {
		h.logger.Error("GET /providers - Failed to list providers: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromDomainList(list))
}

// Get GET /api/providers/{providerId}
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := handlers.PathID(r, "providerId")
	if err != nil {
		h.logger.Warn("GET /providers/{id} - Invalid provider ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidProviderID)
		return
	}

	provider, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		h.respondError(w, "GET /providers/{id}", id, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromDomain(provider))
}

// Register POST /api/providers
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterProviderRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /providers - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	provider, err := h.service.Register(r.Context(), req.ToServiceRequest())
	if err != nil {
		h.respondError(w, "POST /providers", 0, err)
		return
	}

	h.logger.Info("POST /providers - Provider registered: provider_id=%d", provider.ID)
	handlers.RespondJSON(w, http.StatusCreated, FromDomain(provider))
}

// Update PATCH /api/providers/{providerId}
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := handlers.PathID(r, "providerId")
	if err != nil {
		h.logger.Warn("PATCH /providers/{id} - Invalid provider ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidProviderID)
		return
	}

	var req UpdateProviderRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /providers/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	provider, err := h.service.UpdateSettings(r.Context(), id, req.ToDomainUpdate())
	if err != nil {
		h.respondError(w, "PATCH /providers/{id}", id, err)
		return
	}

	h.logger.Info("PATCH /providers/{id} - Provider updated: provider_id=%d", id)
	handlers.RespondJSON(w, http.StatusOK, FromDomain(provider))
}

// Delete DELETE /api/providers/{providerId}
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := handlers.PathID(r, "providerId")
	if err != nil {
		h.logger.Warn("DELETE /providers/{id} - Invalid provider ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidProviderID)
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		h.respondError(w, "DELETE /providers/{id}", id, err)
		return
	}

	h.logger.Info("DELETE /providers/{id} - Provider deactivated: provider_id=%d", id)
	handlers.RespondNoContent(w)
}

func (h *Handler) respondError(w http.ResponseWriter, op string, id int64, err error) {
	if verr, ok := handlers.AsValidationError(err); ok {
		h.logger.Warn("%s - Validation failed: provider_id=%d, error=%v", op, id, err)
		handlers.RespondValidationError(w, verr)
		return
	}

	switch {
	case errors.Is(err, providersService.ErrProviderNotFound):
		handlers.RespondNotFound(w, msgProviderNotFound)
	case errors.Is(err, providersService.ErrEmailTaken):
		h.logger.Warn("%s - Email already taken", op)
		handlers.RespondConflict(w, msgEmailTaken)
	default:
		h.logger.Error("%s - Failed: provider_id=%d, error=%v", op, id, err)
		handlers.RespondInternalError(w)
	}
}
