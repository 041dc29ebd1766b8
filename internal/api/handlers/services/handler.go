package services

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-AppointmentService/internal/api/handlers"
	"github.com/m04kA/SMC-AppointmentService/internal/service/catalog"
)

const (
	msgInvalidProviderID  = "некорректный ID провайдера"
	msgInvalidServiceID   = "некорректный ID услуги"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgServiceNotFound    = "услуга не найдена"
)

type Handler struct {
	service CatalogService
	logger  Logger
}

func NewHandler(service CatalogService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// ListByProvider GET /api/providers/{providerId}/services
func (h *Handler) ListByProvider(w http.ResponseWriter, r *http.Request) {
	providerID, err := handlers.PathID(r, "providerId")
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidProviderID)
		return
	}

	list, err := h.service.ListByProvider(r.Context(), providerID)
	if err != nil {
		h.logger.Error("GET /providers/{id}/services - Failed to list services: provider_id=%d, error=%v", providerID, err)
		handlers.RespondInternalError(w)
		return
	}

	result := make([]*ServiceResponse, 0, len(list))
	for _, s := range list {
		result = append(result, FromDomain(s))
	}
	handlers.RespondJSON(w, http.StatusOK, result)
}

// Create POST /api/services
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateServiceRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /services - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	created, err := h.service.Create(r.Context(), req.ToServiceRequest())
	if err != nil {
		h.respondError(w, "POST /services", 0, err)
		return
	}

	h.logger.Info("POST /services - Service created: service_id=%d, provider_id=%d", created.ID, created.ProviderID)
	handlers.RespondJSON(w, http.StatusCreated, FromDomain(created))
}

// Update PATCH /api/services/{serviceId}
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := handlers.PathID(r, "serviceId")
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidServiceID)
		return
	}

	var req UpdateServiceRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /services/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	updated, err := h.service.Update(r.Context(), id, req.ToDomainUpdate())
	if err != nil {
		h.respondError(w, "PATCH /services/{id}", id, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromDomain(updated))
}

// Delete DELETE /api/services/{serviceId}
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := handlers.PathID(r, "serviceId")
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidServiceID)
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		h.respondError(w, "DELETE /services/{id}", id, err)
		return
	}

	h.logger.Info("DELETE /services/{id} - Service deactivated: service_id=%d", id)
	handlers.RespondNoContent(w)
}

func (h *Handler) respondError(w http.ResponseWriter, op string, id int64, err error) {
	if verr, ok := handlers.AsValidationError(err); ok {
		h.logger.Warn("%s - Validation failed: %v", op, err)
		handlers.RespondValidationError(w, verr)
		return
	}
	if errors.Is(err, catalog.ErrServiceNotFound) {
		handlers.RespondNotFound(w, msgServiceNotFound)
		return
	}
	h.logger.Error("%s - Failed: service_id=%d, error=%v", op, id, err)
	handlers.RespondInternalError(w)
}
