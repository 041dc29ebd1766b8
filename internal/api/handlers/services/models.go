package services

import (
	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/internal/service/catalog"
)

// ServiceResponse HTTP response model
type ServiceResponse struct {
	ID          int64   `json:"id"`
	ProviderID  int64   `json:"providerId"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
	Duration    int     `json:"duration"`
	Price       string  `json:"price"`
	IsActive    bool    `json:"isActive"`
}

// CreateServiceRequest HTTP request model
type CreateServiceRequest struct {
	ProviderID  int64   `json:"providerId"`
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
	Duration    int     `json:"duration"` // минуты
	Price       string  `json:"price"`    // "50.00"
}

// UpdateServiceRequest HTTP request model; отсутствующие поля не меняются
type UpdateServiceRequest struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	Duration    *int    `json:"duration,omitempty"`
	Price       *string `json:"price,omitempty"`
	IsActive    *bool   `json:"isActive,omitempty"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *CreateServiceRequest) ToServiceRequest() *catalog.CreateRequest {
	return &catalog.CreateRequest{
		ProviderID:  r.ProviderID,
		Name:        r.Name,
		Description: r.Description,
		Duration:    r.Duration,
		Price:       r.Price,
	}
}

// ToDomainUpdate конвертирует HTTP запрос в доменное обновление
func (r *UpdateServiceRequest) ToDomainUpdate() *domain.ServiceUpdate {
	return &domain.ServiceUpdate{
		Name:        r.Name,
		Description: r.Description,
		Duration:    r.Duration,
		Price:       r.Price,
		IsActive:    r.IsActive,
	}
}

// FromDomain конвертирует услугу в HTTP модель
func FromDomain(s *domain.Service) *ServiceResponse {
	return &ServiceResponse{
		ID:          s.ID,
		ProviderID:  s.ProviderID,
		Name:        s.Name,
		Description: s.Description,
		Duration:    s.Duration,
		Price:       s.Price,
		IsActive:    s.IsActive,
	}
}
