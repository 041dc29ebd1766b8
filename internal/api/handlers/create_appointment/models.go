package create_appointment

import (
	createAppointment "github.com/m04kA/SMC-AppointmentService/internal/usecase/create_appointment"
	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

// CreateAppointmentRequest HTTP request model
type CreateAppointmentRequest struct {
	ProviderID      int64   `json:"providerId"`
	ServiceID       int64   `json:"serviceId"`
	ClientName      string  `json:"clientName"`
	ClientEmail     string  `json:"clientEmail"`
	ClientPhone     string  `json:"clientPhone"`
	AppointmentDate string  `json:"appointmentDate"` // "2024-01-15"
	StartTime       string  `json:"startTime"`       // "09:00"
	EndTime         *string `json:"endTime,omitempty"`
	Status          *string `json:"status,omitempty"`
	Notes           *string `json:"notes,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case; формат полей проверяет use case
func (r *CreateAppointmentRequest) ToUseCaseRequest() *createAppointment.Request {
	req := &createAppointment.Request{
		ProviderID:      r.ProviderID,
		ServiceID:       r.ServiceID,
		ClientName:      r.ClientName,
		ClientEmail:     r.ClientEmail,
		ClientPhone:     r.ClientPhone,
		AppointmentDate: types.DateString(r.AppointmentDate),
		StartTime:       types.TimeString(r.StartTime),
		Status:          r.Status,
		Notes:           r.Notes,
	}
	if r.EndTime != nil {
		end := types.TimeString(*r.EndTime)
		req.EndTime = &end
	}
	return req
}
