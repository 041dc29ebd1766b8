package update_appointment

import (
	updateAppointment "github.com/m04kA/SMC-AppointmentService/internal/usecase/update_appointment"
	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

// UpdateAppointmentRequest HTTP request model; отсутствующие поля не меняются
type UpdateAppointmentRequest struct {
	ServiceID       *int64  `json:"serviceId,omitempty"`
	ClientName      *string `json:"clientName,omitempty"`
	ClientEmail     *string `json:"clientEmail,omitempty"`
	ClientPhone     *string `json:"clientPhone,omitempty"`
	AppointmentDate *string `json:"appointmentDate,omitempty"`
	StartTime       *string `json:"startTime,omitempty"`
	EndTime         *string `json:"endTime,omitempty"`
	Status          *string `json:"status,omitempty"`
	Notes           *string `json:"notes,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *UpdateAppointmentRequest) ToUseCaseRequest(id int64) *updateAppointment.Request {
	req := &updateAppointment.Request{
		ID:          id,
		ServiceID:   r.ServiceID,
		ClientName:  r.ClientName,
		ClientEmail: r.ClientEmail,
		ClientPhone: r.ClientPhone,
		Status:      r.Status,
		Notes:       r.Notes,
	}
	if r.AppointmentDate != nil {
		date := types.DateString(*r.AppointmentDate)
		req.AppointmentDate = &date
	}
	if r.StartTime != nil {
		start := types.TimeString(*r.StartTime)
		req.StartTime = &start
	}
	if r.EndTime != nil {
		end := types.TimeString(*r.EndTime)
		req.EndTime = &end
	}
	return req
}
