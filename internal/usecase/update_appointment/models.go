package update_appointment

import (
	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

// Request частичное обновление записи; nil-поля не меняются.
// Провайдер записи не меняется.
type Request struct {
	ID              int64
	ServiceID       *int64
	ClientName      *string
	ClientEmail     *string
	ClientPhone     *string
	AppointmentDate *types.DateString
	StartTime       *types.TimeString
	EndTime         *types.TimeString
	Status          *string
	Notes           *string
}

// Response модель ответа
type Response struct {
	Appointment *domain.Appointment
}

// toUpdate переводит запрос в доменное обновление
func (r *Request) toUpdate() *domain.AppointmentUpdate {
	u := &domain.AppointmentUpdate{
		ServiceID:       r.ServiceID,
		ClientName:      r.ClientName,
		ClientEmail:     r.ClientEmail,
		ClientPhone:     r.ClientPhone,
		AppointmentDate: r.AppointmentDate,
		StartTime:       r.StartTime,
		EndTime:         r.EndTime,
		Notes:           r.Notes,
	}
	if r.Status != nil {
		status := domain.AppointmentStatus(*r.Status)
		u.Status = &status
	}
	return u
}
