package create_appointment

import (
	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

// Request модель запроса на создание записи
type Request struct {
	ProviderID      int64
	ServiceID       int64
	ClientName      string
	ClientEmail     string
	ClientPhone     string
	AppointmentDate types.DateString
	StartTime       types.TimeString
	EndTime         *types.TimeString // если не указано - StartTime + длительность услуги
	Status          *string           // по умолчанию pending
	Notes           *string
}

// Response модель ответа
type Response struct {
	Appointment *domain.Appointment
}
