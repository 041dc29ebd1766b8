package events

import (
	"time"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
)

// Type тип события о записи
type Type string

const (
	AppointmentCreated Type = "appointment.created"
	AppointmentUpdated Type = "appointment.updated"
	AppointmentDeleted Type = "appointment.deleted"
)

// Event событие, публикуемое после фиксации изменения записи
type Event struct {
	Type        Type
	Appointment *domain.Appointment
	OccurredAt  time.Time
}

// payload JSON-представление события
type payload struct {
	EventType       string    `json:"eventType"`
	OccurredAt      time.Time `json:"occurredAt"`
	AppointmentID   int64     `json:"appointmentId"`
	ProviderID      int64     `json:"providerId"`
	ServiceID       int64     `json:"serviceId"`
	ClientName      string    `json:"clientName"`
	ClientEmail     string    `json:"clientEmail"`
	AppointmentDate string    `json:"appointmentDate"`
	StartTime       string    `json:"startTime"`
	EndTime         string    `json:"endTime"`
	Status          string    `json:"status"`
}

func newPayload(e Event) payload {
	a := e.Appointment
	return payload{
		EventType:       string(e.Type),
		OccurredAt:      e.OccurredAt.UTC(),
		AppointmentID:   a.ID,
		ProviderID:      a.ProviderID,
		ServiceID:       a.ServiceID,
		ClientName:      a.ClientName,
		ClientEmail:     a.ClientEmail,
		AppointmentDate: a.AppointmentDate.String(),
		StartTime:       a.StartTime.String(),
		EndTime:         a.EndTime.String(),
		Status:          string(a.Status),
	}
}
