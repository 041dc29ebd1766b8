package domain

import (
	"time"

	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	StatusPending   AppointmentStatus = "pending"
	StatusConfirmed AppointmentStatus = "confirmed"
	StatusCancelled AppointmentStatus = "cancelled"
	StatusCompleted AppointmentStatus = "completed"
)

// IsValid returns true for a known status
func (s AppointmentStatus) IsValid() bool {
	for _, valid := range AppointmentStatuses {
		if s == valid {
			return true
		}
	}
	return false
}

// Appointment represents a client booking of a provider's service
type Appointment struct {
	ID              int64
	ProviderID      int64
	ServiceID       int64
	ClientName      string
	ClientEmail     string
	ClientPhone     string
	AppointmentDate types.DateString
	StartTime       types.TimeString
	EndTime         types.TimeString // StartTime + service duration
	Status          AppointmentStatus
	Notes           *string
	CreatedAt       time.Time
}

// Clone returns a deep copy
func (a *Appointment) Clone() *Appointment {
	c := *a
	if a.Notes != nil {
		notes := *a.Notes
		c.Notes = &notes
	}
	return &c
}

// IsCancelled returns true if the appointment has been cancelled
func (a *Appointment) IsCancelled() bool {
	return a.Status == StatusCancelled
}

// IsCompleted returns true if the appointment is completed
func (a *Appointment) IsCompleted() bool {
	return a.Status == StatusCompleted
}

// AppointmentUpdate partial update; nil fields are left unchanged
type AppointmentUpdate struct {
	ServiceID       *int64
	ClientName      *string
	ClientEmail     *string
	ClientPhone     *string
	AppointmentDate *types.DateString
	StartTime       *types.TimeString
	EndTime         *types.TimeString
	Status          *AppointmentStatus
	Notes           *string
}

// Apply merges the update into the appointment
func (u *AppointmentUpdate) Apply(a *Appointment) {
	if u.ServiceID != nil {
		a.ServiceID = *u.ServiceID
	}
	if u.ClientName != nil {
		a.ClientName = *u.ClientName
	}
	if u.ClientEmail != nil {
		a.ClientEmail = *u.ClientEmail
	}
	if u.ClientPhone != nil {
		a.ClientPhone = *u.ClientPhone
	}
	if u.AppointmentDate != nil {
		a.AppointmentDate = *u.AppointmentDate
	}
	if u.StartTime != nil {
		a.StartTime = *u.StartTime
	}
	if u.EndTime != nil {
		a.EndTime = *u.EndTime
	}
	if u.Status != nil {
		a.Status = *u.Status
	}
	if u.Notes != nil {
		a.Notes = u.Notes
	}
}

// TouchesSchedule returns true if the update can move the appointment in time
// or change whether it occupies its slot
func (u *AppointmentUpdate) TouchesSchedule() bool {
	return u.ServiceID != nil || u.AppointmentDate != nil || u.StartTime != nil ||
		u.EndTime != nil || u.Status != nil
}

// AppointmentsFilter фильтр для получения записей провайдера
type AppointmentsFilter struct {
	ProviderID int64             // Обязательный параметр
	Date       *types.DateString // Конкретная дата (опционально)
}
