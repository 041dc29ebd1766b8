package create_appointment

import (
	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

// validateRequest проверяет форму запроса и собирает ошибки по полям
func validateRequest(req *Request) error {
	v := domain.NewValidationError()

	if req.ProviderID <= 0 {
		v.Add("providerId", "is required")
	}
	if req.ServiceID <= 0 {
		v.Add("serviceId", "is required")
	}

	if domain.Blank(req.ClientName) {
		v.Add("clientName", "is required")
	} else if len(req.ClientName) > domain.MaxNameLength {
		v.Add("clientName", "is too long")
	}

	if domain.Blank(req.ClientEmail) {
		v.Add("clientEmail", "is required")
	} else if !domain.ValidEmail(req.ClientEmail) {
		v.Add("clientEmail", "must be a valid email")
	}

	if domain.Blank(req.ClientPhone) {
		v.Add("clientPhone", "is required")
	}

	if req.AppointmentDate.IsZero() {
		v.Add("appointmentDate", "is required")
	} else if err := req.AppointmentDate.Validate(); err != nil {
		v.Add("appointmentDate", "must be YYYY-MM-DD")
	}

	if req.StartTime.IsZero() {
		v.Add("startTime", "is required")
	} else if err := req.StartTime.Validate(); err != nil {
		v.Add("startTime", "must be HH:MM")
	}

	if req.EndTime != nil {
		if err := req.EndTime.Validate(); err != nil {
			v.Add("endTime", "must be HH:MM")
		}
	}

	if req.Status != nil && !domain.AppointmentStatus(*req.Status).IsValid() {
		v.Add("status", "must be one of pending, confirmed, cancelled, completed")
	}

	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		v.Add("notes", "is too long")
	}

	return v.OrNil()
}

// resolveEndTime возвращает переданное время окончания или вычисляет его по длительности услуги
func resolveEndTime(req *Request, durationMinutes int) (types.TimeString, error) {
	v := domain.NewValidationError()

	if req.EndTime != nil {
		if !req.EndTime.IsAfter(req.StartTime) {
			v.Add("endTime", "must be after startTime")
			return "", v
		}
		return *req.EndTime, nil
	}

	end, err := req.StartTime.AddMinutes(durationMinutes)
	if err != nil || !end.IsAfter(req.StartTime) {
		v.Add("startTime", "appointment must end on the same day")
		return "", v
	}
	return end, nil
}
