package update_appointment

import "github.com/m04kA/SMC-AppointmentService/internal/domain"

// validateRequest проверяет форму переданных полей
func validateRequest(req *Request) error {
	v := domain.NewValidationError()

	if req.ID <= 0 {
		v.Add("id", "must be positive")
	}
	if req.ServiceID != nil && *req.ServiceID <= 0 {
		v.Add("serviceId", "must be positive")
	}
	if req.ClientName != nil {
		if domain.Blank(*req.ClientName) {
			v.Add("clientName", "must not be empty")
		} else if len(*req.ClientName) > domain.MaxNameLength {
			v.Add("clientName", "is too long")
		}
	}
	if req.ClientEmail != nil && !domain.ValidEmail(*req.ClientEmail) {
		v.Add("clientEmail", "must be a valid email")
	}
	if req.ClientPhone != nil && domain.Blank(*req.ClientPhone) {
		v.Add("clientPhone", "must not be empty")
	}
	if req.AppointmentDate != nil {
		if err := req.AppointmentDate.Validate(); err != nil {
			v.Add("appointmentDate", "must be YYYY-MM-DD")
		}
	}
	if req.StartTime != nil {
		if err := req.StartTime.Validate(); err != nil {
			v.Add("startTime", "must be HH:MM")
		}
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

func fieldError(field, reason string) error {
	v := domain.NewValidationError()
	v.Add(field, reason)
	return v
}
