package timeslots

import (
	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

// CreateRequest данные нового шаблона слота
type CreateRequest struct {
	ProviderID  int64
	DayOfWeek   int
	StartTime   types.TimeString
	EndTime     types.TimeString
	IsAvailable *bool // по умолчанию true
}

func (r *CreateRequest) validate() error {
	v := domain.NewValidationError()

	if r.ProviderID <= 0 {
		v.Add("providerId", "is required")
	}
	validateSlot(r.DayOfWeek, r.StartTime, r.EndTime, v)

	return v.OrNil()
}

func validateSlot(day int, start, end types.TimeString, v *domain.ValidationError) {
	if day < 0 || day > 6 {
		v.Add("dayOfWeek", "must be 0..6")
	}
	if err := start.Validate(); err != nil {
		v.Add("startTime", "must be HH:MM")
	}
	if err := end.Validate(); err != nil {
		v.Add("endTime", "must be HH:MM")
	}
	if start.Validate() == nil && end.Validate() == nil && !end.IsAfter(start) {
		v.Add("endTime", "must be after startTime")
	}
}
