package check_slot

import "github.com/m04kA/SMC-AppointmentService/internal/domain"

// validateRequest проверяет форму параметров; порядок start/end не проверяется,
// пустой интервал просто недоступен
func validateRequest(req *Request) error {
	v := domain.NewValidationError()

	if req.ProviderID <= 0 {
		v.Add("providerId", "must be positive")
	}
	if err := req.Date.Validate(); err != nil {
		v.Add("date", "must be YYYY-MM-DD")
	}
	if err := req.StartTime.Validate(); err != nil {
		v.Add("startTime", "must be HH:MM")
	}
	if err := req.EndTime.Validate(); err != nil {
		v.Add("endTime", "must be HH:MM")
	}

	return v.OrNil()
}
