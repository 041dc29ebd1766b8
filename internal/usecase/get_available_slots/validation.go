package get_available_slots

import "github.com/m04kA/SMC-AppointmentService/internal/domain"

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	v := domain.NewValidationError()

	if req.ProviderID <= 0 {
		v.Add("providerId", "must be positive")
	}

	if req.Date.IsZero() {
		v.Add("date", "is required")
	} else if err := req.Date.Validate(); err != nil {
		v.Add("date", "must be YYYY-MM-DD")
	}

	return v.OrNil()
}
