package check_slot

import "github.com/m04kA/SMC-AppointmentService/pkg/types"

// Request модель запроса проверки интервала
type Request struct {
	ProviderID int64
	Date       types.DateString
	StartTime  types.TimeString
	EndTime    types.TimeString
}

// Response модель ответа
type Response struct {
	Available bool
}
