package check_slot

import (
	checkSlot "github.com/m04kA/SMC-AppointmentService/internal/usecase/check_slot"
	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

// SlotAvailabilityResponse HTTP response model
type SlotAvailabilityResponse struct {
	Available bool `json:"available"`
}

// ToUseCaseRequest создает запрос use case из query параметров
func ToUseCaseRequest(providerID int64, date, start, end string) *checkSlot.Request {
	return &checkSlot.Request{
		ProviderID: providerID,
		Date:       types.DateString(date),
		StartTime:  types.TimeString(start),
		EndTime:    types.TimeString(end),
	}
}
