package get_available_slots

import (
	getAvailableSlots "github.com/m04kA/SMC-AppointmentService/internal/usecase/get_available_slots"
	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

// FromUseCaseResponse ответ - массив строк "HH:MM"
func FromUseCaseResponse(resp *getAvailableSlots.Response) []string {
	slots := make([]string, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = slot.String()
	}
	return slots
}

// ToUseCaseRequest создает запрос use case из параметров запроса
func ToUseCaseRequest(providerID int64, dateStr string) *getAvailableSlots.Request {
	return &getAvailableSlots.Request{
		ProviderID: providerID,
		Date:       types.DateString(dateStr),
	}
}
