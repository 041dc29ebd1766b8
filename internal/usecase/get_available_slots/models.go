package get_available_slots

import "github.com/m04kA/SMC-AppointmentService/pkg/types"

// Request модель запроса на получение свободных слотов
type Request struct {
	ProviderID int64
	Date       types.DateString
}

// Response модель ответа со списком свободных слотов
type Response struct {
	ProviderID int64
	Date       types.DateString
	Slots      []types.TimeString // по возрастанию, шаг domain.SlotStepMinutes
	FromCache  bool
}
