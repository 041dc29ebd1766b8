package timeslots

import (
	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	timeslotsService "github.com/m04kA/SMC-AppointmentService/internal/service/timeslots"
	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

// TimeSlotResponse HTTP response model
type TimeSlotResponse struct {
	ID          int64  `json:"id"`
	ProviderID  int64  `json:"providerId"`
	DayOfWeek   int    `json:"dayOfWeek"`
	StartTime   string `json:"startTime"`
	EndTime     string `json:"endTime"`
	IsAvailable bool   `json:"isAvailable"`
}

// CreateTimeSlotRequest HTTP request model
type CreateTimeSlotRequest struct {
	ProviderID  int64  `json:"providerId"`
	DayOfWeek   int    `json:"dayOfWeek"` // 0 = воскресенье
	StartTime   string `json:"startTime"`
	EndTime     string `json:"endTime"`
	IsAvailable *bool  `json:"isAvailable,omitempty"`
}

// UpdateTimeSlotRequest HTTP request model; отсутствующие поля не меняются
type UpdateTimeSlotRequest struct {
	DayOfWeek   *int    `json:"dayOfWeek,omitempty"`
	StartTime   *string `json:"startTime,omitempty"`
	EndTime     *string `json:"endTime,omitempty"`
	IsAvailable *bool   `json:"isAvailable,omitempty"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *CreateTimeSlotRequest) ToServiceRequest() *timeslotsService.CreateRequest {
	return &timeslotsService.CreateRequest{
		ProviderID:  r.ProviderID,
		DayOfWeek:   r.DayOfWeek,
		StartTime:   types.TimeString(r.StartTime),
		EndTime:     types.TimeString(r.EndTime),
		IsAvailable: r.IsAvailable,
	}
}

// ToDomainUpdate конвертирует HTTP запрос в доменное обновление
func (r *UpdateTimeSlotRequest) ToDomainUpdate() *domain.TimeSlotUpdate {
	u := &domain.TimeSlotUpdate{
		DayOfWeek:   r.DayOfWeek,
		IsAvailable: r.IsAvailable,
	}
	if r.StartTime != nil {
		start := types.TimeString(*r.StartTime)
		u.StartTime = &start
	}
	if r.EndTime != nil {
		end := types.TimeString(*r.EndTime)
		u.EndTime = &end
	}
	return u
}

// FromDomain конвертирует шаблон слота в HTTP модель
func FromDomain(s *domain.TimeSlot) *TimeSlotResponse {
	return &TimeSlotResponse{
		ID:          s.ID,
		ProviderID:  s.ProviderID,
		DayOfWeek:   s.DayOfWeek,
		StartTime:   s.StartTime.String(),
		EndTime:     s.EndTime.String(),
		IsAvailable: s.IsAvailable,
	}
}
