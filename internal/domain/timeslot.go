package domain

import "github.com/m04kA/SMC-AppointmentService/pkg/types"

// TimeSlot is a recurring weekly bookable granule. Availability is derived from
// Provider.WorkingHours; explicit rows exist for per-slot overrides.
type TimeSlot struct {
	ID          int64
	ProviderID  int64
	DayOfWeek   int // 0 = Sunday .. 6 = Saturday
	StartTime   types.TimeString
	EndTime     types.TimeString
	IsAvailable bool
}

// TimeSlotUpdate partial update; nil fields are left unchanged
type TimeSlotUpdate struct {
	DayOfWeek   *int
	StartTime   *types.TimeString
	EndTime     *types.TimeString
	IsAvailable *bool
}

// Apply merges the update into the time slot
func (u *TimeSlotUpdate) Apply(s *TimeSlot) {
	if u.DayOfWeek != nil {
		s.DayOfWeek = *u.DayOfWeek
	}
	if u.StartTime != nil {
		s.StartTime = *u.StartTime
	}
	if u.EndTime != nil {
		s.EndTime = *u.EndTime
	}
	if u.IsAvailable != nil {
		s.IsAvailable = *u.IsAvailable
	}
}
