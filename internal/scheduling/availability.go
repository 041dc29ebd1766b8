package scheduling

import (
	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

// AvailableSlots computes the bookable slot starts for a provider on a date.
//
// Slots are generated every domain.SlotStepMinutes from WorkingHours.Start while
// the slot start is before WorkingHours.End. A slot is dropped when
// [t, t+SlotStepMinutes) overlaps a blocking appointment, which is the same
// predicate IsSlotAvailable uses.
//
// Missing or inactive provider, unset working hours, a malformed date or a
// non-working weekday all yield an empty, non-nil slice.
func AvailableSlots(
	provider *domain.Provider,
	date types.DateString,
	appointments []*domain.Appointment,
	policy Policy,
) []types.TimeString {
	slots := make([]types.TimeString, 0)

	if provider == nil || !provider.CanAcceptBookings() {
		return slots
	}

	weekday, ok := date.Weekday()
	if !ok || !provider.WorkingHours.WorksOn(weekday) {
		return slots
	}

	start := provider.WorkingHours.Start.Minutes()
	end := provider.WorkingHours.End.Minutes()
	if start < 0 || end < 0 || start >= end {
		return slots
	}

	blocking := make([]Interval, 0, len(appointments))
	for _, a := range appointments {
		if a.AppointmentDate != date || !policy.Blocks(a) {
			continue
		}
		if interval, ok := appointmentInterval(a); ok {
			blocking = append(blocking, interval)
		}
	}

	for t := start; t < end; t += domain.SlotStepMinutes {
		if overlapsAny(Interval{Start: t, End: t + domain.SlotStepMinutes}, blocking) {
			continue
		}
		slot, err := types.NewTimeStringFromMinutes(t)
		if err != nil {
			break
		}
		slots = append(slots, slot)
	}

	return slots
}

func overlapsAny(slot Interval, blocking []Interval) bool {
	for _, b := range blocking {
		if slot.Overlaps(b) {
			return true
		}
	}
	return false
}
