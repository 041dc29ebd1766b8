package scheduling

import (
	"errors"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

// ErrInvalidInterval returned when an interval cannot be converted to minutes or is empty
var ErrInvalidInterval = errors.New("scheduling: invalid time interval")

// Interval half-open [Start, End) in minutes since midnight
type Interval struct {
	Start int
	End   int
}

// NewInterval builds an interval from "HH:MM" bounds
func NewInterval(start, end types.TimeString) (Interval, error) {
	s, e := start.Minutes(), end.Minutes()
	if s < 0 || e < 0 || s >= e {
		return Interval{}, ErrInvalidInterval
	}
	return Interval{Start: s, End: e}, nil
}

// Overlaps s1 < e2 && s2 < e1; touching intervals do not overlap
func (i Interval) Overlaps(other Interval) bool {
	return i.Start < other.End && other.Start < i.End
}

// appointmentInterval returns false for rows whose stored times are unusable
func appointmentInterval(a *domain.Appointment) (Interval, bool) {
	interval, err := NewInterval(a.StartTime, a.EndTime)
	if err != nil {
		return Interval{}, false
	}
	return interval, true
}

// FindConflict returns the first blocking appointment overlapping the proposed interval.
// excludeID skips one appointment (the one being updated); pass 0 to check all.
func FindConflict(
	proposed Interval,
	appointments []*domain.Appointment,
	policy Policy,
	excludeID int64,
) *domain.Appointment {
	for _, a := range appointments {
		if excludeID != 0 && a.ID == excludeID {
			continue
		}
		if !policy.Blocks(a) {
			continue
		}
		existing, ok := appointmentInterval(a)
		if !ok {
			continue
		}
		if proposed.Overlaps(existing) {
			return a
		}
	}
	return nil
}

// HasConflict returns true if the proposed interval overlaps any blocking appointment
func HasConflict(proposed Interval, appointments []*domain.Appointment, policy Policy) bool {
	return FindConflict(proposed, appointments, policy, 0) != nil
}

// IsSlotAvailable is the conflict check on "HH:MM" bounds. A malformed or empty
// interval is never available.
func IsSlotAvailable(
	start, end types.TimeString,
	appointments []*domain.Appointment,
	policy Policy,
) bool {
	proposed, err := NewInterval(start, end)
	if err != nil {
		return false
	}
	return !HasConflict(proposed, appointments, policy)
}
