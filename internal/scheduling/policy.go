package scheduling

import (
	"strconv"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

// Policy decides which appointments occupy their time interval
type Policy struct {
	// CancelledReleasesSlot when false a cancelled appointment keeps blocking its interval
	CancelledReleasesSlot bool
}

// DefaultPolicy cancelled appointments keep blocking
func DefaultPolicy() Policy {
	return Policy{CancelledReleasesSlot: false}
}

// Blocks returns true if the appointment occupies its interval under the policy
func (p Policy) Blocks(a *domain.Appointment) bool {
	if a.IsCancelled() {
		return !p.CancelledReleasesSlot
	}
	return true
}

// Blocking filters appointments down to those that occupy their interval
func (p Policy) Blocking(appointments []*domain.Appointment) []*domain.Appointment {
	result := make([]*domain.Appointment, 0, len(appointments))
	for _, a := range appointments {
		if p.Blocks(a) {
			result = append(result, a)
		}
	}
	return result
}

// LockKey identifies the critical section for bookings of a provider on a date
func LockKey(providerID int64, date types.DateString) string {
	return strconv.FormatInt(providerID, 10) + ":" + date.String()
}

// AppointmentLockKey identifies the critical section for changes of one appointment.
// It is always taken before LockKey.
func AppointmentLockKey(appointmentID int64) string {
	return "appointment:" + strconv.FormatInt(appointmentID, 10)
}
