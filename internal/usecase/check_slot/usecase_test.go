package check_slot

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/internal/infra/storage/memory"
	"github.com/m04kA/SMC-AppointmentService/internal/scheduling"
	"github.com/m04kA/SMC-AppointmentService/pkg/logger"
	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

const date types.DateString = "2024-01-15"

func newStoreWith(t *testing.T, appointments ...*domain.Appointment) *memory.Store {
	t.Helper()
	store := memory.NewStore()
	for _, a := range appointments {
		_, err := store.Appointments().Create(context.Background(), a)
		require.NoError(t, err)
	}
	return store
}

func TestExecute(t *testing.T) {
	store := newStoreWith(t,
		&domain.Appointment{ProviderID: 1, AppointmentDate: date, StartTime: "10:00", EndTime: "11:00", Status: domain.StatusConfirmed},
		&domain.Appointment{ProviderID: 1, AppointmentDate: date, StartTime: "14:00", EndTime: "14:30", Status: domain.StatusCancelled},
		&domain.Appointment{ProviderID: 2, AppointmentDate: date, StartTime: "12:00", EndTime: "13:00", Status: domain.StatusPending},
		&domain.Appointment{ProviderID: 1, AppointmentDate: "2024-01-16", StartTime: "12:00", EndTime: "13:00", Status: domain.StatusPending},
	)

	tests := []struct {
		name      string
		start     types.TimeString
		end       types.TimeString
		policy    scheduling.Policy
		available bool
	}{
		{"partial overlap", "10:30", "11:30", scheduling.DefaultPolicy(), false},
		{"touching end", "11:00", "11:30", scheduling.DefaultPolicy(), true},
		{"touching start", "09:30", "10:00", scheduling.DefaultPolicy(), true},
		{"containing", "09:00", "12:00", scheduling.DefaultPolicy(), false},
		{"other provider ignored", "12:00", "13:00", scheduling.DefaultPolicy(), true},
		{"cancelled blocks by default", "14:00", "14:30", scheduling.DefaultPolicy(), false},
		{"cancelled released by policy", "14:00", "14:30", scheduling.Policy{CancelledReleasesSlot: true}, true},
		{"empty interval", "15:00", "15:00", scheduling.DefaultPolicy(), false},
		{"reversed interval", "16:00", "15:00", scheduling.DefaultPolicy(), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := NewUseCase(store.Appointments(), tt.policy, logger.NewNop())
			resp, err := uc.Execute(context.Background(), &Request{
				ProviderID: 1, Date: date, StartTime: tt.start, EndTime: tt.end,
			})
			require.NoError(t, err)
			assert.Equal(t, tt.available, resp.Available)
		})
	}
}

func TestExecute_Validation(t *testing.T) {
	uc := NewUseCase(memory.NewStore().Appointments(), scheduling.DefaultPolicy(), logger.NewNop())

	_, err := uc.Execute(context.Background(), &Request{ProviderID: 1, Date: "2024/01/15", StartTime: "9:00", EndTime: "10:00"})
	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "date")
	assert.Contains(t, verr.Fields, "startTime")
	assert.NotContains(t, verr.Fields, "endTime")
}
