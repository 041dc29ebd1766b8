package appointments

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/internal/infra/storage/memory"
	"github.com/m04kA/SMC-AppointmentService/pkg/logger"
	"github.com/m04kA/SMC-AppointmentService/pkg/ptr"
	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

func TestService(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	svc := NewService(store.Appointments(), logger.NewNop())

	for _, a := range []*domain.Appointment{
		{ProviderID: 1, AppointmentDate: "2024-01-16", StartTime: "09:00", EndTime: "10:00", Status: domain.StatusPending},
		{ProviderID: 1, AppointmentDate: "2024-01-15", StartTime: "11:00", EndTime: "12:00", Status: domain.StatusCancelled},
		{ProviderID: 1, AppointmentDate: "2024-01-15", StartTime: "09:00", EndTime: "10:00", Status: domain.StatusConfirmed},
		{ProviderID: 2, AppointmentDate: "2024-01-15", StartTime: "09:00", EndTime: "10:00", Status: domain.StatusConfirmed},
	} {
		_, err := store.Appointments().Create(ctx, a)
		require.NoError(t, err)
	}

	all, err := svc.ListByProvider(ctx, 1, nil)
	require.NoError(t, err)
	assert.Len(t, all, 3, "all statuses are listed")

	day, err := svc.ListByProvider(ctx, 1, ptr.Ptr(types.DateString("2024-01-15")))
	require.NoError(t, err)
	require.Len(t, day, 2)
	assert.Equal(t, types.TimeString("09:00"), day[0].StartTime)

	_, err = svc.ListByProvider(ctx, 1, ptr.Ptr(types.DateString("15.01.2024")))
	assert.ErrorIs(t, err, domain.ErrValidation)

	got, err := svc.GetByID(ctx, day[0].ID)
	require.NoError(t, err)
	assert.Equal(t, day[0].ID, got.ID)

	_, err = svc.GetByID(ctx, 999)
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}
