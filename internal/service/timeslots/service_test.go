package timeslots

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
	svc := NewService(memory.NewStore().TimeSlots(), logger.NewNop())

	slot, err := svc.Create(ctx, &CreateRequest{ProviderID: 1, DayOfWeek: 1, StartTime: "09:00", EndTime: "09:30"})
	require.NoError(t, err)
	assert.True(t, slot.IsAvailable)

	_, err = svc.Create(ctx, &CreateRequest{ProviderID: 1, DayOfWeek: 7, StartTime: "10:00", EndTime: "09:30"})
	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "dayOfWeek")
	assert.Contains(t, verr.Fields, "endTime")

	updated, err := svc.Update(ctx, slot.ID, &domain.TimeSlotUpdate{EndTime: ptr.Ptr(types.TimeString("10:00"))})
	require.NoError(t, err)
	assert.Equal(t, types.TimeString("10:00"), updated.EndTime)

	_, err = svc.Update(ctx, slot.ID, &domain.TimeSlotUpdate{StartTime: ptr.Ptr(types.TimeString("11:00"))})
	assert.ErrorIs(t, err, domain.ErrValidation)

	require.NoError(t, svc.Delete(ctx, slot.ID))
	list, err := svc.ListByProvider(ctx, 1)
	require.NoError(t, err)
	assert.Empty(t, list)

	_, err = svc.Update(ctx, 999, &domain.TimeSlotUpdate{})
	assert.ErrorIs(t, err, ErrTimeSlotNotFound)
}
