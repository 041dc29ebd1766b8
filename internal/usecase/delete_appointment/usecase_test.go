package delete_appointment

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/internal/infra/cache"
	"github.com/m04kA/SMC-AppointmentService/internal/infra/storage"
	"github.com/m04kA/SMC-AppointmentService/internal/infra/storage/memory"
	"github.com/m04kA/SMC-AppointmentService/internal/integrations/events"
	"github.com/m04kA/SMC-AppointmentService/pkg/logger"
	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

type publisherSpy struct {
	events []events.Event
}

func (p *publisherSpy) Publish(_ context.Context, e events.Event) error {
	p.events = append(p.events, e)
	return nil
}

func TestExecute(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	c, err := cache.NewSlotsCache(4, nil)
	require.NoError(t, err)
	spy := &publisherSpy{}

	a, err := store.Appointments().Create(ctx, &domain.Appointment{
		ProviderID: 1, ServiceID: 1, AppointmentDate: "2024-01-15", StartTime: "10:00", EndTime: "11:00",
		Status: domain.StatusPending,
	})
	require.NoError(t, err)
	c.Store(1, "2024-01-15", []types.TimeString{"09:00"}, c.Epoch())

	uc := NewUseCase(store.Appointments(), c, spy, logger.NewNop())

	require.NoError(t, uc.Execute(ctx, &Request{ID: a.ID}))

	_, err = store.Appointments().GetByID(ctx, a.ID)
	assert.ErrorIs(t, err, storage.ErrNotFound)

	_, ok := c.Get(1, "2024-01-15")
	assert.False(t, ok)

	require.Len(t, spy.events, 1)
	assert.Equal(t, events.AppointmentDeleted, spy.events[0].Type)

	assert.ErrorIs(t, uc.Execute(ctx, &Request{ID: a.ID}), ErrAppointmentNotFound)
	assert.ErrorIs(t, uc.Execute(ctx, &Request{ID: 0}), ErrInvalidInput)
}
