package memos

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/internal/infra/storage/memory"
	"github.com/m04kA/SMC-AppointmentService/pkg/logger"
	"github.com/m04kA/SMC-AppointmentService/pkg/ptr"
)

func TestService(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 1, 15, 9, 0, 0, 0, time.UTC)
	store := memory.NewStore().WithClock(func() time.Time { return now })
	svc := NewService(store.Memos(), logger.NewNop())

	memo, err := svc.Create(ctx, &CreateRequest{ProviderID: 1, Title: "Supplies", Content: "Order gloves"})
	require.NoError(t, err)
	assert.Equal(t, domain.MemoCategoryGeneral, memo.Category)

	_, err = svc.Create(ctx, &CreateRequest{ProviderID: 1, Title: "x", Content: "y", Category: ptr.Ptr("misc")})
	assert.ErrorIs(t, err, domain.ErrValidation)

	now = now.Add(time.Hour)
	updated, err := svc.Update(ctx, memo.ID, &domain.MemoUpdate{IsImportant: ptr.Ptr(true)})
	require.NoError(t, err)
	assert.True(t, updated.IsImportant)
	assert.True(t, updated.UpdatedAt.After(updated.CreatedAt))

	list, err := svc.ListByProvider(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	require.NoError(t, svc.Delete(ctx, memo.ID))
	assert.ErrorIs(t, svc.Delete(ctx, memo.ID), ErrMemoNotFound)
	_, err = svc.Update(ctx, memo.ID, &domain.MemoUpdate{Title: ptr.Ptr("x")})
	assert.ErrorIs(t, err, ErrMemoNotFound)
}
