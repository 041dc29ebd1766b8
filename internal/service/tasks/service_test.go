package tasks

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
	svc := NewService(memory.NewStore().Tasks(), logger.NewNop())

	task, err := svc.Create(ctx, &CreateRequest{ProviderID: 1, Title: "Call lab", DueDate: ptr.Ptr(types.DateString("2024-01-20"))})
	require.NoError(t, err)
	assert.Equal(t, domain.TaskStatusPending, task.Status)
	assert.Equal(t, domain.TaskPriorityMedium, task.Priority)
	assert.Nil(t, task.CompletedAt)

	_, err = svc.Create(ctx, &CreateRequest{ProviderID: 1, Title: "x", Priority: ptr.Ptr("critical")})
	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "priority")

	done := domain.TaskStatusCompleted
	updated, err := svc.Update(ctx, task.ID, &domain.TaskUpdate{Status: &done})
	require.NoError(t, err)
	assert.Equal(t, domain.TaskStatusCompleted, updated.Status)
	assert.NotNil(t, updated.CompletedAt)

	bad := domain.TaskStatus("paused")
	_, err = svc.Update(ctx, task.ID, &domain.TaskUpdate{Status: &bad})
	assert.ErrorIs(t, err, domain.ErrValidation)

	require.NoError(t, svc.Delete(ctx, task.ID))
	assert.ErrorIs(t, svc.Delete(ctx, task.ID), ErrTaskNotFound)
}
