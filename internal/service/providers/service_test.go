package providers

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/internal/infra/cache"
	"github.com/m04kA/SMC-AppointmentService/internal/infra/storage/memory"
	"github.com/m04kA/SMC-AppointmentService/pkg/logger"
	"github.com/m04kA/SMC-AppointmentService/pkg/ptr"
	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

func newService(t *testing.T) (*Service, *cache.SlotsCache) {
	t.Helper()
	c, err := cache.NewSlotsCache(8, nil)
	require.NoError(t, err)
	return NewService(memory.NewStore().Providers(), c, logger.NewNop()), c
}

func validRegistration() *RegisterRequest {
	return &RegisterRequest{
		Name:      "Sarah Johnson",
		Title:     "MD",
		Specialty: "Family Medicine",
		Email:     "sarah@example.com",
		Phone:     "+1 555 0100",
	}
}

func TestRegister_DefaultsAndDuplicate(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	p, err := svc.Register(ctx, validRegistration())
	require.NoError(t, err)
	assert.True(t, p.IsActive)
	assert.Equal(t, domain.DefaultRating, p.Rating)
	require.NotNil(t, p.WorkingHours)
	assert.Equal(t, types.TimeString("09:00"), p.WorkingHours.Start)
	assert.Equal(t, []int{1, 2, 3, 4, 5}, p.WorkingHours.Days)

	dup := validRegistration()
	dup.Email = "SARAH@example.com"
	_, err = svc.Register(ctx, dup)
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestRegister_Validation(t *testing.T) {
	svc, _ := newService(t)

	req := validRegistration()
	req.Email = "bad"
	req.WorkingHours = &domain.WorkingHours{Start: "18:00", End: "08:00", Days: []int{1}}

	_, err := svc.Register(context.Background(), req)
	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "email")
	assert.Contains(t, verr.Fields, "workingHours.end")
}

func TestUpdateSettings(t *testing.T) {
	svc, c := newService(t)
	ctx := context.Background()

	p, err := svc.Register(ctx, validRegistration())
	require.NoError(t, err)
	c.Store(p.ID, "2024-01-15", []types.TimeString{"09:00"}, c.Epoch())

	updated, err := svc.UpdateSettings(ctx, p.ID, &domain.ProviderUpdate{
		WorkingHours: &domain.WorkingHours{Start: "10:00", End: "14:00", Days: []int{6}},
		SocialLinks:  &domain.SocialLinks{Website: ptr.Ptr("https://example.com")},
	})
	require.NoError(t, err)
	assert.Equal(t, types.TimeString("10:00"), updated.WorkingHours.Start)
	assert.Equal(t, "https://example.com", *updated.SocialLinks.Website)

	_, ok := c.Get(p.ID, "2024-01-15")
	assert.False(t, ok, "working hours change must drop cached availability")

	_, err = svc.UpdateSettings(ctx, p.ID, &domain.ProviderUpdate{Rating: ptr.Ptr("5.00")})
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = svc.UpdateSettings(ctx, 999, &domain.ProviderUpdate{Name: ptr.Ptr("X")})
	assert.ErrorIs(t, err, ErrProviderNotFound)
}

func TestDelete_Soft(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	p, err := svc.Register(ctx, validRegistration())
	require.NoError(t, err)
	require.NoError(t, svc.Delete(ctx, p.ID))

	got, err := svc.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.False(t, got.IsActive)

	list, err := svc.List(ctx, domain.ProvidersFilter{})
	require.NoError(t, err)
	assert.Empty(t, list)

	assert.ErrorIs(t, svc.Delete(ctx, 999), ErrProviderNotFound)
}

func TestSetRating(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	p, err := svc.Register(ctx, validRegistration())
	require.NoError(t, err)

	updated, err := svc.SetRating(ctx, p.ID, "4.50", 2)
	require.NoError(t, err)
	assert.Equal(t, "4.50", updated.Rating)
	assert.Equal(t, 2, updated.ReviewCount)
}
