package create_appointment

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/internal/infra/cache"
	"github.com/m04kA/SMC-AppointmentService/internal/infra/storage/memory"
	"github.com/m04kA/SMC-AppointmentService/internal/integrations/events"
	"github.com/m04kA/SMC-AppointmentService/internal/scheduling"
	"github.com/m04kA/SMC-AppointmentService/pkg/keylock"
	"github.com/m04kA/SMC-AppointmentService/pkg/logger"
	"github.com/m04kA/SMC-AppointmentService/pkg/metrics"
	"github.com/m04kA/SMC-AppointmentService/pkg/ptr"
	"github.com/m04kA/SMC-AppointmentService/pkg/txmanager"
	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

const monday types.DateString = "2024-01-15"

type fixedTime struct{ t time.Time }

func (f fixedTime) Now() time.Time { return f.t }

var bookedAt = time.Date(2024, 1, 10, 9, 0, 0, 0, time.UTC)

type outcomeRecorder struct {
	mu       sync.Mutex
	outcomes map[string]int
}

func (r *outcomeRecorder) ObserveBooking(outcome string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.outcomes == nil {
		r.outcomes = map[string]int{}
	}
	r.outcomes[outcome]++
}

type publisherSpy struct {
	mu     sync.Mutex
	events []events.Event
	err    error
}

func (p *publisherSpy) Publish(_ context.Context, e events.Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, e)
	return p.err
}

type env struct {
	store      *memory.Store
	cache      *cache.SlotsCache
	publisher  *publisherSpy
	outcomes   *outcomeRecorder
	providerID int64
	serviceID  int64
	uc         *UseCase
}

func newEnv(t *testing.T, policy scheduling.Policy) *env {
	t.Helper()
	ctx := context.Background()
	store := memory.NewStore()

	p, err := store.Providers().Create(ctx, &domain.Provider{
		Name: "Sarah Johnson", Email: "sarah@example.com", IsActive: true,
		WorkingHours: domain.DefaultWorkingHours(),
	})
	require.NoError(t, err)

	svc, err := store.Services().Create(ctx, &domain.Service{
		ProviderID: p.ID, Name: "Consultation", Duration: 60, Price: "150.00", IsActive: true,
	})
	require.NoError(t, err)

	c, err := cache.NewSlotsCache(16, nil)
	require.NoError(t, err)

	e := &env{
		store:      store,
		cache:      c,
		publisher:  &publisherSpy{},
		outcomes:   &outcomeRecorder{},
		providerID: p.ID,
		serviceID:  svc.ID,
	}
	e.uc = NewUseCase(
		store.Providers(), store.Services(), store.Appointments(),
		txmanager.NewNop(), keylock.New(), c, e.publisher, e.outcomes,
		policy, logger.NewNop(),
	).WithTimeProvider(fixedTime{t: bookedAt})
	return e
}

func (e *env) request(start types.TimeString) *Request {
	return &Request{
		ProviderID:      e.providerID,
		ServiceID:       e.serviceID,
		ClientName:      "Alice",
		ClientEmail:     "alice@example.com",
		ClientPhone:     "+1 555 0100",
		AppointmentDate: monday,
		StartTime:       start,
	}
}

func TestExecute_Success(t *testing.T) {
	e := newEnv(t, scheduling.DefaultPolicy())

	resp, err := e.uc.Execute(context.Background(), e.request("10:00"))
	require.NoError(t, err)

	a := resp.Appointment
	assert.NotZero(t, a.ID)
	assert.Equal(t, types.TimeString("11:00"), a.EndTime, "end time derived from service duration")
	assert.Equal(t, domain.StatusPending, a.Status)
	assert.Equal(t, bookedAt, a.CreatedAt)

	stored, err := e.store.Appointments().GetByID(context.Background(), a.ID)
	require.NoError(t, err)
	assert.Equal(t, bookedAt, stored.CreatedAt)

	require.Len(t, e.publisher.events, 1)
	assert.Equal(t, events.AppointmentCreated, e.publisher.events[0].Type)
	assert.Equal(t, 1, e.outcomes.outcomes[metrics.BookingCreated])
}

func TestExecute_ExplicitEndAndStatus(t *testing.T) {
	e := newEnv(t, scheduling.DefaultPolicy())
	req := e.request("10:00")
	req.EndTime = ptr.Ptr(types.TimeString("10:30"))
	req.Status = ptr.Ptr("confirmed")

	resp, err := e.uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, types.TimeString("10:30"), resp.Appointment.EndTime)
	assert.Equal(t, domain.StatusConfirmed, resp.Appointment.Status)
}

func TestExecute_Conflict(t *testing.T) {
	e := newEnv(t, scheduling.DefaultPolicy())
	ctx := context.Background()

	_, err := e.uc.Execute(ctx, e.request("10:00"))
	require.NoError(t, err)

	_, err = e.uc.Execute(ctx, e.request("10:30"))
	assert.ErrorIs(t, err, ErrSlotNotAvailable)

	list, err := e.store.Appointments().ListByProvider(ctx, domain.AppointmentsFilter{ProviderID: e.providerID})
	require.NoError(t, err)
	assert.Len(t, list, 1, "conflict must not write")

	_, err = e.uc.Execute(ctx, e.request("11:00"))
	assert.NoError(t, err, "touching interval is allowed")

	assert.Equal(t, 1, e.outcomes.outcomes[metrics.BookingConflict])
}

func TestExecute_CancelledPolicy(t *testing.T) {
	for _, tt := range []struct {
		name    string
		policy  scheduling.Policy
		wantErr error
	}{
		{"cancelled keeps blocking", scheduling.DefaultPolicy(), ErrSlotNotAvailable},
		{"cancelled releases slot", scheduling.Policy{CancelledReleasesSlot: true}, nil},
	} {
		t.Run(tt.name, func(t *testing.T) {
			e := newEnv(t, tt.policy)
			ctx := context.Background()

			_, err := e.store.Appointments().Create(ctx, &domain.Appointment{
				ProviderID: e.providerID, ServiceID: e.serviceID, AppointmentDate: monday,
				StartTime: "10:00", EndTime: "11:00", Status: domain.StatusCancelled,
			})
			require.NoError(t, err)

			_, err = e.uc.Execute(ctx, e.request("10:00"))
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestExecute_Validation(t *testing.T) {
	e := newEnv(t, scheduling.DefaultPolicy())

	tests := []struct {
		name   string
		mutate func(r *Request)
		field  string
	}{
		{"bad date", func(r *Request) { r.AppointmentDate = "2024-1-15" }, "appointmentDate"},
		{"bad time", func(r *Request) { r.StartTime = "9:00" }, "startTime"},
		{"missing name", func(r *Request) { r.ClientName = " " }, "clientName"},
		{"bad email", func(r *Request) { r.ClientEmail = "alice" }, "clientEmail"},
		{"missing phone", func(r *Request) { r.ClientPhone = "" }, "clientPhone"},
		{"bad status", func(r *Request) { r.Status = ptr.Ptr("done") }, "status"},
		{"end before start", func(r *Request) { r.EndTime = ptr.Ptr(types.TimeString("09:00")) }, "endTime"},
		{"crosses midnight", func(r *Request) { r.StartTime = "23:30" }, "startTime"},
		{"unknown provider", func(r *Request) { r.ProviderID = 999 }, "providerId"},
		{"unknown service", func(r *Request) { r.ServiceID = 999 }, "serviceId"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := e.request("10:00")
			tt.mutate(req)

			_, err := e.uc.Execute(context.Background(), req)
			require.ErrorIs(t, err, domain.ErrValidation)

			var verr *domain.ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Contains(t, verr.Fields, tt.field)
		})
	}
}

func TestExecute_ServiceOfAnotherProvider(t *testing.T) {
	e := newEnv(t, scheduling.DefaultPolicy())
	ctx := context.Background()

	other, err := e.store.Services().Create(ctx, &domain.Service{ProviderID: e.providerID + 100, Name: "X", Duration: 30, IsActive: true})
	require.NoError(t, err)

	req := e.request("10:00")
	req.ServiceID = other.ID
	_, err = e.uc.Execute(ctx, req)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestExecute_InvalidatesCache(t *testing.T) {
	e := newEnv(t, scheduling.DefaultPolicy())
	e.cache.Store(e.providerID, monday, []types.TimeString{"10:00"}, e.cache.Epoch())

	_, err := e.uc.Execute(context.Background(), e.request("10:00"))
	require.NoError(t, err)

	_, ok := e.cache.Get(e.providerID, monday)
	assert.False(t, ok)
}

func TestExecute_PublishFailureDoesNotFailBooking(t *testing.T) {
	e := newEnv(t, scheduling.DefaultPolicy())
	e.publisher.err = errors.New("broker down")

	resp, err := e.uc.Execute(context.Background(), e.request("10:00"))
	require.NoError(t, err)
	assert.NotNil(t, resp.Appointment)
}

func TestExecute_ConcurrentSameSlot(t *testing.T) {
	e := newEnv(t, scheduling.DefaultPolicy())
	const workers = 20

	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		successes int
		conflicts int
	)

	start := make(chan struct{})
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			_, err := e.uc.Execute(context.Background(), e.request("14:00"))
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				successes++
			case errors.Is(err, ErrSlotNotAvailable):
				conflicts++
			}
		}()
	}
	close(start)
	wg.Wait()

	assert.Equal(t, 1, successes)
	assert.Equal(t, workers-1, conflicts)

	list, err := e.store.Appointments().ListByProvider(context.Background(), domain.AppointmentsFilter{ProviderID: e.providerID})
	require.NoError(t, err)
	assert.Len(t, list, 1)
}
