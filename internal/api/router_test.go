package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	analyticsHandler "github.com/m04kA/SMC-AppointmentService/internal/api/handlers/analytics"
	checkSlotHandler "github.com/m04kA/SMC-AppointmentService/internal/api/handlers/check_slot"
	createAppointmentHandler "github.com/m04kA/SMC-AppointmentService/internal/api/handlers/create_appointment"
	deleteAppointmentHandler "github.com/m04kA/SMC-AppointmentService/internal/api/handlers/delete_appointment"
	getAppointmentHandler "github.com/m04kA/SMC-AppointmentService/internal/api/handlers/get_appointment"
	getAvailableSlotsHandler "github.com/m04kA/SMC-AppointmentService/internal/api/handlers/get_available_slots"
	getProviderAppointmentsHandler "github.com/m04kA/SMC-AppointmentService/internal/api/handlers/get_provider_appointments"
	memosHandler "github.com/m04kA/SMC-AppointmentService/internal/api/handlers/memos"
	providersHandler "github.com/m04kA/SMC-AppointmentService/internal/api/handlers/providers"
	reviewsHandler "github.com/m04kA/SMC-AppointmentService/internal/api/handlers/reviews"
	servicesHandler "github.com/m04kA/SMC-AppointmentService/internal/api/handlers/services"
	tasksHandler "github.com/m04kA/SMC-AppointmentService/internal/api/handlers/tasks"
	timeslotsHandler "github.com/m04kA/SMC-AppointmentService/internal/api/handlers/timeslots"
	updateAppointmentHandler "github.com/m04kA/SMC-AppointmentService/internal/api/handlers/update_appointment"
	"github.com/m04kA/SMC-AppointmentService/internal/infra/cache"
	"github.com/m04kA/SMC-AppointmentService/internal/infra/storage/memory"
	"github.com/m04kA/SMC-AppointmentService/internal/integrations/events"
	"github.com/m04kA/SMC-AppointmentService/internal/scheduling"
	analyticsService "github.com/m04kA/SMC-AppointmentService/internal/service/analytics"
	appointmentsService "github.com/m04kA/SMC-AppointmentService/internal/service/appointments"
	"github.com/m04kA/SMC-AppointmentService/internal/service/catalog"
	memosService "github.com/m04kA/SMC-AppointmentService/internal/service/memos"
	providersService "github.com/m04kA/SMC-AppointmentService/internal/service/providers"
	reviewsService "github.com/m04kA/SMC-AppointmentService/internal/service/reviews"
	tasksService "github.com/m04kA/SMC-AppointmentService/internal/service/tasks"
	timeslotsService "github.com/m04kA/SMC-AppointmentService/internal/service/timeslots"
	checkSlotUC "github.com/m04kA/SMC-AppointmentService/internal/usecase/check_slot"
	createAppointmentUC "github.com/m04kA/SMC-AppointmentService/internal/usecase/create_appointment"
	deleteAppointmentUC "github.com/m04kA/SMC-AppointmentService/internal/usecase/delete_appointment"
	getAvailableSlotsUC "github.com/m04kA/SMC-AppointmentService/internal/usecase/get_available_slots"
	updateAppointmentUC "github.com/m04kA/SMC-AppointmentService/internal/usecase/update_appointment"
	"github.com/m04kA/SMC-AppointmentService/pkg/keylock"
	"github.com/m04kA/SMC-AppointmentService/pkg/logger"
	"github.com/m04kA/SMC-AppointmentService/pkg/metrics"
	"github.com/m04kA/SMC-AppointmentService/pkg/txmanager"
)

const monday = "2024-01-15"

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	log := logger.NewNop()
	store := memory.NewStore()
	slots, err := cache.NewSlotsCache(64, nil)
	require.NoError(t, err)

	policy := scheduling.DefaultPolicy()
	tx := txmanager.NewNop()
	locker := keylock.New()
	publisher := events.NopPublisher{}
	var bookingMetrics *metrics.Metrics

	providers := providersService.NewService(store.Providers(), slots, log)
	appointments := appointmentsService.NewService(store.Appointments(), log)

	h := &Handlers{
		Providers: providersHandler.NewHandler(providers, log),
		Services:  servicesHandler.NewHandler(catalog.NewService(store.Services(), store.Providers(), log), log),
		TimeSlots: timeslotsHandler.NewHandler(timeslotsService.NewService(store.TimeSlots(), log), log),
		GetAvailableSlots: getAvailableSlotsHandler.NewHandler(
			getAvailableSlotsUC.NewUseCase(store.Providers(), store.Appointments(), slots, policy, log), log),
		CheckSlot: checkSlotHandler.NewHandler(
			checkSlotUC.NewUseCase(store.Appointments(), policy, log), log),
		GetProviderAppointments: getProviderAppointmentsHandler.NewHandler(appointments, log),
		GetAppointment:          getAppointmentHandler.NewHandler(appointments, log),
		CreateAppointment: createAppointmentHandler.NewHandler(
			createAppointmentUC.NewUseCase(store.Providers(), store.Services(), store.Appointments(),
				tx, locker, slots, publisher, bookingMetrics, policy, log), log),
		UpdateAppointment: updateAppointmentHandler.NewHandler(
			updateAppointmentUC.NewUseCase(store.Services(), store.Appointments(),
				tx, locker, slots, publisher, policy, log), log),
		DeleteAppointment: deleteAppointmentHandler.NewHandler(
			deleteAppointmentUC.NewUseCase(store.Appointments(), slots, publisher, log), log),
		Memos:     memosHandler.NewHandler(memosService.NewService(store.Memos(), log), log),
		Tasks:     tasksHandler.NewHandler(tasksService.NewService(store.Tasks(), log), log),
		Reviews:   reviewsHandler.NewHandler(reviewsService.NewService(store.Reviews(), store.Appointments(), store.Providers(), log), log),
		Analytics: analyticsHandler.NewHandler(analyticsService.NewService(store.Appointments(), store.Services(), store.Reviews(), log), log),
	}

	return NewRouter(h, Options{Logger: log})
}

func doJSON(t *testing.T, h http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), v))
}

// seedProvider регистрирует провайдера с часами 09:00-10:00 по понедельникам и услугу на 30 минут
func seedProvider(t *testing.T, h http.Handler) (providerID, serviceID int64) {
	t.Helper()

	rec := doJSON(t, h, http.MethodPost, "/api/providers", map[string]interface{}{
		"name":         "Dr. Smith",
		"title":        "Therapist",
		"specialty":    "Massage",
		"email":        "smith@example.com",
		"phone":        "+1-555-0100",
		"workingHours": map[string]interface{}{"start": "09:00", "end": "10:00", "days": []int{1}},
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var provider providersHandler.ProviderResponse
	decode(t, rec, &provider)

	rec = doJSON(t, h, http.MethodPost, "/api/services", map[string]interface{}{
		"providerId": provider.ID,
		"name":       "Short massage",
		"duration":   30,
		"price":      "40",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var service servicesHandler.ServiceResponse
	decode(t, rec, &service)
	assert.Equal(t, "40.00", service.Price)

	return provider.ID, service.ID
}

func booking(providerID, serviceID int64, start string) map[string]interface{} {
	return map[string]interface{}{
		"providerId":      providerID,
		"serviceId":       serviceID,
		"clientName":      "Alice",
		"clientEmail":     "alice@example.com",
		"clientPhone":     "+1-555-0101",
		"appointmentDate": monday,
		"startTime":       start,
	}
}

func TestRouter_Health(t *testing.T) {
	h := newTestRouter(t)

	rec := doJSON(t, h, http.MethodGet, "/api/health", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]string
	decode(t, rec, &body)
	assert.Equal(t, "healthy", body["status"])
	assert.NotEmpty(t, body["timestamp"])
	assert.NotEmpty(t, rec.Header().Get("X-Request-Id"))
}

func TestRouter_BookingFlow(t *testing.T) {
	h := newTestRouter(t)
	providerID, serviceID := seedProvider(t, h)
	slotsPath := "/api/providers/" + itoa(providerID) + "/available-slots?date=" + monday

	var slots []string
	rec := doJSON(t, h, http.MethodGet, slotsPath, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	decode(t, rec, &slots)
	assert.Equal(t, []string{"09:00", "09:30"}, slots)

	rec = doJSON(t, h, http.MethodPost, "/api/appointments", booking(providerID, serviceID, "09:00"))
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var created map[string]interface{}
	decode(t, rec, &created)
	assert.Equal(t, "09:30", created["endTime"])
	assert.Equal(t, "pending", created["status"])
	appointmentPath := "/api/appointments/" + itoa(int64(created["id"].(float64)))

	rec = doJSON(t, h, http.MethodGet, slotsPath, nil)
	decode(t, rec, &slots)
	assert.Equal(t, []string{"09:30"}, slots)

	rec = doJSON(t, h, http.MethodPost, "/api/appointments", booking(providerID, serviceID, "09:00"))
	assert.Equal(t, http.StatusConflict, rec.Code)

	var check map[string]bool
	rec = doJSON(t, h, http.MethodGet, "/api/providers/"+itoa(providerID)+
		"/slot-availability?date="+monday+"&startTime=09:15&endTime=09:45", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	decode(t, rec, &check)
	assert.False(t, check["available"])

	var list []map[string]interface{}
	rec = doJSON(t, h, http.MethodGet, "/api/providers/"+itoa(providerID)+"/appointments?date="+monday, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	decode(t, rec, &list)
	assert.Len(t, list, 1)

	// отмена при политике по умолчанию не освобождает слот
	rec = doJSON(t, h, http.MethodPatch, appointmentPath, map[string]string{"status": "cancelled"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	rec = doJSON(t, h, http.MethodGet, slotsPath, nil)
	decode(t, rec, &slots)
	assert.Equal(t, []string{"09:30"}, slots)

	rec = doJSON(t, h, http.MethodDelete, appointmentPath, nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	rec = doJSON(t, h, http.MethodDelete, appointmentPath, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	rec = doJSON(t, h, http.MethodGet, appointmentPath, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = doJSON(t, h, http.MethodGet, slotsPath, nil)
	decode(t, rec, &slots)
	assert.Equal(t, []string{"09:00", "09:30"}, slots)
}

func TestRouter_BadRequests(t *testing.T) {
	h := newTestRouter(t)
	providerID, serviceID := seedProvider(t, h)

	rec := doJSON(t, h, http.MethodGet, "/api/providers/"+itoa(providerID)+"/available-slots", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(t, h, http.MethodGet, "/api/providers/"+itoa(providerID)+"/available-slots?date=15-01-2024", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	bad := booking(providerID, serviceID, "9am")
	bad["clientEmail"] = "not-an-email"
	rec = doJSON(t, h, http.MethodPost, "/api/appointments", bad)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	var body struct {
		Error  string            `json:"error"`
		Fields map[string]string `json:"fields"`
	}
	decode(t, rec, &body)
	assert.Contains(t, body.Fields, "startTime")
	assert.Contains(t, body.Fields, "clientEmail")

	req := httptest.NewRequest(http.MethodPost, "/api/appointments", bytes.NewBufferString("{"))
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	rec = doJSON(t, h, http.MethodPatch, "/api/appointments/999", map[string]string{"notes": "x"})
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = doJSON(t, h, http.MethodGet, "/api/providers/999", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRouter_ProviderDuplicateEmail(t *testing.T) {
	h := newTestRouter(t)
	seedProvider(t, h)

	rec := doJSON(t, h, http.MethodPost, "/api/providers", map[string]interface{}{
		"name":      "Other",
		"title":     "Therapist",
		"specialty": "Massage",
		"email":     "smith@example.com",
		"phone":     "+1-555-0199",
	})
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestRouter_ReviewsAndAnalytics(t *testing.T) {
	h := newTestRouter(t)
	providerID, serviceID := seedProvider(t, h)

	req := booking(providerID, serviceID, "09:00")
	req["status"] = "completed"
	rec := doJSON(t, h, http.MethodPost, "/api/appointments", req)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var created map[string]interface{}
	decode(t, rec, &created)

	for _, rating := range []int{5, 4} {
		rec = doJSON(t, h, http.MethodPost, "/api/reviews", map[string]interface{}{
			"appointmentId": created["id"],
			"providerId":    providerID,
			"clientName":    "Alice",
			"rating":        rating,
		})
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	}

	rec = doJSON(t, h, http.MethodPost, "/api/reviews", map[string]interface{}{
		"appointmentId": created["id"],
		"providerId":    providerID,
		"clientName":    "Alice",
		"rating":        9,
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var rating reviewsHandler.RatingResponse
	rec = doJSON(t, h, http.MethodPost, "/api/providers/"+itoa(providerID)+"/update-rating", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	decode(t, rec, &rating)
	assert.Equal(t, reviewsHandler.RatingResponse{Rating: "4.50", ReviewCount: 2}, rating)

	var analytics analyticsHandler.AnalyticsResponse
	rec = doJSON(t, h, http.MethodGet, "/api/analytics/"+itoa(providerID)+"?date="+monday, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	decode(t, rec, &analytics)
	assert.Equal(t, 1, analytics.TotalAppointments)
	assert.Equal(t, 1, analytics.CompletedAppointments)
	assert.Equal(t, "40.00", analytics.TotalRevenue)
	assert.Equal(t, "4.50", analytics.AverageRating)
}

func TestRouter_MemosAndTasks(t *testing.T) {
	h := newTestRouter(t)
	providerID, _ := seedProvider(t, h)

	rec := doJSON(t, h, http.MethodPost, "/api/memos", map[string]interface{}{
		"providerId": providerID, "title": "Supplies", "content": "Order oil",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var memo memosHandler.MemoResponse
	decode(t, rec, &memo)
	assert.Equal(t, "general", memo.Category)

	rec = doJSON(t, h, http.MethodDelete, "/api/memos/"+itoa(memo.ID), nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = doJSON(t, h, http.MethodPost, "/api/tasks", map[string]interface{}{
		"providerId": providerID, "title": "Call supplier",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var task tasksHandler.TaskResponse
	decode(t, rec, &task)
	assert.Equal(t, "pending", task.Status)
	assert.Nil(t, task.CompletedAt)

	rec = doJSON(t, h, http.MethodPatch, "/api/tasks/"+itoa(task.ID), map[string]string{"status": "completed"})
	require.Equal(t, http.StatusOK, rec.Code)
	decode(t, rec, &task)
	assert.NotNil(t, task.CompletedAt)

	rec = doJSON(t, h, http.MethodPatch, "/api/tasks/"+itoa(task.ID), map[string]string{"priority": "whenever"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func itoa(id int64) string {
	return strconv.FormatInt(id, 10)
}
