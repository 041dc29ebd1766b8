package api

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	analyticsHandler "github.com/m04kA/SMC-AppointmentService/internal/api/handlers/analytics"
	checkSlotHandler "github.com/m04kA/SMC-AppointmentService/internal/api/handlers/check_slot"
	createAppointmentHandler "github.com/m04kA/SMC-AppointmentService/internal/api/handlers/create_appointment"
	deleteAppointmentHandler "github.com/m04kA/SMC-AppointmentService/internal/api/handlers/delete_appointment"
	getAppointmentHandler "github.com/m04kA/SMC-AppointmentService/internal/api/handlers/get_appointment"
	getAvailableSlotsHandler "github.com/m04kA/SMC-AppointmentService/internal/api/handlers/get_available_slots"
	getProviderAppointmentsHandler "github.com/m04kA/SMC-AppointmentService/internal/api/handlers/get_provider_appointments"
	"github.com/m04kA/SMC-AppointmentService/internal/api/handlers/health"
	memosHandler "github.com/m04kA/SMC-AppointmentService/internal/api/handlers/memos"
	providersHandler "github.com/m04kA/SMC-AppointmentService/internal/api/handlers/providers"
	reviewsHandler "github.com/m04kA/SMC-AppointmentService/internal/api/handlers/reviews"
	servicesHandler "github.com/m04kA/SMC-AppointmentService/internal/api/handlers/services"
	tasksHandler "github.com/m04kA/SMC-AppointmentService/internal/api/handlers/tasks"
	timeslotsHandler "github.com/m04kA/SMC-AppointmentService/internal/api/handlers/timeslots"
	updateAppointmentHandler "github.com/m04kA/SMC-AppointmentService/internal/api/handlers/update_appointment"
	"github.com/m04kA/SMC-AppointmentService/internal/api/middleware"
)

// Handlers все HTTP обработчики сервиса
type Handlers struct {
	Providers               *providersHandler.Handler
	Services                *servicesHandler.Handler
	TimeSlots               *timeslotsHandler.Handler
	GetAvailableSlots       *getAvailableSlotsHandler.Handler
	CheckSlot               *checkSlotHandler.Handler
	GetProviderAppointments *getProviderAppointmentsHandler.Handler
	GetAppointment          *getAppointmentHandler.Handler
	CreateAppointment       *createAppointmentHandler.Handler
	UpdateAppointment       *updateAppointmentHandler.Handler
	DeleteAppointment       *deleteAppointmentHandler.Handler
	Memos                   *memosHandler.Handler
	Tasks                   *tasksHandler.Handler
	Reviews                 *reviewsHandler.Handler
	Analytics               *analyticsHandler.Handler
}

// Options инфраструктурные настройки роутера; нулевые значения выключают соответствующие части
type Options struct {
	Logger      middleware.Logger
	HTTPMetrics middleware.HTTPMetrics // nil - метрики выключены
	MetricsPath string
	RateLimiter *middleware.RateLimiter // nil - без ограничения частоты создания записей
	Tracing     bool
	ServiceName string
}

// NewRouter собирает маршруты под префиксом /api
func NewRouter(h *Handlers, opts Options) http.Handler {
	r := mux.NewRouter()

	r.Use(middleware.RequestID)
	if opts.Logger != nil {
		r.Use(middleware.AccessLog(opts.Logger))
	}
	if opts.HTTPMetrics != nil {
		r.Use(middleware.MetricsMiddleware(opts.HTTPMetrics))
		r.Handle(opts.MetricsPath, promhttp.Handler()).Methods(http.MethodGet)
	}

	api := r.PathPrefix("/api").Subrouter()

	api.HandleFunc("/health", health.Handle).Methods(http.MethodGet)

	// --- Провайдеры ---
	api.HandleFunc("/providers", h.Providers.List).Methods(http.MethodGet)
	api.HandleFunc("/providers", h.Providers.Register).Methods(http.MethodPost)
	api.HandleFunc("/providers/{providerId:[0-9]+}", h.Providers.Get).Methods(http.MethodGet)
	api.HandleFunc("/providers/{providerId:[0-9]+}", h.Providers.Update).Methods(http.MethodPatch)
	api.HandleFunc("/providers/{providerId:[0-9]+}", h.Providers.Delete).Methods(http.MethodDelete)
	api.HandleFunc("/providers/{providerId:[0-9]+}/update-rating", h.Reviews.UpdateRating).Methods(http.MethodPost)

	// --- Услуги ---
	api.HandleFunc("/providers/{providerId:[0-9]+}/services", h.Services.ListByProvider).Methods(http.MethodGet)
	api.HandleFunc("/services", h.Services.Create).Methods(http.MethodPost)
	api.HandleFunc("/services/{serviceId:[0-9]+}", h.Services.Update).Methods(http.MethodPatch)
	api.HandleFunc("/services/{serviceId:[0-9]+}", h.Services.Delete).Methods(http.MethodDelete)

	// --- Шаблоны слотов ---
	api.HandleFunc("/providers/{providerId:[0-9]+}/timeslots", h.TimeSlots.ListByProvider).Methods(http.MethodGet)
	api.HandleFunc("/timeslots", h.TimeSlots.Create).Methods(http.MethodPost)
	api.HandleFunc("/timeslots/{timeSlotId:[0-9]+}", h.TimeSlots.Update).Methods(http.MethodPatch)
	api.HandleFunc("/timeslots/{timeSlotId:[0-9]+}", h.TimeSlots.Delete).Methods(http.MethodDelete)

	// --- Доступность и записи ---
	api.HandleFunc("/providers/{providerId:[0-9]+}/available-slots", h.GetAvailableSlots.Handle).Methods(http.MethodGet)
	api.HandleFunc("/providers/{providerId:[0-9]+}/slot-availability", h.CheckSlot.Handle).Methods(http.MethodGet)
	api.HandleFunc("/providers/{providerId:[0-9]+}/appointments", h.GetProviderAppointments.Handle).Methods(http.MethodGet)
	api.HandleFunc("/appointments/{appointmentId:[0-9]+}", h.GetAppointment.Handle).Methods(http.MethodGet)
	api.HandleFunc("/appointments/{appointmentId:[0-9]+}", h.UpdateAppointment.Handle).Methods(http.MethodPatch)
	api.HandleFunc("/appointments/{appointmentId:[0-9]+}", h.DeleteAppointment.Handle).Methods(http.MethodDelete)

	var create http.Handler = http.HandlerFunc(h.CreateAppointment.Handle)
	if opts.RateLimiter != nil {
		create = opts.RateLimiter.Middleware(create)
	}
	api.Handle("/appointments", create).Methods(http.MethodPost)

	// --- Заметки и задачи ---
	api.HandleFunc("/providers/{providerId:[0-9]+}/memos", h.Memos.ListByProvider).Methods(http.MethodGet)
	api.HandleFunc("/memos", h.Memos.Create).Methods(http.MethodPost)
	api.HandleFunc("/memos/{memoId:[0-9]+}", h.Memos.Update).Methods(http.MethodPatch)
	api.HandleFunc("/memos/{memoId:[0-9]+}", h.Memos.Delete).Methods(http.MethodDelete)

	api.HandleFunc("/providers/{providerId:[0-9]+}/tasks", h.Tasks.ListByProvider).Methods(http.MethodGet)
	api.HandleFunc("/tasks", h.Tasks.Create).Methods(http.MethodPost)
	api.HandleFunc("/tasks/{taskId:[0-9]+}", h.Tasks.Update).Methods(http.MethodPatch)
	api.HandleFunc("/tasks/{taskId:[0-9]+}", h.Tasks.Delete).Methods(http.MethodDelete)

	// --- Отзывы и аналитика ---
	api.HandleFunc("/providers/{providerId:[0-9]+}/reviews", h.Reviews.ListByProvider).Methods(http.MethodGet)
	api.HandleFunc("/reviews", h.Reviews.Create).Methods(http.MethodPost)
	api.HandleFunc("/analytics/{providerId:[0-9]+}", h.Analytics.Handle).Methods(http.MethodGet)

	if opts.Tracing {
		return otelhttp.NewHandler(r, opts.ServiceName)
	}
	return r
}
