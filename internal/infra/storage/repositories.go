package storage

import (
	"context"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
)

// ProviderRepository полный набор операций над провайдерами
type ProviderRepository interface {
	Create(ctx context.Context, provider *domain.Provider) (*domain.Provider, error)
	GetByID(ctx context.Context, id int64) (*domain.Provider, error)
	List(ctx context.Context, filter domain.ProvidersFilter) ([]*domain.Provider, error)
	Update(ctx context.Context, id int64, update *domain.ProviderUpdate) (*domain.Provider, error)
	Delete(ctx context.Context, id int64) error
}

// ServiceRepository полный набор операций над услугами
type ServiceRepository interface {
	Create(ctx context.Context, service *domain.Service) (*domain.Service, error)
	GetByID(ctx context.Context, id int64) (*domain.Service, error)
	ListByProvider(ctx context.Context, providerID int64) ([]*domain.Service, error)
	Update(ctx context.Context, id int64, update *domain.ServiceUpdate) (*domain.Service, error)
	Delete(ctx context.Context, id int64) error
}

// AppointmentRepository полный набор операций над записями
type AppointmentRepository interface {
	Create(ctx context.Context, appointment *domain.Appointment) (*domain.Appointment, error)
	GetByID(ctx context.Context, id int64) (*domain.Appointment, error)
	ListByProvider(ctx context.Context, filter domain.AppointmentsFilter) ([]*domain.Appointment, error)
	Update(ctx context.Context, id int64, update *domain.AppointmentUpdate) (*domain.Appointment, error)
	Delete(ctx context.Context, id int64) error
}

// TimeSlotRepository полный набор операций над шаблонами слотов
type TimeSlotRepository interface {
	Create(ctx context.Context, slot *domain.TimeSlot) (*domain.TimeSlot, error)
	GetByID(ctx context.Context, id int64) (*domain.TimeSlot, error)
	ListByProvider(ctx context.Context, providerID int64) ([]*domain.TimeSlot, error)
	Update(ctx context.Context, id int64, update *domain.TimeSlotUpdate) (*domain.TimeSlot, error)
	Delete(ctx context.Context, id int64) error
}

// MemoRepository полный набор операций над заметками
type MemoRepository interface {
	Create(ctx context.Context, memo *domain.Memo) (*domain.Memo, error)
	GetByID(ctx context.Context, id int64) (*domain.Memo, error)
	ListByProvider(ctx context.Context, providerID int64) ([]*domain.Memo, error)
	Update(ctx context.Context, id int64, update *domain.MemoUpdate) (*domain.Memo, error)
	Delete(ctx context.Context, id int64) error
}

// TaskRepository полный набор операций над задачами
type TaskRepository interface {
	Create(ctx context.Context, task *domain.Task) (*domain.Task, error)
	GetByID(ctx context.Context, id int64) (*domain.Task, error)
	ListByProvider(ctx context.Context, providerID int64) ([]*domain.Task, error)
	Update(ctx context.Context, id int64, update *domain.TaskUpdate) (*domain.Task, error)
	Delete(ctx context.Context, id int64) error
}

// ReviewRepository операции над отзывами
type ReviewRepository interface {
	Create(ctx context.Context, review *domain.Review) (*domain.Review, error)
	ListByProvider(ctx context.Context, providerID int64) ([]*domain.Review, error)
}

// Repositories набор репозиториев одного хранилища (memory или postgres)
type Repositories struct {
	Providers    ProviderRepository
	Services     ServiceRepository
	Appointments AppointmentRepository
	TimeSlots    TimeSlotRepository
	Memos        MemoRepository
	Tasks        TaskRepository
	Reviews      ReviewRepository
}
