package memory

import (
	"sync"
	"time"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/internal/infra/storage"
)

// Store хранилище всех сущностей в памяти.
// Единственный владелец данных: наружу отдаются только копии.
// У каждого типа сущности свой счетчик идентификаторов.
type Store struct {
	mu sync.RWMutex

	providers    map[int64]*domain.Provider
	services     map[int64]*domain.Service
	appointments map[int64]*domain.Appointment
	timeSlots    map[int64]*domain.TimeSlot
	memos        map[int64]*domain.Memo
	tasks        map[int64]*domain.Task
	reviews      map[int64]*domain.Review

	nextProviderID    int64
	nextServiceID     int64
	nextAppointmentID int64
	nextTimeSlotID    int64
	nextMemoID        int64
	nextTaskID        int64
	nextReviewID      int64

	now func() time.Time
}

// NewStore создает пустое хранилище
func NewStore() *Store {
	return &Store{
		providers:    make(map[int64]*domain.Provider),
		services:     make(map[int64]*domain.Service),
		appointments: make(map[int64]*domain.Appointment),
		timeSlots:    make(map[int64]*domain.TimeSlot),
		memos:        make(map[int64]*domain.Memo),
		tasks:        make(map[int64]*domain.Task),
		reviews:      make(map[int64]*domain.Review),
		now:          time.Now,
	}
}

// WithClock подменяет источник времени (для тестов)
func (s *Store) WithClock(now func() time.Time) *Store {
	s.now = now
	return s
}

// Providers репозиторий провайдеров
func (s *Store) Providers() *ProviderRepository {
	return &ProviderRepository{store: s}
}

// Services репозиторий услуг
func (s *Store) Services() *ServiceRepository {
	return &ServiceRepository{store: s}
}

// Appointments репозиторий записей
func (s *Store) Appointments() *AppointmentRepository {
	return &AppointmentRepository{store: s}
}

// TimeSlots репозиторий шаблонов слотов
func (s *Store) TimeSlots() *TimeSlotRepository {
	return &TimeSlotRepository{store: s}
}

// Memos репозиторий заметок
func (s *Store) Memos() *MemoRepository {
	return &MemoRepository{store: s}
}

// Tasks репозиторий задач
func (s *Store) Tasks() *TaskRepository {
	return &TaskRepository{store: s}
}

// Reviews репозиторий отзывов
func (s *Store) Reviews() *ReviewRepository {
	return &ReviewRepository{store: s}
}

// Repositories возвращает все репозитории хранилища
func (s *Store) Repositories() *storage.Repositories {
	return &storage.Repositories{
		Providers:    s.Providers(),
		Services:     s.Services(),
		Appointments: s.Appointments(),
		TimeSlots:    s.TimeSlots(),
		Memos:        s.Memos(),
		Tasks:        s.Tasks(),
		Reviews:      s.Reviews(),
	}
}
