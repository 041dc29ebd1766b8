package memory

import (
	"context"
	"sort"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/internal/infra/storage"
)

// AppointmentRepository записи в памяти
type AppointmentRepository struct {
	store *Store
}

// Create сохраняет запись. Пустой CreatedAt проставляется хранилищем.
func (r *AppointmentRepository) Create(_ context.Context, appointment *domain.Appointment) (*domain.Appointment, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.nextAppointmentID++
	created := appointment.Clone()
	created.ID = r.store.nextAppointmentID
	if created.CreatedAt.IsZero() {
		created.CreatedAt = r.store.now()
	}
	r.store.appointments[created.ID] = created

	return created.Clone(), nil
}

func (r *AppointmentRepository) GetByID(_ context.Context, id int64) (*domain.Appointment, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	a, ok := r.store.appointments[id]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return a.Clone(), nil
}

// ListByProvider возвращает записи провайдера во всех статусах,
// опционально за одну дату, по возрастанию даты и времени начала
func (r *AppointmentRepository) ListByProvider(_ context.Context, filter domain.AppointmentsFilter) ([]*domain.Appointment, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	result := make([]*domain.Appointment, 0)
	for _, a := range r.store.appointments {
		if a.ProviderID != filter.ProviderID {
			continue
		}
		if filter.Date != nil && a.AppointmentDate != *filter.Date {
			continue
		}
		result = append(result, a.Clone())
	}

	sort.Slice(result, func(i, j int) bool {
		if result[i].AppointmentDate != result[j].AppointmentDate {
			return result[i].AppointmentDate < result[j].AppointmentDate
		}
		if result[i].StartTime != result[j].StartTime {
			return result[i].StartTime.IsBefore(result[j].StartTime)
		}
		return result[i].ID < result[j].ID
	})
	return result, nil
}

func (r *AppointmentRepository) Update(_ context.Context, id int64, update *domain.AppointmentUpdate) (*domain.Appointment, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	a, ok := r.store.appointments[id]
	if !ok {
		return nil, storage.ErrNotFound
	}

	updated := a.Clone()
	update.Apply(updated)
	// Apply переносит указатель Notes из update
	updated = updated.Clone()
	r.store.appointments[id] = updated

	return updated.Clone(), nil
}

// Delete физическое удаление
func (r *AppointmentRepository) Delete(_ context.Context, id int64) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.appointments[id]; !ok {
		return storage.ErrNotFound
	}
	delete(r.store.appointments, id)
	return nil
}
