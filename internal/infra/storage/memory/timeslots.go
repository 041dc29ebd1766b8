package memory

import (
	"context"
	"sort"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/internal/infra/storage"
)

// TimeSlotRepository шаблоны слотов в памяти
type TimeSlotRepository struct {
	store *Store
}

func (r *TimeSlotRepository) Create(_ context.Context, slot *domain.TimeSlot) (*domain.TimeSlot, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.nextTimeSlotID++
	created := *slot
	created.ID = r.store.nextTimeSlotID
	r.store.timeSlots[created.ID] = &created

	result := created
	return &result, nil
}

func (r *TimeSlotRepository) GetByID(_ context.Context, id int64) (*domain.TimeSlot, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	s, ok := r.store.timeSlots[id]
	if !ok {
		return nil, storage.ErrNotFound
	}
	result := *s
	return &result, nil
}

// ListByProvider возвращает только доступные слоты: по дню недели, затем по времени
func (r *TimeSlotRepository) ListByProvider(_ context.Context, providerID int64) ([]*domain.TimeSlot, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	result := make([]*domain.TimeSlot, 0)
	for _, s := range r.store.timeSlots {
		if s.ProviderID != providerID || !s.IsAvailable {
			continue
		}
		c := *s
		result = append(result, &c)
	}

	sort.Slice(result, func(i, j int) bool {
		if result[i].DayOfWeek != result[j].DayOfWeek {
			return result[i].DayOfWeek < result[j].DayOfWeek
		}
		return result[i].StartTime.IsBefore(result[j].StartTime)
	})
	return result, nil
}

func (r *TimeSlotRepository) Update(_ context.Context, id int64, update *domain.TimeSlotUpdate) (*domain.TimeSlot, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	s, ok := r.store.timeSlots[id]
	if !ok {
		return nil, storage.ErrNotFound
	}

	updated := *s
	update.Apply(&updated)
	r.store.timeSlots[id] = &updated

	result := updated
	return &result, nil
}

// Delete мягкое удаление: isAvailable = false
func (r *TimeSlotRepository) Delete(_ context.Context, id int64) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	s, ok := r.store.timeSlots[id]
	if !ok {
		return storage.ErrNotFound
	}
	s.IsAvailable = false
	return nil
}
