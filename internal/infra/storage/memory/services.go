package memory

import (
	"context"
	"sort"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/internal/infra/storage"
)

// ServiceRepository услуги в памяти
type ServiceRepository struct {
	store *Store
}

func (r *ServiceRepository) Create(_ context.Context, service *domain.Service) (*domain.Service, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.nextServiceID++
	created := *service
	created.ID = r.store.nextServiceID
	r.store.services[created.ID] = &created

	result := created
	return &result, nil
}

// GetByID возвращает услугу, в том числе неактивную
func (r *ServiceRepository) GetByID(_ context.Context, id int64) (*domain.Service, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	s, ok := r.store.services[id]
	if !ok {
		return nil, storage.ErrNotFound
	}
	result := *s
	return &result, nil
}

// ListByProvider возвращает только активные услуги провайдера
func (r *ServiceRepository) ListByProvider(_ context.Context, providerID int64) ([]*domain.Service, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	result := make([]*domain.Service, 0)
	for _, s := range r.store.services {
		if s.ProviderID != providerID || !s.IsActive {
			continue
		}
		c := *s
		result = append(result, &c)
	}

	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (r *ServiceRepository) Update(_ context.Context, id int64, update *domain.ServiceUpdate) (*domain.Service, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	s, ok := r.store.services[id]
	if !ok {
		return nil, storage.ErrNotFound
	}

	updated := *s
	update.Apply(&updated)
	r.store.services[id] = &updated

	result := updated
	return &result, nil
}

// Delete мягкое удаление: isActive = false
func (r *ServiceRepository) Delete(_ context.Context, id int64) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	s, ok := r.store.services[id]
	if !ok {
		return storage.ErrNotFound
	}
	s.IsActive = false
	return nil
}
