package memory

import (
	"context"
	"sort"
	"strings"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/internal/infra/storage"
)

// ProviderRepository провайдеры в памяти
type ProviderRepository struct {
	store *Store
}

// Create сохраняет провайдера; email уникален без учета регистра
func (r *ProviderRepository) Create(_ context.Context, provider *domain.Provider) (*domain.Provider, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if r.emailTakenLocked(provider.Email, 0) {
		return nil, storage.ErrDuplicate
	}

	r.store.nextProviderID++
	created := provider.Clone()
	created.ID = r.store.nextProviderID
	r.store.providers[created.ID] = created

	return created.Clone(), nil
}

// GetByID возвращает провайдера независимо от признака активности
func (r *ProviderRepository) GetByID(_ context.Context, id int64) (*domain.Provider, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	p, ok := r.store.providers[id]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return p.Clone(), nil
}

// List возвращает активных провайдеров, отсортированных по ID
func (r *ProviderRepository) List(_ context.Context, filter domain.ProvidersFilter) ([]*domain.Provider, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	query := strings.ToLower(strings.TrimSpace(filter.Query))
	specialty := strings.ToLower(strings.TrimSpace(filter.Specialty))

	result := make([]*domain.Provider, 0)
	for _, p := range r.store.providers {
		if !p.IsActive {
			continue
		}
		if specialty != "" && strings.ToLower(p.Specialty) != specialty {
			continue
		}
		if query != "" &&
			!strings.Contains(strings.ToLower(p.Name), query) &&
			!strings.Contains(strings.ToLower(p.Specialty), query) {
			continue
		}
		result = append(result, p.Clone())
	}

	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

// Update частично обновляет провайдера
func (r *ProviderRepository) Update(_ context.Context, id int64, update *domain.ProviderUpdate) (*domain.Provider, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	p, ok := r.store.providers[id]
	if !ok {
		return nil, storage.ErrNotFound
	}

	if update.Email != nil && r.emailTakenLocked(*update.Email, id) {
		return nil, storage.ErrDuplicate
	}

	updated := p.Clone()
	update.Apply(updated)
	r.store.providers[id] = updated

	return updated.Clone(), nil
}

// Delete мягкое удаление: isActive = false
func (r *ProviderRepository) Delete(_ context.Context, id int64) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	p, ok := r.store.providers[id]
	if !ok {
		return storage.ErrNotFound
	}
	p.IsActive = false
	return nil
}

func (r *ProviderRepository) emailTakenLocked(email string, exceptID int64) bool {
	for _, p := range r.store.providers {
		if p.ID != exceptID && strings.EqualFold(p.Email, email) {
			return true
		}
	}
	return false
}
