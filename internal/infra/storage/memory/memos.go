package memory

import (
	"context"
	"sort"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/internal/infra/storage"
)

// MemoRepository заметки в памяти
type MemoRepository struct {
	store *Store
}

func (r *MemoRepository) Create(_ context.Context, memo *domain.Memo) (*domain.Memo, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	now := r.store.now()

	r.store.nextMemoID++
	created := *memo
	created.ID = r.store.nextMemoID
	created.CreatedAt = now
	created.UpdatedAt = now
	r.store.memos[created.ID] = &created

	result := created
	return &result, nil
}

func (r *MemoRepository) GetByID(_ context.Context, id int64) (*domain.Memo, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	m, ok := r.store.memos[id]
	if !ok {
		return nil, storage.ErrNotFound
	}
	result := *m
	return &result, nil
}

// ListByProvider возвращает заметки провайдера, новые первыми
func (r *MemoRepository) ListByProvider(_ context.Context, providerID int64) ([]*domain.Memo, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	result := make([]*domain.Memo, 0)
	for _, m := range r.store.memos {
		if m.ProviderID != providerID {
			continue
		}
		c := *m
		result = append(result, &c)
	}

	sort.Slice(result, func(i, j int) bool { return result[i].ID > result[j].ID })
	return result, nil
}

// Update частично обновляет заметку и обновляет UpdatedAt
func (r *MemoRepository) Update(_ context.Context, id int64, update *domain.MemoUpdate) (*domain.Memo, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	m, ok := r.store.memos[id]
	if !ok {
		return nil, storage.ErrNotFound
	}

	updated := *m
	update.Apply(&updated, r.store.now())
	r.store.memos[id] = &updated

	result := updated
	return &result, nil
}

// Delete физическое удаление
func (r *MemoRepository) Delete(_ context.Context, id int64) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.memos[id]; !ok {
		return storage.ErrNotFound
	}
	delete(r.store.memos, id)
	return nil
}
