package memory

import (
	"context"
	"sort"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/internal/infra/storage"
)

// TaskRepository задачи в памяти
type TaskRepository struct {
	store *Store
}

func (r *TaskRepository) Create(_ context.Context, task *domain.Task) (*domain.Task, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	now := r.store.now()

	r.store.nextTaskID++
	created := *task
	created.ID = r.store.nextTaskID
	created.CreatedAt = now
	created.UpdatedAt = now
	if created.Status == domain.TaskStatusCompleted && created.CompletedAt == nil {
		created.CompletedAt = &now
	}
	r.store.tasks[created.ID] = &created

	result := created
	return &result, nil
}

func (r *TaskRepository) GetByID(_ context.Context, id int64) (*domain.Task, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	t, ok := r.store.tasks[id]
	if !ok {
		return nil, storage.ErrNotFound
	}
	result := *t
	return &result, nil
}

// ListByProvider возвращает задачи провайдера, новые первыми
func (r *TaskRepository) ListByProvider(_ context.Context, providerID int64) ([]*domain.Task, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	result := make([]*domain.Task, 0)
	for _, t := range r.store.tasks {
		if t.ProviderID != providerID {
			continue
		}
		c := *t
		result = append(result, &c)
	}

	sort.Slice(result, func(i, j int) bool { return result[i].ID > result[j].ID })
	return result, nil
}

// Update частично обновляет задачу; при переходе в completed проставляет CompletedAt
func (r *TaskRepository) Update(_ context.Context, id int64, update *domain.TaskUpdate) (*domain.Task, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	t, ok := r.store.tasks[id]
	if !ok {
		return nil, storage.ErrNotFound
	}

	updated := *t
	update.Apply(&updated, r.store.now())
	r.store.tasks[id] = &updated

	result := updated
	return &result, nil
}

// Delete физическое удаление
func (r *TaskRepository) Delete(_ context.Context, id int64) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.tasks[id]; !ok {
		return storage.ErrNotFound
	}
	delete(r.store.tasks, id)
	return nil
}
