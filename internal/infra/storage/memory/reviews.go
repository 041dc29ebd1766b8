package memory

import (
	"context"
	"sort"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
)

// ReviewRepository отзывы в памяти
type ReviewRepository struct {
	store *Store
}

func (r *ReviewRepository) Create(_ context.Context, review *domain.Review) (*domain.Review, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.nextReviewID++
	created := *review
	created.ID = r.store.nextReviewID
	created.CreatedAt = r.store.now()
	r.store.reviews[created.ID] = &created

	result := created
	return &result, nil
}

// ListByProvider возвращает отзывы провайдера, новые первыми
func (r *ReviewRepository) ListByProvider(_ context.Context, providerID int64) ([]*domain.Review, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	result := make([]*domain.Review, 0)
	for _, rv := range r.store.reviews {
		if rv.ProviderID != providerID {
			continue
		}
		c := *rv
		result = append(result, &c)
	}

	sort.Slice(result, func(i, j int) bool { return result[i].ID > result[j].ID })
	return result, nil
}
