package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/internal/infra/storage"
	"github.com/m04kA/SMC-AppointmentService/pkg/dbmetrics"
	"github.com/m04kA/SMC-AppointmentService/pkg/psqlbuilder"
)

var reviewColumns = []string{
	"id",
	"appointment_id",
	"provider_id",
	"client_name",
	"rating",
	"comment",
	"created_at",
}

// ReviewRepository репозиторий отзывов
type ReviewRepository struct {
	db DBExecutor
}

// NewReviewRepository создает новый экземпляр репозитория отзывов
func NewReviewRepository(db DBExecutor) *ReviewRepository {
	return &ReviewRepository{db: db}
}

func (r *ReviewRepository) Create(ctx context.Context, rv *domain.Review) (*domain.Review, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("reviews").
		Columns("appointment_id", "provider_id", "client_name", "rating", "comment").
		Values(rv.AppointmentID, rv.ProviderID, rv.ClientName, rv.Rating, rv.Comment).
		Suffix("RETURNING " + strings.Join(reviewColumns, ", ")).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ReviewRepository.Create - build insert query: %v", storage.ErrBuildQuery, err)
	}

	created, err := scanReview(executor.QueryRowContext(ctx, query, args...))
	if err != nil {
		return nil, fmt.Errorf("%w: ReviewRepository.Create - execute insert: %v", storage.ErrExecQuery, err)
	}

	return created, nil
}

// ListByProvider получает отзывы провайдера, новые первыми
func (r *ReviewRepository) ListByProvider(ctx context.Context, providerID int64) ([]*domain.Review, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(reviewColumns...).
		From("reviews").
		Where(squirrel.Eq{"provider_id": providerID}).
		OrderBy("id DESC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ReviewRepository.ListByProvider - build select query: %v", storage.ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ReviewRepository.ListByProvider - execute query: %v", storage.ErrExecQuery, err)
	}
	defer rows.Close()

	reviews := make([]*domain.Review, 0)
	for rows.Next() {
		rv, err := scanReview(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: ReviewRepository.ListByProvider - scan review: %v", storage.ErrScanRow, err)
		}
		reviews = append(reviews, rv)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ReviewRepository.ListByProvider - rows error: %v", storage.ErrScanRow, err)
	}

	return reviews, nil
}

func scanReview(row rowScanner) (*domain.Review, error) {
	var (
		rv      domain.Review
		comment sql.NullString
	)

	err := row.Scan(
		&rv.ID,
		&rv.AppointmentID,
		&rv.ProviderID,
		&rv.ClientName,
		&rv.Rating,
		&comment,
		&rv.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	rv.Comment = nullStringPtr(comment)
	return &rv, nil
}
