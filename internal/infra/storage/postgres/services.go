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

var serviceColumns = []string{
	"id",
	"provider_id",
	"name",
	"description",
	"duration",
	"price",
	"is_active",
}

// ServiceRepository репозиторий услуг
type ServiceRepository struct {
	db DBExecutor
}

// NewServiceRepository создает новый экземпляр репозитория услуг
func NewServiceRepository(db DBExecutor) *ServiceRepository {
	return &ServiceRepository{db: db}
}

func (r *ServiceRepository) Create(ctx context.Context, s *domain.Service) (*domain.Service, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("services").
		Columns("provider_id", "name", "description", "duration", "price", "is_active").
		Values(s.ProviderID, s.Name, s.Description, s.Duration, s.Price, s.IsActive).
		Suffix("RETURNING " + strings.Join(serviceColumns, ", ")).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ServiceRepository.Create - build insert query: %v", storage.ErrBuildQuery, err)
	}

	created, err := scanService(executor.QueryRowContext(ctx, query, args...))
	if err != nil {
		return nil, fmt.Errorf("%w: ServiceRepository.Create - execute insert: %v", storage.ErrExecQuery, err)
	}

	return created, nil
}

func (r *ServiceRepository) GetByID(ctx context.Context, id int64) (*domain.Service, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(serviceColumns...).
		From("services").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ServiceRepository.GetByID - build select query: %v", storage.ErrBuildQuery, err)
	}

	s, err := scanService(executor.QueryRowContext(ctx, query, args...))
	if err := scanOne("ServiceRepository.GetByID", err); err != nil {
		return nil, err
	}

	return s, nil
}

// ListByProvider получает активные услуги провайдера
func (r *ServiceRepository) ListByProvider(ctx context.Context, providerID int64) ([]*domain.Service, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(serviceColumns...).
		From("services").
		Where(squirrel.Eq{"provider_id": providerID, "is_active": true}).
		OrderBy("id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ServiceRepository.ListByProvider - build select query: %v", storage.ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ServiceRepository.ListByProvider - execute query: %v", storage.ErrExecQuery, err)
	}
	defer rows.Close()

	services := make([]*domain.Service, 0)
	for rows.Next() {
		s, err := scanService(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: ServiceRepository.ListByProvider - scan service: %v", storage.ErrScanRow, err)
		}
		services = append(services, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ServiceRepository.ListByProvider - rows error: %v", storage.ErrScanRow, err)
	}

	return services, nil
}

func (r *ServiceRepository) Update(ctx context.Context, id int64, update *domain.ServiceUpdate) (*domain.Service, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	set := map[string]interface{}{}
	if update.Name != nil {
		set["name"] = *update.Name
	}
	if update.Description != nil {
		set["description"] = *update.Description
	}
	if update.Duration != nil {
		set["duration"] = *update.Duration
	}
	if update.Price != nil {
		set["price"] = *update.Price
	}
	if update.IsActive != nil {
		set["is_active"] = *update.IsActive
	}

	if len(set) == 0 {
		return r.GetByID(ctx, id)
	}

	query, args, err := psqlbuilder.Update("services").
		SetMap(set).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING " + strings.Join(serviceColumns, ", ")).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ServiceRepository.Update - build update query: %v", storage.ErrBuildQuery, err)
	}

	s, err := scanService(executor.QueryRowContext(ctx, query, args...))
	if err := scanOne("ServiceRepository.Update", err); err != nil {
		return nil, err
	}

	return s, nil
}

// Delete мягкое удаление услуги
func (r *ServiceRepository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("services").
		Set("is_active", false).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: ServiceRepository.Delete - build update query: %v", storage.ErrBuildQuery, err)
	}

	return execAffected(ctx, executor, "ServiceRepository.Delete", query, args)
}

func scanService(row rowScanner) (*domain.Service, error) {
	var (
		s           domain.Service
		description sql.NullString
	)

	err := row.Scan(
		&s.ID,
		&s.ProviderID,
		&s.Name,
		&description,
		&s.Duration,
		&s.Price,
		&s.IsActive,
	)
	if err != nil {
		return nil, err
	}

	s.Description = nullStringPtr(description)
	return &s, nil
}
