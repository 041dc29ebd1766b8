package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/internal/infra/storage"
	"github.com/m04kA/SMC-AppointmentService/pkg/dbmetrics"
	"github.com/m04kA/SMC-AppointmentService/pkg/psqlbuilder"
)

var timeSlotColumns = []string{
	"id",
	"provider_id",
	"day_of_week",
	"start_time",
	"end_time",
	"is_available",
}

// TimeSlotRepository репозиторий шаблонов слотов
type TimeSlotRepository struct {
	db DBExecutor
}

// NewTimeSlotRepository создает новый экземпляр репозитория шаблонов слотов
func NewTimeSlotRepository(db DBExecutor) *TimeSlotRepository {
	return &TimeSlotRepository{db: db}
}

func (r *TimeSlotRepository) Create(ctx context.Context, s *domain.TimeSlot) (*domain.TimeSlot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("time_slots").
		Columns("provider_id", "day_of_week", "start_time", "end_time", "is_available").
		Values(s.ProviderID, s.DayOfWeek, s.StartTime, s.EndTime, s.IsAvailable).
		Suffix("RETURNING " + strings.Join(timeSlotColumns, ", ")).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: TimeSlotRepository.Create - build insert query: %v", storage.ErrBuildQuery, err)
	}

	created, err := scanTimeSlot(executor.QueryRowContext(ctx, query, args...))
	if err != nil {
		return nil, fmt.Errorf("%w: TimeSlotRepository.Create - execute insert: %v", storage.ErrExecQuery, err)
	}

	return created, nil
}

func (r *TimeSlotRepository) GetByID(ctx context.Context, id int64) (*domain.TimeSlot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(timeSlotColumns...).
		From("time_slots").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: TimeSlotRepository.GetByID - build select query: %v", storage.ErrBuildQuery, err)
	}

	s, err := scanTimeSlot(executor.QueryRowContext(ctx, query, args...))
	if err := scanOne("TimeSlotRepository.GetByID", err); err != nil {
		return nil, err
	}

	return s, nil
}

// ListByProvider получает доступные шаблоны слотов провайдера
func (r *TimeSlotRepository) ListByProvider(ctx context.Context, providerID int64) ([]*domain.TimeSlot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(timeSlotColumns...).
		From("time_slots").
		Where(squirrel.Eq{"provider_id": providerID, "is_available": true}).
		OrderBy("day_of_week ASC", "start_time ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: TimeSlotRepository.ListByProvider - build select query: %v", storage.ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: TimeSlotRepository.ListByProvider - execute query: %v", storage.ErrExecQuery, err)
	}
	defer rows.Close()

	slots := make([]*domain.TimeSlot, 0)
	for rows.Next() {
		s, err := scanTimeSlot(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: TimeSlotRepository.ListByProvider - scan time slot: %v", storage.ErrScanRow, err)
		}
		slots = append(slots, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: TimeSlotRepository.ListByProvider - rows error: %v", storage.ErrScanRow, err)
	}

	return slots, nil
}

func (r *TimeSlotRepository) Update(ctx context.Context, id int64, update *domain.TimeSlotUpdate) (*domain.TimeSlot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	set := map[string]interface{}{}
	if update.DayOfWeek != nil {
		set["day_of_week"] = *update.DayOfWeek
	}
	if update.StartTime != nil {
		set["start_time"] = *update.StartTime
	}
	if update.EndTime != nil {
		set["end_time"] = *update.EndTime
	}
	if update.IsAvailable != nil {
		set["is_available"] = *update.IsAvailable
	}

	if len(set) == 0 {
		return r.GetByID(ctx, id)
	}

	query, args, err := psqlbuilder.Update("time_slots").
		SetMap(set).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING " + strings.Join(timeSlotColumns, ", ")).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: TimeSlotRepository.Update - build update query: %v", storage.ErrBuildQuery, err)
	}

	s, err := scanTimeSlot(executor.QueryRowContext(ctx, query, args...))
	if err := scanOne("TimeSlotRepository.Update", err); err != nil {
		return nil, err
	}

	return s, nil
}

// Delete мягкое удаление: is_available = false
func (r *TimeSlotRepository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("time_slots").
		Set("is_available", false).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: TimeSlotRepository.Delete - build update query: %v", storage.ErrBuildQuery, err)
	}

	return execAffected(ctx, executor, "TimeSlotRepository.Delete", query, args)
}

func scanTimeSlot(row rowScanner) (*domain.TimeSlot, error) {
	var s domain.TimeSlot
	err := row.Scan(
		&s.ID,
		&s.ProviderID,
		&s.DayOfWeek,
		&s.StartTime,
		&s.EndTime,
		&s.IsAvailable,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}
