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

var appointmentColumns = []string{
	"id",
	"provider_id",
	"service_id",
	"client_name",
	"client_email",
	"client_phone",
	"appointment_date",
	"start_time",
	"end_time",
	"status",
	"notes",
	"created_at",
}

// AppointmentRepository репозиторий записей
type AppointmentRepository struct {
	db DBExecutor
}

// NewAppointmentRepository создает новый экземпляр репозитория записей
func NewAppointmentRepository(db DBExecutor) *AppointmentRepository {
	return &AppointmentRepository{db: db}
}

// Create создает запись.
// Проверка пересечений выполняется в usecase внутри сериализуемой транзакции,
// репозиторий только сохраняет строку.
func (r *AppointmentRepository) Create(ctx context.Context, a *domain.Appointment) (*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	columns := []string{
		"provider_id",
		"service_id",
		"client_name",
		"client_email",
		"client_phone",
		"appointment_date",
		"start_time",
		"end_time",
		"status",
		"notes",
	}
	values := []interface{}{
		a.ProviderID,
		a.ServiceID,
		a.ClientName,
		a.ClientEmail,
		a.ClientPhone,
		a.AppointmentDate,
		a.StartTime,
		a.EndTime,
		a.Status,
		a.Notes,
	}
	// Пустой created_at заполняется значением по умолчанию колонки
	if !a.CreatedAt.IsZero() {
		columns = append(columns, "created_at")
		values = append(values, a.CreatedAt)
	}

	query, args, err := psqlbuilder.Insert("appointments").
		Columns(columns...).
		Values(values...).
		Suffix("RETURNING " + strings.Join(appointmentColumns, ", ")).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: AppointmentRepository.Create - build insert query: %v", storage.ErrBuildQuery, err)
	}

	created, err := scanAppointment(executor.QueryRowContext(ctx, query, args...))
	if err != nil {
		return nil, fmt.Errorf("%w: AppointmentRepository.Create - execute insert: %v", storage.ErrExecQuery, err)
	}

	return created, nil
}

func (r *AppointmentRepository) GetByID(ctx context.Context, id int64) (*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(appointmentColumns...).
		From("appointments").
		Where(squirrel.Eq{"id": id})

	// Внутри транзакции блокируем строку: update/delete меняют её после проверки
	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: AppointmentRepository.GetByID - build select query: %v", storage.ErrBuildQuery, err)
	}

	a, err := scanAppointment(executor.QueryRowContext(ctx, query, args...))
	if err := scanOne("AppointmentRepository.GetByID", err); err != nil {
		return nil, err
	}

	return a, nil
}

// ListByProvider получает записи провайдера во всех статусах.
// Если указана дата и запрос выполняется в транзакции, строки блокируются (FOR UPDATE),
// чтобы параллельное бронирование того же дня ждало фиксации.
func (r *AppointmentRepository) ListByProvider(ctx context.Context, filter domain.AppointmentsFilter) ([]*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(appointmentColumns...).
		From("appointments").
		Where(squirrel.Eq{"provider_id": filter.ProviderID}).
		OrderBy("appointment_date ASC", "start_time ASC", "id ASC")

	if filter.Date != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"appointment_date": *filter.Date})

		if dbmetrics.IsInTransaction(ctx) {
			selectBuilder = selectBuilder.Suffix("FOR UPDATE")
		}
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: AppointmentRepository.ListByProvider - build select query: %v", storage.ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: AppointmentRepository.ListByProvider - execute query: %v", storage.ErrExecQuery, err)
	}
	defer rows.Close()

	appointments := make([]*domain.Appointment, 0)
	for rows.Next() {
		a, err := scanAppointment(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: AppointmentRepository.ListByProvider - scan appointment: %v", storage.ErrScanRow, err)
		}
		appointments = append(appointments, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: AppointmentRepository.ListByProvider - rows error: %v", storage.ErrScanRow, err)
	}

	return appointments, nil
}

func (r *AppointmentRepository) Update(ctx context.Context, id int64, update *domain.AppointmentUpdate) (*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	set := map[string]interface{}{}
	if update.ServiceID != nil {
		set["service_id"] = *update.ServiceID
	}
	if update.ClientName != nil {
		set["client_name"] = *update.ClientName
	}
	if update.ClientEmail != nil {
		set["client_email"] = *update.ClientEmail
	}
	if update.ClientPhone != nil {
		set["client_phone"] = *update.ClientPhone
	}
	if update.AppointmentDate != nil {
		set["appointment_date"] = *update.AppointmentDate
	}
	if update.StartTime != nil {
		set["start_time"] = *update.StartTime
	}
	if update.EndTime != nil {
		set["end_time"] = *update.EndTime
	}
	if update.Status != nil {
		set["status"] = *update.Status
	}
	if update.Notes != nil {
		set["notes"] = *update.Notes
	}

	if len(set) == 0 {
		return r.GetByID(ctx, id)
	}

	query, args, err := psqlbuilder.Update("appointments").
		SetMap(set).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING " + strings.Join(appointmentColumns, ", ")).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: AppointmentRepository.Update - build update query: %v", storage.ErrBuildQuery, err)
	}

	a, err := scanAppointment(executor.QueryRowContext(ctx, query, args...))
	if err := scanOne("AppointmentRepository.Update", err); err != nil {
		return nil, err
	}

	return a, nil
}

// Delete физическое удаление записи
func (r *AppointmentRepository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("appointments").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: AppointmentRepository.Delete - build delete query: %v", storage.ErrBuildQuery, err)
	}

	return execAffected(ctx, executor, "AppointmentRepository.Delete", query, args)
}

func scanAppointment(row rowScanner) (*domain.Appointment, error) {
	var (
		a         domain.Appointment
		notes     sql.NullString
		createdAt sql.NullTime
	)

	err := row.Scan(
		&a.ID,
		&a.ProviderID,
		&a.ServiceID,
		&a.ClientName,
		&a.ClientEmail,
		&a.ClientPhone,
		&a.AppointmentDate,
		&a.StartTime,
		&a.EndTime,
		&a.Status,
		&notes,
		&createdAt,
	)
	if err != nil {
		return nil, err
	}

	a.Notes = nullStringPtr(notes)
	a.CreatedAt = createdAt.Time
	return &a, nil
}
