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
	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

var taskColumns = []string{
	"id",
	"provider_id",
	"title",
	"description",
	"status",
	"priority",
	"due_date",
	"assigned_to",
	"created_at",
	"updated_at",
	"completed_at",
}

// TaskRepository репозиторий задач
type TaskRepository struct {
	db DBExecutor
}

// NewTaskRepository создает новый экземпляр репозитория задач
func NewTaskRepository(db DBExecutor) *TaskRepository {
	return &TaskRepository{db: db}
}

func (r *TaskRepository) Create(ctx context.Context, t *domain.Task) (*domain.Task, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	var completedAt interface{}
	if t.Status == domain.TaskStatusCompleted {
		completedAt = squirrel.Expr("NOW()")
	}

	query, args, err := psqlbuilder.Insert("tasks").
		Columns("provider_id", "title", "description", "status", "priority", "due_date", "assigned_to", "completed_at").
		Values(t.ProviderID, t.Title, t.Description, t.Status, t.Priority, t.DueDate, t.AssignedTo, completedAt).
		Suffix("RETURNING " + strings.Join(taskColumns, ", ")).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: TaskRepository.Create - build insert query: %v", storage.ErrBuildQuery, err)
	}

	created, err := scanTask(executor.QueryRowContext(ctx, query, args...))
	if err != nil {
		return nil, fmt.Errorf("%w: TaskRepository.Create - execute insert: %v", storage.ErrExecQuery, err)
	}

	return created, nil
}

func (r *TaskRepository) GetByID(ctx context.Context, id int64) (*domain.Task, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(taskColumns...).
		From("tasks").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: TaskRepository.GetByID - build select query: %v", storage.ErrBuildQuery, err)
	}

	t, err := scanTask(executor.QueryRowContext(ctx, query, args...))
	if err := scanOne("TaskRepository.GetByID", err); err != nil {
		return nil, err
	}

	return t, nil
}

// ListByProvider получает задачи провайдера, новые первыми
func (r *TaskRepository) ListByProvider(ctx context.Context, providerID int64) ([]*domain.Task, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(taskColumns...).
		From("tasks").
		Where(squirrel.Eq{"provider_id": providerID}).
		OrderBy("id DESC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: TaskRepository.ListByProvider - build select query: %v", storage.ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: TaskRepository.ListByProvider - execute query: %v", storage.ErrExecQuery, err)
	}
	defer rows.Close()

	tasks := make([]*domain.Task, 0)
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: TaskRepository.ListByProvider - scan task: %v", storage.ErrScanRow, err)
		}
		tasks = append(tasks, t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: TaskRepository.ListByProvider - rows error: %v", storage.ErrScanRow, err)
	}

	return tasks, nil
}

// Update частично обновляет задачу; при переходе в completed проставляет completed_at
func (r *TaskRepository) Update(ctx context.Context, id int64, update *domain.TaskUpdate) (*domain.Task, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	updateBuilder := psqlbuilder.Update("tasks").
		Set("updated_at", squirrel.Expr("NOW()"))

	if update.Title != nil {
		updateBuilder = updateBuilder.Set("title", *update.Title)
	}
	if update.Description != nil {
		updateBuilder = updateBuilder.Set("description", *update.Description)
	}
	if update.Status != nil {
		updateBuilder = updateBuilder.Set("status", *update.Status)
		if *update.Status == domain.TaskStatusCompleted {
			updateBuilder = updateBuilder.Set("completed_at", squirrel.Expr("NOW()"))
		}
	}
	if update.Priority != nil {
		updateBuilder = updateBuilder.Set("priority", *update.Priority)
	}
	if update.DueDate != nil {
		updateBuilder = updateBuilder.Set("due_date", *update.DueDate)
	}
	if update.AssignedTo != nil {
		updateBuilder = updateBuilder.Set("assigned_to", *update.AssignedTo)
	}

	query, args, err := updateBuilder.
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING " + strings.Join(taskColumns, ", ")).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: TaskRepository.Update - build update query: %v", storage.ErrBuildQuery, err)
	}

	t, err := scanTask(executor.QueryRowContext(ctx, query, args...))
	if err := scanOne("TaskRepository.Update", err); err != nil {
		return nil, err
	}

	return t, nil
}

// Delete физическое удаление задачи
func (r *TaskRepository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("tasks").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: TaskRepository.Delete - build delete query: %v", storage.ErrBuildQuery, err)
	}

	return execAffected(ctx, executor, "TaskRepository.Delete", query, args)
}

func scanTask(row rowScanner) (*domain.Task, error) {
	var (
		t           domain.Task
		description sql.NullString
		dueDate     types.DateString
		assignedTo  sql.NullString
		completedAt sql.NullTime
	)

	err := row.Scan(
		&t.ID,
		&t.ProviderID,
		&t.Title,
		&description,
		&t.Status,
		&t.Priority,
		&dueDate,
		&assignedTo,
		&t.CreatedAt,
		&t.UpdatedAt,
		&completedAt,
	)
	if err != nil {
		return nil, err
	}

	t.Description = nullStringPtr(description)
	t.AssignedTo = nullStringPtr(assignedTo)
	if !dueDate.IsZero() {
		t.DueDate = &dueDate
	}
	if completedAt.Valid {
		ts := completedAt.Time
		t.CompletedAt = &ts
	}

	return &t, nil
}
