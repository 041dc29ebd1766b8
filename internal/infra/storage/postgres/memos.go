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

var memoColumns = []string{
	"id",
	"provider_id",
	"title",
	"content",
	"category",
	"is_important",
	"created_at",
	"updated_at",
}

// MemoRepository репозиторий заметок
type MemoRepository struct {
	db DBExecutor
}

// NewMemoRepository создает новый экземпляр репозитория заметок
func NewMemoRepository(db DBExecutor) *MemoRepository {
	return &MemoRepository{db: db}
}

func (r *MemoRepository) Create(ctx context.Context, m *domain.Memo) (*domain.Memo, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("memos").
		Columns("provider_id", "title", "content", "category", "is_important").
		Values(m.ProviderID, m.Title, m.Content, m.Category, m.IsImportant).
		Suffix("RETURNING " + strings.Join(memoColumns, ", ")).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: MemoRepository.Create - build insert query: %v", storage.ErrBuildQuery, err)
	}

	created, err := scanMemo(executor.QueryRowContext(ctx, query, args...))
	if err != nil {
		return nil, fmt.Errorf("%w: MemoRepository.Create - execute insert: %v", storage.ErrExecQuery, err)
	}

	return created, nil
}

func (r *MemoRepository) GetByID(ctx context.Context, id int64) (*domain.Memo, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(memoColumns...).
		From("memos").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: MemoRepository.GetByID - build select query: %v", storage.ErrBuildQuery, err)
	}

	m, err := scanMemo(executor.QueryRowContext(ctx, query, args...))
	if err := scanOne("MemoRepository.GetByID", err); err != nil {
		return nil, err
	}

	return m, nil
}

// ListByProvider получает заметки провайдера, новые первыми
func (r *MemoRepository) ListByProvider(ctx context.Context, providerID int64) ([]*domain.Memo, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(memoColumns...).
		From("memos").
		Where(squirrel.Eq{"provider_id": providerID}).
		OrderBy("id DESC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: MemoRepository.ListByProvider - build select query: %v", storage.ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: MemoRepository.ListByProvider - execute query: %v", storage.ErrExecQuery, err)
	}
	defer rows.Close()

	memos := make([]*domain.Memo, 0)
	for rows.Next() {
		m, err := scanMemo(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: MemoRepository.ListByProvider - scan memo: %v", storage.ErrScanRow, err)
		}
		memos = append(memos, m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: MemoRepository.ListByProvider - rows error: %v", storage.ErrScanRow, err)
	}

	return memos, nil
}

// Update частично обновляет заметку; updated_at обновляется всегда
func (r *MemoRepository) Update(ctx context.Context, id int64, update *domain.MemoUpdate) (*domain.Memo, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	updateBuilder := psqlbuilder.Update("memos").
		Set("updated_at", squirrel.Expr("NOW()"))

	if update.Title != nil {
		updateBuilder = updateBuilder.Set("title", *update.Title)
	}
	if update.Content != nil {
		updateBuilder = updateBuilder.Set("content", *update.Content)
	}
	if update.Category != nil {
		updateBuilder = updateBuilder.Set("category", *update.Category)
	}
	if update.IsImportant != nil {
		updateBuilder = updateBuilder.Set("is_important", *update.IsImportant)
	}

	query, args, err := updateBuilder.
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING " + strings.Join(memoColumns, ", ")).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: MemoRepository.Update - build update query: %v", storage.ErrBuildQuery, err)
	}

	m, err := scanMemo(executor.QueryRowContext(ctx, query, args...))
	if err := scanOne("MemoRepository.Update", err); err != nil {
		return nil, err
	}

	return m, nil
}

// Delete физическое удаление заметки
func (r *MemoRepository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("memos").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: MemoRepository.Delete - build delete query: %v", storage.ErrBuildQuery, err)
	}

	return execAffected(ctx, executor, "MemoRepository.Delete", query, args)
}

func scanMemo(row rowScanner) (*domain.Memo, error) {
	var m domain.Memo
	err := row.Scan(
		&m.ID,
		&m.ProviderID,
		&m.Title,
		&m.Content,
		&m.Category,
		&m.IsImportant,
		&m.CreatedAt,
		&m.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}
