package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/internal/infra/storage"
	"github.com/m04kA/SMC-AppointmentService/pkg/dbmetrics"
	"github.com/m04kA/SMC-AppointmentService/pkg/psqlbuilder"
	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

var providerColumns = []string{
	"id",
	"name",
	"title",
	"specialty",
	"email",
	"phone",
	"bio",
	"rating",
	"review_count",
	"is_active",
	"working_start",
	"working_end",
	"working_days",
	"website",
	"instagram",
	"twitter",
	"linkedin",
	"facebook",
}

// ProviderRepository репозиторий провайдеров
type ProviderRepository struct {
	db DBExecutor
}

// NewProviderRepository создает новый экземпляр репозитория провайдеров
func NewProviderRepository(db DBExecutor) *ProviderRepository {
	return &ProviderRepository{db: db}
}

// Create создает провайдера; дубликат email возвращает storage.ErrDuplicate
func (r *ProviderRepository) Create(ctx context.Context, p *domain.Provider) (*domain.Provider, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	start, end, days := workingHoursColumns(p.WorkingHours)

	query, args, err := psqlbuilder.Insert("providers").
		Columns(
			"name",
			"title",
			"specialty",
			"email",
			"phone",
			"bio",
			"rating",
			"review_count",
			"is_active",
			"working_start",
			"working_end",
			"working_days",
			"website",
			"instagram",
			"twitter",
			"linkedin",
			"facebook",
		).
		Values(
			p.Name,
			p.Title,
			p.Specialty,
			p.Email,
			p.Phone,
			p.Bio,
			ratingOrDefault(p.Rating),
			p.ReviewCount,
			p.IsActive,
			start,
			end,
			days,
			p.SocialLinks.Website,
			p.SocialLinks.Instagram,
			p.SocialLinks.Twitter,
			p.SocialLinks.LinkedIn,
			p.SocialLinks.Facebook,
		).
		Suffix("RETURNING " + strings.Join(providerColumns, ", ")).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ProviderRepository.Create - build insert query: %v", storage.ErrBuildQuery, err)
	}

	created, err := scanProvider(executor.QueryRowContext(ctx, query, args...))
	if err != nil {
		if isUniqueViolation(err) {
			return nil, storage.ErrDuplicate
		}
		return nil, fmt.Errorf("%w: ProviderRepository.Create - execute insert: %v", storage.ErrExecQuery, err)
	}

	return created, nil
}

// GetByID получает провайдера по ID (в том числе неактивного)
func (r *ProviderRepository) GetByID(ctx context.Context, id int64) (*domain.Provider, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(providerColumns...).
		From("providers").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ProviderRepository.GetByID - build select query: %v", storage.ErrBuildQuery, err)
	}

	p, err := scanProvider(executor.QueryRowContext(ctx, query, args...))
	if err := scanOne("ProviderRepository.GetByID", err); err != nil {
		return nil, err
	}

	return p, nil
}

// List получает активных провайдеров с поиском по имени/специальности
func (r *ProviderRepository) List(ctx context.Context, filter domain.ProvidersFilter) ([]*domain.Provider, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(providerColumns...).
		From("providers").
		Where(squirrel.Eq{"is_active": true}).
		OrderBy("id ASC")

	// Поиск по подстроке без учета регистра
	if q := strings.TrimSpace(filter.Query); q != "" {
		pattern := "%" + q + "%"
		selectBuilder = selectBuilder.Where(squirrel.Or{
			squirrel.ILike{"name": pattern},
			squirrel.ILike{"specialty": pattern},
		})
	}

	if s := strings.TrimSpace(filter.Specialty); s != "" {
		selectBuilder = selectBuilder.Where(squirrel.Expr("LOWER(specialty) = LOWER(?)", s))
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ProviderRepository.List - build select query: %v", storage.ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ProviderRepository.List - execute query: %v", storage.ErrExecQuery, err)
	}
	defer rows.Close()

	providers := make([]*domain.Provider, 0)
	for rows.Next() {
		p, err := scanProvider(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: ProviderRepository.List - scan provider: %v", storage.ErrScanRow, err)
		}
		providers = append(providers, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ProviderRepository.List - rows error: %v", storage.ErrScanRow, err)
	}

	return providers, nil
}

// Update частично обновляет провайдера
func (r *ProviderRepository) Update(ctx context.Context, id int64, update *domain.ProviderUpdate) (*domain.Provider, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	set := map[string]interface{}{}
	if update.Name != nil {
		set["name"] = *update.Name
	}
	if update.Title != nil {
		set["title"] = *update.Title
	}
	if update.Specialty != nil {
		set["specialty"] = *update.Specialty
	}
	if update.Email != nil {
		set["email"] = *update.Email
	}
	if update.Phone != nil {
		set["phone"] = *update.Phone
	}
	if update.Bio != nil {
		set["bio"] = *update.Bio
	}
	if update.Rating != nil {
		set["rating"] = *update.Rating
	}
	if update.ReviewCount != nil {
		set["review_count"] = *update.ReviewCount
	}
	if update.IsActive != nil {
		set["is_active"] = *update.IsActive
	}
	if update.WorkingHours != nil {
		start, end, days := workingHoursColumns(update.WorkingHours)
		set["working_start"] = start
		set["working_end"] = end
		set["working_days"] = days
	}
	if update.SocialLinks != nil {
		set["website"] = update.SocialLinks.Website
		set["instagram"] = update.SocialLinks.Instagram
		set["twitter"] = update.SocialLinks.Twitter
		set["linkedin"] = update.SocialLinks.LinkedIn
		set["facebook"] = update.SocialLinks.Facebook
	}

	if len(set) == 0 {
		return r.GetByID(ctx, id)
	}

	query, args, err := psqlbuilder.Update("providers").
		SetMap(set).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING " + strings.Join(providerColumns, ", ")).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ProviderRepository.Update - build update query: %v", storage.ErrBuildQuery, err)
	}

	p, err := scanProvider(executor.QueryRowContext(ctx, query, args...))
	if err != nil && isUniqueViolation(err) {
		return nil, storage.ErrDuplicate
	}
	if err := scanOne("ProviderRepository.Update", err); err != nil {
		return nil, err
	}

	return p, nil
}

// Delete мягкое удаление провайдера
func (r *ProviderRepository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("providers").
		Set("is_active", false).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: ProviderRepository.Delete - build update query: %v", storage.ErrBuildQuery, err)
	}

	return execAffected(ctx, executor, "ProviderRepository.Delete", query, args)
}

func scanProvider(row rowScanner) (*domain.Provider, error) {
	var (
		p          domain.Provider
		start, end sql.NullString
		days       pq.Int64Array
		bio        sql.NullString
		website    sql.NullString
		instagram  sql.NullString
		twitter    sql.NullString
		linkedIn   sql.NullString
		facebook   sql.NullString
	)

	err := row.Scan(
		&p.ID,
		&p.Name,
		&p.Title,
		&p.Specialty,
		&p.Email,
		&p.Phone,
		&bio,
		&p.Rating,
		&p.ReviewCount,
		&p.IsActive,
		&start,
		&end,
		&days,
		&website,
		&instagram,
		&twitter,
		&linkedIn,
		&facebook,
	)
	if err != nil {
		return nil, err
	}

	p.Bio = nullStringPtr(bio)
	p.SocialLinks = domain.SocialLinks{
		Website:   nullStringPtr(website),
		Instagram: nullStringPtr(instagram),
		Twitter:   nullStringPtr(twitter),
		LinkedIn:  nullStringPtr(linkedIn),
		Facebook:  nullStringPtr(facebook),
	}

	if start.Valid && end.Valid {
		wh := &domain.WorkingHours{
			Start: types.TimeString(start.String),
			End:   types.TimeString(end.String),
			Days:  make([]int, 0, len(days)),
		}
		for _, d := range days {
			wh.Days = append(wh.Days, int(d))
		}
		p.WorkingHours = wh
	}

	return &p, nil
}

// workingHoursColumns раскладывает расписание по колонкам; nil -> NULL
func workingHoursColumns(wh *domain.WorkingHours) (interface{}, interface{}, interface{}) {
	if wh == nil {
		return nil, nil, nil
	}
	days := make(pq.Int64Array, 0, len(wh.Days))
	for _, d := range wh.Days {
		days = append(days, int64(d))
	}
	return wh.Start, wh.End, days
}

func ratingOrDefault(rating string) string {
	if rating == "" {
		return domain.DefaultRating
	}
	return rating
}

func nullStringPtr(s sql.NullString) *string {
	if !s.Valid {
		return nil
	}
	v := s.String
	return &v
}
