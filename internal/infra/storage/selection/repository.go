package selection

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SEP-BookingService/internal/domain"
	"github.com/m04kA/SEP-BookingService/pkg/dbmetrics"
	"github.com/m04kA/SEP-BookingService/pkg/psqlbuilder"
)

// uniqueViolation код ошибки PostgreSQL для нарушения уникального индекса
const uniqueViolation = "23505"

// Repository репозиторий черновиков бронирования
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория черновиков
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает черновик
// На пользователя допускается один активный черновик (уникальный индекс по user_id)
func (r *Repository) Create(ctx context.Context, sel *domain.Selection) (*domain.Selection, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("booking_selections").
		Columns(
			"user_id",
			"city",
			"time_preference",
			"base_price",
			"participant_count",
			"discarded_categories",
			"experience_date",
			"notes",
		).
		Values(
			sel.UserID,
			sel.City,
			string(sel.TimePreference),
			sel.BasePrice,
			sel.ParticipantCount,
			pq.Array(categoriesToStrings(sel.DiscardedCategories)),
			sel.ExperienceDate,
			sel.Notes,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&sel.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == uniqueViolation {
			return nil, ErrSelectionExists
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	sel.CreatedAt = createdAt.Time
	sel.UpdatedAt = updatedAt.Time

	return sel, nil
}

// GetByID получает черновик по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Selection, error) {
	return r.getOne(ctx, squirrel.Eq{"id": id})
}

// GetByUser получает активный черновик пользователя
func (r *Repository) GetByUser(ctx context.Context, userID int64) (*domain.Selection, error) {
	return r.getOne(ctx, squirrel.Eq{"user_id": userID})
}

func (r *Repository) getOne(ctx context.Context, where squirrel.Eq) (*domain.Selection, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"user_id",
		"city",
		"time_preference",
		"base_price",
		"participant_count",
		"discarded_categories",
		"experience_date",
		"notes",
		"created_at",
		"updated_at",
	).
		From("booking_selections").
		Where(where).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: getOne - build select query: %v", ErrBuildQuery, err)
	}

	var (
		sel            domain.Selection
		timePreference string
		categories     []string
		experienceDate sql.NullTime
		createdAt      sql.NullTime
		updatedAt      sql.NullTime
	)

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&sel.ID,
		&sel.UserID,
		&sel.City,
		&timePreference,
		&sel.BasePrice,
		&sel.ParticipantCount,
		pq.Array(&categories),
		&experienceDate,
		&sel.Notes,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrSelectionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: getOne - scan selection: %v", ErrScanRow, err)
	}

	sel.TimePreference = domain.TimePreference(timePreference)
	sel.DiscardedCategories = stringsToCategories(categories)
	if experienceDate.Valid {
		sel.ExperienceDate = &experienceDate.Time
	}
	sel.CreatedAt = createdAt.Time
	sel.UpdatedAt = updatedAt.Time

	return &sel, nil
}

// Update сохраняет изменяемые поля черновика
func (r *Repository) Update(ctx context.Context, sel *domain.Selection) (*domain.Selection, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("booking_selections").
		Set("city", sel.City).
		Set("time_preference", string(sel.TimePreference)).
		Set("base_price", sel.BasePrice).
		Set("participant_count", sel.ParticipantCount).
		Set("discarded_categories", pq.Array(categoriesToStrings(sel.DiscardedCategories))).
		Set("experience_date", sel.ExperienceDate).
		Set("notes", sel.Notes).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": sel.ID}).
		Suffix("RETURNING updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	var updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&updatedAt)

	if err == sql.ErrNoRows {
		return nil, ErrSelectionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	sel.UpdatedAt = updatedAt.Time

	return sel, nil
}

// Delete удаляет черновик
// Вызывается после успешной отправки бронирования или по явному запросу пользователя
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("booking_selections").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	res, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - rows affected: %v", ErrExecQuery, err)
	}
	if affected == 0 {
		return ErrSelectionNotFound
	}

	return nil
}

func categoriesToStrings(categories []domain.Category) []string {
	result := make([]string, len(categories))
	for i, c := range categories {
		result[i] = string(c)
	}
	return result
}

func stringsToCategories(values []string) []domain.Category {
	result := make([]domain.Category, len(values))
	for i, v := range values {
		result[i] = domain.Category(v)
	}
	return result
}
