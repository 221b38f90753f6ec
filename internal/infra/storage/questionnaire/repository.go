package questionnaire

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SEP-BookingService/internal/domain"
	"github.com/m04kA/SEP-BookingService/pkg/dbmetrics"
	"github.com/m04kA/SEP-BookingService/pkg/psqlbuilder"
)

const uniqueViolation = "23505"

// Переиспользуем интерфейсы из dbmetrics для работы с БД
type DBExecutor = dbmetrics.DBExecutor

// Repository репозиторий анкет предпочтений
// Ответы хранятся в JSONB колонке как map категория -> выбранные варианты
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория анкет
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает анкету в начальном состоянии
// На пользователя допускается одна активная анкета (уникальный индекс по user_id)
func (r *Repository) Create(ctx context.Context, q *domain.Questionnaire) (*domain.Questionnaire, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	answers, err := json.Marshal(q.Answers)
	if err != nil {
		return nil, fmt.Errorf("%w: Create: %v", ErrEncodeAnswers, err)
	}

	query, args, err := psqlbuilder.Insert("questionnaires").
		Columns("user_id", "current_index", "answers").
		Values(q.UserID, q.Index, answers).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&q.ID, &createdAt, &updatedAt)

	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == uniqueViolation {
			return nil, ErrQuestionnaireExists
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	q.CreatedAt = createdAt.Time
	q.UpdatedAt = updatedAt.Time

	return q, nil
}

// GetByUser получает активную анкету пользователя
func (r *Repository) GetByUser(ctx context.Context, userID int64) (*domain.Questionnaire, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"user_id",
		"current_index",
		"answers",
		"created_at",
		"updated_at",
	).
		From("questionnaires").
		Where(squirrel.Eq{"user_id": userID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByUser - build select query: %v", ErrBuildQuery, err)
	}

	var (
		q          domain.Questionnaire
		rawAnswers []byte
		createdAt  sql.NullTime
		updatedAt  sql.NullTime
	)

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&q.ID,
		&q.UserID,
		&q.Index,
		&rawAnswers,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrQuestionnaireNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByUser - scan questionnaire: %v", ErrScanRow, err)
	}

	q.Answers = make(map[domain.Category][]string)
	if len(rawAnswers) > 0 {
		if err := json.Unmarshal(rawAnswers, &q.Answers); err != nil {
			return nil, fmt.Errorf("%w: GetByUser - decode answers: %v", ErrScanRow, err)
		}
	}

	q.CreatedAt = createdAt.Time
	q.UpdatedAt = updatedAt.Time

	return &q, nil
}

// Update сохраняет текущий индекс вопроса и ответы
func (r *Repository) Update(ctx context.Context, q *domain.Questionnaire) (*domain.Questionnaire, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	answers, err := json.Marshal(q.Answers)
	if err != nil {
		return nil, fmt.Errorf("%w: Update: %v", ErrEncodeAnswers, err)
	}

	query, args, err := psqlbuilder.Update("questionnaires").
		Set("current_index", q.Index).
		Set("answers", answers).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": q.ID}).
		Suffix("RETURNING updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	var updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&updatedAt)

	if err == sql.ErrNoRows {
		return nil, ErrQuestionnaireNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	q.UpdatedAt = updatedAt.Time

	return q, nil
}

// Delete удаляет анкету
// Вызывается после подтвержденной отправки предпочтений во внешний API
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("questionnaires").
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
		return ErrQuestionnaireNotFound
	}

	return nil
}
