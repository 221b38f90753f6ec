package receipt

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SEP-BookingService/internal/domain"
	"github.com/m04kA/SEP-BookingService/pkg/dbmetrics"
	"github.com/m04kA/SEP-BookingService/pkg/psqlbuilder"
)

// Переиспользуем интерфейсы из dbmetrics для работы с БД
type DBExecutor = dbmetrics.DBExecutor

// Repository репозиторий локальных записей об отправленных бронированиях
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория записей
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create сохраняет запись об успешно отправленном бронировании
// Выполняется в одной транзакции с удалением черновика
func (r *Repository) Create(ctx context.Context, rec *domain.BookingReceipt) (*domain.BookingReceipt, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("booking_receipts").
		Columns(
			"user_id",
			"upstream_id",
			"city",
			"time_preference",
			"experience_date",
			"participant_count",
			"total",
		).
		Values(
			rec.UserID,
			rec.UpstreamID,
			rec.City,
			string(rec.TimePreference),
			rec.ExperienceDate,
			rec.ParticipantCount,
			rec.Total,
		).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&rec.ID, &createdAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	rec.CreatedAt = createdAt.Time

	return rec, nil
}

// GetByUser получает записи пользователя, новые первыми
func (r *Repository) GetByUser(ctx context.Context, userID int64) ([]*domain.BookingReceipt, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"user_id",
		"upstream_id",
		"city",
		"time_preference",
		"experience_date",
		"participant_count",
		"total",
		"created_at",
	).
		From("booking_receipts").
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("created_at DESC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByUser - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByUser - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	var receipts []*domain.BookingReceipt
	for rows.Next() {
		var (
			rec            domain.BookingReceipt
			timePreference string
			createdAt      sql.NullTime
		)

		err = rows.Scan(
			&rec.ID,
			&rec.UserID,
			&rec.UpstreamID,
			&rec.City,
			&timePreference,
			&rec.ExperienceDate,
			&rec.ParticipantCount,
			&rec.Total,
			&createdAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: GetByUser - scan receipt: %v", ErrScanRow, err)
		}

		rec.TimePreference = domain.TimePreference(timePreference)
		rec.CreatedAt = createdAt.Time
		receipts = append(receipts, &rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetByUser - rows error: %v", ErrScanRow, err)
	}

	return receipts, nil
}
