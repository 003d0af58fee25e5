package block

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/m04kA/SMC-CourtBookingService/internal/domain"
	"github.com/m04kA/SMC-CourtBookingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-CourtBookingService/pkg/psqlbuilder"
)

// Repository репозиторий блокировок кортов
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория блокировок
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новую блокировку корта
func (r *Repository) Create(ctx context.Context, blk *domain.CourtBlock) (*domain.CourtBlock, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	if blk.ID == "" {
		blk.ID = uuid.New().String()
	}

	query, args, err := psqlbuilder.Insert("court_blocks").
		Columns(
			"id",
			"court_id",
			"start_ts",
			"end_ts",
			"reason",
		).
		Values(
			blk.ID,
			blk.CourtID,
			blk.StartTs,
			blk.EndTs,
			blk.Reason,
		).
		Suffix("RETURNING created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&createdAt)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	blk.CreatedAt = createdAt.Time

	return blk, nil
}

// GetForCourtDay получает блокировки корта, пересекающиеся с интервалом дня
// Тот же интервальный предикат, что и для бронирований: блокировка,
// начавшаяся до полуночи, тоже должна делать слоты недоступными
func (r *Repository) GetForCourtDay(ctx context.Context, courtID string, dayStart, dayEnd time.Time) ([]*domain.CourtBlock, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"court_id",
		"start_ts",
		"end_ts",
		"reason",
		"created_at",
	).
		From("court_blocks").
		Where(squirrel.Eq{"court_id": courtID}).
		Where(squirrel.Lt{"start_ts": dayEnd}).
		Where(squirrel.Gt{"end_ts": dayStart}).
		OrderBy("start_ts ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetForCourtDay - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetForCourtDay - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	blocks := make([]*domain.CourtBlock, 0)
	for rows.Next() {
		var blk domain.CourtBlock
		var createdAt sql.NullTime

		err := rows.Scan(
			&blk.ID,
			&blk.CourtID,
			&blk.StartTs,
			&blk.EndTs,
			&blk.Reason,
			&createdAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: GetForCourtDay - scan block: %v", ErrScanRow, err)
		}

		blk.CreatedAt = createdAt.Time

		blocks = append(blocks, &blk)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetForCourtDay - rows error: %v", ErrScanRow, err)
	}

	return blocks, nil
}
