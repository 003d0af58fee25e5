package sport

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-CourtBookingService/internal/domain"
	"github.com/m04kA/SMC-CourtBookingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-CourtBookingService/pkg/psqlbuilder"
)

// Repository репозиторий справочника видов спорта
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория видов спорта
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// List получает все виды спорта, отсортированные по названию
func (r *Repository) List(ctx context.Context) ([]*domain.Sport, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "slug", "name").
		From("sports").
		OrderBy("name ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	sports := make([]*domain.Sport, 0)
	for rows.Next() {
		var sport domain.Sport
		if err := rows.Scan(&sport.ID, &sport.Slug, &sport.Name); err != nil {
			return nil, fmt.Errorf("%w: List - scan sport: %v", ErrScanRow, err)
		}
		sports = append(sports, &sport)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return sports, nil
}

// GetByID получает вид спорта по ID
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Sport, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "slug", "name").
		From("sports").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var sport domain.Sport
	err = executor.QueryRowContext(ctx, query, args...).Scan(&sport.ID, &sport.Slug, &sport.Name)

	if err == sql.ErrNoRows {
		return nil, ErrSportNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan sport: %v", ErrScanRow, err)
	}

	return &sport, nil
}
