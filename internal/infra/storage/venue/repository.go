package venue

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/m04kA/SMC-CourtBookingService/internal/domain"
	"github.com/m04kA/SMC-CourtBookingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-CourtBookingService/pkg/psqlbuilder"
)

var venueColumns = []string{
	"id",
	"owner_id",
	"name",
	"description",
	"address",
	"city",
	"neighborhood",
	"lat",
	"lng",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с площадками
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория площадок
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новую площадку
func (r *Repository) Create(ctx context.Context, venue *domain.Venue) (*domain.Venue, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	if venue.ID == "" {
		venue.ID = uuid.New().String()
	}

	query, args, err := psqlbuilder.Insert("venues").
		Columns(
			"id",
			"owner_id",
			"name",
			"description",
			"address",
			"city",
			"neighborhood",
			"lat",
			"lng",
		).
		Values(
			venue.ID,
			venue.OwnerID,
			venue.Name,
			venue.Description,
			venue.Address,
			venue.City,
			venue.Neighborhood,
			venue.Lat,
			venue.Lng,
		).
		Suffix("RETURNING created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	venue.CreatedAt = createdAt.Time
	venue.UpdatedAt = updatedAt.Time

	return venue, nil
}

// GetByID получает площадку по ID
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Venue, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(venueColumns...).
		From("venues").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	venue, err := scanVenueRow(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrVenueNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan venue: %v", ErrScanRow, err)
	}

	return venue, nil
}

// List получает все площадки, сначала созданные последними
func (r *Repository) List(ctx context.Context) ([]*domain.Venue, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(venueColumns...).
		From("venues").
		OrderBy("created_at DESC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	venues := make([]*domain.Venue, 0)
	for rows.Next() {
		var venue domain.Venue
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&venue.ID,
			&venue.OwnerID,
			&venue.Name,
			&venue.Description,
			&venue.Address,
			&venue.City,
			&venue.Neighborhood,
			&venue.Lat,
			&venue.Lng,
			&createdAt,
			&updatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan venue: %v", ErrScanRow, err)
		}

		venue.CreatedAt = createdAt.Time
		venue.UpdatedAt = updatedAt.Time

		venues = append(venues, &venue)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return venues, nil
}

func scanVenueRow(row *sql.Row) (*domain.Venue, error) {
	var venue domain.Venue
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&venue.ID,
		&venue.OwnerID,
		&venue.Name,
		&venue.Description,
		&venue.Address,
		&venue.City,
		&venue.Neighborhood,
		&venue.Lat,
		&venue.Lng,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	venue.CreatedAt = createdAt.Time
	venue.UpdatedAt = updatedAt.Time

	return &venue, nil
}
