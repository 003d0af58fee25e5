package court

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/m04kA/SMC-CourtBookingService/internal/domain"
	"github.com/m04kA/SMC-CourtBookingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-CourtBookingService/pkg/psqlbuilder"
)

var courtColumns = []string{
	"id",
	"venue_id",
	"sport_id",
	"indoor",
	"surface",
	"lights",
	"price_hour",
	"open_time",
	"close_time",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с кортами
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория кортов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новый корт
func (r *Repository) Create(ctx context.Context, court *domain.Court) (*domain.Court, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	if court.ID == "" {
		court.ID = uuid.New().String()
	}

	query, args, err := psqlbuilder.Insert("courts").
		Columns(
			"id",
			"venue_id",
			"sport_id",
			"indoor",
			"surface",
			"lights",
			"price_hour",
			"open_time",
			"close_time",
		).
		Values(
			court.ID,
			court.VenueID,
			court.SportID,
			court.Indoor,
			court.Surface,
			court.Lights,
			court.PriceHour,
			court.OpenTime,
			court.CloseTime,
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

	court.CreatedAt = createdAt.Time
	court.UpdatedAt = updatedAt.Time

	return court, nil
}

// GetByID получает корт по ID
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Court, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(courtColumns...).
		From("courts").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var court domain.Court
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&court.ID,
		&court.VenueID,
		&court.SportID,
		&court.Indoor,
		&court.Surface,
		&court.Lights,
		&court.PriceHour,
		&court.OpenTime,
		&court.CloseTime,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrCourtNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan court: %v", ErrScanRow, err)
	}

	court.CreatedAt = createdAt.Time
	court.UpdatedAt = updatedAt.Time

	return &court, nil
}

// Search ищет корты по городу площадки, виду спорта и координатам
// Город сравнивается без учета регистра; результат ограничен filter.Limit
func (r *Repository) Search(ctx context.Context, filter domain.CourtSearchFilter) ([]*domain.CourtDetails, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(
		"c.id",
		"c.indoor",
		"c.surface",
		"c.lights",
		"c.price_hour",
		"c.open_time",
		"c.close_time",
		"s.id",
		"s.slug",
		"s.name",
		"v.id",
		"v.name",
		"v.address",
		"v.city",
		"v.neighborhood",
		"v.lat",
		"v.lng",
	).
		From("courts c").
		Join("sports s ON s.id = c.sport_id").
		Join("venues v ON v.id = c.venue_id").
		Where(squirrel.Eq{"lower(v.city)": strings.ToLower(filter.City)}).
		OrderBy("v.name ASC, c.price_hour ASC").
		Limit(filter.Limit)

	if filter.SportSlug != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"s.slug": *filter.SportSlug})
	}

	if filter.BBox != nil {
		b := *filter.BBox
		selectBuilder = selectBuilder.
			Where(squirrel.GtOrEq{"v.lng": b.MinLng}).
			Where(squirrel.LtOrEq{"v.lng": b.MaxLng}).
			Where(squirrel.GtOrEq{"v.lat": b.MinLat}).
			Where(squirrel.LtOrEq{"v.lat": b.MaxLat})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Search - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: Search - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	results := make([]*domain.CourtDetails, 0)
	for rows.Next() {
		var d domain.CourtDetails

		err := rows.Scan(
			&d.Court.ID,
			&d.Court.Indoor,
			&d.Court.Surface,
			&d.Court.Lights,
			&d.Court.PriceHour,
			&d.Court.OpenTime,
			&d.Court.CloseTime,
			&d.Sport.ID,
			&d.Sport.Slug,
			&d.Sport.Name,
			&d.Venue.ID,
			&d.Venue.Name,
			&d.Venue.Address,
			&d.Venue.City,
			&d.Venue.Neighborhood,
			&d.Venue.Lat,
			&d.Venue.Lng,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: Search - scan court: %v", ErrScanRow, err)
		}

		d.Court.VenueID = d.Venue.ID
		d.Court.SportID = d.Sport.ID

		results = append(results, &d)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: Search - rows error: %v", ErrScanRow, err)
	}

	return results, nil
}

// GetByVenueIDs получает корты с видами спорта для набора площадок
// Используется при листинге площадок со вложенными кортами
func (r *Repository) GetByVenueIDs(ctx context.Context, venueIDs []string) (map[string][]domain.CourtWithSport, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	if len(venueIDs) == 0 {
		return map[string][]domain.CourtWithSport{}, nil
	}

	query, args, err := psqlbuilder.Select(
		"c.id",
		"c.venue_id",
		"c.sport_id",
		"c.indoor",
		"c.surface",
		"c.lights",
		"c.price_hour",
		"c.open_time",
		"c.close_time",
		"s.slug",
		"s.name",
	).
		From("courts c").
		Join("sports s ON s.id = c.sport_id").
		Where(squirrel.Eq{"c.venue_id": venueIDs}).
		OrderBy("c.created_at ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByVenueIDs - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByVenueIDs - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	result := make(map[string][]domain.CourtWithSport)
	for rows.Next() {
		var cs domain.CourtWithSport

		err := rows.Scan(
			&cs.Court.ID,
			&cs.Court.VenueID,
			&cs.Court.SportID,
			&cs.Court.Indoor,
			&cs.Court.Surface,
			&cs.Court.Lights,
			&cs.Court.PriceHour,
			&cs.Court.OpenTime,
			&cs.Court.CloseTime,
			&cs.Sport.Slug,
			&cs.Sport.Name,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: GetByVenueIDs - scan court: %v", ErrScanRow, err)
		}

		cs.Sport.ID = cs.Court.SportID
		result[cs.Court.VenueID] = append(result[cs.Court.VenueID], cs)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetByVenueIDs - rows error: %v", ErrScanRow, err)
	}

	return result, nil
}
