package courts

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-CourtBookingService/internal/domain"
	sportRepo "github.com/m04kA/SMC-CourtBookingService/internal/infra/storage/sport"
	venueRepo "github.com/m04kA/SMC-CourtBookingService/internal/infra/storage/venue"
	"github.com/m04kA/SMC-CourtBookingService/internal/service/courts/models"
)

// Service сервис для работы с кортами
type Service struct {
	courtRepo CourtRepository
	venueRepo VenueRepository
	sportRepo SportRepository
	logger    Logger
}

// NewService создает новый экземпляр сервиса кортов
func NewService(
	courtRepo CourtRepository,
	venueRepo VenueRepository,
	sportRepo SportRepository,
	logger Logger,
) *Service {
	return &Service{
		courtRepo: courtRepo,
		venueRepo: venueRepo,
		sportRepo: sportRepo,
		logger:    logger,
	}
}

// Create создает новый корт
// Инвариант времени работы (0 <= openTime < closeTime <= 1439) проверяется
// здесь, при создании корта - генератор слотов на него полагается
func (s *Service) Create(ctx context.Context, req *models.CreateCourtRequest) (*models.CourtResponse, error) {
	s.logger.Info("Create: venue=%s, sport=%s, open=%d, close=%d",
		req.VenueID, req.SportID, req.OpenTime, req.CloseTime)

	if err := validateCreateRequest(req); err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, err
	}

	// Проверяем существование площадки
	if _, err := s.venueRepo.GetByID(ctx, req.VenueID); err != nil {
		if errors.Is(err, venueRepo.ErrVenueNotFound) {
			s.logger.Warn("Create: venue id=%s not found", req.VenueID)
			return nil, ErrVenueNotFound
		}
		s.logger.Error("Create: failed to get venue id=%s: %v", req.VenueID, err)
		return nil, fmt.Errorf("%w: failed to get venue: %v", ErrInternal, err)
	}

	// Проверяем существование вида спорта
	if _, err := s.sportRepo.GetByID(ctx, req.SportID); err != nil {
		if errors.Is(err, sportRepo.ErrSportNotFound) {
			s.logger.Warn("Create: sport id=%s not found", req.SportID)
			return nil, ErrSportNotFound
		}
		s.logger.Error("Create: failed to get sport id=%s: %v", req.SportID, err)
		return nil, fmt.Errorf("%w: failed to get sport: %v", ErrInternal, err)
	}

	court := &domain.Court{
		VenueID:   req.VenueID,
		SportID:   req.SportID,
		Indoor:    req.Indoor,
		Surface:   req.Surface,
		Lights:    req.Lights,
		PriceHour: req.PriceHour,
		OpenTime:  req.OpenTime,
		CloseTime: req.CloseTime,
	}

	created, err := s.courtRepo.Create(ctx, court)
	if err != nil {
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully created court id=%s", created.ID)
	return models.FromDomainCourt(created), nil
}

// Search ищет корты по городу, виду спорта и координатам
// Результат ограничен domain.MaxSearchResults записями
func (s *Service) Search(ctx context.Context, req *models.SearchRequest) ([]*models.SearchResultItem, error) {
	s.logger.Info("Search: city=%q, sport=%v", req.City, req.SportSlug)

	if err := validateSearchRequest(req); err != nil {
		s.logger.Warn("Search: validation failed: %v", err)
		return nil, err
	}

	filter := domain.CourtSearchFilter{
		City:      req.City,
		SportSlug: req.SportSlug,
		BBox:      req.BBox,
		Limit:     domain.MaxSearchResults,
	}

	details, err := s.courtRepo.Search(ctx, filter)
	if err != nil {
		s.logger.Error("Search: repository error: %v", err)
		return nil, fmt.Errorf("%w: Search - repository error: %v", ErrInternal, err)
	}

	results := make([]*models.SearchResultItem, 0, len(details))
	for _, d := range details {
		results = append(results, models.FromDomainDetails(d))
	}

	s.logger.Info("Search: found %d courts for city=%q", len(results), req.City)
	return results, nil
}

func validateCreateRequest(req *models.CreateCourtRequest) error {
	if req.VenueID == "" {
		return fmt.Errorf("%w: venueId is required", ErrInvalidInput)
	}
	if req.SportID == "" {
		return fmt.Errorf("%w: sportId is required", ErrInvalidInput)
	}
	if req.PriceHour <= 0 {
		return fmt.Errorf("%w: priceHour must be positive", ErrInvalidInput)
	}
	if err := domain.ValidateOperatingHours(req.OpenTime, req.CloseTime); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return nil
}

func validateSearchRequest(req *models.SearchRequest) error {
	if req.City == "" {
		return fmt.Errorf("%w: city is required", ErrInvalidInput)
	}
	if req.SportSlug != nil && *req.SportSlug == "" {
		return fmt.Errorf("%w: sport slug must not be empty", ErrInvalidInput)
	}
	if req.BBox != nil && !req.BBox.IsValid() {
		return fmt.Errorf("%w: bbox bounds are inconsistent", ErrInvalidInput)
	}
	return nil
}
