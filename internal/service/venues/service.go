package venues

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-CourtBookingService/internal/domain"
	"github.com/m04kA/SMC-CourtBookingService/internal/service/venues/models"
)

// Service сервис для работы с площадками
type Service struct {
	venueRepo VenueRepository
	courtRepo CourtRepository
	logger    Logger
}

// NewService создает новый экземпляр сервиса площадок
func NewService(venueRepo VenueRepository, courtRepo CourtRepository, logger Logger) *Service {
	return &Service{
		venueRepo: venueRepo,
		courtRepo: courtRepo,
		logger:    logger,
	}
}

// Create создает новую площадку от имени плейсхолдер-владельца
func (s *Service) Create(ctx context.Context, req *models.CreateVenueRequest) (*models.VenueResponse, error) {
	s.logger.Info("Create: name=%q, city=%q", req.Name, req.City)

	if err := validateCreateRequest(req); err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, err
	}

	venue := &domain.Venue{
		OwnerID:      domain.PlaceholderOwnerID,
		Name:         req.Name,
		Description:  req.Description,
		Address:      req.Address,
		City:         req.City,
		Neighborhood: req.Neighborhood,
		Lat:          req.Lat,
		Lng:          req.Lng,
	}

	created, err := s.venueRepo.Create(ctx, venue)
	if err != nil {
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully created venue id=%s", created.ID)
	return models.FromDomainVenue(created, nil), nil
}

// List получает все площадки со вложенными кортами, сначала созданные последними
func (s *Service) List(ctx context.Context) ([]*models.VenueResponse, error) {
	s.logger.Info("List: fetching venues")

	venues, err := s.venueRepo.List(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	venueIDs := make([]string, 0, len(venues))
	for _, v := range venues {
		venueIDs = append(venueIDs, v.ID)
	}

	courtsByVenue, err := s.courtRepo.GetByVenueIDs(ctx, venueIDs)
	if err != nil {
		s.logger.Error("List: failed to get courts: %v", err)
		return nil, fmt.Errorf("%w: List - failed to get courts: %v", ErrInternal, err)
	}

	result := make([]*models.VenueResponse, 0, len(venues))
	for _, v := range venues {
		result = append(result, models.FromDomainVenue(v, courtsByVenue[v.ID]))
	}

	s.logger.Info("List: fetched %d venues", len(result))
	return result, nil
}

func validateCreateRequest(req *models.CreateVenueRequest) error {
	if req.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if len(req.Name) > domain.MaxVenueNameLength {
		return fmt.Errorf("%w: name is too long", ErrInvalidInput)
	}
	if req.Address == "" {
		return fmt.Errorf("%w: address is required", ErrInvalidInput)
	}
	if len(req.Address) > domain.MaxAddressLength {
		return fmt.Errorf("%w: address is too long", ErrInvalidInput)
	}
	if req.City == "" {
		return fmt.Errorf("%w: city is required", ErrInvalidInput)
	}
	if req.Description != nil && len(*req.Description) > domain.MaxDescriptionLength {
		return fmt.Errorf("%w: description is too long", ErrInvalidInput)
	}
	return nil
}
