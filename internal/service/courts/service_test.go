package courts

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CourtBookingService/internal/domain"
	sportRepo "github.com/m04kA/SMC-CourtBookingService/internal/infra/storage/sport"
	venueRepo "github.com/m04kA/SMC-CourtBookingService/internal/infra/storage/venue"
	"github.com/m04kA/SMC-CourtBookingService/internal/service/courts/models"
	"github.com/m04kA/SMC-CourtBookingService/pkg/ptr"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type stubCourtRepo struct {
	created    *domain.Court
	details    []*domain.CourtDetails
	lastFilter domain.CourtSearchFilter
}

func (s *stubCourtRepo) Create(ctx context.Context, court *domain.Court) (*domain.Court, error) {
	created := *court
	created.ID = "court-1"
	s.created = &created
	return &created, nil
}

func (s *stubCourtRepo) Search(ctx context.Context, filter domain.CourtSearchFilter) ([]*domain.CourtDetails, error) {
	s.lastFilter = filter
	return s.details, nil
}

type stubVenueRepo struct {
	err error
}

func (s *stubVenueRepo) GetByID(ctx context.Context, id string) (*domain.Venue, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &domain.Venue{ID: id}, nil
}

type stubSportRepo struct {
	err error
}

func (s *stubSportRepo) GetByID(ctx context.Context, id string) (*domain.Sport, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &domain.Sport{ID: id}, nil
}

func newTestService() (*Service, *stubCourtRepo) {
	courts := &stubCourtRepo{}
	svc := NewService(courts, &stubVenueRepo{}, &stubSportRepo{}, nopLogger{})
	return svc, courts
}

func validCreateRequest() *models.CreateCourtRequest {
	return &models.CreateCourtRequest{
		VenueID:   "venue-1",
		SportID:   "sport-1",
		Indoor:    true,
		PriceHour: 25000,
		OpenTime:  360,
		CloseTime: 1380,
	}
}

func TestCreate_Success(t *testing.T) {
	svc, courts := newTestService()

	resp, err := svc.Create(context.Background(), validCreateRequest())

	require.NoError(t, err)
	assert.Equal(t, "court-1", resp.ID)
	assert.Equal(t, int64(25000), courts.created.PriceHour)
}

func TestCreate_InvalidOperatingHours(t *testing.T) {
	svc, _ := newTestService()

	tests := []struct {
		name      string
		openTime  int
		closeTime int
	}{
		{"close before open", 720, 360},
		{"close equals open", 720, 720},
		{"open below range", -10, 720},
		{"close above range", 360, 1500},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validCreateRequest()
			req.OpenTime = tt.openTime
			req.CloseTime = tt.closeTime

			_, err := svc.Create(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestCreate_NonPositivePrice(t *testing.T) {
	svc, _ := newTestService()

	req := validCreateRequest()
	req.PriceHour = 0

	_, err := svc.Create(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestCreate_VenueNotFound(t *testing.T) {
	svc := NewService(&stubCourtRepo{}, &stubVenueRepo{err: venueRepo.ErrVenueNotFound}, &stubSportRepo{}, nopLogger{})

	_, err := svc.Create(context.Background(), validCreateRequest())
	assert.ErrorIs(t, err, ErrVenueNotFound)
}

func TestCreate_SportNotFound(t *testing.T) {
	svc := NewService(&stubCourtRepo{}, &stubVenueRepo{}, &stubSportRepo{err: sportRepo.ErrSportNotFound}, nopLogger{})

	_, err := svc.Create(context.Background(), validCreateRequest())
	assert.ErrorIs(t, err, ErrSportNotFound)
}

func TestSearch_CityRequired(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.Search(context.Background(), &models.SearchRequest{City: ""})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestSearch_InvalidBBox(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.Search(context.Background(), &models.SearchRequest{
		City: "Москва",
		BBox: &domain.BBox{MinLng: 40, MinLat: 56, MaxLng: 37, MaxLat: 55},
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestSearch_AppliesResultLimit(t *testing.T) {
	svc, courts := newTestService()

	_, err := svc.Search(context.Background(), &models.SearchRequest{
		City:      "Москва",
		SportSlug: ptr.Ptr("tennis"),
	})

	require.NoError(t, err)
	assert.Equal(t, uint64(domain.MaxSearchResults), courts.lastFilter.Limit)
	assert.Equal(t, "Москва", courts.lastFilter.City)
	require.NotNil(t, courts.lastFilter.SportSlug)
	assert.Equal(t, "tennis", *courts.lastFilter.SportSlug)
}
