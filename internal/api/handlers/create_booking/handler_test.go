package create_booking

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CourtBookingService/internal/domain"
	createBooking "github.com/m04kA/SMC-CourtBookingService/internal/usecase/create_booking"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type stubUseCase struct {
	resp *createBooking.Response
	err  error
	req  *createBooking.Request
}

func (s *stubUseCase) Execute(ctx context.Context, req *createBooking.Request) (*createBooking.Response, error) {
	s.req = req
	return s.resp, s.err
}

func doRequest(t *testing.T, uc *stubUseCase, body string) *httptest.ResponseRecorder {
	t.Helper()

	h := NewHandler(uc, nopLogger{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", bytes.NewBufferString(body))
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandle_Success(t *testing.T) {
	start := time.Date(2025, 6, 15, 10, 0, 0, 0, time.Local)
	uc := &stubUseCase{
		resp: &createBooking.Response{
			ID:      "booking-1",
			CourtID: "court-1",
			UserID:  domain.PlaceholderUserID,
			StartTs: start,
			EndTs:   start.Add(time.Hour),
			Status:  string(domain.StatusPending),
			Price:   25000,
		},
	}

	body := `{"courtId":"court-1","startTs":"2025-06-15T10:00:00+03:00","endTs":"2025-06-15T11:00:00+03:00"}`
	rec := doRequest(t, uc, body)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp BookingResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "booking-1", resp.ID)
	assert.Equal(t, "PENDING", resp.Status)
	assert.Equal(t, int64(25000), resp.Price)

	// Пользователь подставляется сервером, клиент его не передает
	require.NotNil(t, uc.req)
	assert.Equal(t, domain.PlaceholderUserID, uc.req.UserID)
}

func TestHandle_SlotNotAvailable(t *testing.T) {
	uc := &stubUseCase{err: createBooking.ErrSlotNotAvailable}

	body := `{"courtId":"court-1","startTs":"2025-06-15T10:00:00+03:00","endTs":"2025-06-15T11:00:00+03:00"}`
	rec := doRequest(t, uc, body)

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestHandle_CourtNotFound(t *testing.T) {
	uc := &stubUseCase{err: createBooking.ErrCourtNotFound}

	body := `{"courtId":"missing","startTs":"2025-06-15T10:00:00+03:00","endTs":"2025-06-15T11:00:00+03:00"}`
	rec := doRequest(t, uc, body)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandle_InvalidInterval(t *testing.T) {
	uc := &stubUseCase{err: createBooking.ErrInvalidInterval}

	body := `{"courtId":"court-1","startTs":"2025-06-15T11:00:00+03:00","endTs":"2025-06-15T10:00:00+03:00"}`
	rec := doRequest(t, uc, body)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandle_MalformedTimestamp(t *testing.T) {
	uc := &stubUseCase{}

	body := `{"courtId":"court-1","startTs":"not-a-date","endTs":"2025-06-15T11:00:00+03:00"}`
	rec := doRequest(t, uc, body)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Nil(t, uc.req, "use case не вызывается при некорректной временной метке")
}

func TestHandle_MalformedBody(t *testing.T) {
	uc := &stubUseCase{}

	rec := doRequest(t, uc, `{"courtId":`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandle_UnknownFieldRejected(t *testing.T) {
	uc := &stubUseCase{}

	body := `{"courtId":"court-1","startTs":"2025-06-15T10:00:00+03:00","endTs":"2025-06-15T11:00:00+03:00","price":1}`
	rec := doRequest(t, uc, body)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
