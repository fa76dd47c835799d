package get_free_slots

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	getFreeSlots "github.com/othmanalikhan-apps/project-aardvark/internal/usecase/get_free_slots"
	"github.com/othmanalikhan-apps/project-aardvark/pkg/types"
)

type mockUseCase struct {
	resp *getFreeSlots.Response
	err  error
	req  *getFreeSlots.Request
}

func (m *mockUseCase) Execute(_ context.Context, req *getFreeSlots.Request) (*getFreeSlots.Response, error) {
	m.req = req
	return m.resp, m.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestHandle_Success(t *testing.T) {
	date := time.Date(2030, 5, 1, 0, 0, 0, 0, time.UTC)
	uc := &mockUseCase{resp: &getFreeSlots.Response{
		Date: date,
		Slots: map[int64][]types.TimeString{
			1: {"09:00", "13:00"},
			2: {},
		},
	}}
	h := NewHandler(uc, nopLogger{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/bookings/slots?date=2030-05-01", nil)
	rec := httptest.NewRecorder()

	h.Handle(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, date, uc.req.Date)

	var body FreeSlotsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "2030-05-01", body.Date)
	assert.Equal(t, []string{"09:00", "13:00"}, body.Slots["1"])
	assert.Empty(t, body.Slots["2"])
	assert.Contains(t, body.Slots, "2")
}

func TestHandle_MissingDate(t *testing.T) {
	h := NewHandler(&mockUseCase{}, nopLogger{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/bookings/slots", nil)
	rec := httptest.NewRecorder()

	h.Handle(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandle_InvalidDate(t *testing.T) {
	h := NewHandler(&mockUseCase{}, nopLogger{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/bookings/slots?date=01-05-2030", nil)
	rec := httptest.NewRecorder()

	h.Handle(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandle_UseCaseError(t *testing.T) {
	uc := &mockUseCase{err: assert.AnError}
	h := NewHandler(uc, nopLogger{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/bookings/slots?date=2030-05-01", nil)
	rec := httptest.NewRecorder()

	h.Handle(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
