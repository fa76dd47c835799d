package create_booking

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	createBooking "github.com/othmanalikhan-apps/project-aardvark/internal/usecase/create_booking"
)

type mockUseCase struct {
	resp *createBooking.Response
	err  error
	req  *createBooking.Request
}

func (m *mockUseCase) Execute(_ context.Context, req *createBooking.Request) (*createBooking.Response, error) {
	m.req = req
	return m.resp, m.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

const validBody = `{
	"name": "John Doe",
	"email": "john@example.com",
	"phone": "0123456789",
	"date": "2030-05-01",
	"time": "11:00",
	"tableNumber": 2
}`

func post(h *Handler, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandle_Created(t *testing.T) {
	uc := &mockUseCase{resp: &createBooking.Response{
		ID:          1,
		Reference:   "ABC1234567",
		TableNumber: 2,
		Date:        time.Date(2030, 5, 1, 0, 0, 0, 0, time.UTC),
		StartTime:   "11:00",
		CreatedAt:   time.Date(2030, 4, 1, 12, 0, 0, 0, time.UTC),
	}}
	h := NewHandler(uc, nopLogger{})

	rec := post(h, validBody)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "John Doe", uc.req.CustomerName)
	assert.Equal(t, int64(2), uc.req.TableNumber)

	var body BookingResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "ABC1234567", body.Reference)
	assert.Equal(t, "2030-05-01", body.Date)
	assert.Equal(t, "11:00", body.Time)
}

func TestHandle_InvalidBody(t *testing.T) {
	h := NewHandler(&mockUseCase{}, nopLogger{})

	rec := post(h, `{"name":`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandle_ValidationRejected(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"missing name", `{"email":"a@b.c","phone":"123","date":"2030-05-01","time":"11:00","tableNumber":2}`},
		{"bad email", `{"name":"John","email":"not-an-email","phone":"123","date":"2030-05-01","time":"11:00","tableNumber":2}`},
		{"zero table", `{"name":"John","email":"a@b.c","phone":"123","date":"2030-05-01","time":"11:00","tableNumber":0}`},
		{"unknown field", `{"name":"John","email":"a@b.c","phone":"123","date":"2030-05-01","time":"11:00","tableNumber":2,"extra":1}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &mockUseCase{}
			h := NewHandler(uc, nopLogger{})

			rec := post(h, tt.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Nil(t, uc.req)
		})
	}
}

func TestHandle_Conflict(t *testing.T) {
	uc := &mockUseCase{err: createBooking.ErrTableAlreadyBooked}
	h := NewHandler(uc, nopLogger{})

	rec := post(h, validBody)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestHandle_TableNotFound(t *testing.T) {
	uc := &mockUseCase{err: createBooking.ErrTableNotFound}
	h := NewHandler(uc, nopLogger{})

	rec := post(h, validBody)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandle_SlotNotInCatalogue(t *testing.T) {
	uc := &mockUseCase{err: createBooking.ErrSlotNotInCatalogue}
	h := NewHandler(uc, nopLogger{})

	rec := post(h, validBody)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
