package get_free_sizes

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/othmanalikhan-apps/project-aardvark/internal/domain"
	"github.com/othmanalikhan-apps/project-aardvark/pkg/ptr"
	"github.com/othmanalikhan-apps/project-aardvark/pkg/types"
)

var testCatalogue = []types.TimeString{"09:00", "11:00", "13:00", "15:00"}

type mockBookingRepo struct {
	bookings   []*domain.Booking
	lastFilter domain.BookingsFilter
	err        error
}

func (m *mockBookingRepo) GetWithFilter(_ context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	m.lastFilter = filter
	return m.bookings, m.err
}

type mockTableRepo struct {
	tables []domain.Table
	err    error
}

func (m *mockTableRepo) List(_ context.Context) ([]domain.Table, error) {
	return m.tables, m.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func threeTables() []domain.Table {
	return []domain.Table{
		{Number: 1, Size: 2},
		{Number: 2, Size: 3},
		{Number: 3, Size: 5},
	}
}

func TestExecute_SizesOfFreeTables(t *testing.T) {
	date := time.Date(2030, 5, 1, 0, 0, 0, 0, time.UTC)
	bookingRepo := &mockBookingRepo{bookings: []*domain.Booking{
		{TableNumber: 1, BookingDate: date, StartTime: "13:00"},
	}}
	tableRepo := &mockTableRepo{tables: threeTables()}
	uc := NewUseCase(testCatalogue, bookingRepo, tableRepo, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{Date: date, Time: "13:00"})

	require.NoError(t, err)
	assert.Equal(t, ptr.Ptr(date), bookingRepo.lastFilter.Date)
	assert.Equal(t, ptr.Ptr(types.TimeString("13:00")), bookingRepo.lastFilter.StartTime)
	assert.Equal(t, []string{"3", "5"}, resp.Sizes)
}

func TestExecute_SlotNotInCatalogue(t *testing.T) {
	uc := NewUseCase(testCatalogue, &mockBookingRepo{}, &mockTableRepo{tables: threeTables()}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		Date: time.Date(2030, 5, 1, 0, 0, 0, 0, time.UTC),
		Time: "17:00",
	})
	assert.ErrorIs(t, err, ErrSlotNotInCatalogue)
}

func TestExecute_Validation(t *testing.T) {
	tests := []struct {
		name string
		req  *Request
	}{
		{"missing date", &Request{Time: "11:00"}},
		{"missing time", &Request{Date: time.Date(2030, 5, 1, 0, 0, 0, 0, time.UTC)}},
		{"malformed time", &Request{Date: time.Date(2030, 5, 1, 0, 0, 0, 0, time.UTC), Time: "9am"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := NewUseCase(testCatalogue, &mockBookingRepo{}, &mockTableRepo{}, nopLogger{})

			_, err := uc.Execute(context.Background(), tt.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestExecute_DuplicateBookingIsIntegrityError(t *testing.T) {
	date := time.Date(2030, 5, 1, 0, 0, 0, 0, time.UTC)
	bookingRepo := &mockBookingRepo{bookings: []*domain.Booking{
		{TableNumber: 1, BookingDate: date, StartTime: "13:00"},
		{TableNumber: 1, BookingDate: date, StartTime: "13:00"},
	}}
	uc := NewUseCase(testCatalogue, bookingRepo, &mockTableRepo{tables: threeTables()}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{Date: date, Time: "13:00"})
	assert.ErrorIs(t, err, ErrDataIntegrity)
}
