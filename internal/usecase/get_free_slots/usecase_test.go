package get_free_slots

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

func TestExecute_FiltersBookingsByDate(t *testing.T) {
	date := time.Date(2030, 5, 1, 0, 0, 0, 0, time.UTC)
	bookingRepo := &mockBookingRepo{bookings: []*domain.Booking{
		{TableNumber: 1, BookingDate: date, StartTime: "11:00"},
	}}
	tableRepo := &mockTableRepo{tables: []domain.Table{
		{Number: 1, Size: 2},
		{Number: 2, Size: 3},
	}}
	uc := NewUseCase(testCatalogue, bookingRepo, tableRepo, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{Date: date})

	require.NoError(t, err)
	assert.Equal(t, ptr.Ptr(date), bookingRepo.lastFilter.Date)
	assert.Nil(t, bookingRepo.lastFilter.TableNumber)
	assert.Nil(t, bookingRepo.lastFilter.StartTime)

	assert.Equal(t, []types.TimeString{"09:00", "13:00", "15:00"}, resp.Slots[1])
	assert.Equal(t, []types.TimeString{"09:00", "11:00", "13:00", "15:00"}, resp.Slots[2])
}

func TestExecute_MissingDate(t *testing.T) {
	uc := NewUseCase(testCatalogue, &mockBookingRepo{}, &mockTableRepo{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_TableRepoError(t *testing.T) {
	tableRepo := &mockTableRepo{err: assert.AnError}
	uc := NewUseCase(testCatalogue, &mockBookingRepo{}, tableRepo, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{Date: time.Date(2030, 5, 1, 0, 0, 0, 0, time.UTC)})
	assert.ErrorIs(t, err, ErrInternal)
}

func TestExecute_MalformedBooking(t *testing.T) {
	date := time.Date(2030, 5, 1, 0, 0, 0, 0, time.UTC)
	// Бронь на время вне каталога означает битые данные
	bookingRepo := &mockBookingRepo{bookings: []*domain.Booking{
		{TableNumber: 1, BookingDate: date, StartTime: "17:00"},
	}}
	tableRepo := &mockTableRepo{tables: []domain.Table{{Number: 1, Size: 2}}}
	uc := NewUseCase(testCatalogue, bookingRepo, tableRepo, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{Date: date})
	assert.ErrorIs(t, err, ErrDataIntegrity)
}
