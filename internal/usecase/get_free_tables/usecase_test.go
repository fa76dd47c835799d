package get_free_tables

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/othmanalikhan-apps/project-aardvark/internal/domain"
	"github.com/othmanalikhan-apps/project-aardvark/pkg/types"
)

var testCatalogue = []types.TimeString{"09:00", "11:00", "13:00", "15:00"}

type mockBookingRepo struct {
	bookings []*domain.Booking
	err      error
}

func (m *mockBookingRepo) GetWithFilter(_ context.Context, _ domain.BookingsFilter) ([]*domain.Booking, error) {
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

func testTables() []domain.Table {
	return []domain.Table{
		{Number: 1, Size: 2},
		{Number: 2, Size: 3},
		{Number: 3, Size: 3},
		{Number: 4, Size: 5},
	}
}

func TestExecute_FreeTablesOfSize(t *testing.T) {
	date := time.Date(2030, 5, 1, 0, 0, 0, 0, time.UTC)
	bookingRepo := &mockBookingRepo{bookings: []*domain.Booking{
		{TableNumber: 2, BookingDate: date, StartTime: "11:00"},
	}}
	uc := NewUseCase(testCatalogue, bookingRepo, &mockTableRepo{tables: testTables()}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{Date: date, Time: "11:00", Size: 3})

	require.NoError(t, err)
	assert.Equal(t, []int64{3}, resp.Tables)
}

func TestExecute_UnknownSizeIsEmpty(t *testing.T) {
	date := time.Date(2030, 5, 1, 0, 0, 0, 0, time.UTC)
	uc := NewUseCase(testCatalogue, &mockBookingRepo{}, &mockTableRepo{tables: testTables()}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{Date: date, Time: "11:00", Size: 7})

	require.NoError(t, err)
	assert.Empty(t, resp.Tables)
}

func TestExecute_Validation(t *testing.T) {
	date := time.Date(2030, 5, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		req     *Request
		wantErr error
	}{
		{"missing date", &Request{Time: "11:00", Size: 3}, ErrInvalidInput},
		{"missing time", &Request{Date: date, Size: 3}, ErrInvalidInput},
		{"zero size", &Request{Date: date, Time: "11:00"}, ErrInvalidInput},
		{"slot not in catalogue", &Request{Date: date, Time: "17:00", Size: 3}, ErrSlotNotInCatalogue},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := NewUseCase(testCatalogue, &mockBookingRepo{}, &mockTableRepo{tables: testTables()}, nopLogger{})

			_, err := uc.Execute(context.Background(), tt.req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
