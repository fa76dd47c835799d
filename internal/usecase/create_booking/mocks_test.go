package create_booking

import (
	"context"
	"time"

	"github.com/othmanalikhan-apps/project-aardvark/internal/domain"
)

type mockBookingRepo struct {
	bookings    []*domain.Booking
	usedRefs    map[string]bool
	createErr   error
	filterErr   error
	refErr      error
	nextID      int64
	createCalls int
}

func newMockBookingRepo() *mockBookingRepo {
	return &mockBookingRepo{usedRefs: map[string]bool{}, nextID: 1}
}

func (m *mockBookingRepo) Create(_ context.Context, b *domain.Booking) (*domain.Booking, error) {
	m.createCalls++
	if m.createErr != nil {
		return nil, m.createErr
	}
	created := *b
	created.ID = m.nextID
	created.CreatedAt = time.Date(2030, 4, 1, 12, 0, 0, 0, time.UTC)
	m.nextID++
	m.bookings = append(m.bookings, &created)
	return &created, nil
}

func (m *mockBookingRepo) GetWithFilter(_ context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	if m.filterErr != nil {
		return nil, m.filterErr
	}
	var out []*domain.Booking
	for _, b := range m.bookings {
		if filter.Date != nil && !b.IsOnDate(*filter.Date) {
			continue
		}
		if filter.TableNumber != nil && b.TableNumber != *filter.TableNumber {
			continue
		}
		if filter.StartTime != nil && b.StartTime != *filter.StartTime {
			continue
		}
		out = append(out, b)
	}
	return out, nil
}

func (m *mockBookingRepo) ReferenceExists(_ context.Context, ref string) (bool, error) {
	if m.refErr != nil {
		return false, m.refErr
	}
	return m.usedRefs[ref], nil
}

type mockTableRepo struct {
	tables map[int64]*domain.Table
}

func newMockTableRepo(tables ...*domain.Table) *mockTableRepo {
	m := &mockTableRepo{tables: map[int64]*domain.Table{}}
	for _, t := range tables {
		m.tables[t.Number] = t
	}
	return m
}

func (m *mockTableRepo) GetByNumber(_ context.Context, number int64) (*domain.Table, error) {
	t, ok := m.tables[number]
	if !ok {
		return nil, ErrTableNotFound
	}
	return t, nil
}

// mockTxManager выполняет функцию без реальной транзакции
type mockTxManager struct {
	err error
}

func (m *mockTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	if m.err != nil {
		return m.err
	}
	return fn(ctx)
}

type mockNotifier struct {
	sent []*domain.Booking
}

func (m *mockNotifier) SendBookingConfirmation(b *domain.Booking) {
	m.sent = append(m.sent, b)
}

type fixedTimeProvider struct {
	now time.Time
}

func (p *fixedTimeProvider) Now() time.Time {
	return p.now
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}
