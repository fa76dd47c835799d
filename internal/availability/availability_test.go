package availability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/othmanalikhan-apps/project-aardvark/internal/domain"
	"github.com/othmanalikhan-apps/project-aardvark/pkg/types"
)

var testCatalogue = []types.TimeString{"09:00", "11:00", "13:00", "15:00"}

var testTables = []domain.Table{
	{Number: 1, Size: 2},
	{Number: 2, Size: 3},
	{Number: 3, Size: 5},
}

func testDate(t *testing.T) time.Time {
	t.Helper()
	date, err := time.Parse(domain.DateFormat, "2030-05-01")
	require.NoError(t, err)
	return date
}

func booking(table int64, date time.Time, at types.TimeString) *domain.Booking {
	return &domain.Booking{
		Reference:   "ABC1234567",
		TableNumber: table,
		BookingDate: date,
		StartTime:   at,
	}
}

func TestFreeSlotsPerTable(t *testing.T) {
	date := testDate(t)
	otherDate := date.AddDate(0, 0, 1)

	tests := []struct {
		name     string
		bookings []*domain.Booking
		want     map[int64][]types.TimeString
	}{
		{
			name:     "noBookingsReturnsFullCatalogue",
			bookings: nil,
			want: map[int64][]types.TimeString{
				1: {"09:00", "11:00", "13:00", "15:00"},
				2: {"09:00", "11:00", "13:00", "15:00"},
				3: {"09:00", "11:00", "13:00", "15:00"},
			},
		},
		{
			name: "bookedSlotsRemovedInCatalogueOrder",
			bookings: []*domain.Booking{
				booking(1, date, "09:00"),
				booking(2, date, "13:00"),
			},
			want: map[int64][]types.TimeString{
				1: {"11:00", "13:00", "15:00"},
				2: {"09:00", "11:00", "15:00"},
				3: {"09:00", "11:00", "13:00", "15:00"},
			},
		},
		{
			name: "fullyBookedTableGetsEmptySliceNotMissingKey",
			bookings: []*domain.Booking{
				booking(1, date, "09:00"),
				booking(1, date, "11:00"),
				booking(1, date, "13:00"),
				booking(1, date, "15:00"),
			},
			want: map[int64][]types.TimeString{
				1: {},
				2: {"09:00", "11:00", "13:00", "15:00"},
				3: {"09:00", "11:00", "13:00", "15:00"},
			},
		},
		{
			name: "bookingsForOtherDatesIgnored",
			bookings: []*domain.Booking{
				booking(1, otherDate, "09:00"),
				booking(2, otherDate, "11:00"),
			},
			want: map[int64][]types.TimeString{
				1: {"09:00", "11:00", "13:00", "15:00"},
				2: {"09:00", "11:00", "13:00", "15:00"},
				3: {"09:00", "11:00", "13:00", "15:00"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FreeSlotsPerTable(testCatalogue, testTables, tt.bookings, date)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFreeSlotsPerTableEmptyTableCatalogue(t *testing.T) {
	got, err := FreeSlotsPerTable(testCatalogue, nil, nil, testDate(t))
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestFreeSlotsPerTableUnknownSlot(t *testing.T) {
	// Сценарий D: бронь на "17:00" вне каталога - ошибка целостности,
	// а не тихое игнорирование
	date := testDate(t)
	bookings := []*domain.Booking{booking(1, date, "17:00")}

	_, err := FreeSlotsPerTable(testCatalogue, testTables, bookings, date)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownSlot)
	assert.True(t, IsDataIntegrityError(err))
}

func TestFreeSlotsPerTableUnknownTable(t *testing.T) {
	date := testDate(t)
	bookings := []*domain.Booking{booking(99, date, "09:00")}

	_, err := FreeSlotsPerTable(testCatalogue, testTables, bookings, date)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownTable)
}

func TestFreeSlotsPerTableDuplicateBooking(t *testing.T) {
	date := testDate(t)
	bookings := []*domain.Booking{
		booking(1, date, "09:00"),
		booking(1, date, "09:00"),
	}

	_, err := FreeSlotsPerTable(testCatalogue, testTables, bookings, date)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDuplicateBooking)
}

func TestFreeSlotsPerTableDoesNotMutateInputs(t *testing.T) {
	date := testDate(t)
	catalogue := []types.TimeString{"09:00", "11:00", "13:00", "15:00"}
	bookings := []*domain.Booking{booking(1, date, "11:00")}

	got, err := FreeSlotsPerTable(catalogue, testTables, bookings, date)
	require.NoError(t, err)

	// Каталог не изменился
	assert.Equal(t, []types.TimeString{"09:00", "11:00", "13:00", "15:00"}, catalogue)

	// Результаты разных столов независимы: мутация одного не трогает другие
	got[2][0] = "23:59"
	assert.Equal(t, []types.TimeString{"09:00", "11:00", "13:00", "15:00"}, got[3])
	assert.Equal(t, []types.TimeString{"09:00", "11:00", "13:00", "15:00"}, catalogue)
}

func TestFreeSlotsPerTableIdempotent(t *testing.T) {
	date := testDate(t)
	bookings := []*domain.Booking{
		booking(1, date, "09:00"),
		booking(2, date, "13:00"),
	}

	first, err := FreeSlotsPerTable(testCatalogue, testTables, bookings, date)
	require.NoError(t, err)
	second, err := FreeSlotsPerTable(testCatalogue, testTables, bookings, date)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestFreeSizesAtSlot(t *testing.T) {
	date := testDate(t)

	tests := []struct {
		name     string
		bookings []*domain.Booking
		at       types.TimeString
		want     []string
	}{
		{
			// Сценарий B: столы 2 и 3 свободны на 09:00
			name: "sizesOfUnbookedTables",
			bookings: []*domain.Booking{
				booking(1, date, "09:00"),
				booking(2, date, "13:00"),
			},
			at:   "09:00",
			want: []string{"3", "5"},
		},
		{
			name:     "allTablesFreeReturnsAllSizes",
			bookings: nil,
			at:       "11:00",
			want:     []string{"2", "3", "5"},
		},
		{
			name: "allTablesBookedReturnsEmptyList",
			bookings: []*domain.Booking{
				booking(1, date, "11:00"),
				booking(2, date, "11:00"),
				booking(3, date, "11:00"),
			},
			at:   "11:00",
			want: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FreeSizesAtSlot(testTables, tt.bookings, date, tt.at)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFreeSizesAtSlotKeepsDuplicateSizes(t *testing.T) {
	// Два свободных стола одного размера дают две записи: поведение GUI
	// выпадающего списка сохранено как есть
	tables := []domain.Table{
		{Number: 1, Size: 3},
		{Number: 2, Size: 3},
		{Number: 3, Size: 5},
	}

	got, err := FreeSizesAtSlot(tables, nil, testDate(t), "09:00")
	require.NoError(t, err)
	assert.Equal(t, []string{"3", "3", "5"}, got)
}

func TestFreeSizesAtSlotEmptyTableCatalogue(t *testing.T) {
	got, err := FreeSizesAtSlot(nil, nil, testDate(t), "09:00")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestFreeSizesAtSlotUnknownTable(t *testing.T) {
	date := testDate(t)
	bookings := []*domain.Booking{booking(42, date, "09:00")}

	_, err := FreeSizesAtSlot(testTables, bookings, date, "09:00")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownTable)
}

func TestFreeTablesAtSlotAndSize(t *testing.T) {
	date := testDate(t)

	tests := []struct {
		name     string
		bookings []*domain.Booking
		at       types.TimeString
		size     int64
		want     []int64
	}{
		{
			// Сценарий C: стол 3 размера 5 свободен на 13:00,
			// стол 2 занят и в любом случае размера 3
			name: "freeTableOfRequestedSize",
			bookings: []*domain.Booking{
				booking(1, date, "09:00"),
				booking(2, date, "13:00"),
			},
			at:   "13:00",
			size: 5,
			want: []int64{3},
		},
		{
			name:     "unknownSizeReturnsEmptyListNotError",
			bookings: nil,
			at:       "09:00",
			size:     42,
			want:     []int64{},
		},
		{
			name: "bookedTableOfMatchingSizeExcluded",
			bookings: []*domain.Booking{
				booking(3, date, "15:00"),
			},
			at:   "15:00",
			size: 5,
			want: []int64{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FreeTablesAtSlotAndSize(testTables, tt.bookings, date, tt.at, tt.size)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFreeTablesAtSlotAndSizeSortedNumerically(t *testing.T) {
	// Сортировка по числовому значению, не по строковому: 2 < 10
	tables := []domain.Table{
		{Number: 10, Size: 4},
		{Number: 2, Size: 4},
		{Number: 7, Size: 4},
	}

	got, err := FreeTablesAtSlotAndSize(tables, nil, testDate(t), "09:00", 4)
	require.NoError(t, err)
	assert.Equal(t, []int64{2, 7, 10}, got)
}

func TestFreeTablesAtSlotAndSizeEmptyTableCatalogue(t *testing.T) {
	got, err := FreeTablesAtSlotAndSize(nil, nil, testDate(t), "09:00", 2)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestFreeTablesAtSlotAndSizeDuplicateBooking(t *testing.T) {
	date := testDate(t)
	bookings := []*domain.Booking{
		booking(3, date, "13:00"),
		booking(3, date, "13:00"),
	}

	_, err := FreeTablesAtSlotAndSize(testTables, bookings, date, "13:00", 5)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDuplicateBooking)
}
