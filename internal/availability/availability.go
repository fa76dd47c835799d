// Package availability вычисляет свободные слоты, размеры и столы
// по каталогу слотов, каталогу столов и множеству бронирований.
//
// Все функции чистые: не логируют, не обращаются к БД и не изменяют
// переданные данные, поэтому безопасны для конкурентных вызовов.
// Результат вычисляется заново на каждый запрос и нигде не кэшируется.
package availability

import (
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/othmanalikhan-apps/project-aardvark/internal/domain"
	"github.com/othmanalikhan-apps/project-aardvark/pkg/types"
)

// FreeSlotsPerTable возвращает для каждого стола список свободных слотов
// на указанную дату, в порядке каталога.
//
// Брони на другие даты отфильтровываются внутри. Стол без броней получает
// полный каталог, полностью занятый стол - пустой список (ключ присутствует
// всегда). Бронь, ссылающаяся на слот вне каталога или стол вне каталога,
// а также повторная бронь того же стола на тот же слот - ошибка целостности
// данных, а не тихий no-op.
func FreeSlotsPerTable(
	catalogue []types.TimeString,
	tables []domain.Table,
	bookings []*domain.Booking,
	date time.Time,
) (map[int64][]types.TimeString, error) {
	knownSlots := make(map[types.TimeString]struct{}, len(catalogue))
	for _, slot := range catalogue {
		knownSlots[slot] = struct{}{}
	}

	// Каждому столу - собственная копия каталога
	free := make(map[int64][]types.TimeString, len(tables))
	for _, table := range tables {
		slots := make([]types.TimeString, len(catalogue))
		copy(slots, catalogue)
		free[table.Number] = slots
	}

	for _, booking := range bookings {
		if !booking.IsOnDate(date) {
			continue
		}

		slots, ok := free[booking.TableNumber]
		if !ok {
			return nil, fmt.Errorf("%w: table=%d, reference=%s",
				ErrUnknownTable, booking.TableNumber, booking.Reference)
		}
		if _, ok := knownSlots[booking.StartTime]; !ok {
			return nil, fmt.Errorf("%w: table=%d, time=%s, reference=%s",
				ErrUnknownSlot, booking.TableNumber, booking.StartTime, booking.Reference)
		}

		removed := false
		for i, slot := range slots {
			if slot == booking.StartTime {
				free[booking.TableNumber] = append(slots[:i:i], slots[i+1:]...)
				removed = true
				break
			}
		}
		// Слот есть в каталоге, но уже удален - стол забронирован дважды
		if !removed {
			return nil, fmt.Errorf("%w: table=%d, date=%s, time=%s",
				ErrDuplicateBooking, booking.TableNumber,
				date.Format(domain.DateFormat), booking.StartTime)
		}
	}

	return free, nil
}

// FreeSizesAtSlot возвращает размеры столов, свободных на (дата, слот).
//
// На каждый свободный стол приходится одна запись, поэтому одинаковые
// размеры повторяются: два свободных стола на троих дают ["3", "3"].
// Результат отсортирован по возрастанию строкового представления.
// Если все столы заняты - пустой список, не ошибка.
func FreeSizesAtSlot(
	tables []domain.Table,
	bookings []*domain.Booking,
	date time.Time,
	at types.TimeString,
) ([]string, error) {
	booked, err := bookedTablesAtSlot(tables, bookings, date, at)
	if err != nil {
		return nil, err
	}

	sizes := make([]string, 0, len(tables))
	for _, table := range tables {
		if _, taken := booked[table.Number]; !taken {
			sizes = append(sizes, strconv.FormatInt(table.Size, 10))
		}
	}

	sort.Strings(sizes)
	return sizes, nil
}

// FreeTablesAtSlotAndSize возвращает номера столов указанного размера,
// свободных на (дата, слот), по возрастанию номера.
//
// Размер, которого нет ни у одного стола - корректный запрос с пустым
// результатом.
func FreeTablesAtSlotAndSize(
	tables []domain.Table,
	bookings []*domain.Booking,
	date time.Time,
	at types.TimeString,
	size int64,
) ([]int64, error) {
	booked, err := bookedTablesAtSlot(tables, bookings, date, at)
	if err != nil {
		return nil, err
	}

	numbers := make([]int64, 0, len(tables))
	for _, table := range tables {
		if _, taken := booked[table.Number]; taken {
			continue
		}
		if table.Seats(size) {
			numbers = append(numbers, table.Number)
		}
	}

	sort.Slice(numbers, func(i, j int) bool { return numbers[i] < numbers[j] })
	return numbers, nil
}

// bookedTablesAtSlot возвращает множество столов, занятых на (дата, слот)
// Общая подпрограмма всех трех операций: здесь же проверяется целостность
// броней, попавших в срез
func bookedTablesAtSlot(
	tables []domain.Table,
	bookings []*domain.Booking,
	date time.Time,
	at types.TimeString,
) (map[int64]struct{}, error) {
	knownTables := make(map[int64]struct{}, len(tables))
	for _, table := range tables {
		knownTables[table.Number] = struct{}{}
	}

	booked := make(map[int64]struct{})
	for _, booking := range bookings {
		if !booking.IsSameSlot(date, at) {
			continue
		}
		if _, ok := knownTables[booking.TableNumber]; !ok {
			return nil, fmt.Errorf("%w: table=%d, reference=%s",
				ErrUnknownTable, booking.TableNumber, booking.Reference)
		}
		if _, dup := booked[booking.TableNumber]; dup {
			return nil, fmt.Errorf("%w: table=%d, date=%s, time=%s",
				ErrDuplicateBooking, booking.TableNumber,
				date.Format(domain.DateFormat), at)
		}
		booked[booking.TableNumber] = struct{}{}
	}

	return booked, nil
}
