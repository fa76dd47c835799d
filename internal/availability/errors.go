package availability

import "errors"

// Ошибки целостности данных: бронирование ссылается на слот или стол,
// отсутствующий в каталоге, либо один стол забронирован дважды на один слот.
// Такие ошибки означают баг в слое хранения, калькулятор их не скрывает.
var (
	// ErrUnknownSlot возвращается, когда бронь ссылается на время вне каталога слотов
	ErrUnknownSlot = errors.New("availability: booking references slot not in catalogue")

	// ErrUnknownTable возвращается, когда бронь ссылается на стол вне каталога столов
	ErrUnknownTable = errors.New("availability: booking references unknown table")

	// ErrDuplicateBooking возвращается при двух бронях одного стола на один слот и дату
	ErrDuplicateBooking = errors.New("availability: duplicate booking for table and slot")
)

// IsDataIntegrityError возвращает true для любой ошибки целостности данных калькулятора
func IsDataIntegrityError(err error) bool {
	return errors.Is(err, ErrUnknownSlot) ||
		errors.Is(err, ErrUnknownTable) ||
		errors.Is(err, ErrDuplicateBooking)
}
