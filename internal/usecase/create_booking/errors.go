package create_booking

import "errors"

var (
	// ErrTableNotFound возвращается, когда запрошенный стол не существует
	ErrTableNotFound = errors.New("table not found")

	// ErrSlotNotInCatalogue возвращается, когда время не входит в каталог слотов
	ErrSlotNotInCatalogue = errors.New("requested time is not a serving slot")

	// ErrTableAlreadyBooked возвращается, когда стол уже занят на этот слот
	ErrTableAlreadyBooked = errors.New("table is already booked for this slot")

	// ErrInvalidDate возвращается при бронировании на прошедшую дату
	ErrInvalidDate = errors.New("invalid booking date")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
