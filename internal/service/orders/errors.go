package orders

import "errors"

var (
	// ErrTableNotFound возвращается, когда стол не существует
	ErrTableNotFound = errors.New("table not found")

	// ErrFoodNotFound возвращается, когда блюдо отсутствует в меню
	ErrFoodNotFound = errors.New("food not found in menu")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
