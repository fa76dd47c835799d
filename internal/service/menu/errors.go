package menu

import "errors"

var (
	// ErrInvalidFoodType возвращается при неизвестном типе блюда
	ErrInvalidFoodType = errors.New("invalid food type")

	// ErrDuplicateFood возвращается, когда блюдо с таким названием уже есть в меню
	ErrDuplicateFood = errors.New("food already exists in menu")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
