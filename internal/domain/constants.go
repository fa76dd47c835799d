package domain

import "github.com/othmanalikhan-apps/project-aardvark/pkg/types"

// Ограничения полей бронирования
const (
	MaxCustomerNameLength  = 50
	MaxCustomerEmailLength = 80
	MaxCustomerPhoneLength = 13
	MaxFoodNameLength      = 30

	ReferenceLength = 10 // 3 буквы + 7 цифр
)

// Форматы даты и времени
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// DefaultSlotCatalogue слоты посадки по умолчанию
// Используются, если каталог не задан в конфигурации
var DefaultSlotCatalogue = []types.TimeString{
	"09:00",
	"11:00",
	"13:00",
	"15:00",
}
