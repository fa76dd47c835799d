package domain

// FoodType категория блюда в меню
type FoodType string

const (
	TypeStarter    FoodType = "starter"
	TypeMainCourse FoodType = "main course"
	TypeDessert    FoodType = "dessert"
	TypeBeverage   FoodType = "beverage"
)

// FoodTypes все допустимые категории блюд
var FoodTypes = []FoodType{
	TypeStarter,
	TypeMainCourse,
	TypeDessert,
	TypeBeverage,
}

// IsValidFoodType возвращает true, если категория известна
func IsValidFoodType(t FoodType) bool {
	for _, known := range FoodTypes {
		if t == known {
			return true
		}
	}
	return false
}

// Food позиция меню ресторана
type Food struct {
	ID          int64
	Name        string
	Type        FoodType
	Description string
	Price       float64 // Цена в GBP
	Popularity  int64   // Сколько раз блюдо заказывали
}
