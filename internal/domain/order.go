package domain

import "time"

// Order заказ блюда на стол
// IsHistory=true означает, что заказ уже оплачен и не входит в текущий счет
type Order struct {
	ID          int64
	TableNumber int64
	FoodID      int64
	FoodName    string // Денормализация для истории: имя блюда на момент заказа
	FoodPrice   float64
	Quantity    int64
	IsHistory   bool
	CreatedAt   time.Time
}

// LineTotal возвращает стоимость позиции заказа
func (o *Order) LineTotal() float64 {
	return o.FoodPrice * float64(o.Quantity)
}
