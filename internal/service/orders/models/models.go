package models

import "github.com/othmanalikhan-apps/project-aardvark/internal/domain"

// OrderItemRequest одна позиция заказа
type OrderItemRequest struct {
	FoodName string `json:"foodName"`
	Quantity int64  `json:"quantity"`
}

// PlaceOrdersRequest запрос на оформление заказа для стола
type PlaceOrdersRequest struct {
	TableNumber int64              `json:"tableNumber"`
	Items       []OrderItemRequest `json:"items"`
}

// PlaceOrdersResponse результат оформления заказа
type PlaceOrdersResponse struct {
	TableNumber int64 `json:"tableNumber"`
	ItemsPlaced int   `json:"itemsPlaced"`
}

// BillLine строка счета
type BillLine struct {
	FoodName  string  `json:"foodName"`
	UnitPrice float64 `json:"unitPrice"`
	Quantity  int64   `json:"quantity"`
	LineTotal float64 `json:"lineTotal"`
}

// BillResponse счет стола по неоплаченным заказам
type BillResponse struct {
	TableNumber int64      `json:"tableNumber"`
	Lines       []BillLine `json:"lines"`
	Total       float64    `json:"total"`
}

// SettleResponse результат закрытия счета
type SettleResponse struct {
	TableNumber   int64 `json:"tableNumber"`
	OrdersSettled int64 `json:"ordersSettled"`
}

// BillFromDomainOrders строит счет по активным заказам стола
func BillFromDomainOrders(tableNumber int64, orders []*domain.Order) *BillResponse {
	lines := make([]BillLine, 0, len(orders))
	var total float64
	for _, o := range orders {
		lineTotal := o.LineTotal()
		lines = append(lines, BillLine{
			FoodName:  o.FoodName,
			UnitPrice: o.FoodPrice,
			Quantity:  o.Quantity,
			LineTotal: lineTotal,
		})
		total += lineTotal
	}
	return &BillResponse{
		TableNumber: tableNumber,
		Lines:       lines,
		Total:       total,
	}
}
