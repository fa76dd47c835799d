package models

import "github.com/othmanalikhan-apps/project-aardvark/internal/domain"

// AddFoodRequest запрос на добавление блюда в меню
type AddFoodRequest struct {
	Name        string  `json:"name"`
	Type        string  `json:"type"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
}

// AddFoodsRequest запрос на пополнение меню
type AddFoodsRequest struct {
	Items []AddFoodRequest `json:"items"`
}

// FoodResponse блюдо меню
type FoodResponse struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Type        string  `json:"type"`
	Description string  `json:"description,omitempty"`
	Price       float64 `json:"price"`
	Popularity  int64   `json:"popularity"`
}

// MenuResponse полное меню ресторана
type MenuResponse struct {
	Items []FoodResponse `json:"items"`
	Total int            `json:"total"`
}

// FromDomainFood конвертирует доменное блюдо в response-модель
func FromDomainFood(f *domain.Food) FoodResponse {
	return FoodResponse{
		ID:          f.ID,
		Name:        f.Name,
		Type:        string(f.Type),
		Description: f.Description,
		Price:       f.Price,
		Popularity:  f.Popularity,
	}
}

// FromDomainFoods конвертирует список блюд в response-модель
func FromDomainFoods(foods []*domain.Food) *MenuResponse {
	items := make([]FoodResponse, 0, len(foods))
	for _, f := range foods {
		items = append(items, FromDomainFood(f))
	}
	return &MenuResponse{Items: items, Total: len(items)}
}
