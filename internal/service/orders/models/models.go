package models

import (
	"time"

	"github.com/m04kA/SMC-RestaurantService/internal/domain"
)

// OrderItemResponse позиция заказа
type OrderItemResponse struct {
	ProductID   int64   `json:"productId"`
	Name        string  `json:"name"`
	UnitPrice   float64 `json:"unitPrice"`
	Qty         int     `json:"qty"`
	Supplements *string `json:"supplements,omitempty"`
}

// OrderResponse ответ с данными заказа
type OrderResponse struct {
	ID        int64               `json:"id"`
	Reference string              `json:"reference"`
	Items     []OrderItemResponse `json:"items"`
	Total     float64             `json:"total"`
	Status    string              `json:"status"`
	CreatedAt time.Time           `json:"createdAt"`
}

// OrderListResponse ответ со списком заказов
type OrderListResponse struct {
	Orders []OrderResponse `json:"orders"`
	Total  int             `json:"total"`
}

// FromDomainOrder конвертирует domain заказ в response
func FromDomainOrder(o *domain.Order) *OrderResponse {
	items := make([]OrderItemResponse, 0, len(o.Items))
	for _, item := range o.Items {
		items = append(items, OrderItemResponse{
			ProductID:   item.ProductID,
			Name:        item.Name,
			UnitPrice:   item.UnitPrice,
			Qty:         item.Qty,
			Supplements: item.Supplements,
		})
	}

	return &OrderResponse{
		ID:        o.ID,
		Reference: o.Reference,
		Items:     items,
		Total:     o.Total,
		Status:    string(o.Status),
		CreatedAt: o.CreatedAt,
	}
}

// FromDomainOrderList конвертирует список domain заказов в response
func FromDomainOrderList(orders []*domain.Order) *OrderListResponse {
	items := make([]OrderResponse, 0, len(orders))
	for _, o := range orders {
		items = append(items, *FromDomainOrder(o))
	}
	return &OrderListResponse{
		Orders: items,
		Total:  len(items),
	}
}
