package models

import "github.com/m04kA/SMC-RestaurantService/internal/domain"

// Request модели

// AddItemRequest запрос на добавление позиции в корзину
type AddItemRequest struct {
	ProductID   int64               `json:"productId"`
	Qty         int                 `json:"qty"`
	Supplements []SupplementRequest `json:"supplements,omitempty"`
}

// SupplementRequest добавка к позиции
// Клиент передаёт только ссылку на каталожную позицию и количество,
// название и цена добавки приходят из каталога
type SupplementRequest struct {
	ProductID int64 `json:"productId"`
	Qty       int   `json:"qty"`
}

// ChangeQtyRequest запрос на изменение количества позиции
type ChangeQtyRequest struct {
	Delta int `json:"delta"`
}

// Response модели

// CartLineView позиция корзины для отображения
type CartLineView struct {
	Index       int              `json:"index"`
	ProductID   int64            `json:"productId"`
	Name        string           `json:"name"`
	UnitPrice   float64          `json:"unitPrice"`
	Qty         int              `json:"qty"`
	Supplements []SupplementView `json:"supplements,omitempty"`
	LineTotal   float64          `json:"lineTotal"`
}

// SupplementView добавка для отображения
type SupplementView struct {
	ProductID int64   `json:"productId"`
	Name      string  `json:"name"`
	UnitPrice float64 `json:"unitPrice"`
	Qty       int     `json:"qty"`
}

// CartView корзина для отображения: позиции, итог и счётчик для шапки сайта
type CartView struct {
	State     string         `json:"state"`
	Lines     []CartLineView `json:"lines"`
	Total     float64        `json:"total"`
	ItemCount int            `json:"itemCount"`
}

// FromDomainCart конвертирует domain корзину в отображение
func FromDomainCart(cart *domain.Cart) *CartView {
	lines := make([]CartLineView, 0, len(cart.Lines))
	for i, l := range cart.Lines {
		supplements := make([]SupplementView, 0, len(l.Supplements))
		for _, s := range l.Supplements {
			supplements = append(supplements, SupplementView{
				ProductID: s.ProductID,
				Name:      s.Name,
				UnitPrice: s.UnitPrice,
				Qty:       s.Qty,
			})
		}

		lines = append(lines, CartLineView{
			Index:       i,
			ProductID:   l.ProductID,
			Name:        l.Name,
			UnitPrice:   l.UnitPrice,
			Qty:         l.Qty,
			Supplements: supplements,
			LineTotal:   l.Total(),
		})
	}

	return &CartView{
		State:     string(cart.State()),
		Lines:     lines,
		Total:     cart.Total(),
		ItemCount: cart.ItemCount(),
	}
}
