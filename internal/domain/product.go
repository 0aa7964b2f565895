package domain

import "time"

// ProductKind тип позиции каталога
type ProductKind string

const (
	ProductPizza      ProductKind = "pizza"
	ProductMenu       ProductKind = "menu"
	ProductSupplement ProductKind = "supplement"
)

// Product позиция каталога ресторана
// Цены каталога - источник истины при оформлении заказа:
// ценам из корзины клиента сервер не доверяет
type Product struct {
	ID          int64
	Name        string
	Description *string
	Price       float64
	Kind        ProductKind
	Available   bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
