package domain

import "time"

// OrderStatus статус заказа
type OrderStatus string

const (
	OrderPending   OrderStatus = "pending"
	OrderPaid      OrderStatus = "paid"
	OrderCancelled OrderStatus = "cancelled"
)

// Order заказ, создаётся при оформлении корзины
type Order struct {
	ID              int64
	UserID          int64
	Reference       string // Публичный UUID заказа
	Items           []OrderItem
	Total           float64
	Status          OrderStatus
	StripeSessionID *string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// OrderItem позиция заказа с денормализованными данными на момент покупки
type OrderItem struct {
	ID          int64
	OrderID     int64
	ProductID   int64
	Name        string
	UnitPrice   float64
	Qty         int
	Supplements *string // JSON-сериализованные добавки, как в корзине
}

// IsPaid возвращает true для оплаченного заказа
func (o *Order) IsPaid() bool {
	return o.Status == OrderPaid
}

// CanBePaid заказ можно пометить оплаченным только из статуса pending
// Повторные уведомления об оплате для уже оплаченного заказа игнорируются
func (o *Order) CanBePaid() bool {
	return o.Status == OrderPending
}

// CanBeCancelled отменить можно только неоплаченный заказ
func (o *Order) CanBeCancelled() bool {
	return o.Status == OrderPending
}
