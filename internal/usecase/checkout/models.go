package checkout

// Request модель запроса на оформление заказа
type Request struct {
	UserID int64 // ID пользователя, владельца корзины
}

// Response модель ответа с платёжной сессией
type Response struct {
	OrderID     int64   // ID созданного заказа
	Reference   string  // Публичный UUID заказа
	Total       float64 // Итоговая сумма по ценам каталога
	CheckoutURL string  // URL страницы оплаты Stripe
	SessionID   string  // ID платёжной сессии
}
