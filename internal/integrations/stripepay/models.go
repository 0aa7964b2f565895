package stripepay

// LineItem позиция платежа для Stripe Checkout
type LineItem struct {
	Name string
	// UnitAmount цена за единицу в минорных единицах валюты (центах)
	UnitAmount int64
	Quantity   int64
}

// CheckoutSession модель Checkout Session из Stripe API
type CheckoutSession struct {
	ID            string `json:"id"`
	URL           string `json:"url"`
	Status        string `json:"status"`
	PaymentStatus string `json:"payment_status"`
}

// ErrorResponse модель ошибки Stripe API
type ErrorResponse struct {
	Error struct {
		Type    string `json:"type"`
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}
