package checkout

import (
	checkoutUC "github.com/m04kA/SMC-RestaurantService/internal/usecase/checkout"
)

// CheckoutResponse HTTP response model
type CheckoutResponse struct {
	OrderID     int64   `json:"orderId"`
	Reference   string  `json:"reference"`
	Total       float64 `json:"total"`
	CheckoutURL string  `json:"checkoutUrl"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *checkoutUC.Response) *CheckoutResponse {
	return &CheckoutResponse{
		OrderID:     resp.OrderID,
		Reference:   resp.Reference,
		Total:       resp.Total,
		CheckoutURL: resp.CheckoutURL,
	}
}
