package models

import "github.com/m04kA/SMC-RestaurantService/internal/domain"

// ProductResponse товар каталога
type ProductResponse struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
	Price       float64 `json:"price"`
	Kind        string  `json:"kind"`
}

// ProductListResponse ответ со списком товаров
type ProductListResponse struct {
	Products []ProductResponse `json:"products"`
	Total    int               `json:"total"`
}

// FromDomainProductList конвертирует список domain товаров в response
func FromDomainProductList(products []*domain.Product) *ProductListResponse {
	items := make([]ProductResponse, 0, len(products))
	for _, p := range products {
		items = append(items, ProductResponse{
			ID:          p.ID,
			Name:        p.Name,
			Description: p.Description,
			Price:       p.Price,
			Kind:        string(p.Kind),
		})
	}
	return &ProductListResponse{
		Products: items,
		Total:    len(items),
	}
}
