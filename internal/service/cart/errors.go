package cart

import "errors"

var (
	// ErrLineNotFound возвращается при обращении к несуществующей позиции корзины
	ErrLineNotFound = errors.New("cart line not found")

	// ErrProductNotFound возвращается, когда товар не найден в каталоге
	ErrProductNotFound = errors.New("product not found")

	// ErrProductUnavailable возвращается при попытке добавить недоступный товар
	ErrProductUnavailable = errors.New("product unavailable")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
