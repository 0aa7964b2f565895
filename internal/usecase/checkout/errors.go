package checkout

import "errors"

var (
	// ErrEmptyCart возвращается при попытке оформить пустую корзину
	ErrEmptyCart = errors.New("checkout: cart is empty")

	// ErrProductNotFound возвращается, когда товар из корзины пропал из каталога
	ErrProductNotFound = errors.New("checkout: product not found in catalog")

	// ErrPaymentUnavailable возвращается, когда платёжную сессию создать не удалось
	// Заказ при этом удаляется, корзина остаётся нетронутой
	ErrPaymentUnavailable = errors.New("checkout: payment session could not be created")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("checkout: internal error")
)
