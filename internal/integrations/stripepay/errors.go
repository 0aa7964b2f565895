package stripepay

import "errors"

var (
	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("stripepay client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе Stripe API
	ErrInvalidResponse = errors.New("stripepay client: invalid response")

	// ErrSessionNotCreated возвращается, когда Stripe отклонил создание сессии
	ErrSessionNotCreated = errors.New("stripepay client: checkout session not created")
)
