package create_reservation

import "errors"

var (
	// ErrPartyTooLarge возвращается, когда размер группы превышает максимум
	// Такие запросы направляются на телефон ресторана, квота не проверяется
	ErrPartyTooLarge = errors.New("create_reservation: party size exceeds online limit")

	// ErrOnlineDisabled возвращается, когда онлайн-бронирования выключены администратором
	ErrOnlineDisabled = errors.New("create_reservation: online reservations are disabled")

	// ErrDateDisabled возвращается, когда дата в чёрном списке
	ErrDateDisabled = errors.New("create_reservation: date is not open for reservations")

	// ErrTimeDisabled возвращается, когда время в чёрном списке
	ErrTimeDisabled = errors.New("create_reservation: time slot is disabled")

	// ErrInvalidSlot возвращается, когда время не попадает в сетку слотов
	ErrInvalidSlot = errors.New("create_reservation: time is not a valid slot")

	// ErrInvalidDate возвращается при некорректной дате брони
	ErrInvalidDate = errors.New("create_reservation: invalid reservation date")

	// ErrSlotFull возвращается, когда квота мест на слот исчерпана для запрошенной группы
	ErrSlotFull = errors.New("create_reservation: not enough seats left in this slot")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_reservation: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_reservation: internal error")
)
