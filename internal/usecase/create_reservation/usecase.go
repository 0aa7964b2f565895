package create_reservation

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-RestaurantService/internal/domain"
	configRepo "github.com/m04kA/SMC-RestaurantService/internal/infra/storage/limitconfig"
	"github.com/m04kA/SMC-RestaurantService/pkg/ptr"
)

// SlotFullError ошибка исчерпанной квоты с количеством оставшихся мест
// Остаток сообщается гостю, чтобы он мог уменьшить группу или выбрать другой слот
type SlotFullError struct {
	Remaining int
}

func (e *SlotFullError) Error() string {
	return fmt.Sprintf("%v: %d seats remaining", ErrSlotFull, e.Remaining)
}

func (e *SlotFullError) Unwrap() error {
	return ErrSlotFull
}

// UseCase use case для создания брони столика
type UseCase struct {
	reservationRepo ReservationRepository
	configRepo      LimitConfigRepository
	txManager       TransactionManager
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservationRepo ReservationRepository,
	configRepo LimitConfigRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		configRepo:      configRepo,
		txManager:       txManager,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case создания брони
// Проверка квоты и вставка выполняются в сериализуемой транзакции с блокировкой
// броней дня (FOR UPDATE): две конкурирующие брони не могут превысить вместимость слота
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateReservation: name=%q, party=%d, date=%s, time=%s",
		req.Name, req.PartySize, req.Date.Format(domain.DateFormat), req.Time)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateReservation: validation failed: %v", err)
		return nil, err
	}

	// 2. Большие группы уходят на телефон ресторана, квота не проверяется
	if req.PartySize > domain.MaxPartySize {
		uc.logger.Info("CreateReservation: party size %d exceeds online limit %d",
			req.PartySize, domain.MaxPartySize)
		return nil, ErrPartyTooLarge
	}

	// 3. Время должно попадать в сетку слотов
	if !domain.IsSlotTime(req.Time) {
		uc.logger.Warn("CreateReservation: time %s is not a valid slot", req.Time)
		return nil, ErrInvalidSlot
	}

	// 4. Дата не в прошлом
	now := uc.timeProvider.Now()
	if err := validateDate(req.Date, now); err != nil {
		uc.logger.Warn("CreateReservation: date validation failed: %v", err)
		return nil, err
	}

	var result *domain.Reservation
	var remaining int

	// 5. Проверка ограничений и квоты в сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 5.1. Читаем конфигурацию ограничений
		config, err := uc.readConfig(txCtx)
		if err != nil {
			return err
		}

		if !config.OnlineEnabled {
			uc.logger.Info("CreateReservation: online reservations disabled")
			return ErrOnlineDisabled
		}

		if err := checkBlacklists(config, req); err != nil {
			uc.logger.Info("CreateReservation: slot %s %s blocked by limits",
				req.Date.Format(domain.DateFormat), req.Time)
			return err
		}

		// 5.2. Читаем активные брони дня с блокировкой (FOR UPDATE)
		reservations, err := uc.reservationRepo.GetByFilter(txCtx, domain.ReservationsFilter{
			Date: ptr.Ptr(req.Date),
		})
		if err != nil {
			uc.logger.Error("CreateReservation: failed to get reservations: %v", err)
			return fmt.Errorf("%w: failed to get reservations: %v", ErrInternal, err)
		}

		// 5.3. Считаем занятые места в запрошенном слоте
		taken := 0
		for _, r := range reservations {
			if r.IsActive() && r.Time == req.Time {
				taken += r.PartySize
			}
		}

		left := domain.SlotCapacity - taken
		if req.PartySize > left {
			uc.logger.Info("CreateReservation: slot full, %d/%d seats taken, %d requested",
				taken, domain.SlotCapacity, req.PartySize)
			return &SlotFullError{Remaining: left}
		}

		uc.logger.Info("CreateReservation: slot available, %d/%d seats taken",
			taken, domain.SlotCapacity)

		// 5.4. Создаем бронь в статусе pending
		reservation := &domain.Reservation{
			Name:      req.Name,
			Phone:     req.Phone,
			Email:     req.Email,
			PartySize: req.PartySize,
			Date:      req.Date,
			Time:      req.Time,
			Status:    domain.ReservationPending,
			Notes:     req.Notes,
		}

		created, err := uc.reservationRepo.Create(txCtx, reservation)
		if err != nil {
			uc.logger.Error("CreateReservation: failed to create reservation: %v", err)
			return fmt.Errorf("%w: failed to create reservation: %v", ErrInternal, err)
		}

		result = created
		remaining = left - req.PartySize
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateReservation: successfully created reservation id=%d", result.ID)

	return &Response{
		ID:             result.ID,
		Name:           result.Name,
		Phone:          result.Phone,
		Email:          result.Email,
		PartySize:      result.PartySize,
		Date:           result.Date,
		Time:           result.Time,
		Status:         string(result.Status),
		Notes:          result.Notes,
		RemainingSeats: remaining,
		CreatedAt:      result.CreatedAt,
		UpdatedAt:      result.UpdatedAt,
	}, nil
}

// readConfig читает конфигурацию ограничений, подставляя дефолт
// вместо отсутствующего или повреждённого документа
func (uc *UseCase) readConfig(ctx context.Context) (*domain.LimitConfig, error) {
	config, err := uc.configRepo.Read(ctx)
	if err != nil {
		if errors.Is(err, configRepo.ErrConfigNotFound) || errors.Is(err, configRepo.ErrCorruptConfig) {
			return domain.DefaultLimitConfig(), nil
		}
		uc.logger.Error("CreateReservation: failed to read limit config: %v", err)
		return nil, fmt.Errorf("%w: failed to read limit config: %v", ErrInternal, err)
	}
	return config, nil
}

// checkBlacklists проверяет дату и время запроса по чёрным спискам
func checkBlacklists(config *domain.LimitConfig, req *Request) error {
	dateStr := req.Date.Format(domain.DateFormat)
	for _, d := range config.DisabledDates {
		if d == dateStr {
			return ErrDateDisabled
		}
	}

	timeStr := req.Time.String()
	for _, h := range config.DisabledHours {
		if h == timeStr {
			return ErrTimeDisabled
		}
	}

	return nil
}
