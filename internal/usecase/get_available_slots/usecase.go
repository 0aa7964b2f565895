package get_available_slots

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-RestaurantService/internal/domain"
	configRepo "github.com/m04kA/SMC-RestaurantService/internal/infra/storage/limitconfig"
	"github.com/m04kA/SMC-RestaurantService/pkg/ptr"
	"github.com/m04kA/SMC-RestaurantService/pkg/types"
)

// UseCase use case для получения доступных слотов на дату
type UseCase struct {
	reservationRepo ReservationRepository
	configRepo      LimitConfigRepository
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservationRepo ReservationRepository,
	configRepo LimitConfigRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		configRepo:      configRepo,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case получения доступных слотов
// Слот недоступен, если квота мест исчерпана, дата или время в чёрном списке,
// либо онлайн-бронирования выключены целиком
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: date=%s", req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req, uc.timeProvider.Now()); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Читаем конфигурацию ограничений
	config, err := uc.configRepo.Read(ctx)
	if err != nil {
		if errors.Is(err, configRepo.ErrConfigNotFound) || errors.Is(err, configRepo.ErrCorruptConfig) {
			config = domain.DefaultLimitConfig()
		} else {
			uc.logger.Error("GetAvailableSlots: failed to read limit config: %v", err)
			return nil, fmt.Errorf("%w: failed to read limit config: %v", ErrInternal, err)
		}
	}

	// 3. Читаем активные брони дня одним запросом
	reservations, err := uc.reservationRepo.GetByFilter(ctx, domain.ReservationsFilter{
		Date: ptr.Ptr(req.Date),
	})
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get reservations: %v", err)
		return nil, fmt.Errorf("%w: failed to get reservations: %v", ErrInternal, err)
	}

	// 4. Считаем занятые места по слотам
	taken := make(map[types.TimeString]int)
	for _, r := range reservations {
		if r.IsActive() {
			taken[r.Time] += r.PartySize
		}
	}

	// 5. Собираем сетку с остатками
	grid := domain.GenerateTimeSlots()
	slots := make([]Slot, 0, len(grid))
	for _, t := range grid {
		remaining := domain.SlotCapacity - taken[t]
		if remaining < 0 {
			remaining = 0
		}

		slots = append(slots, Slot{
			Time:           t.String(),
			RemainingSeats: remaining,
			Available:      remaining > 0 && config.IsDateTimeAllowed(req.Date, t),
		})
	}

	uc.logger.Info("GetAvailableSlots: date=%s, %d slots, onlineEnabled=%v",
		req.Date.Format(domain.DateFormat), len(slots), config.OnlineEnabled)

	return &Response{
		Date:          req.Date.Format(domain.DateFormat),
		OnlineEnabled: config.OnlineEnabled,
		Slots:         slots,
	}, nil
}

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request, now time.Time) error {
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	day := time.Date(req.Date.Year(), req.Date.Month(), req.Date.Day(), 0, 0, 0, 0, now.Location())
	if day.Before(today) {
		return ErrInvalidDate
	}

	return nil
}
