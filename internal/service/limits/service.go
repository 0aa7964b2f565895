package limits

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-RestaurantService/internal/domain"
	configRepo "github.com/m04kA/SMC-RestaurantService/internal/infra/storage/limitconfig"
	"github.com/m04kA/SMC-RestaurantService/internal/service/limits/models"
)

// Service сервис управления ограничениями онлайн-бронирования
type Service struct {
	configRepo LimitConfigRepository
	txManager  TransactionManager
	logger     Logger
}

// NewService создает новый экземпляр сервиса ограничений
func NewService(
	configRepo LimitConfigRepository,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		configRepo: configRepo,
		txManager:  txManager,
		logger:     logger,
	}
}

// GetStatus получает текущую конфигурацию ограничений
// Отсутствующий или повреждённый документ заменяется конфигурацией по умолчанию
func (s *Service) GetStatus(ctx context.Context) (*models.LimitsResponse, error) {
	config, err := s.readOrDefault(ctx)
	if err != nil {
		return nil, err
	}

	return models.FromDomainConfig(config), nil
}

// Update применяет частичное изменение конфигурации ограничений
// Чтение и запись выполняются в serializable-транзакции: конкурирующие
// изменения админки не теряют друг друга
func (s *Service) Update(ctx context.Context, req *models.UpdateLimitsRequest) (*models.UpdateLimitsResponse, error) {
	s.logger.Info("Update: applying limits update, onlineEnabled=%v", req.OnlineEnabled)

	if req.OnlineEnabled == nil && req.DisabledHours == nil && req.DisabledDates == nil {
		s.logger.Warn("Update: empty request, nothing to change")
		return nil, fmt.Errorf("%w: at least one field must be set", ErrInvalidInput)
	}

	var resp *models.UpdateLimitsResponse

	err := s.txManager.DoSerializable(ctx, func(ctx context.Context) error {
		config, err := s.readOrDefault(ctx)
		if err != nil {
			return err
		}

		rejectedHours := []string{}
		rejectedDates := []string{}

		if req.OnlineEnabled != nil {
			config.OnlineEnabled = *req.OnlineEnabled
		}

		if req.DisabledHours != nil {
			config.DisabledHours, rejectedHours = domain.NormalizeHours(*req.DisabledHours)
		}

		if req.DisabledDates != nil {
			config.DisabledDates, rejectedDates = domain.NormalizeDates(*req.DisabledDates)
		}

		if err := s.configRepo.Write(ctx, config); err != nil {
			s.logger.Error("Update: failed to write config: %v", err)
			return fmt.Errorf("%w: Update - write config: %v", ErrInternal, err)
		}

		resp = &models.UpdateLimitsResponse{
			LimitsResponse: *models.FromDomainConfig(config),
			RejectedHours:  rejectedHours,
			RejectedDates:  rejectedDates,
		}
		return nil
	})

	if err != nil {
		return nil, err
	}

	s.logger.Info("Update: limits updated, onlineEnabled=%v, disabledHours=%d, disabledDates=%d, rejected=%d",
		resp.OnlineEnabled, len(resp.DisabledHours), len(resp.DisabledDates), len(resp.RejectedHours)+len(resp.RejectedDates))
	return resp, nil
}

// Reset сбрасывает конфигурацию к значениям по умолчанию
func (s *Service) Reset(ctx context.Context) (*models.LimitsResponse, error) {
	s.logger.Info("Reset: resetting limits to defaults")

	config := domain.DefaultLimitConfig()
	if err := s.configRepo.Write(ctx, config); err != nil {
		s.logger.Error("Reset: failed to write config: %v", err)
		return nil, fmt.Errorf("%w: Reset - write config: %v", ErrInternal, err)
	}

	return models.FromDomainConfig(config), nil
}

// readOrDefault читает конфигурацию, подставляя дефолт вместо
// отсутствующего или повреждённого документа
func (s *Service) readOrDefault(ctx context.Context) (*domain.LimitConfig, error) {
	config, err := s.configRepo.Read(ctx)
	if err != nil {
		if errors.Is(err, configRepo.ErrConfigNotFound) {
			return domain.DefaultLimitConfig(), nil
		}
		if errors.Is(err, configRepo.ErrCorruptConfig) {
			s.logger.Warn("readOrDefault: corrupt limit config, falling back to defaults")
			return domain.DefaultLimitConfig(), nil
		}
		s.logger.Error("readOrDefault: repository error: %v", err)
		return nil, fmt.Errorf("%w: readOrDefault - repository error: %v", ErrInternal, err)
	}

	return config, nil
}
