package reservations

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-RestaurantService/internal/domain"
	reservationRepo "github.com/m04kA/SMC-RestaurantService/internal/infra/storage/reservation"
	"github.com/m04kA/SMC-RestaurantService/internal/service/reservations/models"
)

// Service сервис управления бронями (админка)
type Service struct {
	reservationRepo ReservationRepository
	mailer          Mailer
	logger          Logger
}

// NewService создает новый экземпляр сервиса броней
func NewService(
	reservationRepo ReservationRepository,
	mailer Mailer,
	logger Logger,
) *Service {
	return &Service{
		reservationRepo: reservationRepo,
		mailer:          mailer,
		logger:          logger,
	}
}

// GetReservations получает список броней с фильтрацией по дате и статусу
//
// Примеры использования:
// - Все активные брони: GetReservations(ctx, &GetReservationsRequest{})
// - Брони на дату: указать Date
// - Только ожидающие подтверждения: указать Status = "pending"
// - Включая отменённые: IncludeCancelled = true
func (s *Service) GetReservations(ctx context.Context, req *models.GetReservationsRequest) (*models.ReservationListResponse, error) {
	logMsg := "GetReservations: fetching reservations"
	if req.Date != nil {
		logMsg += fmt.Sprintf(", date=%s", req.Date.Format(domain.DateFormat))
	}
	if req.Status != nil {
		logMsg += fmt.Sprintf(", status=%s", *req.Status)
	}
	if req.IncludeCancelled {
		logMsg += ", includeCancelled=true"
	}
	s.logger.Info(logMsg)

	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("GetReservations: invalid filter: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	reservations, err := s.reservationRepo.GetByFilter(ctx, filter)
	if err != nil {
		s.logger.Error("GetReservations: repository error: %v", err)
		return nil, fmt.Errorf("%w: GetReservations - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetReservations: successfully fetched %d reservations", len(reservations))
	return models.FromDomainReservationList(reservations), nil
}

// UpdateStatus меняет статус брони с проверкой допустимости перехода
// Гость получает email-уведомление, сбой отправки не откатывает изменение
func (s *Service) UpdateStatus(ctx context.Context, id int64, status string) (*models.ReservationResponse, error) {
	s.logger.Info("UpdateStatus: updating reservation id=%d to status=%s", id, status)

	if !domain.ValidReservationStatus(status) {
		s.logger.Warn("UpdateStatus: invalid status=%s for reservation id=%d", status, id)
		return nil, ErrInvalidStatus
	}
	target := domain.ReservationStatus(status)

	reservation, err := s.reservationRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("UpdateStatus: reservation id=%d not found", id)
			return nil, ErrReservationNotFound
		}
		s.logger.Error("UpdateStatus: repository error for reservation id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	if !reservation.CanTransitionTo(target) {
		s.logger.Warn("UpdateStatus: transition %s -> %s not allowed for reservation id=%d",
			reservation.Status, target, id)
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, reservation.Status, target)
	}

	if err := s.reservationRepo.UpdateStatus(ctx, id, target); err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			return nil, ErrReservationNotFound
		}
		s.logger.Error("UpdateStatus: failed to update reservation id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	reservation.Status = target
	s.notifyGuest(reservation)

	s.logger.Info("UpdateStatus: reservation id=%d updated to status=%s", id, target)
	return models.FromDomainReservation(reservation), nil
}

// Delete безвозвратно удаляет бронь
// Для обычной отмены используется UpdateStatus со статусом cancelled
func (s *Service) Delete(ctx context.Context, id int64) error {
	s.logger.Info("Delete: deleting reservation id=%d", id)

	if err := s.reservationRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("Delete: reservation id=%d not found", id)
			return ErrReservationNotFound
		}
		s.logger.Error("Delete: repository error for reservation id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: reservation id=%d deleted", id)
	return nil
}

// notifyGuest отправляет email о смене статуса, сбои только логируются
func (s *Service) notifyGuest(r *domain.Reservation) {
	if r.Email == "" {
		return
	}

	date := r.Date.Format(domain.DateFormat)
	timeSlot := r.Time.String()

	var err error
	switch r.Status {
	case domain.ReservationConfirmed:
		err = s.mailer.SendReservationConfirmed(r.Email, r.Name, date, timeSlot, r.PartySize)
	case domain.ReservationCancelled:
		err = s.mailer.SendReservationCancelled(r.Email, r.Name, date, timeSlot)
	default:
		return
	}

	if err != nil {
		s.logger.Warn("notifyGuest: failed to send email for reservation id=%d: %v", r.ID, err)
	}
}
