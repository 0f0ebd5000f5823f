package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SergeyBogomolovv/order-tracking/internal/entities"
	"github.com/SergeyBogomolovv/order-tracking/pkg/trm"
	"github.com/SergeyBogomolovv/order-tracking/pkg/utils"
)

type StatusRepo interface {
	// OrderForUpdate locks the order row until the surrounding transaction ends.
	OrderForUpdate(ctx context.Context, orderID string) (entities.Order, error)

	// Идемпотентно за счёт ON CONFLICT (id) DO NOTHING, inserted=false для дубликата
	AppendStatusEvent(ctx context.Context, event entities.StatusEvent) (inserted bool, err error)
	UpdateOrderStatus(ctx context.Context, orderID string, status entities.Status, at time.Time) error
	AppendDeliveryAttempt(ctx context.Context, orderID string, attempt entities.DeliveryAttempt) error
}

type TrackingInvalidator interface {
	Invalidate(orderNumber string)
}

const defaultAttemptStatus = "failed"

type statusService struct {
	logger      *slog.Logger
	txManager   trm.Manager
	repo        StatusRepo
	invalidator TrackingInvalidator
	retry       utils.RetryConfig
}

func NewStatusService(logger *slog.Logger, txManager trm.Manager, repo StatusRepo, invalidator TrackingInvalidator) *statusService {
	return &statusService{
		logger:      logger.With(slog.String("service", "status")),
		txManager:   txManager,
		repo:        repo,
		invalidator: invalidator,
		retry: utils.RetryConfig{
			InitialDelay: 100 * time.Millisecond,
			MaxAttempts:  5,
			Multiplier:   2,
		},
	}
}

// ApplyStatusEvent records a status change and advances the order. Delivered and cancelled
// orders are immutable; replaying an already stored event is a no-op.
func (s *statusService) ApplyStatusEvent(ctx context.Context, change entities.StatusChange) error {
	var displayID string

	fn := func() error {
		return s.txManager.Do(ctx, func(ctx context.Context) error {
			order, err := s.repo.OrderForUpdate(ctx, change.Event.OrderID)
			if err != nil {
				return fmt.Errorf("failed to lock order: %w", err)
			}
			if order.Status.Final() {
				return fmt.Errorf("order %s is %s: %w", order.ID, order.Status, entities.ErrOrderFinalized)
			}
			displayID = order.DisplayID

			inserted, err := s.repo.AppendStatusEvent(ctx, change.Event)
			if err != nil {
				return fmt.Errorf("failed to append status event: %w", err)
			}
			if !inserted {
				s.logger.Debug("duplicate status event skipped", slog.String("event_id", change.Event.ID))
				return nil
			}

			if err := s.repo.UpdateOrderStatus(ctx, order.ID, change.Event.Status, change.Event.CreatedAt); err != nil {
				return fmt.Errorf("failed to update order status: %w", err)
			}

			if change.Event.Status == entities.StatusFailedDelivery {
				attempt := entities.DeliveryAttempt{
					Status:      change.AttemptStatus,
					AttemptedAt: change.Event.CreatedAt,
				}
				if attempt.Status == "" {
					attempt.Status = defaultAttemptStatus
				}
				if err := s.repo.AppendDeliveryAttempt(ctx, order.ID, attempt); err != nil {
					return fmt.Errorf("failed to append delivery attempt: %w", err)
				}
			}

			s.logger.Debug("status applied",
				slog.String("order_id", order.ID),
				slog.String("status", string(change.Event.Status)),
			)
			return nil
		})
	}

	if err := utils.Retry(s.retry, fn, entities.ErrOrderNotFound, entities.ErrOrderFinalized); err != nil {
		return err
	}

	s.invalidator.Invalidate(displayID)
	return nil
}
