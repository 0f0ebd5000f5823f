package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/SergeyBogomolovv/order-tracking/internal/entities"
	"github.com/SergeyBogomolovv/order-tracking/pkg/trm"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
)

var orderColumns = []string{
	"id", "display_id", "status", "driver_id",
	"assigned_at", "picked_up_at", "delivered_at", "cancelled_at", "failed_at",
	"metadata", "created_at",
}

// milestoneColumns maps a status to the orders column stamped when it is reached.
var milestoneColumns = map[entities.Status]string{
	entities.StatusAssignedToDriver: "assigned_at",
	entities.StatusPickedUp:         "picked_up_at",
	entities.StatusDelivered:        "delivered_at",
	entities.StatusCancelled:        "cancelled_at",
	entities.StatusFailedDelivery:   "failed_at",
}

type postgresRepo struct {
	db *sqlx.DB
	qb sq.StatementBuilderType
}

func NewPostgresRepo(db *sqlx.DB) *postgresRepo {
	return &postgresRepo{
		db: db,
		qb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *postgresRepo) OrderByDisplayID(ctx context.Context, displayID string) (entities.Order, error) {
	query, args := r.qb.Select(orderColumns...).
		From("orders").
		Where(sq.Eq{"display_id": displayID}).
		MustSql()

	return r.getOrder(ctx, query, args...)
}

func (r *postgresRepo) OrderForUpdate(ctx context.Context, orderID string) (entities.Order, error) {
	query, args := r.qb.Select(orderColumns...).
		From("orders").
		Where(sq.Eq{"id": orderID}).
		Suffix("FOR UPDATE").
		MustSql()

	return r.getOrder(ctx, query, args...)
}

func (r *postgresRepo) getOrder(ctx context.Context, query string, args ...any) (entities.Order, error) {
	var order Order
	err := r.getContext(ctx, &order, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Order{}, entities.ErrOrderNotFound
	}
	if err != nil {
		return entities.Order{}, fmt.Errorf("failed to get order: %w", err)
	}

	res, err := OrderToEntity(order)
	if err != nil {
		return entities.Order{}, fmt.Errorf("failed to decode order metadata: %w", err)
	}
	return res, nil
}

func (r *postgresRepo) StatusHistory(ctx context.Context, orderID string) ([]entities.StatusEvent, error) {
	query, args := r.qb.Select("id", "order_id", "status", "created_at").
		From("order_status_history").
		Where(sq.Eq{"order_id": orderID}).
		OrderBy("created_at ASC").
		MustSql()

	var events []StatusEvent
	if err := r.selectContext(ctx, &events, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select status history: %w", err)
	}

	res := make([]entities.StatusEvent, 0, len(events))
	for _, e := range events {
		res = append(res, StatusEventToEntity(e))
	}
	return res, nil
}

func (r *postgresRepo) DeliveryAttempts(ctx context.Context, orderID string) ([]entities.DeliveryAttempt, error) {
	query, args := r.qb.Select("status", "attempted_at").
		From("delivery_attempts").
		Where(sq.Eq{"order_id": orderID}).
		OrderBy("attempted_at ASC").
		MustSql()

	var attempts []DeliveryAttempt
	if err := r.selectContext(ctx, &attempts, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select delivery attempts: %w", err)
	}

	res := make([]entities.DeliveryAttempt, 0, len(attempts))
	for _, a := range attempts {
		res = append(res, DeliveryAttemptToEntity(a))
	}
	return res, nil
}

func (r *postgresRepo) DriverLocation(ctx context.Context, driverID string) (entities.DriverLocation, error) {
	query, args := r.qb.Select("driver_id", "latitude", "longitude", "recorded_at").
		From("driver_locations").
		Where(sq.Eq{"driver_id": driverID}).
		MustSql()

	var loc DriverLocation
	err := r.getContext(ctx, &loc, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.DriverLocation{}, entities.ErrDriverLocationNotFound
	}
	if err != nil {
		return entities.DriverLocation{}, fmt.Errorf("failed to get driver location: %w", err)
	}
	// координаты без значения равносильны отсутствию фикса
	if !loc.Latitude.Valid || !loc.Longitude.Valid {
		return entities.DriverLocation{}, entities.ErrDriverLocationNotFound
	}

	return entities.DriverLocation{
		DriverID: loc.DriverID,
		Coordinates: entities.Coordinates{
			Latitude:  loc.Latitude.Float64,
			Longitude: loc.Longitude.Float64,
		},
		RecordedAt: loc.RecordedAt,
	}, nil
}

func (r *postgresRepo) AppendStatusEvent(ctx context.Context, e entities.StatusEvent) (bool, error) {
	query, args := r.qb.Insert("order_status_history").
		Columns("id", "order_id", "status", "created_at").
		Values(e.ID, e.OrderID, string(e.Status), e.CreatedAt).
		Suffix("ON CONFLICT (id) DO NOTHING").
		MustSql()

	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("failed to insert status event: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}
	return n > 0, nil
}

func (r *postgresRepo) UpdateOrderStatus(ctx context.Context, orderID string, status entities.Status, at time.Time) error {
	q := r.qb.Update("orders").
		Set("status", string(status)).
		Where(sq.Eq{"id": orderID})

	if col, ok := milestoneColumns[status]; ok {
		q = q.Set(col, at)
	}

	query, args := q.MustSql()
	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to update order status: %w", err)
	}
	return nil
}

func (r *postgresRepo) AppendDeliveryAttempt(ctx context.Context, orderID string, a entities.DeliveryAttempt) error {
	query, args := r.qb.Insert("delivery_attempts").
		Columns("order_id", "status", "attempted_at").
		Values(orderID, a.Status, a.AttemptedAt).
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to insert delivery attempt: %w", err)
	}
	return nil
}

func (r *postgresRepo) execContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	tx := trm.ExtractTx(ctx)
	if tx != nil {
		return tx.ExecContext(ctx, query, args...)
	}
	return r.db.ExecContext(ctx, query, args...)
}

func (r *postgresRepo) getContext(ctx context.Context, dest any, query string, args ...any) error {
	tx := trm.ExtractTx(ctx)
	if tx != nil {
		return tx.GetContext(ctx, dest, query, args...)
	}
	return r.db.GetContext(ctx, dest, query, args...)
}

func (r *postgresRepo) selectContext(ctx context.Context, dest any, query string, args ...any) error {
	tx := trm.ExtractTx(ctx)
	if tx != nil {
		return tx.SelectContext(ctx, dest, query, args...)
	}
	return r.db.SelectContext(ctx, dest, query, args...)
}
