package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/SergeyBogomolovv/order-tracking/internal/config"
	"github.com/SergeyBogomolovv/order-tracking/internal/entities"
	"github.com/go-playground/validator/v10"
	"github.com/segmentio/kafka-go"
)

type StatusApplier interface {
	ApplyStatusEvent(ctx context.Context, change entities.StatusChange) error
}

type kafkaHandler struct {
	dlq      *kafka.Writer
	reader   *kafka.Reader
	logger   *slog.Logger
	validate *validator.Validate
	applier  StatusApplier
}

func NewKafkaHandler(logger *slog.Logger, cfg config.Kafka, applier StatusApplier) *kafkaHandler {
	return &kafkaHandler{
		logger: logger.With(slog.String("handler", "kafka")),
		reader: kafka.NewReader(kafka.ReaderConfig{
			Brokers: cfg.Brokers,
			GroupID: cfg.GroupID,
			Topic:   cfg.StatusTopic,
			MaxWait: cfg.ReaderMaxWait,
		}),
		dlq: &kafka.Writer{
			Addr:         kafka.TCP(cfg.Brokers...),
			Balancer:     &kafka.LeastBytes{},
			BatchTimeout: cfg.BatchTimeout,
		},
		validate: validator.New(),
		applier:  applier,
	}
}

func (h *kafkaHandler) Consume(ctx context.Context) {
	for {
		m, err := h.reader.FetchMessage(ctx)
		if err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, context.Canceled) {
				break
			}
			h.logger.Error("failed to fetch message", slog.Any("error", err))
			continue
		}

		h.process(ctx, m)

		if err := h.reader.CommitMessages(ctx, m); err != nil {
			commitErrors.Inc()
			h.logger.Error("failed to commit message", slog.Any("error", err))
		}
	}
}

func (h *kafkaHandler) process(ctx context.Context, m kafka.Message) {
	eventsInProgress.Inc()
	defer eventsInProgress.Dec()

	start := time.Now()
	defer func() {
		eventProcessingDuration.Observe(time.Since(start).Seconds())
	}()

	// В сервисе уже есть retry
	err := h.handleStatusEvent(ctx, m)
	if err == nil {
		eventsProcessed.Inc()
		return
	}

	if errors.Is(err, entities.ErrOrderFinalized) {
		// поздние события по закрытым заказам ожидаемы, в DLQ не пишем
		eventsFailed.WithLabelValues("finalized").Inc()
		h.logger.Info("status event for finalized order skipped", slog.Any("error", err))
		return
	}

	eventsFailed.WithLabelValues(failureReason(err)).Inc()
	h.logger.Error("failed to handle message", slog.Any("error", err))

	// В библиотеке уже есть retry
	if err := h.WriteToDLQ(ctx, m); err != nil {
		h.logger.Error("failed to write message to DLQ", slog.Any("error", err))
		return
	}
	eventsDLQ.Inc()
}

type invalidMessageError struct {
	err error
}

func (e invalidMessageError) Error() string { return e.err.Error() }
func (e invalidMessageError) Unwrap() error { return e.err }

func (h *kafkaHandler) handleStatusEvent(ctx context.Context, m kafka.Message) error {
	var msg StatusEventMessage
	if err := json.Unmarshal(m.Value, &msg); err != nil {
		return invalidMessageError{fmt.Errorf("failed to unmarshal status event: %w", err)}
	}

	if err := h.validate.Struct(msg); err != nil {
		return invalidMessageError{fmt.Errorf("invalid status event: %w", err)}
	}

	return h.applier.ApplyStatusEvent(ctx, StatusEventJSONToEntity(msg))
}

func failureReason(err error) string {
	var invalid invalidMessageError
	switch {
	case errors.As(err, &invalid):
		return "invalid"
	case errors.Is(err, entities.ErrOrderNotFound):
		return "not_found"
	default:
		return "error"
	}
}

func (h *kafkaHandler) WriteToDLQ(ctx context.Context, m kafka.Message) error {
	m.Topic = fmt.Sprintf("%s-dlq", m.Topic)
	return h.dlq.WriteMessages(ctx, m)
}

func (h *kafkaHandler) Close() error {
	if err := h.reader.Close(); err != nil {
		return err
	}
	return h.dlq.Close()
}
