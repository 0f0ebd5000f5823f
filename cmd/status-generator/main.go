// status-generator walks existing orders through the delivery lifecycle by publishing
// status events, for local testing of the consumer.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"log/slog"
	"math/rand"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
)

type statusEvent struct {
	EventID       string    `json:"event_id"`
	OrderID       string    `json:"order_id"`
	Status        string    `json:"status"`
	OccurredAt    time.Time `json:"occurred_at"`
	AttemptStatus string    `json:"attempt_status,omitempty"`
}

var lifecycle = []string{
	"processing",
	"ready_for_pickup",
	"assigned_to_driver",
	"picked_up",
	"out_for_delivery",
	"delivered",
}

func main() {
	brokers := flag.String("brokers", "localhost:9092", "comma separated kafka brokers")
	topic := flag.String("topic", "order-status", "status events topic")
	orders := flag.String("orders", "", "comma separated internal order ids")
	interval := flag.Duration("interval", 2*time.Second, "delay between events")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	if *orders == "" {
		logger.Error("no orders given, use -orders")
		os.Exit(1)
	}

	writer := &kafka.Writer{
		Addr:     kafka.TCP(strings.Split(*brokers, ",")...),
		Topic:    *topic,
		Balancer: &kafka.Hash{},
	}
	defer writer.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	ids := strings.Split(*orders, ",")
	step := make(map[string]int, len(ids))

	ticker := time.NewTicker(*interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			id := ids[rand.Intn(len(ids))]
			if step[id] >= len(lifecycle) {
				continue
			}

			event := statusEvent{
				EventID:    uuid.NewString(),
				OrderID:    id,
				Status:     lifecycle[step[id]],
				OccurredAt: time.Now().UTC(),
			}
			// иногда курьер не застаёт клиента
			if event.Status == "delivered" && rand.Intn(4) == 0 {
				event.Status = "failed_delivery"
				event.AttemptStatus = "customer_absent"
			} else {
				step[id]++
			}

			data, _ := json.Marshal(event)
			if err := writer.WriteMessages(ctx, kafka.Message{Key: []byte(id), Value: data}); err != nil {
				logger.Error("failed to publish event", slog.Any("error", err))
				continue
			}
			logger.Info("event published", slog.String("order_id", id), slog.String("status", event.Status))
		case <-ctx.Done():
			return
		}
	}
}
