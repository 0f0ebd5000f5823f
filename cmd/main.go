package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/SergeyBogomolovv/order-tracking/internal/app"
	"github.com/SergeyBogomolovv/order-tracking/internal/config"
	"github.com/SergeyBogomolovv/order-tracking/internal/handler"
	"github.com/SergeyBogomolovv/order-tracking/internal/postgres"
	"github.com/SergeyBogomolovv/order-tracking/internal/ratelimit"
	"github.com/SergeyBogomolovv/order-tracking/internal/repo"
	"github.com/SergeyBogomolovv/order-tracking/internal/service"
	"github.com/SergeyBogomolovv/order-tracking/internal/tracing"
	"github.com/SergeyBogomolovv/order-tracking/internal/tracking"
	"github.com/SergeyBogomolovv/order-tracking/pkg/cache"
	"github.com/SergeyBogomolovv/order-tracking/pkg/trm"

	"github.com/joho/godotenv"
)

// @title           Order Tracking API
// @version         1.0
// @description     Публичное API отслеживания доставки заказов
// @BasePath        /
func main() {
	conf := config.New()
	logger := newLogger(conf.Env)
	panicIfErr("invalid config", conf.Validate())

	tp, err := tracing.NewProvider(conf.Tracing.ServiceName, conf.Tracing.JaegerEndpoint)
	panicIfErr("failed to init tracing", err)
	defer shutdownTracing(logger, tp)

	db, err := postgres.New(conf.Postgres)
	panicIfErr("failed to connect to db", err)
	defer db.Close()
	logger.Info("postgres connected")

	healthChecks := map[string]app.Pinger{"postgres": app.PingerFunc(db.PingContext)}
	starters := []app.Starter{}

	var limiter service.RateLimiter
	switch conf.RateLimit.Backend {
	case "redis":
		rl, err := ratelimit.NewRedis(conf.Redis.URL, conf.RateLimit.Requests, conf.RateLimit.Window)
		panicIfErr("failed to init redis rate limiter", err)
		defer rl.Close()
		healthChecks["redis"] = rl
		limiter = rl
	default:
		rl := ratelimit.NewPostgres(logger, db, conf.RateLimit.Requests, conf.RateLimit.Window)
		starters = append(starters, rl)
		limiter = rl
	}

	pgRepo := repo.NewPostgresRepo(db)
	txManager := trm.NewManager(db)
	trackingCache := cache.NewLRUCache(conf.Cache.Capacity, conf.Cache.TTL)
	starters = append(starters, trackingCache)

	estimator := tracking.NewEstimator(logger, pgRepo)
	trackingService := service.NewTrackingService(logger, pgRepo, limiter, estimator, trackingCache,
		service.WithRateLimitKey(conf.RateLimit.Key),
	)
	statusService := service.NewStatusService(logger, txManager, pgRepo, trackingService)

	handler.RegisterMetrics()
	kafkaHandler := handler.NewKafkaHandler(logger, conf.Kafka, statusService)
	httpHandler := handler.NewHTTPHandler(logger, trackingService)

	app := app.New(logger, conf)

	app.SetHTTPHandlers(httpHandler)
	app.SetHealthChecks(healthChecks)
	app.SetConsumers(kafkaHandler)
	app.SetStarters(starters...)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	panicIfErr("failed to start app", app.Start(ctx))
	<-ctx.Done()
	panicIfErr("failed to stop app", app.Stop())
}

func init() {
	godotenv.Load()
}

func newLogger(env string) *slog.Logger {
	switch env {
	case "production":
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	default:
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
}

func panicIfErr(prefix string, err error) {
	if err != nil {
		panic(prefix + ": " + err.Error())
	}
}

func shutdownTracing(logger *slog.Logger, tp *tracing.Provider) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := tp.Shutdown(ctx); err != nil {
		logger.Error("failed to flush traces", slog.Any("error", err))
	}
}
