package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/SergeyBogomolovv/order-tracking/internal/entities"
	"github.com/SergeyBogomolovv/order-tracking/pkg/utils"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

const maxBodyBytes = 1 << 10

var orderNumberRe = regexp.MustCompile(`^[A-Za-z0-9-]+$`)

type TrackingGetter interface {
	TrackOrder(ctx context.Context, orderNumber string) (entities.Tracking, error)
}

type HTTPHandler struct {
	logger   *slog.Logger
	validate *validator.Validate
	svc      TrackingGetter
}

func NewHTTPHandler(logger *slog.Logger, svc TrackingGetter) *HTTPHandler {
	validate := validator.New()
	validate.RegisterValidation("order_number", func(fl validator.FieldLevel) bool {
		return orderNumberRe.MatchString(fl.Field().String())
	})

	return &HTTPHandler{
		logger:   logger.With(slog.String("handler", "http")),
		validate: validate,
		svc:      svc,
	}
}

func (h *HTTPHandler) Init(r chi.Router) {
	r.Post("/track-order", h.TrackOrder)
	r.Get("/orders/{order_number}/tracking", h.GetTracking)
}

// TrackOrder возвращает статус доставки заказа.
// @Summary      Отследить заказ
// @Description  Возвращает статус, таймлайн, ETA и адрес доставки по номеру заказа. Платёжные данные не возвращаются
// @Tags         tracking
// @Accept       json
// @Produce      json
// @Param        request  body      TrackOrderRequest  true  "Номер заказа"
// @Success      200  {object}  utils.Response{data=Tracking}
// @Failure      400  {object}  utils.Response "Некорректный номер заказа"
// @Failure      404  {object}  utils.Response "Заказ не найден"
// @Failure      429  {object}  utils.Response "Слишком много запросов"
// @Failure      500  {object}  utils.Response "Внутренняя ошибка сервера"
// @Router       /track-order [post]
func (h *HTTPHandler) TrackOrder(w http.ResponseWriter, r *http.Request) {
	var req TrackOrderRequest
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := utils.DecodeBody(r, &req); err != nil {
		h.logger.DebugContext(r.Context(), "malformed request body", slog.Any("error", err))
		utils.WriteError(w, "Invalid order number", http.StatusBadRequest)
		return
	}

	h.track(w, r, req)
}

// GetTracking возвращает статус доставки заказа по ссылке.
// @Summary      Отследить заказ по ссылке
// @Description  То же, что POST /track-order, но номер заказа передаётся в пути
// @Tags         tracking
// @Produce      json
// @Param        order_number  path      string  true  "Номер заказа"
// @Success      200  {object}  utils.Response{data=Tracking}
// @Failure      400  {object}  utils.Response "Некорректный номер заказа"
// @Failure      404  {object}  utils.Response "Заказ не найден"
// @Failure      429  {object}  utils.Response "Слишком много запросов"
// @Failure      500  {object}  utils.Response "Внутренняя ошибка сервера"
// @Router       /orders/{order_number}/tracking [get]
func (h *HTTPHandler) GetTracking(w http.ResponseWriter, r *http.Request) {
	h.track(w, r, TrackOrderRequest{OrderNumber: chi.URLParam(r, "order_number")})
}

func (h *HTTPHandler) track(w http.ResponseWriter, r *http.Request, req TrackOrderRequest) {
	ctx := r.Context()

	trackingRequestsInProgress.Inc()
	defer trackingRequestsInProgress.Dec()

	start := time.Now()
	status := http.StatusOK
	defer func() {
		trackingRequestTotal.WithLabelValues(strconv.Itoa(status)).Inc()
		trackingRequestDuration.Observe(time.Since(start).Seconds())
	}()

	req.OrderNumber = strings.TrimSpace(req.OrderNumber)
	if err := h.validate.Struct(req); err != nil {
		status = http.StatusBadRequest
		utils.WriteValidationError(w, "Invalid order number", err)
		return
	}

	t, err := h.svc.TrackOrder(ctx, req.OrderNumber)

	switch {
	case errors.Is(err, entities.ErrRateLimited):
		status = http.StatusTooManyRequests
		h.logger.InfoContext(ctx, "tracking rate limited")
		utils.WriteError(w, "Too many requests", status)
		return
	case errors.Is(err, entities.ErrOrderNotFound):
		status = http.StatusNotFound
		utils.WriteError(w, "Order not found", status)
		return
	case err != nil:
		status = http.StatusInternalServerError
		h.logger.ErrorContext(ctx, "failed to track order", slog.Any("error", err), slog.String("orderNumber", req.OrderNumber))
		utils.WriteError(w, "Error fetching order", status)
		return
	}

	if t.ETASource != "" {
		etaEstimatesTotal.WithLabelValues(t.ETASource).Inc()
	}

	if err := utils.WriteData(w, TrackingEntityToJSON(t)); err != nil {
		h.logger.ErrorContext(ctx, "failed to write tracking response", slog.Any("error", err), slog.String("orderNumber", req.OrderNumber))
	}
}
