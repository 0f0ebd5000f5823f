package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func counterValue(t *testing.T, c prometheus.Counter) float64 {
	t.Helper()
	var m dto.Metric
	require.NoError(t, c.Write(&m))
	return m.GetCounter().GetValue()
}

func TestMetrics_RejectedRequests(t *testing.T) {
	r := chi.NewRouter()
	r.Use(Metrics)
	r.Post("/track-order", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	})
	r.Get("/orders/{order_number}/tracking", func(w http.ResponseWriter, r *http.Request) {
		if chi.URLParam(r, "order_number") == "GU000000000" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.WriteHeader(http.StatusOK)
	})

	limited := httpRejectedTotal.WithLabelValues("/track-order", "rate_limited")
	notFound := httpRejectedTotal.WithLabelValues("/orders/{order_number}/tracking", "not_found")
	limitedBefore := counterValue(t, limited)
	notFoundBefore := counterValue(t, notFound)

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/track-order", nil))
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/orders/GU000000000/tracking", nil))
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/orders/GU123456789/tracking", nil))

	assert.Equal(t, limitedBefore+1, counterValue(t, limited))
	assert.Equal(t, notFoundBefore+1, counterValue(t, notFound))
}

func TestRejectReason(t *testing.T) {
	testCases := []struct {
		status int
		want   string
	}{
		{http.StatusBadRequest, "invalid"},
		{http.StatusNotFound, "not_found"},
		{http.StatusTooManyRequests, "rate_limited"},
		{http.StatusMethodNotAllowed, "client_error"},
	}

	for _, tc := range testCases {
		t.Run(http.StatusText(tc.status), func(t *testing.T) {
			assert.Equal(t, tc.want, rejectReason(tc.status))
		})
	}
}
