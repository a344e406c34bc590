//go:build unit

package metrics_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/sony/gobreaker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vending-server/internal/infra/metrics"
)

func TestMetrics(t *testing.T) {
	m := metrics.New()

	m.PurchaseFinished("ok")
	m.PurchaseFinished("ok")
	m.PurchaseFinished("insufficient_stock")
	m.SetOpenShops(4)
	m.BreakerState("shop_gateway", gobreaker.StateHalfOpen)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.Purchases.WithLabelValues("ok")))
	assert.Equal(t, 4.0, testutil.ToFloat64(m.OpenShops))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.CircuitBreakerState.WithLabelValues("shop_gateway")))

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `vending_purchases_total{outcome="insufficient_stock"} 1`)
}
