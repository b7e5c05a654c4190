package observability

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestRegister(t *testing.T) {
	reg := prometheus.NewRegistry()
	Register(reg)

	SearchesTotal.WithLabelValues("ok").Inc()
	ProductsDropped.WithLabelValues("zero_price").Add(2)

	n, err := testutil.GatherAndCount(reg, "dealfinder_searches_total", "dealfinder_products_dropped_total")
	if err != nil {
		t.Fatalf("GatherAndCount: %v", err)
	}
	if n < 2 {
		t.Errorf("expected at least 2 series, got %d", n)
	}
	if got := testutil.ToFloat64(ProductsDropped.WithLabelValues("zero_price")); got < 2 {
		t.Errorf("zero_price = %v", got)
	}
}
