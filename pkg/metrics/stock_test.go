package metrics

import (
	"fmt"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

func TestStockMetricsExportsCounters(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics := NewStockMetrics(reg)

	metrics.IncCommitted("IN", 10)
	metrics.IncCommitted("IN", 5)
	metrics.IncRejected("OUT")

	mfs, err := reg.Gather()
	if err != nil {
		t.Fatalf("gather metrics: %v", err)
	}

	if got, err := fetchCounterValue(mfs, "stock_adjustments_total", map[string]string{"kind": "IN", "outcome": "committed"}); err != nil {
		t.Fatalf("fetch committed: %v", err)
	} else if got != 2 {
		t.Fatalf("expected committed=2, got %f", got)
	}

	if got, err := fetchCounterValue(mfs, "stock_adjustments_total", map[string]string{"kind": "OUT", "outcome": "rejected"}); err != nil {
		t.Fatalf("fetch rejected: %v", err)
	} else if got != 1 {
		t.Fatalf("expected rejected=1, got %f", got)
	}

	if got, err := fetchCounterValue(mfs, "stock_units_moved_total", map[string]string{"kind": "IN"}); err != nil {
		t.Fatalf("fetch units: %v", err)
	} else if got != 15 {
		t.Fatalf("expected units=15, got %f", got)
	}
}

func TestHTTPMetricsExportsHistogram(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics := NewHTTPMetrics(reg)
	metrics.ObserveRequest("POST", "/api/v1/stock/in", 200, 250*time.Millisecond)

	mfs, err := reg.Gather()
	if err != nil {
		t.Fatalf("gather metrics: %v", err)
	}

	if got, err := fetchCounterValue(mfs, "http_requests_total", map[string]string{"method": "POST", "route": "/api/v1/stock/in", "status": "200"}); err != nil {
		t.Fatalf("fetch requests: %v", err)
	} else if got != 1 {
		t.Fatalf("expected requests=1, got %f", got)
	}

	mf := findMetricFamily(mfs, "http_request_duration_seconds")
	if mf == nil {
		t.Fatalf("duration histogram not registered")
	}
	if sum := mf.GetMetric()[0].GetHistogram().GetSampleSum(); sum <= 0 {
		t.Fatalf("expected duration sum > 0, got %f", sum)
	}
}

func TestNilRegistererIsNoop(t *testing.T) {
	metrics := NewStockMetrics(nil)
	metrics.IncCommitted("IN", 1)
	metrics.IncRejected("OUT")
}

func fetchCounterValue(mfs []*dto.MetricFamily, name string, labels map[string]string) (float64, error) {
	mf := findMetricFamily(mfs, name)
	if mf == nil {
		return 0, fmt.Errorf("metric %q not found", name)
	}
	for _, metric := range mf.GetMetric() {
		if matchesLabels(metric.GetLabel(), labels) {
			return metric.GetCounter().GetValue(), nil
		}
	}
	return 0, fmt.Errorf("metric %q missing labels %v", name, labels)
}

func findMetricFamily(mfs []*dto.MetricFamily, name string) *dto.MetricFamily {
	for _, mf := range mfs {
		if mf.GetName() == name {
			return mf
		}
	}
	return nil
}

func matchesLabels(pairs []*dto.LabelPair, labels map[string]string) bool {
	for name, value := range labels {
		found := false
		for _, pair := range pairs {
			if pair.GetName() == name && pair.GetValue() == value {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}
