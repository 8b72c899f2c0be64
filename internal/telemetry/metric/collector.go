package metric

import "github.com/prometheus/client_golang/prometheus"

// UsageSource reports aggregate token usage.
type UsageSource interface {
	Count() int
	TotalCalls() int64
}

// Collector reads token usage from a UsageSource at scrape time.
type Collector struct {
	src UsageSource

	tokens *prometheus.Desc
	calls  *prometheus.Desc
}

// NewCollector creates a collector over src.
func NewCollector(src UsageSource) *Collector {
	return &Collector{
		src: src,
		tokens: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "", "tokens"),
			"Number of access tokens currently registered.",
			nil, nil,
		),
		calls: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "", "token_calls_total"),
			"Sum of authorized calls over all access tokens.",
			nil, nil,
		),
	}
}

// Describe implements prometheus.Collector.
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.tokens
	ch <- c.calls
}

// Collect implements prometheus.Collector.
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	ch <- prometheus.MustNewConstMetric(c.tokens, prometheus.GaugeValue, float64(c.src.Count()))
	ch <- prometheus.MustNewConstMetric(c.calls, prometheus.CounterValue, float64(c.src.TotalCalls()))
}
