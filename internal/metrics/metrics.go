// Package metrics はPrometheusメトリクスの収集と公開を提供する。
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector はPrometheusメトリクスを収集する実装。
type Collector struct {
	contactOutcome  *prometheus.CounterVec
	deliveryLatency prometheus.Histogram
	httpStatus      *prometheus.CounterVec
	contentItems    *prometheus.GaugeVec
}

// NewCollector は新しいCollectorを生成し、指定されたレジストリにメトリクスを登録する。
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		contactOutcome: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "sonora_contact_submissions_total",
			Help: "結果種別ごとのお問い合わせ送信数",
		}, []string{"outcome"}),
		deliveryLatency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "sonora_contact_delivery_latency_seconds",
			Help:    "メール配信サービス呼び出しのレイテンシ（秒）",
			Buckets: prometheus.DefBuckets,
		}),
		httpStatus: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "sonora_http_status_total",
			Help: "HTTPステータスコード別のレスポンス数",
		}, []string{"status_code"}),
		contentItems: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "sonora_content_items",
			Help: "読み込んだコンテンツの件数",
		}, []string{"kind"}),
	}

	reg.MustRegister(
		c.contactOutcome,
		c.deliveryLatency,
		c.httpStatus,
		c.contentItems,
	)

	return c
}

// RecordContactOutcome はお問い合わせ送信の結果を記録する。
func (c *Collector) RecordContactOutcome(outcome string) {
	c.contactOutcome.WithLabelValues(outcome).Inc()
}

// RecordDeliveryLatency は配信のレイテンシを記録する。
func (c *Collector) RecordDeliveryLatency(duration time.Duration) {
	c.deliveryLatency.Observe(duration.Seconds())
}

// RecordHTTPStatus はHTTPステータスコードを記録する。
func (c *Collector) RecordHTTPStatus(statusCode int) {
	c.httpStatus.WithLabelValues(strconv.Itoa(statusCode)).Inc()
}

// SetContentItems は種別（tour, posts, albums）ごとのコンテンツ件数を設定する。
func (c *Collector) SetContentItems(kind string, count int) {
	c.contentItems.WithLabelValues(kind).Set(float64(count))
}

// NewRegistry はGoランタイムとプロセスのコレクターを登録済みのレジストリを返す。
func NewRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return reg
}

// Handler はPrometheusスクレイプ用のHTTPハンドラーを返す。
func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}
