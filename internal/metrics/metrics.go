// Package metrics はPrometheusメトリクスの収集と公開を提供する。
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector はPrometheusメトリクスを収集する実装。
// 利用側は必要なメソッドだけを切り出したインターフェースで受け取る。
type Collector struct {
	httpStatus        *prometheus.CounterVec
	requestDuration   prometheus.Histogram
	resourcesCreated  *prometheus.CounterVec
	authFailures      prometheus.Counter
	sessionTransition *prometheus.CounterVec
}

// NewCollector は新しいCollectorを生成し、指定されたレジストリにメトリクスを登録する。
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		httpStatus: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "forward_http_status_total",
			Help: "HTTPステータスコード別のレスポンス数",
		}, []string{"status_code"}),
		requestDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "forward_request_duration_seconds",
			Help:    "HTTPリクエスト処理時間（秒）",
			Buckets: prometheus.DefBuckets,
		}),
		resourcesCreated: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "forward_resources_created_total",
			Help: "リソース種別ごとの作成の合計数",
		}, []string{"resource"}),
		authFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "forward_auth_failures_total",
			Help: "認証失敗の合計数",
		}),
		sessionTransition: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "forward_session_transitions_total",
			Help: "セッションステータス遷移の合計数",
		}, []string{"status"}),
	}

	reg.MustRegister(
		c.httpStatus,
		c.requestDuration,
		c.resourcesCreated,
		c.authFailures,
		c.sessionTransition,
	)

	return c
}

// RecordHTTPStatus はHTTPステータスコードを記録する。
func (c *Collector) RecordHTTPStatus(statusCode int) {
	c.httpStatus.WithLabelValues(strconv.Itoa(statusCode)).Inc()
}

// RecordRequestDuration はリクエスト処理時間を記録する。
func (c *Collector) RecordRequestDuration(duration time.Duration) {
	c.requestDuration.Observe(duration.Seconds())
}

// RecordResourceCreated はリソース作成を記録する。
// resourceにはuser、project、update、comment、slot、sessionのいずれかを指定する。
func (c *Collector) RecordResourceCreated(resource string) {
	c.resourcesCreated.WithLabelValues(resource).Inc()
}

// RecordAuthFailure は認証失敗を記録する。
func (c *Collector) RecordAuthFailure() {
	c.authFailures.Inc()
}

// RecordSessionTransition はセッションステータス遷移を記録する。
func (c *Collector) RecordSessionTransition(status string) {
	c.sessionTransition.WithLabelValues(status).Inc()
}

// Handler はPrometheusスクレイプ用のHTTPハンドラーを返す。
func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}
