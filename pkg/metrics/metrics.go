// Package metrics expõe as métricas Prometheus da API: sincronização com o CRM,
// tempo de execução dos motores de cálculo e requisições HTTP.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "salon"

const (
	SyncResultSuccess = "success"
	SyncResultFailure = "failure"

	ItemKindClients = "clients"
	ItemKindRecords = "records"

	EngineScoring    = "scoring"
	EnginePredicting = "predicting"
	EngineSegmenting = "segmenting"
)

type Manager struct {
	registry *prometheus.Registry

	syncRuns           *prometheus.CounterVec
	syncDuration       prometheus.Histogram
	syncedItems        *prometheus.CounterVec
	engineDuration     *prometheus.HistogramVec
	noShowPredictions  *prometheus.CounterVec
	httpRequests       *prometheus.CounterVec
	httpRequestLatency *prometheus.HistogramVec
}

// Registro próprio para não publicar as métricas padrão do runtime Go
var globalManager = NewManager(prometheus.NewRegistry()) //nolint:gochecknoglobals

func NewManager(registry *prometheus.Registry) *Manager {
	auto := promauto.With(registry)

	return &Manager{
		registry: registry,
		syncRuns: auto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "crm_sync_runs_total",
			Help:      "Total de execuções da sincronização com o CRM por resultado",
		}, []string{"result"}),
		syncDuration: auto.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "crm_sync_duration_seconds",
			Help:      "Duração da sincronização com o CRM em segundos",
			Buckets:   []float64{1, 5, 15, 30, 60, 120, 300, 600},
		}),
		syncedItems: auto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "crm_synced_items_total",
			Help:      "Total de itens gravados pela sincronização com o CRM",
		}, []string{"kind"}),
		engineDuration: auto.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "engine_duration_seconds",
			Help:      "Duração de cada execução dos motores de score, faltas e segmentação",
			Buckets:   prometheus.DefBuckets,
		}, []string{"engine"}),
		noShowPredictions: auto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "noshow_predictions_total",
			Help:      "Total de previsões de falta geradas por nível de risco",
		}, []string{"risk_level"}),
		httpRequests: auto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total de requisições HTTP por rota, método e status",
		}, []string{"path", "method", "status_code"}),
		httpRequestLatency: auto.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "Duração das requisições HTTP em segundos",
			Buckets:   prometheus.DefBuckets,
		}, []string{"path", "method"}),
	}
}

func (m *Manager) RecordSyncRun(result string, duration time.Duration) {
	m.syncRuns.WithLabelValues(result).Inc()
	m.syncDuration.Observe(duration.Seconds())
}

func (m *Manager) RecordSyncedItems(kind string, count int) {
	m.syncedItems.WithLabelValues(kind).Add(float64(count))
}

func (m *Manager) ObserveEngine(engine string, duration time.Duration) {
	m.engineDuration.WithLabelValues(engine).Observe(duration.Seconds())
}

func (m *Manager) RecordNoShowPrediction(riskLevel string) {
	m.noShowPredictions.WithLabelValues(riskLevel).Inc()
}

func (m *Manager) ObserveHTTPRequest(path, method string, statusCode int, duration time.Duration) {
	m.httpRequests.WithLabelValues(path, method, strconv.Itoa(statusCode)).Inc()
	m.httpRequestLatency.WithLabelValues(path, method).Observe(duration.Seconds())
}

// Handler publica o registro no formato de exposição do Prometheus
func (m *Manager) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func Default() *Manager {
	return globalManager
}

func RecordSyncRun(result string, duration time.Duration) {
	globalManager.RecordSyncRun(result, duration)
}

func RecordSyncedItems(kind string, count int) {
	globalManager.RecordSyncedItems(kind, count)
}

func ObserveEngine(engine string, duration time.Duration) {
	globalManager.ObserveEngine(engine, duration)
}

func RecordNoShowPrediction(riskLevel string) {
	globalManager.RecordNoShowPrediction(riskLevel)
}

func ObserveHTTPRequest(path, method string, statusCode int, duration time.Duration) {
	globalManager.ObserveHTTPRequest(path, method, statusCode, duration)
}

func Handler() http.Handler {
	return globalManager.Handler()
}
