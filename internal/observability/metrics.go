package observability

import (
	"context"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/push"
	"github.com/riskibarqy/futdb-sync/internal/usecase"
)

// SyncMetrics holds the gauges describing one sync run. A batch job has no
// scrape endpoint, so the values are pushed to a Pushgateway on exit.
//
// Metrics:
//   - futdb_sync_records{kind} (Gauge): records inserted per endpoint
//   - futdb_sync_pages{kind} (Gauge): pages fully ingested per endpoint
//   - futdb_sync_page_bound{kind} (Gauge): last page the run planned to fetch
//   - futdb_sync_duration_seconds (Gauge): wall time of the run
//   - futdb_sync_success (Gauge): 1 when every endpoint finished, else 0
//   - futdb_sync_last_success_timestamp_seconds (Gauge): set only on success
type SyncMetrics struct {
	registry    *prometheus.Registry
	records     *prometheus.GaugeVec
	pages       *prometheus.GaugeVec
	pageBound   *prometheus.GaugeVec
	duration    prometheus.Gauge
	success     prometheus.Gauge
	lastSuccess prometheus.Gauge
	now         func() time.Time
}

func NewSyncMetrics() *SyncMetrics {
	registry := prometheus.NewRegistry()
	factory := promauto.With(registry)

	return &SyncMetrics{
		registry: registry,
		records: factory.NewGaugeVec(prometheus.GaugeOpts{
			Name: "futdb_sync_records",
			Help: "Records inserted by the last sync run, by endpoint.",
		}, []string{"kind"}),
		pages: factory.NewGaugeVec(prometheus.GaugeOpts{
			Name: "futdb_sync_pages",
			Help: "Pages fully ingested by the last sync run, by endpoint.",
		}, []string{"kind"}),
		pageBound: factory.NewGaugeVec(prometheus.GaugeOpts{
			Name: "futdb_sync_page_bound",
			Help: "Last page number the sync run planned to fetch, by endpoint.",
		}, []string{"kind"}),
		duration: factory.NewGauge(prometheus.GaugeOpts{
			Name: "futdb_sync_duration_seconds",
			Help: "Wall time of the last sync run.",
		}),
		success: factory.NewGauge(prometheus.GaugeOpts{
			Name: "futdb_sync_success",
			Help: "1 if the last sync run finished every endpoint, 0 otherwise.",
		}),
		lastSuccess: factory.NewGauge(prometheus.GaugeOpts{
			Name: "futdb_sync_last_success_timestamp_seconds",
			Help: "Unix time of the last successful sync run.",
		}),
		now: time.Now,
	}
}

// Observe records the outcome of a run, including the partial progress of a
// failed one.
func (m *SyncMetrics) Observe(result usecase.SyncResult, elapsed time.Duration, runErr error) {
	for _, item := range result.Kinds {
		kind := item.Kind.String()
		m.records.WithLabelValues(kind).Set(float64(item.Records))
		m.pages.WithLabelValues(kind).Set(float64(item.Pages))
		m.pageBound.WithLabelValues(kind).Set(float64(item.Bound))
	}
	m.duration.Set(elapsed.Seconds())

	if runErr != nil {
		m.success.Set(0)
		return
	}
	m.success.Set(1)
	m.lastSuccess.Set(float64(m.now().Unix()))
}

// Push replaces the job's metric group on the Pushgateway. An empty url is a
// no-op.
func (m *SyncMetrics) Push(ctx context.Context, url, job string) error {
	if strings.TrimSpace(url) == "" {
		return nil
	}
	return push.New(url, job).Gatherer(m.registry).PushContext(ctx)
}
