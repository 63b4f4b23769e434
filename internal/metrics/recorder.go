package metrics

import (
	"errors"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"subfeed/internal/domain"
	"subfeed/internal/service"
)

var _ service.Observer = (*Recorder)(nil)

// Recorder exports sync engine events as Prometheus metrics.
type Recorder struct {
	gatherer prometheus.Gatherer

	channelFailures *prometheus.CounterVec
	droppedItems    prometheus.Counter
	batches         prometheus.Counter
	newItems        prometheus.Counter
	failedChannels  prometheus.Gauge
	lastSync        prometheus.Gauge
	batchDuration   prometheus.Histogram
}

// NewRecorder registers the sync metrics on reg. A nil reg uses a fresh registry.
func NewRecorder(reg *prometheus.Registry) *Recorder {
	if reg == nil {
		reg = prometheus.NewRegistry()
	}
	factory := promauto.With(reg)

	return &Recorder{
		gatherer: reg,
		channelFailures: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "subfeed_channel_failures_total",
			Help: "Channels that failed during a sync pass, by failure kind",
		}, []string{"kind"}),
		droppedItems: factory.NewCounter(prometheus.CounterOpts{
			Name: "subfeed_dropped_items_total",
			Help: "Discovered videos dropped because their details could not be fetched",
		}),
		batches: factory.NewCounter(prometheus.CounterOpts{
			Name: "subfeed_sync_batches_total",
			Help: "Completed sync passes",
		}),
		newItems: factory.NewCounter(prometheus.CounterOpts{
			Name: "subfeed_new_items_total",
			Help: "New videos saved by sync passes",
		}),
		failedChannels: factory.NewGauge(prometheus.GaugeOpts{
			Name: "subfeed_last_sync_failed_channels",
			Help: "Failed channels of the most recent sync pass",
		}),
		lastSync: factory.NewGauge(prometheus.GaugeOpts{
			Name: "subfeed_last_sync_timestamp_seconds",
			Help: "Start time of the most recent sync pass",
		}),
		batchDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "subfeed_sync_duration_seconds",
			Help:    "Duration of sync passes",
			Buckets: []float64{1, 5, 15, 30, 60, 120, 300, 600},
		}),
	}
}

func (r *Recorder) ChannelFailed(_ domain.ChannelID, err error) {
	r.channelFailures.WithLabelValues(failureKind(err)).Inc()
}

func (r *Recorder) ItemDropped(_ domain.ItemID, _ error) {
	r.droppedItems.Inc()
}

func (r *Recorder) BatchCompleted(result *domain.SyncResult) {
	r.batches.Inc()
	r.newItems.Add(float64(result.NewItemCount))
	r.failedChannels.Set(float64(result.FailedChannels))
	r.lastSync.Set(float64(result.StartedAt.Unix()))
	r.batchDuration.Observe(result.Duration.Seconds())
}

// Handler serves the registered metrics.
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.gatherer, promhttp.HandlerOpts{})
}

func failureKind(err error) string {
	switch {
	case errors.Is(err, service.ErrSourceUnavailable):
		return "source"
	case errors.Is(err, service.ErrStore):
		return "store"
	case errors.Is(err, service.ErrDetailFetch):
		return "detail"
	default:
		return "other"
	}
}
