package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Service holds the prometheus registry and the counters tracked by the
// wallet bridge.
type Service struct {
	registry *prometheus.Registry

	ConnectsTotal           prometheus.Counter
	TransfersSubmittedTotal prometheus.Counter
	TransfersFailedTotal    prometheus.Counter
	BulkBatchesTotal        prometheus.Counter
}

// New creates the metrics service with all collectors registered.
func New() *Service {
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector())
	registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	s := &Service{
		registry: registry,
		ConnectsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "bridge_wallet_connects_total",
			Help: "Number of successful wallet connects.",
		}),
		TransfersSubmittedTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "bridge_transfers_submitted_total",
			Help: "Number of transfers submitted to the provider.",
		}),
		TransfersFailedTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "bridge_transfers_failed_total",
			Help: "Number of transfers that failed at the provider.",
		}),
		BulkBatchesTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "bridge_bulk_batches_total",
			Help: "Number of bulk transfer batches dispatched.",
		}),
	}

	registry.MustRegister(
		s.ConnectsTotal,
		s.TransfersSubmittedTotal,
		s.TransfersFailedTotal,
		s.BulkBatchesTotal,
	)

	return s
}

// Handler exposes the registry in the prometheus text format.
func (s *Service) Handler() http.Handler {
	return promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{})
}
