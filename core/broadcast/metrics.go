package broadcast

import (
	"time"

	"drone-config/core/metrics"

	"github.com/prometheus/client_golang/prometheus"
)

// Delivery modes labelling failures.
const (
	modeBroadcast = "broadcast"
	modeTargeted  = "targeted"
)

// Metrics holds the prometheus collectors of a Broadcaster.
// All methods are safe on a nil receiver.
type Metrics struct {
	sessions          prometheus.Gauge
	connectionsTotal  prometheus.Counter
	broadcastsTotal   *prometheus.CounterVec
	sendsTotal        *prometheus.CounterVec
	deliveryFailures  *prometheus.CounterVec
	broadcastDuration prometheus.Histogram
}

func newMetrics(registry *metrics.Registry) *Metrics {
	if registry == nil {
		return nil
	}

	m := &Metrics{
		sessions: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: metrics.Namespace,
			Subsystem: "live",
			Name:      "sessions",
			Help:      "Number of currently connected live sessions",
		}),
		connectionsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: "live",
			Name:      "connections_total",
			Help:      "Total live sessions registered",
		}),
		broadcastsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: "live",
			Name:      "broadcasts_total",
			Help:      "Total broadcasts by event type",
		}, []string{"type"}),
		sendsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: "live",
			Name:      "sends_total",
			Help:      "Total targeted sends to a single session by event type",
		}, []string{"type"}),
		deliveryFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: "live",
			Name:      "delivery_failures_total",
			Help:      "Total failed deliveries to individual sessions by delivery mode",
		}, []string{"mode"}),
		broadcastDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: metrics.Namespace,
			Subsystem: "live",
			Name:      "broadcast_duration_seconds",
			Help:      "Time to deliver one broadcast to all sessions",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0},
		}),
	}

	registry.MustRegister(
		m.sessions,
		m.connectionsTotal,
		m.broadcastsTotal,
		m.sendsTotal,
		m.deliveryFailures,
		m.broadcastDuration,
	)
	return m
}

func (m *Metrics) registered(active int) {
	if m == nil {
		return
	}
	m.connectionsTotal.Inc()
	m.sessions.Set(float64(active))
}

func (m *Metrics) unregistered(active int) {
	if m == nil {
		return
	}
	m.sessions.Set(float64(active))
}

func (m *Metrics) broadcasted(eventType string, res Result, d time.Duration) {
	if m == nil {
		return
	}
	m.broadcastsTotal.WithLabelValues(eventType).Inc()
	m.deliveryFailures.WithLabelValues(modeBroadcast).Add(float64(res.Failed))
	m.broadcastDuration.Observe(d.Seconds())
}

func (m *Metrics) sent(eventType string, err error) {
	if m == nil {
		return
	}
	m.sendsTotal.WithLabelValues(eventType).Inc()
	if err != nil {
		m.deliveryFailures.WithLabelValues(modeTargeted).Inc()
	}
}
