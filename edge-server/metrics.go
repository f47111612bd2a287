package main

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type viewerMetrics struct {
	registry         *prometheus.Registry
	connectedClients prometheus.Gauge
	broadcasts       prometheus.Counter
	seatEvents       *prometheus.CounterVec
	resyncs          *prometheus.CounterVec
	reservedSeats    prometheus.Gauge
}

func newViewerMetrics() *viewerMetrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &viewerMetrics{
		registry: reg,
		connectedClients: factory.NewGauge(prometheus.GaugeOpts{
			Name: "seatmap_viewer_connected_clients",
			Help: "WebSocket clients currently connected.",
		}),
		broadcasts: factory.NewCounter(prometheus.CounterOpts{
			Name: "seatmap_viewer_broadcasts_total",
			Help: "Messages broadcast to all connected clients.",
		}),
		seatEvents: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "seatmap_viewer_seat_events_total",
			Help: "Seat events received, by type and outcome.",
		}, []string{"type", "outcome"}),
		resyncs: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "seatmap_viewer_resyncs_total",
			Help: "Seat map reloads from the Redis mirror, by outcome.",
		}, []string{"outcome"}),
		reservedSeats: factory.NewGauge(prometheus.GaugeOpts{
			Name: "seatmap_viewer_reserved_seats",
			Help: "Reserved seats in the viewer's copy of the plane.",
		}),
	}
}
