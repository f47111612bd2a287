package main

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"plane-booking/logger"
	"plane-booking/shared"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// viewer serves a read-only copy of the seat map kept current from NATS and Redis
type viewer struct {
	hub      *Hub
	state    *planeState
	loader   planeLoader // nil when no mirror is configured
	metrics  *viewerMetrics
	upgrader websocket.Upgrader
	log      *slog.Logger
}

func newViewer(loader planeLoader) *viewer {
	metrics := newViewerMetrics()
	return &viewer{
		hub:     newHub(metrics),
		state:   newPlaneState(),
		loader:  loader,
		metrics: metrics,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				// Read-only view, any origin may watch
				return true
			},
		},
		log: logger.WithComponent("viewer"),
	}
}

func setupRoutes(v *viewer) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), requestLogger(v.log))

	router.GET(shared.APIEndpointSeats, v.handleGetSeats)
	router.GET(shared.APIEndpointSeatMap, v.handleGetSeatMap)
	router.GET(shared.APIEndpointHealth, v.handleHealth)
	router.GET(shared.APIEndpointStats, v.handleStats)
	router.GET(shared.APIEndpointMetrics, gin.WrapH(promhttp.HandlerFor(v.metrics.registry, promhttp.HandlerOpts{})))
	router.GET(shared.WebSocketEndpoint, v.handleWebSocket)

	return router
}

func (v *viewer) handleGetSeats(c *gin.Context) {
	c.JSON(http.StatusOK, v.state.snapshot())
}

func (v *viewer) handleGetSeatMap(c *gin.Context) {
	var buf bytes.Buffer
	if err := v.state.printSeatMap(&buf); err != nil {
		c.JSON(http.StatusInternalServerError, shared.ErrorResponse{Error: "Failed to render seat map"})
		return
	}
	c.Data(http.StatusOK, "text/plain; charset=utf-8", buf.Bytes())
}

type pinger interface {
	Ping(ctx context.Context) error
}

func (v *viewer) handleHealth(c *gin.Context) {
	status := gin.H{"status": "ok", "service": "seatmap-viewer"}

	if p, ok := v.loader.(pinger); ok {
		if err := p.Ping(c.Request.Context()); err != nil {
			status["status"] = "degraded"
			status["mirror"] = err.Error()
			c.JSON(http.StatusServiceUnavailable, status)
			return
		}
		status["mirror"] = "ok"
	}

	c.JSON(http.StatusOK, status)
}

func (v *viewer) handleStats(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"hub":   v.hub.GetStats(),
		"seats": v.state.counts(),
	})
}

func (v *viewer) handleWebSocket(c *gin.Context) {
	conn, err := v.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		v.log.Warn("WebSocket upgrade error", "error", err)
		return
	}

	id := uuid.New().String()
	client := &Client{
		hub:         v.hub,
		state:       v.state,
		conn:        conn,
		send:        make(chan []byte, 256),
		id:          id,
		connectedAt: time.Now(),
		log:         v.log.With("client_id", id),
	}

	// Every new viewer starts from the full map
	client.sendMessage(shared.MessageTypePlaneState, v.state.snapshot())

	v.hub.register <- client

	go client.writePump()
	go client.readPump()
}

// handleSeatEvent applies a NATS seat event locally and forwards it to the browsers.
func (v *viewer) handleSeatEvent(ctx context.Context, data []byte) {
	var event shared.SeatEvent
	if err := json.Unmarshal(data, &event); err != nil {
		v.metrics.seatEvents.WithLabelValues("unknown", "malformed").Inc()
		v.log.Error("Failed to parse seat event", "error", err)
		return
	}

	if err := v.state.apply(event); err != nil {
		v.metrics.seatEvents.WithLabelValues(event.Type, "rejected").Inc()
		v.log.Warn("Seat event does not match local plane", "error", err, "event_id", event.ID)
		if v.loader != nil {
			if err := v.resync(ctx); err != nil {
				v.log.Error("Resync after rejected event failed", "error", err)
			}
		}
		return
	}

	v.metrics.seatEvents.WithLabelValues(event.Type, "applied").Inc()
	v.metrics.reservedSeats.Set(float64(v.state.counts().Reserved))

	v.broadcast(shared.MessageTypeSeatUpdate, event)
	v.log.Info("Seat event applied", "event_type", event.Type, "seat", event.SeatCode, "clients", v.hub.GetClientCount())
}

func (v *viewer) broadcast(msgType string, data interface{}) {
	message, err := json.Marshal(shared.ServerMessage{Type: msgType, Data: data})
	if err != nil {
		v.log.Error("Failed to marshal broadcast", "error", err, "type", msgType)
		return
	}
	v.hub.broadcastMessage(message)
}

// requestLogger logs one structured line per HTTP request
func requestLogger(log *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		fields := []any{
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status_code", c.Writer.Status(),
			"latency_ms", time.Since(start).Milliseconds(),
			"client_ip", c.ClientIP(),
		}

		if c.Writer.Status() >= 500 {
			log.Error("HTTP request", fields...)
		} else {
			log.Debug("HTTP request", fields...)
		}
	}
}
