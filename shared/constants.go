package shared

import "time"

// Plane layout
const (
	PlaneRows   = 80
	PlaneCols   = 7
	TotalSeats  = PlaneRows * PlaneCols
	AisleColumn = 3
)

// Rows whose F, E and D seats are given over to storage
const (
	StorageFirstRow = 77
	StorageLastRow  = 78
)

// Booking references
const (
	ReferenceLength  = 8
	ReferenceCharset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

	// MaxReferenceAttempts bounds rejection sampling against already issued references.
	MaxReferenceAttempts = 1000
)

// Redis key patterns
const (
	RedisKeyPlaneSeats = "plane:seats"
	RedisFieldSeat     = "%d:%d" // formatted with row and column
)

// NATS topics
const (
	NATSTopicSeatBooked = "seats.booked"
	NATSTopicSeatFreed  = "seats.freed"
	NATSTopicAllSeats   = "seats.>"
)

// Timeouts and durations
const (
	SinkTimeout           = 2 * time.Second
	DefaultResyncInterval = 30 * time.Second
	WebSocketWriteTimeout = 10 * time.Second
	WebSocketPongWait     = 60 * time.Second
	WebSocketPingPeriod   = (WebSocketPongWait * 9) / 10
)

// Viewer configuration
const (
	DefaultViewerPort = "3000"
)

// Viewer endpoints
const (
	APIEndpointSeats   = "/api/seats"
	APIEndpointSeatMap = "/api/seats/map"
	APIEndpointHealth  = "/health"
	APIEndpointStats   = "/stats"
	APIEndpointMetrics = "/metrics"
	WebSocketEndpoint  = "/ws"
)
